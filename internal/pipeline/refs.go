package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Reference is an external asset reference found in an HTML document.
type Reference struct {
	Tag  string // "link" or "script"
	Attr string // "href" or "src"
	URL  string // attribute value as written
}

func (r Reference) String() string {
	return fmt.Sprintf("<%s %s=%q>", r.Tag, r.Attr, r.URL)
}

// ExternalReferences lists stylesheet links and scripts whose URL points into
// assetsDir. Relative ("./assets/x", "assets/x") and root-relative
// ("/assets/x") forms are reported; absolute URLs are not.
//
// The document is tokenized, so tags inside script or style bodies (for
// example a string literal in already-inlined JavaScript) are not reported.
func ExternalReferences(htmlContent, assetsDir string) ([]Reference, error) {
	dir := NormalizeAssetsDir(assetsDir)
	z := html.NewTokenizer(strings.NewReader(htmlContent))

	var refs []Reference
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return refs, nil
			}
			return refs, fmt.Errorf("tokenizing HTML: %w", z.Err())

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Link:
				if !relContains(attrValue(tok, "rel"), "stylesheet") {
					continue
				}
				if href := attrValue(tok, "href"); pointsInto(href, dir) {
					refs = append(refs, Reference{Tag: "link", Attr: "href", URL: href})
				}
			case atom.Script:
				if src := attrValue(tok, "src"); pointsInto(src, dir) {
					refs = append(refs, Reference{Tag: "script", Attr: "src", URL: src})
				}
			}
		}
	}
}

// attrValue returns the value of the named attribute, or "" if absent.
// Attribute keys are lowercased by the tokenizer.
func attrValue(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// relContains reports whether a space-separated rel list contains want.
func relContains(rel, want string) bool {
	for _, v := range strings.Fields(rel) {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// pointsInto reports whether url is a relative or root-relative path into dir.
func pointsInto(url, dir string) bool {
	if url == "" {
		return false
	}
	trimmed := strings.TrimPrefix(url, "./")
	if strings.HasPrefix(trimmed, "//") {
		return false // protocol-relative
	}
	trimmed = strings.TrimPrefix(trimmed, "/")
	return strings.HasPrefix(trimmed, dir+"/")
}
