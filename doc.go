// Package inlinebundle embeds a bundler's JavaScript and CSS output into its
// entry HTML so the page loads without external asset requests.
//
// A Vite build with base "./" emits:
//
//	dist/index.html
//	dist/assets/index-4f2a.js
//	dist/assets/index-9c1d.css
//
// with index.html holding:
//
//	<script type="module" crossorigin src="./assets/index-4f2a.js"></script>
//	<link rel="stylesheet" crossorigin href="./assets/index-9c1d.css">
//
// Inline replaces the link with a <style> block holding the CSS and the
// script with an inline module script holding the JavaScript, then writes
// index.html back in place:
//
//	inl, err := inlinebundle.NewInliner()
//	if err != nil {
//	    return err
//	}
//	res, err := inl.Inline(ctx, "frontend/dist")
//
// Asset contents are inserted verbatim. When several files share an
// extension, the lexicographically first file name wins and a warning is
// recorded in Result.Warnings.
//
// Running Inline on already-inlined output is a no-op: the file is left
// byte-identical and no error or warning is reported.
//
// # Errors
//
// Inline returns a *MissingAssetError (ErrMissingAsset) when the assets
// directory lacks a .js or .css file and an *IOError (ErrIO) when a file
// cannot be read or written. Both are returned before the HTML is modified.
// A tag the rewriter cannot find is governed by MissingTagPolicy.
package inlinebundle
