// Package pipeline implements the HTML transforms that inline a bundle.
//
// The transforms are plain text substitutions on the entry HTML:
//   - the first stylesheet <link> pointing into the assets directory becomes a
//     <style> block holding the CSS verbatim
//   - the first module <script> pointing into the assets directory becomes an
//     inline <script type="module"> holding the JavaScript verbatim
//
// Everything outside the replaced spans is left byte-for-byte intact, which is
// why matching is done with anchored regular expressions instead of parsing and
// re-rendering the document. ExternalReferences does parse the document (with
// golang.org/x/net/html) but only to report what is still external.
package pipeline
