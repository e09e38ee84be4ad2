// Package render serializes vdom trees to HTML.
//
// It handles the parts of producing valid, safe HTML output that element
// factories leave to the host:
//
//   - className and htmlFor mapped to class and for
//   - Proper text and attribute escaping
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - SVG namespaces and self-closing empty SVG elements
//   - Components expanded and templ components embedded
//   - Full documents with the compiled stylesheet inlined
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Documents
//
//	err := renderer.RenderDocument(w, render.Document{
//	    Title: "Gallery",
//	    Body:  page,
//	    Sheet: style.Default(),
//	})
//
// # templ
//
// Templ wraps a node as a templ.Component, and templ components placed in
// a tree as children are rendered in place.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted using
// KindRaw nodes, but should only be used with trusted content. Tags that
// cannot be written safely fail with error E160.
package render
