// Package el provides the element DSL for vstyle.
//
// It defines one constructor per common HTML and SVG tag, backed by the
// shared dispatch namespaces, and re-exports the vdom helpers used to build
// trees.
//
// Typical usage:
//
//	import . "github.com/vango-dev/vstyle/el"
//
//	Div(Props{"class": "card", "data": Props{"id": 7}},
//	    H2(nil, "Title"),
//	    P("Body text"),
//	)
//
// The first argument is a props bag or, when it is anything else, the first
// child.
package el
