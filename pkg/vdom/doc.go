// Package vdom provides the virtual node model that vstyle factories build.
//
// A VNode is an in-memory description of an element, a text node, a
// fragment, a component invocation, raw HTML, or an embedded renderer (for
// example a templ.Component). Nothing here diffs or patches; vdom is the host
// constructor that the element factories delegate to once props have been
// normalized.
//
// # Constructing Nodes
//
// CreateElement takes a tag (a string or a Component), a props bag, and any
// number of children:
//
//	node := vdom.CreateElement("div", vdom.Props{"className": "card"},
//	    "Hello",
//	    vdom.CreateElement("span", nil, "world"),
//	)
//
// Children may be nodes, strings, numbers, slices of either, Components or
// embedded renderers. Nil values and booleans are skipped so that
// conditional children can be written inline.
//
// # Components
//
// A Component receives the props it was created with plus a "children" entry
// holding its flattened children:
//
//	card := vdom.ComponentFunc(func(p vdom.Props) *vdom.VNode {
//	    return vdom.CreateElement("section", nil, p["children"])
//	})
//	node := vdom.CreateElement(card, vdom.Props{"title": "Hi"}, "body")
package vdom
