// Package element builds virtual DOM nodes from normalized props.
//
// A Factory is bound to one target, either a tag name or a vdom.Component,
// and optionally to a compiled style whose class is appended to every node
// it produces:
//
//	button := element.Styled("button")(style.Declarations{"padding": 8})
//	node := button.El(vdom.Props{"class": "primary"}, "Save")
//	// <button class="primary css-1x2y3z">Save</button>
//
// Factories are values. Extend returns a new factory and leaves the
// receiver untouched.
package element
