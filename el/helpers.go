// This file re-exports vdom helper functions for the el package.
package el

import (
	"github.com/vango-dev/vstyle/pkg/element"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

func Text(content string) *VNode {
	return vdom.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}
func Raw(html string) *VNode {
	return vdom.Raw(html)
}
func Fragment(children ...any) *VNode {
	return vdom.Fragment(children...)
}
func If(condition bool, node *VNode) *VNode {
	return vdom.If(condition, node)
}
func When(condition bool, fn func() *VNode) *VNode {
	return vdom.When(condition, fn)
}
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vdom.Range(items, fn)
}
func IsVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// Tag creates an element for any HTML tag name, including custom elements.
// Invalid names produce nil.
func Tag(name string, arg any, children ...any) *VNode {
	return html.Get(name).El(arg, children...)
}

// Comp renders the component c with arg as props or first child.
func Comp(c Component, arg any, children ...any) *VNode {
	return element.NewComponent(c).El(arg, children...)
}

// Styled returns a composer for the HTML tag name.
func Styled(name string) element.Composer {
	return html.Get(name).Extend
}
