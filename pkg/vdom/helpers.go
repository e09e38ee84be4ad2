package vdom

import "fmt"

func leaf(kind VKind, s string) *VNode {
	return &VNode{Kind: kind, Text: s}
}

// Text returns a text node. The renderer escapes it.
func Text(content string) *VNode { return leaf(KindText, content) }

// Textf is Text with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode { return leaf(KindText, fmt.Sprintf(format, args...)) }

// Raw returns a node whose content is written without escaping. The
// content must be trusted markup.
func Raw(html string) *VNode { return leaf(KindRaw, html) }

// Fragment flattens children into a node with no wrapper element. Children
// follow the same rules as CreateElement children.
func Fragment(children ...any) *VNode {
	return &VNode{Kind: KindFragment, Children: AppendChildren(nil, children...)}
}

// If returns node when condition holds and nil otherwise. Nil children are
// skipped, so If can sit directly in a child list.
func If(condition bool, node *VNode) *VNode {
	return When(condition, func() *VNode { return node })
}

// When calls fn only when condition holds.
func When(condition bool, fn func() *VNode) *VNode {
	if !condition {
		return nil
	}
	return fn()
}

// Range builds one node per item, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	var nodes []*VNode
	for i := range items {
		if n := fn(items[i], i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
