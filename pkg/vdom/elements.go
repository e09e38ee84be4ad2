package vdom

import (
	"fmt"
	"strconv"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// CreateElement creates a node for tag with the given props and children.
//
// tag is either an element name or a Component (a bare
// func(Props) *VNode is accepted too). Any other tag type yields nil.
// props is retained as-is, so callers that need to keep their bag must pass a
// copy; a nil props means "no attributes". A string or numeric "key" prop is
// lifted into VNode.Key.
func CreateElement(tag any, props Props, children ...any) *VNode {
	var node *VNode
	switch t := tag.(type) {
	case string:
		node = &VNode{Kind: KindElement, Tag: t}
	case Component:
		node = &VNode{Kind: KindComponent, Comp: t}
	case func(Props) *VNode:
		node = &VNode{Kind: KindComponent, Comp: ComponentFunc(t)}
	default:
		return nil
	}

	node.Props = props
	if key, ok := props["key"]; ok && key != nil {
		node.Key = fmt.Sprint(key)
	}
	node.Children = AppendChildren(nil, children...)
	return node
}

// AppendChildren flattens children into dst.
// Accepted values: nil, *VNode, []*VNode, []any, []string, string, numbers,
// Component, Embedded and fmt.Stringer. Nil and boolean values are skipped.
func AppendChildren(dst []*VNode, children ...any) []*VNode {
	for _, child := range children {
		switch v := child.(type) {
		case nil, bool:
			// Ignore nil and booleans (allows conditional children)
			continue

		case *VNode:
			if v != nil {
				dst = append(dst, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}

		case []any:
			dst = AppendChildren(dst, v...)

		case []string:
			for _, s := range v {
				dst = append(dst, Text(s))
			}

		case string:
			dst = append(dst, Text(v))

		case int:
			dst = append(dst, Text(strconv.Itoa(v)))
		case int64:
			dst = append(dst, Text(strconv.FormatInt(v, 10)))
		case float64:
			dst = append(dst, Text(strconv.FormatFloat(v, 'f', -1, 64)))

		case Component:
			dst = append(dst, &VNode{Kind: KindComponent, Comp: v})

		case Embedded:
			dst = append(dst, &VNode{Kind: KindEmbed, Embed: v})

		case fmt.Stringer:
			dst = append(dst, Text(v.String()))

		default:
			dst = append(dst, Text(fmt.Sprint(v)))
		}
	}
	return dst
}
