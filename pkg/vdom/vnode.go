package vdom

import (
	"context"
	"io"
	"sort"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <circle>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Component invocation
	KindRaw                    // Raw HTML (dangerous)
	KindEmbed                  // External renderer (e.g. templ.Component)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	case KindEmbed:
		return "Embed"
	default:
		return "Unknown"
	}
}

// Namespace identifies the markup vocabulary an element belongs to.
type Namespace uint8

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
)

// String returns the namespace name.
func (n Namespace) String() string {
	if n == NamespaceSVG {
		return "svg"
	}
	return "html"
}

// URI returns the XML namespace URI.
func (n Namespace) URI() string {
	if n == NamespaceSVG {
		return "http://www.w3.org/2000/svg"
	}
	return "http://www.w3.org/1999/xhtml"
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	NS       Namespace // Element namespace
	Props    Props     // Attributes
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	Embed    Embedded  // For KindEmbed
}

// Props holds attributes. Keys follow the host conventions: "className" for
// the class attribute, "data-*" for data attributes, "ref" and "key" are
// never rendered.
type Props map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty bag.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the keys of p in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Component is anything that renders to a VNode given its props.
type Component interface {
	Render(props Props) *VNode
}

// ComponentFunc adapts a render function to Component.
type ComponentFunc func(props Props) *VNode

// Render implements Component.
func (f ComponentFunc) Render(props Props) *VNode {
	return f(props)
}

// Embedded is an external renderer placed into the tree as a child.
// templ.Component satisfies it.
type Embedded interface {
	Render(ctx context.Context, w io.Writer) error
}

// IsElement reports whether v is an already constructed node. Factories use
// it to tell a bare child apart from a props bag.
func IsElement(v any) bool {
	node, ok := v.(*VNode)
	return ok && node != nil
}

// ComponentProps returns the props a component node passes to its Component:
// a copy of Props with "children" set to the node's children.
func (v *VNode) ComponentProps() Props {
	props := v.Props.Clone()
	if len(v.Children) > 0 {
		props["children"] = v.Children
	}
	return props
}

// Expand renders a component node through its Component. Other kinds are
// returned unchanged.
func (v *VNode) Expand() *VNode {
	if v == nil || v.Kind != KindComponent || v.Comp == nil {
		return v
	}
	return v.Comp.Render(v.ComponentProps())
}
