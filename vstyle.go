// Package vstyle builds virtual DOM elements from tag names with normalized
// class and data props, and compiles CSS declarations into shared class
// names.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/vstyle"
//
// Usage:
//
//	box := vstyle.HTML.Get("div").El(vdom.Props{
//	    "class": "box",
//	    "data":  map[string]any{"active": true},
//	}, "Hi")
//
//	Button := vstyle.Styled.Get("button")(vstyle.Declarations{"padding": 8})
//	Primary := Button.Extend(vstyle.Declarations{"color": "white"})
package vstyle

import (
	"github.com/vango-dev/vstyle/pkg/dispatch"
	"github.com/vango-dev/vstyle/pkg/element"
	"github.com/vango-dev/vstyle/pkg/props"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// =============================================================================
// Core types (re-export)
// =============================================================================

// VNode is a virtual DOM node.
type VNode = vdom.VNode

// Props is a props bag.
type Props = vdom.Props

// Factory produces elements for one tag or component.
type Factory = element.Factory

// Composer turns declarations into a styled Factory.
type Composer = element.Composer

// Option configures factories.
type Option = element.Option

// Declarations is an unordered set of CSS declarations.
type Declarations = style.Declarations

// List is an ordered list of CSS declarations.
type List = style.List

// ClassName is a compiled class token.
type ClassName = style.ClassName

// Style is a lazily compiled, extendable style.
type Style = style.Style

// Sheet is the style compiler and rule registry.
type Sheet = style.Sheet

var (
	// WithCompiler sets the compiler of styled factories.
	WithCompiler = element.WithCompiler
	// WithNamespace sets the namespace of produced elements.
	WithNamespace = element.WithNamespace
	// Decl builds one ordered declaration.
	Decl = style.Decl
	// Of marks a value as a props bag.
	Of = props.Of
	// Child marks a value as the sole child.
	Child = props.Child
)

// =============================================================================
// Namespaces
// =============================================================================

var (
	// HTML resolves HTML tag names.
	HTML = dispatch.NewNamespace(dispatch.DomainHTML)

	// SVG resolves SVG tag names.
	SVG = dispatch.NewNamespace(dispatch.DomainSVG)

	// XML resolves both, preferring HTML when a name exists in both.
	XML = dispatch.NewNamespace(dispatch.DomainXML)

	// Styled resolves HTML tag names to styled-factory composers.
	Styled = dispatch.NewStyledNamespace(HTML)

	// StyledSVG resolves SVG tag names to styled-factory composers.
	StyledSVG = dispatch.NewStyledNamespace(SVG)
)

// =============================================================================
// Constructors
// =============================================================================

// CreateElementFactory returns a factory for the HTML element tag.
func CreateElementFactory(tag string, opts ...Option) Factory {
	return element.New(tag, opts...)
}

// CreateStyledFactory returns a composer for the HTML element tag.
func CreateStyledFactory(tag string, opts ...Option) Composer {
	return element.Styled(tag, opts...)
}

// CreateComponentFactory returns a factory for the component c.
func CreateComponentFactory(c vdom.Component, opts ...Option) Factory {
	return element.NewComponent(c, opts...)
}

// CreateElement builds a node for an element name or component.
// p is copied, never mutated.
func CreateElement(tag any, p Props, children ...any) (*VNode, error) {
	return element.Create(tag, p, children...)
}

// CSS returns a style compiled by the default sheet.
func CSS(decls ...any) *Style {
	return style.New(style.Default(), decls...)
}

// DefaultSheet returns the sheet used by factories without WithCompiler.
func DefaultSheet() *Sheet {
	return style.Default()
}
