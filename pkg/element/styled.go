package element

import "github.com/vango-dev/vstyle/pkg/vdom"

// Composer turns style declarations into a styled factory.
type Composer func(decls ...any) Factory

// Styled returns a composer for the element tag. Each call to the composer
// yields an independent factory whose class is appended after the caller's
// classes on every node.
func Styled(tag string, opts ...Option) Composer {
	base := New(tag, opts...)
	return base.Extend
}

// StyledComponent returns a composer for the component c.
func StyledComponent(c vdom.Component, opts ...Option) Composer {
	base := NewComponent(c, opts...)
	return base.Extend
}
