package element

import (
	"fmt"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/props"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Option configures a Factory.
type Option func(*options)

type options struct {
	compiler  style.Compiler
	namespace vdom.Namespace
}

// WithCompiler sets the compiler used by styled factories.
// Default: style.Default().
func WithCompiler(c style.Compiler) Option {
	return func(o *options) {
		o.compiler = c
	}
}

// WithNamespace sets the namespace of produced element nodes.
// Default: vdom.NamespaceHTML.
func WithNamespace(ns vdom.Namespace) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

func buildOptions(opts []Option) options {
	o := options{namespace: vdom.NamespaceHTML}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compiler == nil {
		o.compiler = style.Default()
	}
	return o
}

// Factory produces nodes for one target. The zero Factory is valid and
// produces nothing.
type Factory struct {
	tag       string
	comp      vdom.Component
	namespace vdom.Namespace
	compiler  style.Compiler
	style     *style.Style
}

// New returns a factory for the element tag.
func New(tag string, opts ...Option) Factory {
	o := buildOptions(opts)
	return Factory{tag: tag, namespace: o.namespace, compiler: o.compiler}
}

// NewComponent returns a factory for the component c.
func NewComponent(c vdom.Component, opts ...Option) Factory {
	o := buildOptions(opts)
	return Factory{comp: c, namespace: o.namespace, compiler: o.compiler}
}

// IsZero reports whether f has no target.
func (f Factory) IsZero() bool {
	return f.tag == "" && f.comp == nil
}

// Tag returns the element tag, or "" for component factories.
func (f Factory) Tag() string {
	return f.tag
}

// Component returns the component target, or nil for tag factories.
func (f Factory) Component() vdom.Component {
	return f.comp
}

// Namespace returns the namespace of produced element nodes.
func (f Factory) Namespace() vdom.Namespace {
	return f.namespace
}

// Style returns the factory's style, or nil when it is unstyled.
func (f Factory) Style() *style.Style {
	return f.style
}

// ClassName returns the compiled class of the factory's style, or "" for
// unstyled factories.
func (f Factory) ClassName() style.ClassName {
	if f.style == nil {
		return ""
	}
	return f.style.ClassName()
}

// Selector returns the class selector of the factory's style, or "".
func (f Factory) Selector() string {
	return f.ClassName().Selector()
}

// Extend returns a factory for the same target whose style is the
// receiver's style extended with decls. An unstyled receiver gets a new
// style.
func (f Factory) Extend(decls ...any) Factory {
	if f.IsZero() {
		return f
	}
	next := f
	if f.style == nil {
		next.style = style.New(f.compiler, decls...)
	} else {
		next.style = f.style.Extend(decls...)
	}
	return next
}

// Create builds a node. arg is a props bag or a child (see props.Route);
// children follow any children carried in arg.
//
// For tag targets the bag is fully normalized; for component targets it is
// only routed, except that a styled component still receives a merged
// className. The only error is a data value that cannot be stringified.
func (f Factory) Create(arg any, children ...any) (*vdom.VNode, error) {
	if f.IsZero() {
		return nil, nil
	}

	var (
		p   vdom.Props
		err error
	)
	switch {
	case f.comp == nil:
		p, err = props.Normalize(arg)
		if err != nil {
			return nil, err
		}
	default:
		p = props.NormalizeComponent(arg)
	}

	if f.style != nil {
		p[props.KeyClassName] = props.JoinClasses(p[props.KeyClassName], p[props.KeyClass], string(f.style.ClassName()))
		delete(p, props.KeyClass)
	}

	all := make([]any, 0, len(children)+1)
	if c, ok := p[props.KeyChildren]; ok {
		delete(p, props.KeyChildren)
		all = append(all, c)
	}
	all = append(all, children...)

	if len(p) == 0 {
		p = nil
	}

	var node *vdom.VNode
	if f.comp != nil {
		node = vdom.CreateElement(f.comp, p, all...)
	} else {
		node = vdom.CreateElement(f.tag, p, all...)
		node.NS = f.namespace
	}
	return node, nil
}

// El is Create for use in element trees. It panics if Create fails.
func (f Factory) El(arg any, children ...any) *vdom.VNode {
	node, err := f.Create(arg, children...)
	if err != nil {
		panic(err)
	}
	return node
}

// Func returns f.El as a plain function value.
func (f Factory) Func() func(arg any, children ...any) *vdom.VNode {
	return f.El
}

// Create builds a node for tag, which is an element name or a
// vdom.Component. p is copied, never mutated. String tags get class and
// data normalization; components get p as given. Any other tag type is
// an E003 error.
func Create(tag any, p vdom.Props, children ...any) (*vdom.VNode, error) {
	switch t := tag.(type) {
	case string:
		return New(t).Create(props.Of(p), children...)
	case vdom.Component:
		return NewComponent(t).Create(props.Of(p), children...)
	case func(vdom.Props) *vdom.VNode:
		return NewComponent(vdom.ComponentFunc(t)).Create(props.Of(p), children...)
	default:
		return nil, errors.New("E003").WithDetail(fmt.Sprintf("tag of type %T", tag))
	}
}
