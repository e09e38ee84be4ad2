package el

import (
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Type aliases for the primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Component = vdom.Component
type ComponentFunc = vdom.ComponentFunc
type Declarations = style.Declarations
