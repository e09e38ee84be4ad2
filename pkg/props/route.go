package props

import (
	"reflect"

	"github.com/a-h/templ"

	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Reserved prop keys.
const (
	KeyClass     = "class"
	KeyClassName = "className"
	KeyData      = "data"
	KeyChildren  = "children"
	KeyRef       = "ref"
)

type argKind uint8

const (
	argNone argKind = iota
	argProps
	argChild
)

// Arg is an explicit props-or-child argument. Build one with Of or Child
// when the caller already knows which it is.
type Arg struct {
	kind  argKind
	props vdom.Props
	child any
}

// Of marks p as a props bag.
func Of(p vdom.Props) Arg {
	return Arg{kind: argProps, props: p}
}

// Child marks v as the sole child, even if it looks like a props bag.
func Child(v any) Arg {
	return Arg{kind: argChild, child: v}
}

// Route converts a factory argument into a fresh props bag without folding
// class or data keys.
//
//   - nil yields an empty bag with no children key
//   - an Arg yields its explicit branch
//   - vdom.Props, map[string]any, templ.Attributes and any other map with
//     string keys (map[string]string, ...) are copied
//   - anything else becomes {children: arg}
func Route(arg any) vdom.Props {
	if vdom.IsElement(arg) {
		return vdom.Props{KeyChildren: arg}
	}

	switch v := arg.(type) {
	case nil:
		return vdom.Props{}
	case Arg:
		switch v.kind {
		case argProps:
			return v.props.Clone()
		case argChild:
			if v.child == nil {
				return vdom.Props{}
			}
			return vdom.Props{KeyChildren: v.child}
		default:
			return vdom.Props{}
		}
	case vdom.Props:
		return v.Clone()
	case map[string]any:
		return vdom.Props(v).Clone()
	case templ.Attributes:
		return vdom.Props(v).Clone()
	default:
		if p, ok := stringMap(arg); ok {
			return p
		}
		return vdom.Props{KeyChildren: arg}
	}
}

// stringMap copies v into a fresh bag when it is a map with string keys.
func stringMap(v any) (vdom.Props, bool) {
	m := reflect.ValueOf(v)
	if m.Kind() != reflect.Map || m.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	p := make(vdom.Props, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		p[iter.Key().String()] = iter.Value().Interface()
	}
	return p, true
}

// Normalize routes arg and folds it into the form string tags expect:
// class names merged into "className" and "data" expanded into "data-*"
// attributes. The only error source is a data value that cannot be turned
// into a string; that error is returned unchanged.
func Normalize(arg any) (vdom.Props, error) {
	p := Route(arg)
	MergeClassNames(p)
	return ExpandData(p)
}

// NormalizeComponent routes arg for a component target. Components receive
// "class" and "data" as given and interpret them themselves.
func NormalizeComponent(arg any) vdom.Props {
	return Route(arg)
}
