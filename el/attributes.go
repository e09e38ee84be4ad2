// This file defines props helpers for the el package.
package el

import (
	"fmt"

	"github.com/vango-dev/vstyle/pkg/props"
)

// Attrs builds props from alternating key/value pairs. A trailing key
// without a value is ignored.
func Attrs(pairs ...any) Props {
	p := make(Props, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			key = fmt.Sprint(pairs[i])
		}
		p[key] = pairs[i+1]
	}
	return p
}

// Merge combines bags left to right. Class values are concatenated in order
// instead of overwritten; other keys take the last value.
func Merge(bags ...Props) Props {
	out := Props{}
	var classes []any
	for _, b := range bags {
		for k, v := range b {
			switch k {
			case props.KeyClass, props.KeyClassName:
			default:
				out[k] = v
			}
		}
		classes = append(classes, b[props.KeyClassName], b[props.KeyClass])
	}
	if joined := props.JoinClasses(classes...); joined != "" {
		out[props.KeyClassName] = joined
	}
	return out
}

// ID returns props with the id attribute.
func ID(id string) Props {
	return Props{"id": id}
}

// Class returns props with the given class values (strings, slices or nil).
func Class(values ...any) Props {
	return Props{props.KeyClass: props.JoinClasses(values...)}
}

// Data returns props with data attributes, keyed in camel case.
func Data(values map[string]any) Props {
	return Props{props.KeyData: values}
}
