package props

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/vango-dev/vstyle/pkg/vdom"
)

// DataAttributeName converts a camel-case data key into its attribute name:
// fooBar -> data-foo-bar.
func DataAttributeName(key string) string {
	return "data-" + KebabCase(key)
}

// KebabCase inserts a hyphen before every internal capital letter, lower
// cases the result, turns whitespace runs into single hyphens and trims
// leading and trailing hyphens.
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	space := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte('-')
			space = false
		}
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return strings.Trim(b.String(), "-")
}

// DataValue converts a data entry into its attribute value. ok is false for
// entries that must be dropped: nil (including typed nil pointers, maps and
// slices), false and the empty string. Numeric
// zero is kept. Values without a scalar form go through TextMarshaler,
// Stringer or JSON, and their error is returned unchanged.
func DataValue(v any) (value string, ok bool, err error) {
	if isNil(v) {
		return "", false, nil
	}
	switch d := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return d, d != "", nil
	case bool:
		if !d {
			return "", false, nil
		}
		return "true", true, nil
	case int:
		return strconv.Itoa(d), true, nil
	case int8:
		return strconv.FormatInt(int64(d), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(d), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(d), 10), true, nil
	case int64:
		return strconv.FormatInt(d, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(d), 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(d), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(d), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(d), 10), true, nil
	case uint64:
		return strconv.FormatUint(d, 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(d), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64), true, nil
	case encoding.TextMarshaler:
		text, err := d.MarshalText()
		if err != nil {
			return "", false, err
		}
		return string(text), len(text) > 0, nil
	case fmt.Stringer:
		s := d.String()
		return s, s != "", nil
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return "", false, err
		}
		return string(encoded), true, nil
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// ExpandData replaces the "data" entry of p with flat data-* attributes and
// returns p. The entry may be any map with string keys; any other value is
// dropped together with the key. On error p is left without its
// "data" key and the stringification error is returned as is.
func ExpandData(p vdom.Props) (vdom.Props, error) {
	raw, ok := p[KeyData]
	if !ok {
		return p, nil
	}
	delete(p, KeyData)

	var data map[string]any
	switch d := raw.(type) {
	case map[string]any:
		data = d
	case vdom.Props:
		data = d
	default:
		m, ok := stringMap(raw)
		if !ok {
			return p, nil
		}
		data = m
	}

	for _, key := range vdom.Props(data).Keys() {
		value, keep, err := DataValue(data[key])
		if err != nil {
			return p, err
		}
		if !keep {
			continue
		}
		p[DataAttributeName(key)] = value
	}
	return p, nil
}
