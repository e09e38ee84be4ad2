package style

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// placeholder stands for the class selector inside rule templates.
const placeholder = "&"

// atSep separates nested at-rule preludes in a ruleKey.
const atSep = "\x1f"

// ruleKey identifies one block of a compiled style: the at-rule chain it is
// wrapped in and its selector template.
type ruleKey struct {
	at       string
	selector string
}

var rootKey = ruleKey{selector: placeholder}

type declaration struct {
	property string
	value    string
}

type ruleBlock struct {
	key   ruleKey
	decls []declaration
}

// set replaces every earlier occurrence of property with values, appended at
// the end so that the latest write wins in the cascade.
func (b *ruleBlock) set(property string, values ...string) {
	kept := b.decls[:0]
	for _, d := range b.decls {
		if d.property != property {
			kept = append(kept, d)
		}
	}
	b.decls = kept
	for _, v := range values {
		b.decls = append(b.decls, declaration{property: property, value: v})
	}
}

func (b *ruleBlock) lookup(property string) (string, bool) {
	for i := len(b.decls) - 1; i >= 0; i-- {
		if b.decls[i].property == property {
			return b.decls[i].value, true
		}
	}
	return "", false
}

// compiled is the class-independent form of a style.
type compiled struct {
	blocks []*ruleBlock
	index  map[ruleKey]*ruleBlock
	labels []string
}

func newCompiled() *compiled {
	c := &compiled{index: make(map[ruleKey]*ruleBlock)}
	c.block(rootKey)
	return c
}

func (c *compiled) block(key ruleKey) *ruleBlock {
	if b, ok := c.index[key]; ok {
		return b
	}
	b := &ruleBlock{key: key}
	c.index[key] = b
	c.blocks = append(c.blocks, b)
	return b
}

// merge layers other on top of c inside ctx.
func (c *compiled) merge(ctx ruleKey, other *compiled) {
	for _, ob := range other.blocks {
		key := ruleKey{
			at:       joinAt(ctx.at, ob.key.at),
			selector: strings.ReplaceAll(ob.key.selector, placeholder, ctx.selector),
		}
		b := c.block(key)
		for _, d := range ob.decls {
			b.set(d.property, d.value)
		}
	}
	c.labels = append(c.labels, other.labels...)
}

// template serializes c with the selector placeholder left in place. It is
// the hash input, so it must not depend on the class name.
func (c *compiled) template() string {
	return c.serialize(placeholder)
}

// render serializes c for the given class.
func (c *compiled) render(class ClassName) string {
	return c.serialize(class.Selector())
}

func (c *compiled) serialize(selector string) string {
	var b strings.Builder
	for _, block := range c.blocks {
		if len(block.decls) == 0 {
			continue
		}
		var levels []string
		if block.key.at != "" {
			levels = strings.Split(block.key.at, atSep)
		}
		for _, at := range levels {
			b.WriteString(at)
			b.WriteByte('{')
		}
		b.WriteString(strings.ReplaceAll(block.key.selector, placeholder, selector))
		b.WriteByte('{')
		for _, d := range block.decls {
			b.WriteString(d.property)
			b.WriteByte(':')
			b.WriteString(d.value)
			b.WriteByte(';')
		}
		b.WriteByte('}')
		for range levels {
			b.WriteByte('}')
		}
	}
	return b.String()
}

func joinAt(outer, inner string) string {
	switch {
	case outer == "":
		return inner
	case inner == "":
		return outer
	default:
		return outer + atSep + inner
	}
}

// builder walks interpolations into a compiled style.
type builder struct {
	out *compiled
	// lookup resolves previously compiled classes for composition.
	lookup func(ClassName) (*compiled, bool)
	// skip reports interpolations of unsupported types. May be nil.
	skip func(v any)
}

// thunk returns v as a func() any when v is a function taking no arguments
// and returning exactly one value, such as func() Declarations.
func thunk(v any) (func() any, bool) {
	switch f := v.(type) {
	case nil:
		return nil, false
	case func() any:
		return f, f != nil
	case func() Declarations:
		return func() any { return f() }, f != nil
	case func() List:
		return func() any { return f() }, f != nil
	case func() string:
		return func() any { return f() }, f != nil
	}
	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, false
	}
	t := fn.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return nil, false
	}
	return func() any { return fn.Call(nil)[0].Interface() }, true
}

// stringMap copies a map with string keys of any other type, such as
// map[string]string, into a map[string]any.
func stringMap(v any) (map[string]any, bool) {
	m := reflect.ValueOf(v)
	if m.Kind() != reflect.Map || m.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func (b *builder) add(ctx ruleKey, v any) {
	switch s := v.(type) {
	case nil, bool:
		// Ignore nil and booleans (allows conditional styles)
	case []any:
		for _, item := range s {
			b.add(ctx, item)
		}
	case *Style:
		if s != nil {
			b.add(ctx, s.Values())
		}
	case ClassName:
		if b.lookup == nil {
			return
		}
		if other, ok := b.lookup(s); ok {
			b.out.merge(ctx, other)
		}
	case string:
		b.addRaw(ctx, s)
	case Declarations:
		b.addMap(ctx, s)
	case map[string]any:
		b.addMap(ctx, s)
	case List:
		for _, d := range s {
			b.addProperty(ctx, d.Property, d.Value)
		}
	case []Declaration:
		for _, d := range s {
			b.addProperty(ctx, d.Property, d.Value)
		}
	case Declaration:
		b.addProperty(ctx, s.Property, s.Value)
	default:
		if fn, ok := thunk(v); ok {
			b.add(ctx, fn())
			return
		}
		if m, ok := stringMap(v); ok {
			b.addMap(ctx, m)
			return
		}
		if b.skip != nil {
			b.skip(v)
		}
	}
}

func (b *builder) addMap(ctx ruleKey, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.addProperty(ctx, k, m[k])
	}
}

// addRaw parses "prop: value; prop: value" text into the current block.
func (b *builder) addRaw(ctx ruleKey, text string) {
	block := b.out.block(ctx)
	for _, part := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		block.set(name, value)
	}
}

func (b *builder) addProperty(ctx ruleKey, key string, value any) {
	if fn, ok := thunk(value); ok {
		value = fn()
	}

	if isNested(value) {
		b.add(nestedKey(ctx, key), value)
		return
	}

	if key == "label" {
		if value != nil {
			if label := labelPart(fmt.Sprint(value)); label != "" {
				b.out.labels = append(b.out.labels, label)
			}
		}
		return
	}

	property := Hyphenate(key)
	var values []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s, ok := formatValue(property, item); ok {
				values = append(values, s)
			}
		}
	case []string:
		values = append(values, v...)
	default:
		if s, ok := formatValue(property, v); ok {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		return
	}
	b.out.block(ctx).set(property, values...)
}

func isNested(v any) bool {
	switch v.(type) {
	case Declarations, map[string]any, List, []Declaration, *Style:
		return true
	}
	_, ok := stringMap(v)
	return ok
}

// nestedKey derives the block for a nested key inside ctx.
func nestedKey(ctx ruleKey, key string) ruleKey {
	key = strings.TrimSpace(key)
	switch {
	case strings.HasPrefix(key, "@"):
		return ruleKey{at: joinAt(ctx.at, key), selector: ctx.selector}
	case strings.Contains(key, placeholder):
		return ruleKey{at: ctx.at, selector: strings.ReplaceAll(key, placeholder, ctx.selector)}
	case strings.HasPrefix(key, ":"):
		return ruleKey{at: ctx.at, selector: ctx.selector + key}
	default:
		parts := strings.Split(key, ",")
		for i, p := range parts {
			parts[i] = ctx.selector + " " + strings.TrimSpace(p)
		}
		return ruleKey{at: ctx.at, selector: strings.Join(parts, ",")}
	}
}

// formatValue renders a scalar for property. ok is false for values that
// produce no declaration.
func formatValue(property string, v any) (string, bool) {
	switch x := v.(type) {
	case nil, bool:
		return "", false
	case string:
		return x, x != ""
	case int:
		return withUnit(property, strconv.Itoa(x), x == 0), true
	case int64:
		return withUnit(property, strconv.FormatInt(x, 10), x == 0), true
	case float64:
		return withUnit(property, strconv.FormatFloat(x, 'f', -1, 64), x == 0), true
	case float32:
		return withUnit(property, strconv.FormatFloat(float64(x), 'f', -1, 32), x == 0), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

func withUnit(property, number string, zero bool) string {
	if zero || isUnitless(property) {
		return number
	}
	return number + "px"
}

// Hyphenate converts a camel-case property name to CSS form:
// backgroundColor -> background-color, WebkitTransition ->
// -webkit-transition, msGridRow -> -ms-grid-row. Custom properties are
// returned unchanged.
func Hyphenate(property string) string {
	if isCustomProperty(property) {
		return property
	}
	var b strings.Builder
	b.Grow(len(property) + 4)
	if strings.HasPrefix(property, "ms") && len(property) > 2 && unicode.IsUpper(rune(property[2])) {
		b.WriteByte('-')
	}
	for _, r := range property {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isCustomProperty(property string) bool {
	return strings.HasPrefix(property, "--")
}

// labelPart keeps label text usable inside a class name.
func labelPart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte('-')
		}
	}
	return b.String()
}
