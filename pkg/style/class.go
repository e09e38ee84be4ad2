package style

// ClassName is a compiled, interned class token.
type ClassName string

// String returns the token.
func (c ClassName) String() string {
	return string(c)
}

// Selector returns the class selector form (".token"), or "" for the empty
// class.
func (c ClassName) Selector() string {
	if c == "" {
		return ""
	}
	return "." + string(c)
}

// Compiler turns style interpolations into a class name. Implementations
// must be referentially transparent (equal input, equal token) and safe for
// concurrent use.
type Compiler interface {
	Compile(styles ...any) ClassName
}

// Declarations maps property names to values. Keys are compiled in sorted
// order; use List when the order within one block matters.
type Declarations map[string]any

// Declaration is a single property/value pair.
type Declaration struct {
	Property string
	Value    any
}

// Decl creates a Declaration.
func Decl(property string, value any) Declaration {
	return Declaration{Property: property, Value: value}
}

// List is an ordered set of declarations.
type List []Declaration
