package style

import "sync"

// Style is a lazily compiled link in a chain of style increments. Each link
// stores only its own increment and a reference to its base; nothing is
// evaluated until ClassName or Values is first called.
type Style struct {
	compiler  Compiler
	base      *Style
	increment []any

	once   sync.Once
	values []any
	class  ClassName
}

// New creates a root style compiled by c (Default() when c is nil).
func New(c Compiler, styles ...any) *Style {
	if c == nil {
		c = Default()
	}
	return &Style{compiler: c, increment: styles}
}

// Extend returns a new style layering styles on top of s. s is not modified
// and stays valid.
func (s *Style) Extend(styles ...any) *Style {
	return &Style{compiler: s.compiler, base: s, increment: styles}
}

// Compiler returns the compiler the style resolves with.
func (s *Style) Compiler() Compiler {
	return s.compiler
}

// Base returns the style s extends, or nil for a root style.
func (s *Style) Base() *Style {
	return s.base
}

func (s *Style) resolve() {
	s.once.Do(func() {
		own := evaluate(s.increment)
		if s.base != nil {
			base := s.base.Values()
			s.values = make([]any, 0, len(base)+len(own))
			s.values = append(s.values, base...)
			s.values = append(s.values, own...)
		} else {
			s.values = own
		}
		s.class = s.compiler.Compile(s.values...)
	})
}

// Values returns the evaluated interpolations of the whole chain, base
// first. Top-level lazy functions run once per link.
func (s *Style) Values() []any {
	s.resolve()
	return s.values
}

// ClassName returns the compiled class of the chain.
func (s *Style) ClassName() ClassName {
	s.resolve()
	return s.class
}

// Selector returns the class selector (".token").
func (s *Style) Selector() string {
	return s.ClassName().Selector()
}

// evaluate runs top-level and list-nested lazy functions.
func evaluate(in []any) []any {
	out := make([]any, 0, len(in))
	for _, v := range in {
		if fn, ok := thunk(v); ok {
			out = append(out, evaluate([]any{fn()})...)
			continue
		}
		if list, ok := v.([]any); ok {
			out = append(out, evaluate(list))
			continue
		}
		out = append(out, v)
	}
	return out
}
