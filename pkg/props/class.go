package props

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vstyle/pkg/vdom"
)

// ClassTokens returns the whitespace separated tokens of a class value in
// order. Accepted values: string, []string, []any (string or nil entries),
// []*string, and nil. Empty tokens are dropped.
func ClassTokens(v any) []string {
	var tokens []string
	appendClassTokens(&tokens, v)
	return tokens
}

func appendClassTokens(dst *[]string, v any) {
	switch c := v.(type) {
	case nil:
	case string:
		*dst = append(*dst, strings.Fields(c)...)
	case []string:
		for _, s := range c {
			*dst = append(*dst, strings.Fields(s)...)
		}
	case []*string:
		for _, s := range c {
			if s != nil {
				*dst = append(*dst, strings.Fields(*s)...)
			}
		}
	case []any:
		for _, item := range c {
			appendClassTokens(dst, item)
		}
	case fmt.Stringer:
		*dst = append(*dst, strings.Fields(c.String())...)
	}
}

// JoinClasses merges class values in order into one space separated string.
func JoinClasses(values ...any) string {
	var tokens []string
	for _, v := range values {
		appendClassTokens(&tokens, v)
	}
	return strings.Join(tokens, " ")
}

// MergeClassNames folds "class" into "className" in place: className tokens
// first, then class tokens. "class" is always removed, even when empty, and
// "className" is removed when nothing remains. p must be owned by the caller
// of this function (Route returns a fresh bag).
func MergeClassNames(p vdom.Props) {
	className, hasClassName := p[KeyClassName]
	class, hasClass := p[KeyClass]
	if !hasClassName && !hasClass {
		return
	}
	delete(p, KeyClass)

	merged := JoinClasses(className, class)
	if merged == "" {
		delete(p, KeyClassName)
		return
	}
	p[KeyClassName] = merged
}
