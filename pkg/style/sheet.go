package style

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultPrefix is the class name prefix used when SheetConfig.Prefix is
// empty.
const DefaultPrefix = "css"

// Observer receives one call per Compile. inserted is false when the class
// was already in the sheet.
type Observer interface {
	ObserveCompile(class ClassName, inserted bool, elapsed time.Duration)
}

// SheetConfig configures a Sheet.
type SheetConfig struct {
	// Prefix is prepended to every generated class (default: "css").
	Prefix string

	// Logger receives debug records for rule insertions.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Observer is notified of every compilation (optional).
	Observer Observer
}

// Rule is the stylesheet text generated for one class.
type Rule struct {
	Class ClassName
	CSS   string
}

type sheetEntry struct {
	rule  Rule
	style *compiled
}

// Sheet compiles styles into class names and keeps one rule set per class.
// It is safe for concurrent use.
type Sheet struct {
	prefix   string
	logger   *slog.Logger
	observer Observer

	mu      sync.RWMutex
	entries map[ClassName]*sheetEntry
	order   []ClassName
	subs    map[int]func(Rule)
	nextSub int
}

// NewSheet creates an empty Sheet.
func NewSheet(cfg SheetConfig) *Sheet {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Sheet{
		prefix:   cfg.Prefix,
		logger:   cfg.Logger,
		observer: cfg.Observer,
		entries:  make(map[ClassName]*sheetEntry),
		subs:     make(map[int]func(Rule)),
	}
}

var defaultSheet = NewSheet(SheetConfig{})

// Default returns the process-wide sheet used when no compiler is given.
func Default() *Sheet {
	return defaultSheet
}

// Prefix returns the class name prefix.
func (s *Sheet) Prefix() string {
	return s.prefix
}

// Compile implements Compiler. The returned class is registered in the sheet
// together with its rules; compiling equal input again is a lookup.
func (s *Sheet) Compile(styles ...any) ClassName {
	start := time.Now()

	b := &builder{out: newCompiled(), lookup: s.lookup, skip: s.skip}
	for _, v := range styles {
		b.add(rootKey, v)
	}
	class := s.className(b.out)

	s.mu.Lock()
	if _, ok := s.entries[class]; ok {
		s.mu.Unlock()
		s.observe(class, false, start)
		return class
	}
	rule := Rule{Class: class, CSS: b.out.render(class)}
	s.entries[class] = &sheetEntry{rule: rule, style: b.out}
	s.order = append(s.order, class)
	subs := make([]func(Rule), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.logger.Debug("style rule inserted", "class", string(class), "bytes", len(rule.CSS))
	for _, fn := range subs {
		fn(rule)
	}
	s.observe(class, true, start)
	return class
}

func (s *Sheet) observe(class ClassName, inserted bool, start time.Time) {
	if s.observer != nil {
		s.observer.ObserveCompile(class, inserted, time.Since(start))
	}
}

// className derives the interned token from the class-independent template.
func (s *Sheet) className(c *compiled) ClassName {
	hash := strconv.FormatUint(xxhash.Sum64String(c.template()), 36)
	name := s.prefix + "-" + hash
	if len(c.labels) > 0 {
		name += "-" + strings.Join(c.labels, "-")
	}
	return ClassName(name)
}

func (s *Sheet) skip(v any) {
	s.logger.Debug("style interpolation skipped unsupported type", "type", fmt.Sprintf("%T", v))
}

func (s *Sheet) lookup(class ClassName) (*compiled, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[class]
	if !ok {
		s.logger.Debug("style composition skipped unknown class", "class", string(class))
		return nil, false
	}
	return e.style, true
}

// Has reports whether class was compiled by this sheet.
func (s *Sheet) Has(class ClassName) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[class]
	return ok
}

// Len returns the number of classes in the sheet.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Rules returns the rules in insertion order.
func (s *Sheet) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]Rule, 0, len(s.order))
	for _, class := range s.order {
		rules = append(rules, s.entries[class].rule)
	}
	return rules
}

// Rule returns the rule generated for class.
func (s *Sheet) Rule(class ClassName) (Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[class]
	if !ok {
		return Rule{}, false
	}
	return e.rule, true
}

// CSS returns the whole stylesheet, one class per line, in insertion order.
func (s *Sheet) CSS() string {
	var b strings.Builder
	for _, rule := range s.Rules() {
		b.WriteString(rule.CSS)
		b.WriteByte('\n')
	}
	return b.String()
}

// Resolve returns the value property resolves to in the top-level block of
// class (no selector suffix, no at-rule). property may be given in camel
// case.
func (s *Sheet) Resolve(class ClassName, property string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[class]
	if !ok {
		return "", false
	}
	return e.style.index[rootKey].lookup(Hyphenate(property))
}

// Subscribe registers fn to be called with every rule inserted from now on.
// fn runs on the compiling goroutine, outside the sheet lock. The returned
// function removes the subscription.
func (s *Sheet) Subscribe(fn func(Rule)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
