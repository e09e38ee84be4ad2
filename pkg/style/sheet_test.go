package style

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestCompileDeterministic(t *testing.T) {
	a := NewSheet(SheetConfig{})
	b := NewSheet(SheetConfig{})

	decls := Declarations{"color": "red", "padding": 4}
	c1 := a.Compile(decls)
	c2 := a.Compile(Declarations{"padding": 4, "color": "red"})
	c3 := b.Compile(decls)

	if c1 != c2 || c1 != c3 {
		t.Errorf("equal input should yield equal class: %q %q %q", c1, c2, c3)
	}
	if !strings.HasPrefix(string(c1), "css-") {
		t.Errorf("class %q should use the default prefix", c1)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestCompileDistinct(t *testing.T) {
	s := NewSheet(SheetConfig{})
	red := s.Compile(Declarations{"color": "red"})
	blue := s.Compile(Declarations{"color": "blue"})
	if red == blue {
		t.Fatal("different declarations should yield different classes")
	}
}

func TestCompileCSS(t *testing.T) {
	s := NewSheet(SheetConfig{Prefix: "x"})
	class := s.Compile(Declarations{
		"backgroundColor":  "rebeccapurple",
		"padding":          8,
		"lineHeight":       1.5,
		"margin":           0,
		"--gap":            4,
		"WebkitTransition": "opacity 1s",
		"hidden":           nil,
	})

	rule, ok := s.Rule(class)
	if !ok {
		t.Fatalf("rule for %q not found", class)
	}
	want := class.Selector() + "{" +
		"--gap:4;" +
		"-webkit-transition:opacity 1s;" +
		"background-color:rebeccapurple;" +
		"line-height:1.5;" +
		"margin:0;" +
		"padding:8px;}"
	if rule.CSS != want {
		t.Errorf("CSS =\n %s\nwant\n %s", rule.CSS, want)
	}
}

func TestCompileNested(t *testing.T) {
	s := NewSheet(SheetConfig{})
	class := s.Compile(Declarations{
		"color":  "black",
		":hover": Declarations{"color": "red"},
		"& > li": Declarations{"margin": 2},
		"span":   Declarations{"fontWeight": 700},
		"@media (min-width: 600px)": Declarations{
			"padding": 16,
			":focus":  Declarations{"outline": "none"},
		},
	})

	css := s.CSS()
	sel := class.Selector()
	for _, want := range []string{
		sel + "{color:black;}",
		sel + ":hover{color:red;}",
		sel + " > li{margin:2px;}",
		sel + " span{font-weight:700;}",
		"@media (min-width: 600px){" + sel + "{padding:16px;}}",
		"@media (min-width: 600px){" + sel + ":focus{outline:none;}}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q in:\n%s", want, css)
		}
	}
	if !strings.HasPrefix(css, sel+"{color:black;}") {
		t.Errorf("top-level block should come first:\n%s", css)
	}
}

func TestCompileListOrderAndOverride(t *testing.T) {
	s := NewSheet(SheetConfig{})
	class := s.Compile(
		List{Decl("margin", 4), Decl("marginTop", 0)},
		Declarations{"color": "red"},
		"color: blue; border: 1px solid",
	)

	rule, _ := s.Rule(class)
	want := class.Selector() + "{margin:4px;margin-top:0;color:blue;border:1px solid;}"
	if rule.CSS != want {
		t.Errorf("CSS = %s, want %s", rule.CSS, want)
	}
	if v, _ := s.Resolve(class, "color"); v != "blue" {
		t.Errorf("Resolve(color) = %q, want blue", v)
	}
	if v, _ := s.Resolve(class, "marginTop"); v != "0" {
		t.Errorf("Resolve(marginTop) = %q, want 0", v)
	}
}

func TestCompileFallbackValues(t *testing.T) {
	s := NewSheet(SheetConfig{})
	class := s.Compile(Declarations{"display": []any{"-webkit-box", "flex"}})
	rule, _ := s.Rule(class)
	if !strings.Contains(rule.CSS, "display:-webkit-box;display:flex;") {
		t.Errorf("fallback values not kept in order: %s", rule.CSS)
	}
}

func TestCompileLabel(t *testing.T) {
	s := NewSheet(SheetConfig{})
	class := s.Compile(Declarations{"label": "primary button", "color": "red"})
	if !strings.HasSuffix(string(class), "-primary-button") {
		t.Errorf("class %q should carry the label", class)
	}
	rule, _ := s.Rule(class)
	if strings.Contains(rule.CSS, "label") {
		t.Errorf("label should not be emitted as a declaration: %s", rule.CSS)
	}
}

func TestCompileComposition(t *testing.T) {
	s := NewSheet(SheetConfig{})
	base := s.Compile(Declarations{"color": "red", "padding": 2})
	composed := s.Compile(base, Declarations{"color": "blue"})

	if v, _ := s.Resolve(composed, "color"); v != "blue" {
		t.Errorf("color = %q, want blue", v)
	}
	if v, _ := s.Resolve(composed, "padding"); v != "2px" {
		t.Errorf("padding = %q, want 2px", v)
	}
	if v, _ := s.Resolve(base, "color"); v != "red" {
		t.Errorf("base color = %q, want red (composition must not mutate)", v)
	}

	unknown := s.Compile(ClassName("css-nope"), Declarations{"color": "blue"})
	if v, _ := s.Resolve(unknown, "color"); v != "blue" {
		t.Errorf("unknown class composition should be skipped, color = %q", v)
	}
}

func TestCompileLazyFunction(t *testing.T) {
	s := NewSheet(SheetConfig{})
	calls := 0
	class := s.Compile(func() any {
		calls++
		return Declarations{"color": "green"}
	})
	if calls != 1 {
		t.Errorf("lazy function called %d times, want 1", calls)
	}
	if v, _ := s.Resolve(class, "color"); v != "green" {
		t.Errorf("color = %q, want green", v)
	}
}

type accent string

func TestCompileTypedLazyFunctions(t *testing.T) {
	tests := []struct {
		name  string
		style any
	}{
		{"declarations", func() Declarations { return Declarations{"color": "red"} }},
		{"list", func() List { return List{Decl("color", "red")} }},
		{"raw text", func() string { return "color: red" }},
		{"string map", func() map[string]string { return map[string]string{"color": "red"} }},
		{"nested", func() func() Declarations {
			return func() Declarations { return Declarations{"color": "red"} }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSheet(SheetConfig{})
			class := s.Compile(tt.style)
			if v, ok := s.Resolve(class, "color"); !ok || v != "red" {
				t.Errorf("color = %q, %v; want red", v, ok)
			}
		})
	}
}

func TestCompileStringMaps(t *testing.T) {
	s := NewSheet(SheetConfig{})
	class := s.Compile(Declarations{
		"color":  "black",
		":hover": map[string]string{"color": "red"},
	})
	sel := class.Selector()
	if css := s.CSS(); !strings.Contains(css, sel+":hover{color:red;}") {
		t.Errorf("CSS missing hover block:\n%s", css)
	}
	if v, _ := s.Resolve(s.Compile(map[string]string{"margin": "0"}), "margin"); v != "0" {
		t.Errorf("margin = %q, want 0", v)
	}
}

func TestCompileLogsUnsupported(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSheet(SheetConfig{Logger: logger})

	class := s.Compile(Declarations{"color": "red"}, accent("blue"), 42, func(int) string { return "" })
	if v, _ := s.Resolve(class, "color"); v != "red" {
		t.Errorf("color = %q, want red", v)
	}
	out := logs.String()
	for _, typ := range []string{"style.accent", "type=int", "func(int) string"} {
		if !strings.Contains(out, typ) {
			t.Errorf("log missing skipped %s:\n%s", typ, out)
		}
	}
}

func TestSubscribe(t *testing.T) {
	s := NewSheet(SheetConfig{})
	var got []Rule
	cancel := s.Subscribe(func(r Rule) { got = append(got, r) })

	c := s.Compile(Declarations{"color": "red"})
	s.Compile(Declarations{"color": "red"})
	cancel()
	s.Compile(Declarations{"color": "blue"})

	if len(got) != 1 || got[0].Class != c {
		t.Errorf("subscriber saw %v, want one insertion of %q", got, c)
	}
}

type recordingObserver struct {
	mu       sync.Mutex
	inserted int
	hits     int
}

func (o *recordingObserver) ObserveCompile(class ClassName, inserted bool, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if inserted {
		o.inserted++
	} else {
		o.hits++
	}
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSheet(SheetConfig{Observer: obs})
	s.Compile(Declarations{"color": "red"})
	s.Compile(Declarations{"color": "red"})
	if obs.inserted != 1 || obs.hits != 1 {
		t.Errorf("observer inserted=%d hits=%d, want 1/1", obs.inserted, obs.hits)
	}
}

func TestCompileConcurrent(t *testing.T) {
	s := NewSheet(SheetConfig{})
	var wg sync.WaitGroup
	classes := make([]ClassName, 32)
	for i := range classes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			classes[i] = s.Compile(Declarations{"color": fmt.Sprintf("#%d", i%4)})
		}(i)
	}
	wg.Wait()

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	for i, c := range classes {
		if c != classes[i%4] {
			t.Errorf("class %d = %q, want %q", i, c, classes[i%4])
		}
	}
}

func TestHyphenate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"WebkitTransition", "-webkit-transition"},
		{"MozAppearance", "-moz-appearance"},
		{"msGridRow", "-ms-grid-row"},
		{"msg", "msg"},
		{"--brand-Color", "--brand-Color"},
		{"border-top", "border-top"},
	}
	for _, tt := range tests {
		if got := Hyphenate(tt.in); got != tt.want {
			t.Errorf("Hyphenate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassNameSelector(t *testing.T) {
	if ClassName("").Selector() != "" {
		t.Error("empty class should have no selector")
	}
	if ClassName("css-a").Selector() != ".css-a" {
		t.Error("selector should be prefixed with a dot")
	}
}
