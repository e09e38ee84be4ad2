package showcase

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/render"
	"github.com/vango-dev/vstyle/pkg/style"
)

func newSheet() *style.Sheet {
	return style.NewSheet(style.SheetConfig{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

// renderPage renders the gallery body and parses it back.
func renderPage(t *testing.T, sheet *style.Sheet) *html.Node {
	t.Helper()
	doc, err := Page(sheet)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(doc.Body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	root, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return root
}

// find returns the first element for which match holds.
func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func byText(tag, s string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag && strings.TrimSpace(text(n)) == s
	}
}

func TestPage(t *testing.T) {
	doc, err := Page(newSheet())
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if doc.Title != Title {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Body == nil {
		t.Fatal("Body is nil")
	}
	if doc.Sheet != nil {
		t.Error("Page should leave the sheet choice to the caller")
	}
}

func TestPage_ClassMerging(t *testing.T) {
	root := renderPage(t, newSheet())

	merged := find(root, byText("button", "Merged"))
	if merged == nil {
		t.Fatal("merged button not rendered")
	}
	classes := strings.Fields(attr(merged, "class"))
	if len(classes) != 4 {
		t.Fatalf("class = %q, want 4 tokens", attr(merged, "class"))
	}
	if got := strings.Join(classes[:3], " "); got != "primary wide legacy" {
		t.Errorf("caller classes = %q, want primary wide legacy", got)
	}
	if !strings.HasSuffix(classes[3], "-button") {
		t.Errorf("styled class %q should come last", classes[3])
	}
}

func TestPage_ExtendedButtons(t *testing.T) {
	sheet := newSheet()
	root := renderPage(t, sheet)

	primary := attr(find(root, byText("button", "Primary")), "class")
	danger := attr(find(root, byText("button", "Delete")), "class")
	ghost := attr(find(root, byText("button", "Disabled")), "class")

	if !strings.HasSuffix(danger, "-button-danger") || !strings.HasSuffix(ghost, "-button-ghost") {
		t.Errorf("extension labels missing: danger=%q ghost=%q", danger, ghost)
	}
	if primary == danger || danger == ghost {
		t.Error("extensions should compile to distinct classes")
	}

	tests := []struct {
		class, property, want string
	}{
		{primary, "background", "#0969da"},
		{danger, "background", "#cf222e"},
		{danger, "borderRadius", "6px"},
		{ghost, "background", "transparent"},
		{ghost, "cursor", "pointer"},
	}
	for _, tt := range tests {
		t.Run(tt.class+"/"+tt.property, func(t *testing.T) {
			got, ok := sheet.Resolve(style.ClassName(tt.class), tt.property)
			if !ok || got != tt.want {
				t.Errorf("Resolve = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}
}

func TestPage_DataAttributes(t *testing.T) {
	root := renderPage(t, newSheet())

	if find(root, func(n *html.Node) bool { return n.Data == "main" && attr(n, "data-gallery") == "true" }) == nil {
		t.Error("main should carry data-gallery")
	}
	section := find(root, func(n *html.Node) bool { return attr(n, "data-merge-order") != "" })
	if section == nil {
		t.Fatal("data-merge-order missing")
	}
	if got := attr(section, "data-merge-order"); got != "className, class, styled" {
		t.Errorf("data-merge-order = %q", got)
	}
	if !strings.HasPrefix(attr(section, "class"), "section ") {
		t.Errorf("section class = %q", attr(section, "class"))
	}
}

func TestPage_ComponentBadge(t *testing.T) {
	root := renderPage(t, newSheet())

	badge := find(root, func(n *html.Node) bool { return n.Data == "span" && attr(n, "data-count") == "4" })
	if badge == nil {
		t.Fatal("badge not rendered")
	}
	if !strings.HasSuffix(attr(badge, "class"), "-badge") {
		t.Errorf("badge class = %q", attr(badge, "class"))
	}
	if text(badge) != "4" {
		t.Errorf("badge text = %q", text(badge))
	}
}

func TestPage_Graphics(t *testing.T) {
	doc, err := Page(newSheet())
	if err != nil {
		t.Fatal(err)
	}
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(doc.Body)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" height="40" viewBox="0 0 40 20" width="80">`,
		`<circle cx="30" cy="10" fill="#cf222e" r="8"/>`,
		`<p>Names only SVG knows`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPage_IconSelectorNested(t *testing.T) {
	sheet := newSheet()
	g := New(sheet)
	if _, err := g.Body(); err != nil {
		t.Fatal(err)
	}

	card, ok := sheet.Rule(g.card.ClassName())
	if !ok {
		t.Fatal("card rule missing")
	}
	want := g.card.Selector() + " " + g.icon.Selector() + "{margin-right:4px;}"
	if !strings.Contains(card.CSS, want) {
		t.Errorf("card CSS = %q, want it to contain %q", card.CSS, want)
	}
}

func TestPage_Deterministic(t *testing.T) {
	a, b := newSheet(), newSheet()
	renderPage(t, a)
	renderPage(t, b)
	if a.CSS() != b.CSS() {
		t.Error("two sheets compiled from the same page differ")
	}
	if a.Len() < 8 {
		t.Errorf("sheet has %d rules, want every styled factory compiled", a.Len())
	}
}

func TestSection_DataError(t *testing.T) {
	g := New(newSheet())
	_, err := g.Section("Broken", map[string]any{"bad": make(chan int)})
	if !errors.HasCode(err, "E001") {
		t.Errorf("Section() error = %v, want E001", err)
	}
}
