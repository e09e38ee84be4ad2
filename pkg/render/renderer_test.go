package render

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/element"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

func el(tag string, p vdom.Props, children ...any) *vdom.VNode {
	return element.New(tag).El(p, children...)
}

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNormalizedElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := el("div", vdom.Props{
		"class": "box",
		"data":  map[string]any{"active": true},
	}, "Hi")
	html, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="box" data-active="true">Hi</div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderStyledClassOrder(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	button := element.Styled("button", element.WithCompiler(sheet))(style.Declarations{"padding": 4})

	html, err := NewRenderer(RendererConfig{}).RenderToString(button.El(vdom.Props{"className": "a", "class": "b"}, "Go"))
	if err != nil {
		t.Fatal(err)
	}

	nodes := parseFragment(t, html)
	if len(nodes) != 1 || nodes[0].Data != "button" {
		t.Fatalf("parsed %d nodes", len(nodes))
	}
	class, _ := attr(nodes[0], "class")
	if class != "a b "+string(button.ClassName()) {
		t.Errorf("class = %q", class)
	}
}

func TestRenderVoidElements(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"input", el("input", vdom.Props{"type": "text", "name": "email"}), `<input name="email" type="text">`},
		{"br", el("br", nil), `<br>`},
		{"img", el("img", vdom.Props{"src": "/a.png", "alt": ""}), `<img alt="" src="/a.png">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.CreateElement("label", vdom.Props{
		"htmlFor":  "name",
		"hidden":   false,
		"disabled": true,
		"key":      "k1",
		"ref":      new(int),
		"onClick":  func() {},
		"title":    `say "hi"`,
		"tabindex": 2,
		"_private": "x",
		"nil":      nil,
		"bad name": "x",
	})
	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `<label disabled for="name" tabindex="2" title="say &quot;hi&quot;"></label>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSVG(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	svg := element.New("svg", element.WithNamespace(vdom.NamespaceSVG))
	circle := element.New("circle", element.WithNamespace(vdom.NamespaceSVG))
	node := svg.El(vdom.Props{"viewBox": "0 0 10 10"}, circle.El(vdom.Props{"r": 4}))

	got, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><circle r="4"/></svg>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderInvalidTag(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	for _, tag := range []string{"", "bad tag", "x><script", "1h"} {
		_, err := renderer.RenderToString(vdom.CreateElement(tag, nil))
		if !errors.HasCode(err, "E160") {
			t.Errorf("tag %q: error = %v, want E160", tag, err)
		}
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})
	if !errors.HasCode(err, "E161") {
		t.Errorf("error = %v, want E161", err)
	}
}

func TestRenderComponent(t *testing.T) {
	greet := vdom.ComponentFunc(func(p vdom.Props) *vdom.VNode {
		return el("p", vdom.Props{"class": p["class"]}, "Hello ", p["name"], p["children"])
	})
	node := element.NewComponent(greet).El(vdom.Props{"name": "Ada", "class": "lead"}, "!")

	got, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<p class="lead">Hello Ada!</p>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderFragmentAndRaw(t *testing.T) {
	node := vdom.Fragment(el("b", nil, "x"), vdom.Raw("<hr>"), "y")
	got, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<b>x</b><hr>y" {
		t.Errorf("got %q", got)
	}
}

func TestRenderEmbeddedTempl(t *testing.T) {
	badge := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<em>new</em>`)
		return err
	})
	node := el("span", nil, "Inbox ", badge)

	got, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<span>Inbox <em>new</em></span>" {
		t.Errorf("got %q", got)
	}
}

func TestTemplAdapter(t *testing.T) {
	var buf bytes.Buffer
	if err := Templ(el("i", nil, "x")).Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<i>x</i>" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if err := Write(rec, req, el("p", nil, "ok")); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "<p>ok</p>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	got, err := renderer.RenderToString(el("ul", nil, el("li", nil, "a")))
	if err != nil {
		t.Fatal(err)
	}
	if got != "<ul>\n  <li>a</li>\n</ul>\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderDocument(t *testing.T) {
	sheet := style.NewSheet(style.SheetConfig{})
	card := element.Styled("section", element.WithCompiler(sheet))(style.Declarations{"padding": 16})

	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderDocument(&buf, Document{
		Title:       "Gallery & more",
		Body:        card.El(nil, "content"),
		Sheet:       sheet,
		StyleSheets: []string{"/base.css"},
		Meta:        []MetaTag{{Name: "description", Content: "demo"}},
		LiveStyles:  "/_vstyle/live",
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>\n<html lang=\"en\">") {
		t.Errorf("unexpected prologue: %q", out[:40])
	}

	doc := parseDocument(t, out)
	if title := findElement(doc, "title"); title == nil || textContent(title) != "Gallery & more" {
		t.Error("title missing or wrong")
	}
	styleEl := findElement(doc, "style")
	if styleEl == nil {
		t.Fatal("inlined sheet missing")
	}
	if id, _ := attr(styleEl, "id"); id != SheetElementID {
		t.Errorf("style id = %q", id)
	}
	if !strings.Contains(textContent(styleEl), card.Selector()+"{padding:16px;}") {
		t.Errorf("sheet text = %q", textContent(styleEl))
	}
	section := findElement(doc, "section")
	if class, _ := attr(section, "class"); class != string(card.ClassName()) {
		t.Errorf("section class = %q", class)
	}
	script := findElement(doc, "script")
	if script == nil || !strings.Contains(textContent(script), "/_vstyle/live") {
		t.Error("live styles script missing")
	}
}

func TestRenderDocumentNilBody(t *testing.T) {
	err := NewRenderer(RendererConfig{}).RenderDocument(io.Discard, Document{})
	if !errors.HasCode(err, "E002") {
		t.Errorf("error = %v, want E002", err)
	}
}
