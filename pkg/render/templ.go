package render

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Templ wraps node as a templ.Component so it can be used inside templ
// templates:
//
//	@render.Templ(card.El(vdom.Props{"class": "wide"}, "Hi"))
func Templ(node *vdom.VNode) templ.Component {
	return TemplWith(NewRenderer(RendererConfig{}), node)
}

// TemplWith is Templ with a custom renderer.
func TemplWith(r *Renderer, node *vdom.VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.RenderContext(ctx, w, node)
	})
}

// Write renders node as an HTML response.
func Write(w http.ResponseWriter, req *http.Request, node *vdom.VNode) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return Templ(node).Render(req.Context(), w)
}
