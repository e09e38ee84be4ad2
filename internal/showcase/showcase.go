// Package showcase builds the gallery page the vstyle CLI renders, builds
// and serves. It exercises every part of the element layer: the three
// dispatch namespaces, styled factories and their extensions, component
// factories, class merging and data attributes.
package showcase

import (
	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/dispatch"
	"github.com/vango-dev/vstyle/pkg/element"
	"github.com/vango-dev/vstyle/pkg/render"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Title is the gallery page title.
const Title = "vstyle gallery"

// Gallery holds the factories of one page, bound to one sheet.
type Gallery struct {
	html   *dispatch.Namespace
	svg    *dispatch.Namespace
	xml    *dispatch.Namespace
	styled *dispatch.StyledNamespace

	page    element.Factory
	card    element.Factory
	heading element.Factory
	button  element.Factory
	danger  element.Factory
	ghost   element.Factory
	icon    element.Factory
	badge   element.Factory
}

// New creates the gallery factories. Nothing is compiled until a node is
// created.
func New(sheet *style.Sheet) *Gallery {
	g := &Gallery{
		html: dispatch.NewNamespace(dispatch.DomainHTML, element.WithCompiler(sheet)),
		svg:  dispatch.NewNamespace(dispatch.DomainSVG, element.WithCompiler(sheet)),
		xml:  dispatch.NewNamespace(dispatch.DomainXML, element.WithCompiler(sheet)),
	}
	g.styled = dispatch.NewStyledNamespace(g.html)
	styledSVG := dispatch.NewStyledNamespace(g.svg)

	g.page = g.styled.Get("main")(style.Declarations{
		"label":      "page",
		"fontFamily": "system-ui, sans-serif",
		"maxWidth":   960,
		"margin":     "0 auto",
		"padding":    24,
		"lineHeight": 1.5,
	})

	g.icon = styledSVG.Get("svg")(style.Declarations{
		"label":         "icon",
		"width":         16,
		"height":        16,
		"verticalAlign": "middle",
		"fill":          "currentColor",
	})

	// The card styles icons inside it, so the icon selector is read lazily.
	g.card = g.styled.Get("section")(
		style.Declarations{
			"label":        "card",
			"padding":      16,
			"marginBottom": 16,
			"border":       "1px solid #d0d7de",
			"borderRadius": 8,
			"@media (max-width: 600px)": style.Declarations{
				"padding": 8,
			},
		},
		func() any {
			return style.Declarations{
				g.icon.Selector(): style.Declarations{"marginRight": 4},
			}
		},
	)

	g.heading = g.styled.Get("h2")(style.List{
		style.Decl("label", "heading"),
		style.Decl("margin", 0),
		style.Decl("marginBottom", 8),
		style.Decl("fontSize", "1.25rem"),
	})

	g.button = g.styled.Get("button")(style.Declarations{
		"label":        "button",
		"padding":      "6px 14px",
		"border":       "none",
		"borderRadius": 6,
		"background":   "#0969da",
		"color":        "#fff",
		"cursor":       "pointer",
		"&:hover":      style.Declarations{"opacity": 0.9},
		"&:disabled":   style.Declarations{"opacity": 0.5, "cursor": "not-allowed"},
	})
	g.danger = g.button.Extend(style.Declarations{"label": "danger", "background": "#cf222e"})
	g.ghost = g.button.Extend(style.Declarations{
		"label":      "ghost",
		"background": "transparent",
		"color":      "#0969da",
		"border":     "1px solid currentColor",
	})

	g.badge = element.StyledComponent(vdom.ComponentFunc(g.renderBadge), element.WithCompiler(sheet))(
		style.Declarations{
			"label":        "badge",
			"display":      "inline-block",
			"padding":      "0 6px",
			"borderRadius": 10,
			"fontSize":     12,
			"background":   "#ddf4ff",
		},
	)
	return g
}

// renderBadge receives the merged className and the routed children.
func (g *Gallery) renderBadge(p vdom.Props) *vdom.VNode {
	return g.html.Get("span").El(vdom.Props{
		"className": p["className"],
		"data":      map[string]any{"count": p["count"]},
	}, p["children"])
}

// Section returns a titled card. data becomes data-* attributes on the card;
// values that cannot be stringified fail with E001.
func (g *Gallery) Section(title string, data map[string]any, children ...any) (*vdom.VNode, error) {
	node, err := g.card.Create(vdom.Props{
		"class": []any{"section", nil},
		"data":  data,
	}, append([]any{g.heading.El(nil, title)}, children...)...)
	if err != nil {
		return nil, errors.FromError(err, "E001").
			WithDetail("section " + title)
	}
	return node, nil
}

func (g *Gallery) dot() *vdom.VNode {
	return g.icon.El(
		vdom.Props{"viewBox": "0 0 16 16", "aria-hidden": "true"},
		g.svg.Get("circle").El(vdom.Props{"cx": 8, "cy": 8, "r": 6}),
	)
}

// Body builds the gallery content.
func (g *Gallery) Body() (*vdom.VNode, error) {
	buttons, err := g.Section("Buttons", map[string]any{"variants": 3},
		g.button.El(nil, g.dot(), "Primary"),
		" ",
		g.danger.El(vdom.Props{"type": "button"}, "Delete"),
		" ",
		g.ghost.El(vdom.Props{"disabled": true}, "Disabled"),
	)
	if err != nil {
		return nil, err
	}

	classes, err := g.Section("Class merging", map[string]any{"mergeOrder": "className, class, styled"},
		g.button.El(vdom.Props{
			"class":     "legacy",
			"className": []string{"primary", "wide"},
		}, "Merged"),
		g.html.Get("P").El(nil, "className comes before class; the styled class is appended last."),
	)
	if err != nil {
		return nil, err
	}

	components, err := g.Section("Components", map[string]any{"kind": "component"},
		g.html.Get("p").El(nil, "Unread ", g.badge.El(vdom.Props{"count": 4}, "4")),
	)
	if err != nil {
		return nil, err
	}

	graphics, err := g.Section("Graphics", map[string]any{"namespace": "svg"},
		g.xml.Get("svg").El(vdom.Props{"viewBox": "0 0 40 20", "width": 80, "height": 40},
			g.xml.Get("rect").El(vdom.Props{"width": 18, "height": 18, "rx": 3, "fill": "#0969da"}),
			g.xml.Get("circle").El(vdom.Props{"cx": 30, "cy": 10, "r": 8, "fill": "#cf222e"}),
		),
		g.xml.Get("p").El(nil, "Names only SVG knows become SVG elements; the rest stay HTML."),
	)
	if err != nil {
		return nil, err
	}

	return g.page.Create(vdom.Props{"data": map[string]any{"gallery": true}},
		g.html.Get("h1").El(nil, Title),
		buttons,
		classes,
		components,
		graphics,
	)
}

// Page builds the gallery document, compiling its styles into sheet.
func Page(sheet *style.Sheet) (render.Document, error) {
	body, err := New(sheet).Body()
	if err != nil {
		return render.Document{}, errors.FromError(err, "E001")
	}
	return render.Document{
		Title: Title,
		Body:  body,
		Meta: []render.MetaTag{
			{Name: "description", Content: "Element factories and composable styles"},
		},
	}, nil
}
