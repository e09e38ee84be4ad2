package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/style"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Document contains all data needed to render a complete HTML page.
type Document struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified
	Lang string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// Links contains link tags (favicon, preloads, etc.)
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Sheet, when set, is inlined into a <style> element after the body
	// has been rendered, so rules compiled during rendering are included.
	Sheet *style.Sheet

	// Styles contains additional inline CSS
	Styles []string

	// Scripts contains script tags appended to the body
	Scripts []ScriptTag

	// LiveStyles is the WebSocket path of a live style stream. When set,
	// a client script appends streamed rules to the inlined sheet.
	LiveStyles string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string // rel attribute
	Href string // href attribute
	Type string // type attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Module bool   // type="module"
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// SheetElementID is the id of the <style> element holding the inlined sheet.
const SheetElementID = "vstyle-sheet"

// RenderDocument renders a complete HTML document to w. The body is rendered
// first so that the inlined sheet covers every class it compiled.
func (r *Renderer) RenderDocument(w io.Writer, doc Document) error {
	if doc.Body == nil {
		return errors.New("E002").WithDetail("document body is nil")
	}

	body, err := r.RenderToString(doc.Body)
	if err != nil {
		return err
	}

	lang := doc.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, doc); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<body>\n"+body+"\n"); err != nil {
		return err
	}
	for _, script := range doc.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}
	if doc.LiveStyles != "" {
		if _, err := fmt.Fprintf(w, "  <script>%s</script>\n", liveStylesScript(doc.LiveStyles)); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, "<head>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if doc.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(doc.Title)); err != nil {
			return err
		}
	}

	for _, meta := range doc.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, link := range doc.Links {
		if err := renderLinkTag(w, link); err != nil {
			return err
		}
	}

	for _, href := range doc.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	if doc.Sheet != nil {
		if _, err := fmt.Fprintf(w, "  <style id=\"%s\">\n%s  </style>\n", SheetElementID, escapeStyleText(doc.Sheet.CSS())); err != nil {
			return err
		}
	}

	for _, css := range doc.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", escapeStyleText(css)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}
	for _, attr := range [][2]string{
		{"name", meta.Name},
		{"property", meta.Property},
		{"content", meta.Content},
	} {
		if attr[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr[0], escapeAttr(attr[1])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

// renderLinkTag renders a link element.
func renderLinkTag(w io.Writer, link LinkTag) error {
	if _, err := io.WriteString(w, "  <link"); err != nil {
		return err
	}
	for _, attr := range [][2]string{
		{"rel", link.Rel},
		{"href", link.Href},
		{"type", link.Type},
	} {
		if attr[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr[0], escapeAttr(attr[1])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

// renderScriptTag renders a script element.
func renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "  <script"); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Module {
		if _, err := io.WriteString(w, ` type="module"`); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, ">%s</script>\n", script.Inline); err != nil {
		return err
	}
	return nil
}

// liveStylesScript returns the client that appends streamed rules to the
// inlined sheet. The stream is asked for JSON frames.
func liveStylesScript(path string) string {
	return fmt.Sprintf(`(function(){var s=document.getElementById(%q);`+
		`var p=location.protocol==="https:"?"wss://":"ws://";`+
		`var ws=new WebSocket(p+location.host+%q+"?format=json");`+
		`ws.onmessage=function(e){var f=JSON.parse(e.data);(f.rules||[]).forEach(function(r){`+
		`if(!document.querySelector('style[data-vstyle="'+r.class+'"]')){var el=document.createElement("style");`+
		`el.setAttribute("data-vstyle",r.class);el.textContent=r.css;s.parentNode.insertBefore(el,s.nextSibling);}});};})();`,
		SheetElementID, path)
}
