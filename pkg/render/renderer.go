package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML. A Renderer holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter writes a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.RenderContext(context.Background(), w, node)
}

// RenderContext writes a VNode tree to w. ctx is passed to embedded
// renderers such as templ components.
func (r *Renderer) RenderContext(ctx context.Context, w io.Writer, node *vdom.VNode) error {
	return r.renderNode(ctx, w, node, 0, false)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(ctx context.Context, w io.Writer, node *vdom.VNode, depth int, inSVG bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(ctx, w, node, depth, inSVG)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderChildren(ctx, w, node.Children, depth, inSVG)
	case vdom.KindComponent:
		return r.renderNode(ctx, w, node.Expand(), depth, inSVG)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindEmbed:
		if node.Embed == nil {
			return nil
		}
		return node.Embed.Render(ctx, w)
	default:
		return errors.New("E161").WithDetail(fmt.Sprintf("node kind %d", node.Kind))
	}
}

func (r *Renderer) renderChildren(ctx context.Context, w io.Writer, children []*vdom.VNode, depth int, inSVG bool) error {
	for _, child := range children {
		if err := r.renderNode(ctx, w, child, depth, inSVG); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(ctx context.Context, w io.Writer, node *vdom.VNode, depth int, inSVG bool) error {
	tag := node.Tag
	if !validTag(tag) {
		return errors.New("E160").WithDetail(fmt.Sprintf("tag %q cannot be written as HTML", tag))
	}
	svg := node.NS == vdom.NamespaceSVG || inSVG

	// Indentation (if pretty printing)
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if svg && !inSVG && tag == "svg" && !node.Props.Has("xmlns") {
		if _, err := fmt.Fprintf(w, ` xmlns="%s"`, vdom.NamespaceSVG.URI()); err != nil {
			return err
		}
	}
	if err := r.renderAttributes(w, node, svg); err != nil {
		return err
	}

	rawHTML, hasRaw := node.Props["dangerouslySetInnerHTML"].(string)

	// Void elements and empty SVG elements have no closing tag
	if !svg && isVoidElement(tag) || svg && len(node.Children) == 0 && !hasRaw {
		end := ">"
		if svg {
			end = "/>"
		}
		if _, err := io.WriteString(w, end); err != nil {
			return err
		}
		r.newline(w)
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if hasRaw {
		if _, err := io.WriteString(w, rawHTML); err != nil {
			return err
		}
	} else {
		// Newline after opening tag if has children and pretty printing
		hasBlockChildren := !isInlineElement(tag) && hasElementChild(node)
		if hasBlockChildren {
			r.newline(w)
		}

		if err := r.renderChildren(ctx, w, node.Children, depth+1, svg); err != nil {
			return err
		}

		// Closing tag indentation
		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind != vdom.KindText && c.Kind != vdom.KindRaw {
			return true
		}
	}
	return false
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	_, err := io.WriteString(w, escapeHTML(node.Text))
	return err
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode, svg bool) error {
	if node.Props == nil {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		// Skip internal props
		if strings.HasPrefix(key, "_") || value == nil {
			continue
		}

		// Handle special attributes
		switch key {
		case "className":
			key = "class"
		case "htmlFor":
			key = "for"
		case "dangerouslySetInnerHTML", "key", "ref", "children":
			continue
		}
		if !validAttrName(key) || isFunc(value) {
			continue
		}

		// Boolean attributes
		if !svg && isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" && key == "class" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue)); err != nil {
			return err
		}
	}

	return nil
}

// isFunc reports whether value is a function, which has no HTML form.
func isFunc(value any) bool {
	return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, " ")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
