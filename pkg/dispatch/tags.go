package dispatch

// htmlTags lists the elements of the HTML living standard, including the
// obsolete ones browsers still parse.
var htmlTags = []string{
	"a", "abbr", "acronym", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "big", "blockquote", "body", "br", "button",
	"canvas", "caption", "center", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "dir", "div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "font", "footer", "form", "frame", "frameset",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "marquee", "menu", "meta", "meter",
	"nav", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "pre", "progress",
	"q",
	"rp", "rt", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot", "small", "source",
	"span", "strike", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time",
	"title", "tr", "track", "tt",
	"u", "ul",
	"var", "video",
	"wbr",
}

// svgTags lists SVG 1.1 and SVG 2 elements in their canonical case.
var svgTags = []string{
	"a", "altGlyph", "altGlyphDef", "altGlyphItem", "animate", "animateColor",
	"animateMotion", "animateTransform",
	"circle", "clipPath", "color-profile", "cursor",
	"defs", "desc", "discard",
	"ellipse",
	"feBlend", "feColorMatrix", "feComponentTransfer", "feComposite",
	"feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap",
	"feDistantLight", "feDropShadow", "feFlood", "feFuncA", "feFuncB",
	"feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMerge",
	"feMergeNode", "feMorphology", "feOffset", "fePointLight",
	"feSpecularLighting", "feSpotLight", "feTile", "feTurbulence",
	"filter", "font", "font-face", "font-face-format", "font-face-name",
	"font-face-src", "font-face-uri", "foreignObject",
	"g", "glyph", "glyphRef",
	"hkern",
	"image",
	"line", "linearGradient",
	"marker", "mask", "metadata", "missing-glyph", "mpath",
	"path", "pattern", "polygon", "polyline",
	"radialGradient", "rect",
	"script", "set", "stop", "style", "svg", "switch", "symbol",
	"text", "textPath", "title", "tref", "tspan",
	"use",
	"view", "vkern",
}

var (
	htmlSet = toSet(htmlTags)
	svgSet  = toSet(svgTags)
)

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

// IsHTMLTag reports whether name is a known HTML element (lower case).
func IsHTMLTag(name string) bool {
	return htmlSet[name]
}

// IsSVGTag reports whether name is a known SVG element (canonical case).
func IsSVGTag(name string) bool {
	return svgSet[name]
}

// validName reports whether name can be used as an element tag:
// a letter followed by letters, digits, '-', '_', '.' or ':'.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i == 0:
			return false
		case c >= '0' && c <= '9', c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
