// This file defines element constructors for the el package.

package el

import "github.com/vango-dev/vstyle/pkg/dispatch"

var (
	html = dispatch.NewNamespace(dispatch.DomainHTML)
	svg  = dispatch.NewNamespace(dispatch.DomainSVG)
)

// A creates a <a> element.
func A(arg any, children ...any) *VNode { return html.Get("a").El(arg, children...) }

// Abbr creates a <abbr> element.
func Abbr(arg any, children ...any) *VNode { return html.Get("abbr").El(arg, children...) }

// Address creates a <address> element.
func Address(arg any, children ...any) *VNode { return html.Get("address").El(arg, children...) }

// Article creates a <article> element.
func Article(arg any, children ...any) *VNode { return html.Get("article").El(arg, children...) }

// Aside creates a <aside> element.
func Aside(arg any, children ...any) *VNode { return html.Get("aside").El(arg, children...) }

// Audio creates a <audio> element.
func Audio(arg any, children ...any) *VNode { return html.Get("audio").El(arg, children...) }

// B creates a <b> element.
func B(arg any, children ...any) *VNode { return html.Get("b").El(arg, children...) }

// Base creates a <base> element.
func Base(arg any, children ...any) *VNode { return html.Get("base").El(arg, children...) }

// Bdi creates a <bdi> element.
func Bdi(arg any, children ...any) *VNode { return html.Get("bdi").El(arg, children...) }

// Bdo creates a <bdo> element.
func Bdo(arg any, children ...any) *VNode { return html.Get("bdo").El(arg, children...) }

// Blockquote creates a <blockquote> element.
func Blockquote(arg any, children ...any) *VNode { return html.Get("blockquote").El(arg, children...) }

// Body creates a <body> element.
func Body(arg any, children ...any) *VNode { return html.Get("body").El(arg, children...) }

// Br creates a <br> element.
func Br(arg any, children ...any) *VNode { return html.Get("br").El(arg, children...) }

// Button creates a <button> element.
func Button(arg any, children ...any) *VNode { return html.Get("button").El(arg, children...) }

// Canvas creates a <canvas> element.
func Canvas(arg any, children ...any) *VNode { return html.Get("canvas").El(arg, children...) }

// Caption creates a <caption> element.
func Caption(arg any, children ...any) *VNode { return html.Get("caption").El(arg, children...) }

// Cite creates a <cite> element.
func Cite(arg any, children ...any) *VNode { return html.Get("cite").El(arg, children...) }

// Code creates a <code> element.
func Code(arg any, children ...any) *VNode { return html.Get("code").El(arg, children...) }

// Col creates a <col> element.
func Col(arg any, children ...any) *VNode { return html.Get("col").El(arg, children...) }

// Colgroup creates a <colgroup> element.
func Colgroup(arg any, children ...any) *VNode { return html.Get("colgroup").El(arg, children...) }

// DataEl creates a <data> element.
func DataEl(arg any, children ...any) *VNode { return html.Get("data").El(arg, children...) }

// Datalist creates a <datalist> element.
func Datalist(arg any, children ...any) *VNode { return html.Get("datalist").El(arg, children...) }

// Dd creates a <dd> element.
func Dd(arg any, children ...any) *VNode { return html.Get("dd").El(arg, children...) }

// Del creates a <del> element.
func Del(arg any, children ...any) *VNode { return html.Get("del").El(arg, children...) }

// Details creates a <details> element.
func Details(arg any, children ...any) *VNode { return html.Get("details").El(arg, children...) }

// Dfn creates a <dfn> element.
func Dfn(arg any, children ...any) *VNode { return html.Get("dfn").El(arg, children...) }

// Dialog creates a <dialog> element.
func Dialog(arg any, children ...any) *VNode { return html.Get("dialog").El(arg, children...) }

// Div creates a <div> element.
func Div(arg any, children ...any) *VNode { return html.Get("div").El(arg, children...) }

// Dl creates a <dl> element.
func Dl(arg any, children ...any) *VNode { return html.Get("dl").El(arg, children...) }

// Dt creates a <dt> element.
func Dt(arg any, children ...any) *VNode { return html.Get("dt").El(arg, children...) }

// Em creates a <em> element.
func Em(arg any, children ...any) *VNode { return html.Get("em").El(arg, children...) }

// Embed creates a <embed> element.
func Embed(arg any, children ...any) *VNode { return html.Get("embed").El(arg, children...) }

// Fieldset creates a <fieldset> element.
func Fieldset(arg any, children ...any) *VNode { return html.Get("fieldset").El(arg, children...) }

// Figcaption creates a <figcaption> element.
func Figcaption(arg any, children ...any) *VNode { return html.Get("figcaption").El(arg, children...) }

// Figure creates a <figure> element.
func Figure(arg any, children ...any) *VNode { return html.Get("figure").El(arg, children...) }

// Footer creates a <footer> element.
func Footer(arg any, children ...any) *VNode { return html.Get("footer").El(arg, children...) }

// Form creates a <form> element.
func Form(arg any, children ...any) *VNode { return html.Get("form").El(arg, children...) }

// H1 creates a <h1> element.
func H1(arg any, children ...any) *VNode { return html.Get("h1").El(arg, children...) }

// H2 creates a <h2> element.
func H2(arg any, children ...any) *VNode { return html.Get("h2").El(arg, children...) }

// H3 creates a <h3> element.
func H3(arg any, children ...any) *VNode { return html.Get("h3").El(arg, children...) }

// H4 creates a <h4> element.
func H4(arg any, children ...any) *VNode { return html.Get("h4").El(arg, children...) }

// H5 creates a <h5> element.
func H5(arg any, children ...any) *VNode { return html.Get("h5").El(arg, children...) }

// H6 creates a <h6> element.
func H6(arg any, children ...any) *VNode { return html.Get("h6").El(arg, children...) }

// Head creates a <head> element.
func Head(arg any, children ...any) *VNode { return html.Get("head").El(arg, children...) }

// Header creates a <header> element.
func Header(arg any, children ...any) *VNode { return html.Get("header").El(arg, children...) }

// Hgroup creates a <hgroup> element.
func Hgroup(arg any, children ...any) *VNode { return html.Get("hgroup").El(arg, children...) }

// Hr creates a <hr> element.
func Hr(arg any, children ...any) *VNode { return html.Get("hr").El(arg, children...) }

// Html creates a <html> element.
func Html(arg any, children ...any) *VNode { return html.Get("html").El(arg, children...) }

// I creates a <i> element.
func I(arg any, children ...any) *VNode { return html.Get("i").El(arg, children...) }

// Iframe creates a <iframe> element.
func Iframe(arg any, children ...any) *VNode { return html.Get("iframe").El(arg, children...) }

// Img creates a <img> element.
func Img(arg any, children ...any) *VNode { return html.Get("img").El(arg, children...) }

// Input creates a <input> element.
func Input(arg any, children ...any) *VNode { return html.Get("input").El(arg, children...) }

// Ins creates a <ins> element.
func Ins(arg any, children ...any) *VNode { return html.Get("ins").El(arg, children...) }

// Kbd creates a <kbd> element.
func Kbd(arg any, children ...any) *VNode { return html.Get("kbd").El(arg, children...) }

// Label creates a <label> element.
func Label(arg any, children ...any) *VNode { return html.Get("label").El(arg, children...) }

// Legend creates a <legend> element.
func Legend(arg any, children ...any) *VNode { return html.Get("legend").El(arg, children...) }

// Li creates a <li> element.
func Li(arg any, children ...any) *VNode { return html.Get("li").El(arg, children...) }

// LinkEl creates a <link> element.
func LinkEl(arg any, children ...any) *VNode { return html.Get("link").El(arg, children...) }

// Main creates a <main> element.
func Main(arg any, children ...any) *VNode { return html.Get("main").El(arg, children...) }

// MapEl creates a <map> element.
func MapEl(arg any, children ...any) *VNode { return html.Get("map").El(arg, children...) }

// Mark creates a <mark> element.
func Mark(arg any, children ...any) *VNode { return html.Get("mark").El(arg, children...) }

// Menu creates a <menu> element.
func Menu(arg any, children ...any) *VNode { return html.Get("menu").El(arg, children...) }

// Meta creates a <meta> element.
func Meta(arg any, children ...any) *VNode { return html.Get("meta").El(arg, children...) }

// Meter creates a <meter> element.
func Meter(arg any, children ...any) *VNode { return html.Get("meter").El(arg, children...) }

// Nav creates a <nav> element.
func Nav(arg any, children ...any) *VNode { return html.Get("nav").El(arg, children...) }

// Noscript creates a <noscript> element.
func Noscript(arg any, children ...any) *VNode { return html.Get("noscript").El(arg, children...) }

// Object creates a <object> element.
func Object(arg any, children ...any) *VNode { return html.Get("object").El(arg, children...) }

// Ol creates a <ol> element.
func Ol(arg any, children ...any) *VNode { return html.Get("ol").El(arg, children...) }

// Optgroup creates a <optgroup> element.
func Optgroup(arg any, children ...any) *VNode { return html.Get("optgroup").El(arg, children...) }

// Option creates a <option> element.
func Option(arg any, children ...any) *VNode { return html.Get("option").El(arg, children...) }

// Output creates a <output> element.
func Output(arg any, children ...any) *VNode { return html.Get("output").El(arg, children...) }

// P creates a <p> element.
func P(arg any, children ...any) *VNode { return html.Get("p").El(arg, children...) }

// Picture creates a <picture> element.
func Picture(arg any, children ...any) *VNode { return html.Get("picture").El(arg, children...) }

// Pre creates a <pre> element.
func Pre(arg any, children ...any) *VNode { return html.Get("pre").El(arg, children...) }

// Progress creates a <progress> element.
func Progress(arg any, children ...any) *VNode { return html.Get("progress").El(arg, children...) }

// Q creates a <q> element.
func Q(arg any, children ...any) *VNode { return html.Get("q").El(arg, children...) }

// Rp creates a <rp> element.
func Rp(arg any, children ...any) *VNode { return html.Get("rp").El(arg, children...) }

// Rt creates a <rt> element.
func Rt(arg any, children ...any) *VNode { return html.Get("rt").El(arg, children...) }

// Ruby creates a <ruby> element.
func Ruby(arg any, children ...any) *VNode { return html.Get("ruby").El(arg, children...) }

// S creates a <s> element.
func S(arg any, children ...any) *VNode { return html.Get("s").El(arg, children...) }

// Samp creates a <samp> element.
func Samp(arg any, children ...any) *VNode { return html.Get("samp").El(arg, children...) }

// Script creates a <script> element.
func Script(arg any, children ...any) *VNode { return html.Get("script").El(arg, children...) }

// Search creates a <search> element.
func Search(arg any, children ...any) *VNode { return html.Get("search").El(arg, children...) }

// Section creates a <section> element.
func Section(arg any, children ...any) *VNode { return html.Get("section").El(arg, children...) }

// Select creates a <select> element.
func Select(arg any, children ...any) *VNode { return html.Get("select").El(arg, children...) }

// Slot creates a <slot> element.
func Slot(arg any, children ...any) *VNode { return html.Get("slot").El(arg, children...) }

// Small creates a <small> element.
func Small(arg any, children ...any) *VNode { return html.Get("small").El(arg, children...) }

// Source creates a <source> element.
func Source(arg any, children ...any) *VNode { return html.Get("source").El(arg, children...) }

// Span creates a <span> element.
func Span(arg any, children ...any) *VNode { return html.Get("span").El(arg, children...) }

// Strong creates a <strong> element.
func Strong(arg any, children ...any) *VNode { return html.Get("strong").El(arg, children...) }

// StyleEl creates a <style> element.
func StyleEl(arg any, children ...any) *VNode { return html.Get("style").El(arg, children...) }

// Sub creates a <sub> element.
func Sub(arg any, children ...any) *VNode { return html.Get("sub").El(arg, children...) }

// Summary creates a <summary> element.
func Summary(arg any, children ...any) *VNode { return html.Get("summary").El(arg, children...) }

// Sup creates a <sup> element.
func Sup(arg any, children ...any) *VNode { return html.Get("sup").El(arg, children...) }

// Table creates a <table> element.
func Table(arg any, children ...any) *VNode { return html.Get("table").El(arg, children...) }

// Tbody creates a <tbody> element.
func Tbody(arg any, children ...any) *VNode { return html.Get("tbody").El(arg, children...) }

// Td creates a <td> element.
func Td(arg any, children ...any) *VNode { return html.Get("td").El(arg, children...) }

// Template creates a <template> element.
func Template(arg any, children ...any) *VNode { return html.Get("template").El(arg, children...) }

// Textarea creates a <textarea> element.
func Textarea(arg any, children ...any) *VNode { return html.Get("textarea").El(arg, children...) }

// Tfoot creates a <tfoot> element.
func Tfoot(arg any, children ...any) *VNode { return html.Get("tfoot").El(arg, children...) }

// Th creates a <th> element.
func Th(arg any, children ...any) *VNode { return html.Get("th").El(arg, children...) }

// Thead creates a <thead> element.
func Thead(arg any, children ...any) *VNode { return html.Get("thead").El(arg, children...) }

// Time_ creates a <time> element.
func Time_(arg any, children ...any) *VNode { return html.Get("time").El(arg, children...) }

// TitleEl creates a <title> element.
func TitleEl(arg any, children ...any) *VNode { return html.Get("title").El(arg, children...) }

// Tr creates a <tr> element.
func Tr(arg any, children ...any) *VNode { return html.Get("tr").El(arg, children...) }

// Track creates a <track> element.
func Track(arg any, children ...any) *VNode { return html.Get("track").El(arg, children...) }

// U creates a <u> element.
func U(arg any, children ...any) *VNode { return html.Get("u").El(arg, children...) }

// Ul creates a <ul> element.
func Ul(arg any, children ...any) *VNode { return html.Get("ul").El(arg, children...) }

// Var_ creates a <var> element.
func Var_(arg any, children ...any) *VNode { return html.Get("var").El(arg, children...) }

// Video creates a <video> element.
func Video(arg any, children ...any) *VNode { return html.Get("video").El(arg, children...) }

// Wbr creates a <wbr> element.
func Wbr(arg any, children ...any) *VNode { return html.Get("wbr").El(arg, children...) }

// Svg creates an SVG <svg> element.
func Svg(arg any, children ...any) *VNode { return svg.Get("svg").El(arg, children...) }

// G creates an SVG <g> element.
func G(arg any, children ...any) *VNode { return svg.Get("g").El(arg, children...) }

// Defs creates an SVG <defs> element.
func Defs(arg any, children ...any) *VNode { return svg.Get("defs").El(arg, children...) }

// SvgSymbol creates an SVG <symbol> element.
func SvgSymbol(arg any, children ...any) *VNode { return svg.Get("symbol").El(arg, children...) }

// Use creates an SVG <use> element.
func Use(arg any, children ...any) *VNode { return svg.Get("use").El(arg, children...) }

// Path creates an SVG <path> element.
func Path(arg any, children ...any) *VNode { return svg.Get("path").El(arg, children...) }

// Circle creates an SVG <circle> element.
func Circle(arg any, children ...any) *VNode { return svg.Get("circle").El(arg, children...) }

// Ellipse creates an SVG <ellipse> element.
func Ellipse(arg any, children ...any) *VNode { return svg.Get("ellipse").El(arg, children...) }

// Line creates an SVG <line> element.
func Line(arg any, children ...any) *VNode { return svg.Get("line").El(arg, children...) }

// Polyline creates an SVG <polyline> element.
func Polyline(arg any, children ...any) *VNode { return svg.Get("polyline").El(arg, children...) }

// Polygon creates an SVG <polygon> element.
func Polygon(arg any, children ...any) *VNode { return svg.Get("polygon").El(arg, children...) }

// Rect creates an SVG <rect> element.
func Rect(arg any, children ...any) *VNode { return svg.Get("rect").El(arg, children...) }

// SvgText creates an SVG <text> element.
func SvgText(arg any, children ...any) *VNode { return svg.Get("text").El(arg, children...) }

// Tspan creates an SVG <tspan> element.
func Tspan(arg any, children ...any) *VNode { return svg.Get("tspan").El(arg, children...) }

// TextPath creates an SVG <textPath> element.
func TextPath(arg any, children ...any) *VNode { return svg.Get("textPath").El(arg, children...) }

// LinearGradient creates an SVG <linearGradient> element.
func LinearGradient(arg any, children ...any) *VNode {
	return svg.Get("linearGradient").El(arg, children...)
}

// RadialGradient creates an SVG <radialGradient> element.
func RadialGradient(arg any, children ...any) *VNode {
	return svg.Get("radialGradient").El(arg, children...)
}

// Stop creates an SVG <stop> element.
func Stop(arg any, children ...any) *VNode { return svg.Get("stop").El(arg, children...) }

// ClipPath creates an SVG <clipPath> element.
func ClipPath(arg any, children ...any) *VNode { return svg.Get("clipPath").El(arg, children...) }

// SvgMask creates an SVG <mask> element.
func SvgMask(arg any, children ...any) *VNode { return svg.Get("mask").El(arg, children...) }

// SvgPattern creates an SVG <pattern> element.
func SvgPattern(arg any, children ...any) *VNode { return svg.Get("pattern").El(arg, children...) }

// SvgMarker creates an SVG <marker> element.
func SvgMarker(arg any, children ...any) *VNode { return svg.Get("marker").El(arg, children...) }

// SvgFilter creates an SVG <filter> element.
func SvgFilter(arg any, children ...any) *VNode { return svg.Get("filter").El(arg, children...) }

// ForeignObject creates an SVG <foreignObject> element.
func ForeignObject(arg any, children ...any) *VNode {
	return svg.Get("foreignObject").El(arg, children...)
}

// SvgImage creates an SVG <image> element.
func SvgImage(arg any, children ...any) *VNode { return svg.Get("image").El(arg, children...) }

// SvgDesc creates an SVG <desc> element.
func SvgDesc(arg any, children ...any) *VNode { return svg.Get("desc").El(arg, children...) }
