// Package style compiles CSS declarations into interned class names.
//
// A Sheet is the compiler: it turns one or more interpolations into a single
// class token, stores the generated rules once per distinct input, and
// serves them as a stylesheet. Equal inputs always yield the same token.
//
//	sheet := style.NewSheet(style.SheetConfig{})
//	button := sheet.Compile(style.Declarations{
//	    "padding":         8,
//	    "backgroundColor": "rebeccapurple",
//	    ":hover":          style.Declarations{"opacity": 0.8},
//	})
//	// button == "css-1x2y3z", sheet.CSS() contains:
//	// .css-1x2y3z{background-color:rebeccapurple;padding:8px;}
//	// .css-1x2y3z:hover{opacity:0.8;}
//
// # Interpolations
//
// Compile accepts, in any nesting of []any:
//
//   - Declarations: a property map, compiled in sorted key order
//   - List: an ordered property list, built with Decl
//   - func() any: evaluated when the class is compiled
//   - string: raw declaration text such as "color: red; margin: 0"
//   - ClassName: a class this sheet already compiled, composed in place
//   - *Style: a lazily resolved style chain
//
// Later entries override earlier ones for the same property.
//
// # Extension
//
// A Style is a lazily compiled chain of increments. Extend layers more
// declarations on top without touching the base:
//
//	base := style.New(sheet, style.Declarations{"color": "red"})
//	blue := base.Extend(style.Declarations{"color": "blue"})
//	// base.ClassName() resolves color to red, blue.ClassName() to blue.
package style
