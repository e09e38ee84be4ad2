package style

// unitless lists properties whose numeric values are not suffixed with px.
var unitless = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"border-image-outset":       true,
	"border-image-slice":        true,
	"border-image-width":        true,
	"box-flex":                  true,
	"box-flex-group":            true,
	"box-ordinal-group":         true,
	"column-count":              true,
	"columns":                   true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-positive":             true,
	"flex-shrink":               true,
	"flex-negative":             true,
	"flex-order":                true,
	"grid-row":                  true,
	"grid-row-end":              true,
	"grid-row-span":             true,
	"grid-row-start":            true,
	"grid-column":               true,
	"grid-column-end":           true,
	"grid-column-span":          true,
	"grid-column-start":         true,
	"-ms-grid-row":              true,
	"-ms-grid-row-span":         true,
	"-ms-grid-column":           true,
	"-ms-grid-column-span":      true,
	"font-weight":               true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"scale":                     true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
	"-webkit-line-clamp":        true,
	"fill-opacity":              true,
	"flood-opacity":             true,
	"stop-opacity":              true,
	"stroke-dasharray":          true,
	"stroke-dashoffset":         true,
	"stroke-miterlimit":         true,
	"stroke-opacity":            true,
	"stroke-width":              true,
}

// isUnitless reports whether numeric values of property stay bare.
func isUnitless(property string) bool {
	return unitless[property] || isCustomProperty(property)
}
