// Package props normalizes the loosely typed first argument of an element
// factory into a canonical vdom.Props bag.
//
// A factory argument is either a props bag or a bare child. Statically typed
// callers can say which with Of and Child; for plain `any` values the
// structural rule applies: maps (vdom.Props, map[string]any,
// templ.Attributes) are bags, everything else, including an already built
// *vdom.VNode, is the sole child.
//
// For string tags the bag is then folded into host form:
//
//   - "class" and "className" merge into one "className" string
//   - "data" expands into flat "data-*" attributes
//
// Normalization never mutates the caller's maps or slices and is idempotent:
// running it on its own output changes nothing.
package props
