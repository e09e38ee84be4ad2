// Package dispatch resolves tag names to element factories.
//
// A Namespace hands out one factory per tag name, created on first use and
// memoized. Names need not be known tags; only names that cannot be a tag at
// all resolve to the zero factory.
//
//	html := dispatch.NewNamespace(dispatch.DomainHTML)
//	node := html.Get("div").El(vdom.Props{"class": "box"}, "Hi")
package dispatch
