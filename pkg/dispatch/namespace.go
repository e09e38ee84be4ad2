package dispatch

import (
	"sort"
	"strings"
	"sync"

	"github.com/vango-dev/vstyle/pkg/element"
	"github.com/vango-dev/vstyle/pkg/vdom"
)

// Domain selects how a Namespace maps names to tags.
type Domain int

const (
	// DomainHTML lower-cases names and produces HTML elements.
	DomainHTML Domain = iota
	// DomainSVG keeps names as given and produces SVG elements.
	DomainSVG
	// DomainXML produces SVG elements for names only SVG knows and HTML
	// elements for everything else.
	DomainXML
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case DomainHTML:
		return "html"
	case DomainSVG:
		return "svg"
	case DomainXML:
		return "xml"
	default:
		return "unknown"
	}
}

// Namespace resolves tag names to memoized element factories. It is safe
// for concurrent use.
type Namespace struct {
	domain    Domain
	opts      []element.Option
	factories sync.Map // resolved tag -> element.Factory
}

// NewNamespace creates a namespace for domain. opts are applied to every
// factory after the domain's namespace option, so WithNamespace overrides
// it.
func NewNamespace(domain Domain, opts ...element.Option) *Namespace {
	return &Namespace{domain: domain, opts: opts}
}

// Domain returns the namespace's domain.
func (n *Namespace) Domain() Domain {
	return n.domain
}

// Get returns the factory for name. Invalid names yield the zero factory.
// Repeated calls return equal factories. Known tags are memoized under
// their resolved spelling, so "DIV" and "div" share an entry; other valid
// names, such as custom elements, are built on each call and never cached.
func (n *Namespace) Get(name string) element.Factory {
	if !validName(name) {
		return element.Factory{}
	}
	tag, ns := n.resolve(name)
	if f, ok := n.factories.Load(tag); ok {
		return f.(element.Factory)
	}
	opts := make([]element.Option, 0, len(n.opts)+1)
	opts = append(opts, element.WithNamespace(ns))
	opts = append(opts, n.opts...)
	f := element.New(tag, opts...)
	if !n.Has(name) {
		return f
	}
	cached, _ := n.factories.LoadOrStore(tag, f)
	return cached.(element.Factory)
}

func (n *Namespace) resolve(name string) (string, vdom.Namespace) {
	switch n.domain {
	case DomainSVG:
		return name, vdom.NamespaceSVG
	case DomainXML:
		if !htmlSet[strings.ToLower(name)] && svgSet[name] {
			return name, vdom.NamespaceSVG
		}
		return strings.ToLower(name), vdom.NamespaceHTML
	default:
		return strings.ToLower(name), vdom.NamespaceHTML
	}
}

// Has reports whether name is a known tag in the namespace's domain.
func (n *Namespace) Has(name string) bool {
	switch n.domain {
	case DomainSVG:
		return svgSet[name]
	case DomainXML:
		return svgSet[name] || htmlSet[strings.ToLower(name)]
	default:
		return htmlSet[strings.ToLower(name)]
	}
}

// Tags returns the known tag names of the domain, sorted.
func (n *Namespace) Tags() []string {
	var tags []string
	switch n.domain {
	case DomainSVG:
		tags = append(tags, svgTags...)
	case DomainXML:
		seen := make(map[string]bool, len(htmlTags)+len(svgTags))
		for _, t := range append(append([]string{}, htmlTags...), svgTags...) {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	default:
		tags = append(tags, htmlTags...)
	}
	sort.Strings(tags)
	return tags
}

// StyledNamespace resolves tag names to styled-factory composers.
type StyledNamespace struct {
	ns *Namespace
}

// NewStyledNamespace wraps ns.
func NewStyledNamespace(ns *Namespace) *StyledNamespace {
	return &StyledNamespace{ns: ns}
}

// Get returns a composer for name. For invalid names the composer yields
// the zero factory.
func (s *StyledNamespace) Get(name string) element.Composer {
	return s.ns.Get(name).Extend
}

// Namespace returns the underlying namespace.
func (s *StyledNamespace) Namespace() *Namespace {
	return s.ns
}
