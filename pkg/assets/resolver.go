package assets

// Resolver turns a logical asset name into the URL path a page links.
type Resolver interface {
	Asset(name string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver resolves names through m and prepends prefix.
//
//	resolver := assets.NewResolver(manifest, "/static/")
//	resolver.Asset("styles.css") // "/static/styles.5f3a09c1.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   prefix,
	}
}

func (r *manifestResolver) Asset(name string) string {
	return r.prefix + r.manifest.Resolve(name)
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver returns names unchanged apart from prefix, for
// pages served without a manifest.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(name string) string {
	return p.prefix + name
}
