// Package assets resolves the fingerprinted stylesheet bundles written by
// vstyle build.
//
// A build writes the compiled sheet as styles.<hash>.css next to a
// manifest.json mapping logical names to the written files:
//
//	{
//	  "styles.css": "styles.5f3a09c1.css"
//	}
//
// Pages link the bundle through a Resolver:
//
//	manifest, _ := assets.Load("dist/manifest.json")
//	resolver := assets.NewResolver(manifest, "/")
//	resolver.Asset("styles.css") // "/styles.5f3a09c1.css"
package assets

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
)

// ManifestFile is the file name a build writes the manifest to.
const ManifestFile = "manifest.json"

// Manifest maps logical asset names to the files a build wrote.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Load reads a manifest file written by Save.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return &Manifest{entries: entries}, nil
}

// Save writes the manifest as indented JSON.
func (m *Manifest) Save(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Resolve returns the written file for name, or name itself when the
// manifest has no entry.
func (m *Manifest) Resolve(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[name]; ok {
		return resolved
	}
	return name
}

// Has reports whether the manifest contains name.
func (m *Manifest) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[name]
	return ok
}

// Set adds or updates an entry.
func (m *Manifest) Set(name, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[name] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Files returns the written file names, sorted.
func (m *Manifest) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.entries))
	for _, v := range m.entries {
		files = append(files, v)
	}
	sort.Strings(files)
	return files
}

// All returns a copy of all entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}
