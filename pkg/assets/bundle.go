package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// StylesheetName is the logical name of the compiled sheet.
const StylesheetName = "styles.css"

// Fingerprint inserts a content hash before the extension of name:
// "styles.css" becomes "styles.5f3a09c1.css".
func Fingerprint(name string, content []byte) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	sum := fmt.Sprintf("%016x", xxhash.Sum64(content))
	return base + "." + sum[:8] + ext
}

// WriteBundle writes content into dir under name, fingerprinted when asked,
// and records the written file in m. It returns the written file name.
func WriteBundle(m *Manifest, dir, name string, content []byte, fingerprint bool) (string, error) {
	file := name
	if fingerprint {
		file = Fingerprint(name, content)
	}

	path := filepath.Join(dir, file)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", err
	}

	m.Set(name, filepath.ToSlash(file))
	return file, nil
}
