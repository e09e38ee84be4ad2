package assets

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var fingerprinted = regexp.MustCompile(`^styles\.[0-9a-f]{8}\.css$`)

func TestFingerprint(t *testing.T) {
	a := Fingerprint(StylesheetName, []byte(".a{color:red;}"))
	b := Fingerprint(StylesheetName, []byte(".a{color:blue;}"))

	if !fingerprinted.MatchString(a) {
		t.Errorf("Fingerprint = %q, want styles.<hash>.css", a)
	}
	if a == b {
		t.Error("different content should produce different names")
	}
	if again := Fingerprint(StylesheetName, []byte(".a{color:red;}")); again != a {
		t.Errorf("Fingerprint not deterministic: %q vs %q", again, a)
	}
	if got := Fingerprint("bundle", []byte("x")); filepath.Ext(got) == "" || got[:7] != "bundle." {
		t.Errorf("Fingerprint without extension = %q", got)
	}
}

func TestWriteBundle(t *testing.T) {
	content := []byte(".css-1{color:red;}\n")

	tests := []struct {
		name        string
		fingerprint bool
		check       func(string) bool
	}{
		{"fingerprinted", true, fingerprinted.MatchString},
		{"plain", false, func(s string) bool { return s == StylesheetName }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			m := NewManifest()

			file, err := WriteBundle(m, dir, StylesheetName, content, tt.fingerprint)
			if err != nil {
				t.Fatalf("WriteBundle() error = %v", err)
			}
			if !tt.check(file) {
				t.Errorf("file = %q", file)
			}
			if got := m.Resolve(StylesheetName); got != file {
				t.Errorf("manifest entry = %q, want %q", got, file)
			}

			data, err := os.ReadFile(filepath.Join(dir, file))
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != string(content) {
				t.Errorf("written content = %q", data)
			}
		})
	}
}

func TestWriteBundleNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := WriteBundle(NewManifest(), dir, StylesheetName, []byte("x"), false); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, StylesheetName)); err != nil {
		t.Errorf("bundle not written: %v", err)
	}
}
