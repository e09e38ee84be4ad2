package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/vango-dev/vstyle/internal/errors"
	"github.com/vango-dev/vstyle/pkg/assets"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// project writes a vstyle.json into a temp dir and returns the dir.
func project(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vstyle.json"), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()
	want := []string{"build", "css", "dev", "publish", "render", "version"}
	var got []string
	for _, c := range cmd.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing command %q in %v", name, got)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("version --short = %q", out)
	}

	out, err = run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Version:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q", want)
		}
	}
}

func TestRender(t *testing.T) {
	dir := project(t, `{"sheet": {"prefix": "gal"}}`)

	out, err := run(t, "render", "-C", dir)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>vstyle gallery</title>",
		`<style id="vstyle-sheet">`,
		`class="gal-`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestRenderPretty(t *testing.T) {
	compact, err := run(t, "render", "-C", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	pretty, err := run(t, "render", "-C", t.TempDir(), "--pretty")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(pretty, "\n") <= strings.Count(compact, "\n") {
		t.Error("--pretty should add line breaks")
	}
}

func TestCSS(t *testing.T) {
	out, err := run(t, "css", "-C", t.TempDir())
	if err != nil {
		t.Fatalf("css error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 8 {
		t.Fatalf("css printed %d rules, want every gallery style", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, ".css-") && !strings.HasPrefix(line, "@") {
			t.Errorf("unexpected rule %q", line)
		}
	}
	if !strings.Contains(out, "-badge{") {
		t.Error("component styles should be included")
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		code   string
	}{
		{"parse error", `{"sheet": `, []string{"render"}, "E120"},
		{"bad prefix", `{"sheet": {"prefix": "9x"}}`, []string{"css"}, "E123"},
		{"bad port flag", `{}`, []string{"dev", "--port", "70000"}, "E122"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := project(t, tt.config)
			_, err := run(t, append(tt.args, "-C", dir)...)
			if !errors.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBuildAndPublishToDir(t *testing.T) {
	dir := project(t, `{"build": {"output": "site"}}`)

	out, err := run(t, "build", "-C", dir)
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if !strings.Contains(out, "Build complete") {
		t.Errorf("build output = %q", out)
	}

	site := filepath.Join(dir, "site")
	manifest, err := assets.Load(filepath.Join(site, assets.ManifestFile))
	if err != nil {
		t.Fatal(err)
	}
	stylesheet := manifest.Resolve(assets.StylesheetName)
	if !regexp.MustCompile(`^styles\.[0-9a-f]{8}\.css$`).MatchString(stylesheet) {
		t.Errorf("stylesheet = %q", stylesheet)
	}
	index, err := os.ReadFile(filepath.Join(site, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="`+stylesheet+`"`) {
		t.Error("index.html should link the fingerprinted stylesheet")
	}

	www := filepath.Join(t.TempDir(), "www")
	out, err = run(t, "publish", "-C", dir, "--to-dir", www, "--prefix", "v1/")
	if err != nil {
		t.Fatalf("publish error = %v", err)
	}
	if !strings.Contains(out, "Published 3 files") {
		t.Errorf("publish output = %q", out)
	}
	for _, name := range []string{"index.html", assets.ManifestFile, stylesheet} {
		if _, err := os.Stat(filepath.Join(www, "v1", name)); err != nil {
			t.Errorf("%s not published: %v", name, err)
		}
	}
}

func TestBuildFlags(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	if _, err := run(t, "build", "-C", dir, "--out", outDir, "--no-fingerprint", "--base", "/static/"); err != nil {
		t.Fatalf("build error = %v", err)
	}
	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="/static/styles.css"`) {
		t.Error("stylesheet link should use the base path and the plain name")
	}
}

func TestPublishMissingBucket(t *testing.T) {
	dir := project(t, `{}`)
	if _, err := run(t, "build", "-C", dir); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "publish", "-C", dir)
	if !errors.HasCode(err, "E151") {
		t.Errorf("publish error = %v, want E151", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
