package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Object describes one file to put.
type Object struct {
	Key          string
	ContentType  string
	CacheControl string
	Size         int64
}

// Target stores published objects.
type Target interface {
	Put(ctx context.Context, obj Object, body io.Reader) error
}

// DirTarget copies objects into a local directory, keyed by path.
type DirTarget struct {
	dir string
}

// NewDirTarget creates the directory if needed.
func NewDirTarget(dir string) (*DirTarget, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirTarget{dir: dir}, nil
}

// Put writes body to dir/key.
func (t *DirTarget) Put(ctx context.Context, obj Object, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(t.dir, filepath.FromSlash(strings.TrimPrefix(obj.Key, "/")))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
