package publish

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vango-dev/vstyle/internal/errors"
)

var errMissingCredentials = stderrors.New("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")

// NoCache is the Cache-Control value for files whose name does not change
// between builds.
const NoCache = "no-cache"

// Options configures a Publisher.
type Options struct {
	// Prefix is prepended to every key ("vstyle/" puts styles.css at
	// "vstyle/styles.css").
	Prefix string

	// CacheControl is sent with fingerprinted files.
	CacheControl string

	// Mutable lists file names that keep their name across builds and
	// are sent with NoCache. Default: index.html and manifest.json.
	Mutable []string

	// Logger receives one record per uploaded object.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Publisher uploads build output to a Target.
type Publisher struct {
	target  Target
	options Options
	mutable map[string]bool
}

// New creates a Publisher.
func New(target Target, options Options) *Publisher {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Mutable == nil {
		options.Mutable = []string{"index.html", "manifest.json"}
	}
	mutable := make(map[string]bool, len(options.Mutable))
	for _, name := range options.Mutable {
		mutable[name] = true
	}
	return &Publisher{target: target, options: options, mutable: mutable}
}

// Publish uploads every regular file under dir and returns the published
// objects sorted by key. A missing dir fails with E150, as does the first
// failed upload.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]Object, error) {
	if s3t, ok := p.target.(*S3Target); ok && s3t.Bucket() == "" {
		return nil, errors.New("E151")
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New("E150").WithDetail("cannot read build output " + dir).Wrap(err)
	}
	sort.Strings(files)

	objects := make([]Object, 0, len(files))
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return objects, errors.New("E150").Wrap(err)
		}
		obj, err := p.put(ctx, file, filepath.ToSlash(rel))
		if err != nil {
			return objects, errors.New("E150").
				WithDetail("upload of " + obj.Key + " failed").
				Wrap(err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (p *Publisher) put(ctx context.Context, file, rel string) (Object, error) {
	obj := p.Object(rel)

	f, err := os.Open(file)
	if err != nil {
		return obj, err
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		obj.Size = info.Size()
	}

	if err := p.target.Put(ctx, obj, f); err != nil {
		return obj, err
	}
	p.options.Logger.Info("published", "key", obj.Key, "bytes", obj.Size, "cache", obj.CacheControl)
	return obj, nil
}

// Object returns the key and headers rel is published with.
func (p *Publisher) Object(rel string) Object {
	obj := Object{
		Key:          p.options.Prefix + rel,
		ContentType:  ContentType(rel),
		CacheControl: p.options.CacheControl,
	}
	if p.mutable[path.Base(rel)] {
		obj.CacheControl = NoCache
	}
	return obj
}

// ContentType returns the MIME type for name by extension.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	case ".json":
		return "application/json"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
