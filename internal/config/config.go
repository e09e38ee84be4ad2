package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/vstyle/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vstyle.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3100

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPrefix is the default class name prefix.
	DefaultPrefix = "css"

	// DefaultCacheControl is sent with fingerprinted uploads.
	DefaultCacheControl = "public, max-age=31536000, immutable"
)

// Config represents the complete vstyle.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Sheet configures the style compiler.
	Sheet SheetConfig `json:"sheet"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev"`

	// Build contains build output configuration.
	Build BuildConfig `json:"build"`

	// Publish contains S3 upload configuration.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SheetConfig configures the style compiler.
type SheetConfig struct {
	// Prefix is prepended to every generated class name.
	Prefix string `json:"prefix,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// LiveStyles streams newly compiled rules to open pages.
	LiveStyles bool `json:"liveStyles"`
}

// BuildConfig contains build output settings.
type BuildConfig struct {
	// Output is the output directory for builds.
	Output string `json:"output,omitempty"`

	// Fingerprint names the stylesheet after its content hash.
	Fingerprint bool `json:"fingerprint"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	// Bucket is the target bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region. Falls back to AWS_REGION.
	Region string `json:"region,omitempty"`

	// CacheControl is sent with fingerprinted objects.
	CacheControl string `json:"cacheControl,omitempty"`

	// Endpoint overrides the S3 endpoint (S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Sheet: SheetConfig{
			Prefix: DefaultPrefix,
		},
		Dev: DevConfig{
			Port:       DefaultPort,
			Host:       DefaultHost,
			LiveStyles: true,
		},
		Build: BuildConfig{
			Output:      DefaultOutput,
			Fingerprint: true,
		},
		Publish: PublishConfig{
			CacheControl: DefaultCacheControl,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for vstyle.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No vstyle.json found in " + filepath.Dir(path)).
				WithSuggestion("Create vstyle.json or run without one to use the defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		verr := errors.New("E120").
			WithDetail("Failed to parse vstyle.json: " + err.Error()).
			WithSuggestion("Check that vstyle.json is valid JSON")
		var syntax *json.SyntaxError
		if stderrors.As(err, &syntax) {
			line, col := position(data, syntax.Offset)
			verr = verr.WithLocation(path, line, col)
		}
		return nil, verr.Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadOrDefault loads vstyle.json from the project containing dir, or
// returns the defaults when there is none.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if errors.HasCode(err, "E141") {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col - 1
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Sheet.Prefix == "" {
		c.Sheet.Prefix = DefaultPrefix
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return errors.New("E122").
			WithDetail("dev.port is " + strconv.Itoa(c.Dev.Port)).
			WithSuggestion("Use a port between 1 and 65535")
	}
	if !validPrefix(c.Sheet.Prefix) {
		return errors.New("E123").
			WithDetail("sheet.prefix is " + strconv.Quote(c.Sheet.Prefix))
	}
	return nil
}

// validPrefix reports whether p can start a CSS class name.
func validPrefix(p string) bool {
	if p == "" {
		return false
	}
	for i := 0; i < len(p); i++ {
		ch := p[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case i == 0:
			return false
		case ch >= '0' && ch <= '9', ch == '-', ch == '_':
		default:
			return false
		}
	}
	return true
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// OutputPath returns the path to the build output directory, resolved
// against the config directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Build.Output) {
		return c.Build.Output
	}
	return filepath.Join(c.Dir(), c.Build.Output)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing vstyle.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithDetail("No vstyle.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
