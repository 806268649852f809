package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/femodel/pkg/hclmodel"
	"github.com/mandelsoft/femodel/pkg/manager"
	"github.com/mandelsoft/femodel/pkg/utils"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format is a serialization format for model documents.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	HCL  Format = "hcl"
)

// FormatFor determines the format by the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case hclmodel.FileExtension:
		return HCL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, HCL:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

type Options struct {
	// Substitute enables the expansion of ${VAR} references.
	Substitute bool
	// Env resolves variables, the process environment is used by default.
	Env func(string) string
}

type Option func(o *Options)

func WithSubstitution(b ...bool) Option {
	return func(o *Options) {
		o.Substitute = len(b) == 0 || b[0]
	}
}

func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		o.Env = func(k string) string { return env[k] }
	}
}

func options(opts ...Option) *Options {
	o := &Options{Env: os.Getenv}
	for _, f := range opts {
		f(o)
	}
	return o
}

// Decode converts serialized data into a model document.
func Decode(data []byte, format Format, name string, opts ...Option) (manager.Document, error) {
	o := options(opts...)
	if o.Substitute {
		s, err := envsubst.Eval(string(data), o.Env)
		if err != nil {
			return nil, fmt.Errorf("variable substitution failed for %s: %w", name, err)
		}
		data = []byte(s)
	}

	switch format {
	case HCL:
		return hclmodel.Parse(data, name)
	case JSON, YAML:
		var doc manager.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid model document %s: %w", name, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Encode serializes a model document. HCL is an input format only.
func Encode(doc manager.Document, format Format) ([]byte, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case YAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, format)
}

// Load reads a model document choosing the format by the file extension.
func Load(fs vfs.FileSystem, path string, opts ...Option) (manager.Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	fs = utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fs)
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	log.Debug("loading {{format}} model document {{path}}", "format", format, "path", path)
	return Decode(data, format, path, opts...)
}

// Save writes a model document choosing the format by the file extension.
func Save(fs vfs.FileSystem, path string, doc manager.Document) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	fs = utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fs)
	if dir := filepath.Dir(path); dir != "." {
		err = fs.MkdirAll(dir, 0o700)
		if err != nil {
			return err
		}
	}
	log.Debug("saving {{format}} model document {{path}}", "format", format, "path", path)
	return vfs.WriteFile(fs, path, data, 0o600)
}

// LoadModel reads a model file into a new model manager.
// Skipped records are reported by an aggregated error together
// with the partially loaded model.
func LoadModel(fs vfs.FileSystem, path string, opts ...Option) (*manager.ModelManager, error) {
	doc, err := Load(fs, path, opts...)
	if err != nil {
		return nil, err
	}
	m := manager.New()
	return m, m.FromDict(doc)
}

func SaveModel(fs vfs.FileSystem, path string, m *manager.ModelManager) error {
	doc, err := m.ToDict()
	if err != nil {
		return err
	}
	return Save(fs, path, doc)
}
