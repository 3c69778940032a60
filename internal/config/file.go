package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by LoadLocal and LoadGlobal when no file exists.
var ErrNoConfig = errors.New("no config file")

// FileConfig is the on-disk YAML shape of a layer file. Each section holds
// settings in the same vocabulary as Base; publish entries only apply to
// publish builds.
type FileConfig struct {
	Base    map[string]any `yaml:"base,omitempty"`
	Publish map[string]any `yaml:"publish,omitempty"`

	path string
}

// Path is the file the config was read from, if any.
func (fc FileConfig) Path() string { return fc.path }

// LocalNames are searched in order by LoadLocal.
var LocalNames = []string{".sitecfg.yml", ".sitecfg.yaml", "sitecfg.yml", "sitecfg.yaml"}

// LoadFile reads a YAML layer file.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, oops.
			In("config").
			Code("invalid_layer").
			With("path", path).
			Wrapf(err, "parse %s", path)
	}
	cfg.path = path
	return cfg, nil
}

// LoadLocal searches root for a site-local layer file, dotfiles first.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// GlobalPath returns the per-user layer file location, or "" when neither
// XDG_CONFIG_HOME nor a home directory is available.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "sitecfg", "config.yml")
}

// LoadGlobal loads the per-user layer file.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, ErrNoConfig
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNoConfig
	}
	return LoadFile(p)
}

// BaseLayer returns the base section normalized into Settings values.
func (fc FileConfig) BaseLayer() (Settings, error) { return fc.normalize(fc.Base) }

// PublishLayer returns the publish section normalized into Settings values.
func (fc FileConfig) PublishLayer() (Settings, error) { return fc.normalize(fc.Publish) }

func (fc FileConfig) normalize(raw map[string]any) (Settings, error) {
	s, err := Normalize(raw)
	if err != nil {
		return nil, oops.In("config").With("path", fc.path).Wrap(err)
	}
	return s, nil
}

// Normalize converts decoded YAML or JSON values into Settings value types:
// link lists become []Link, string lists []string, extension options
// map[string]map[string]any and whole JSON numbers int.
func Normalize(raw map[string]any) (Settings, error) {
	out := make(Settings, len(raw))
	for name, v := range raw {
		k := Key(name)
		nv, err := normalizeValue(k, v)
		if err != nil {
			return nil, oops.
				In("config").
				Code("invalid_layer").
				With("key", name).
				Wrapf(err, "%s", name)
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(k Key, v any) (any, error) {
	spec, ok := Lookup(k)
	if !ok || v == nil {
		return cloneValue(v), nil
	}
	switch spec.Kind {
	case KindLinks:
		return toLinks(v)
	case KindStrings:
		return toStrings(v)
	case KindExtensions:
		return toExtensions(v)
	case KindInt:
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			return int(f), nil
		}
	}
	return v, nil
}

func toLinks(v any) ([]Link, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, oops.Errorf("want a list of links, got %T", v)
	}
	links := make([]Link, 0, len(items))
	for i, item := range items {
		switch t := item.(type) {
		case []any:
			if len(t) != 2 {
				return nil, oops.Errorf("link %d: want [label, url]", i)
			}
			label, lok := t[0].(string)
			url, uok := t[1].(string)
			if !lok || !uok {
				return nil, oops.Errorf("link %d: label and url must be strings", i)
			}
			links = append(links, Link{Label: label, URL: url})
		case map[string]any:
			label, _ := t["label"].(string)
			url, _ := t["url"].(string)
			links = append(links, Link{Label: label, URL: url})
		default:
			return nil, oops.Errorf("link %d: unsupported %T", i, item)
		}
	}
	return links, nil
}

func toStrings(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, oops.Errorf("want a list of strings, got %T", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, oops.Errorf("entry %d: want string, got %T", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

func toExtensions(v any) (map[string]map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, oops.Errorf("want a mapping of extension options, got %T", v)
	}
	out := make(map[string]map[string]any, len(m))
	for name, opts := range m {
		switch t := opts.(type) {
		case nil:
			out[name] = map[string]any{}
		case map[string]any:
			out[name] = cloneValue(t).(map[string]any)
		default:
			return nil, oops.Errorf("extension %s: want options mapping, got %T", name, opts)
		}
	}
	return out, nil
}

// FileLayers holds the optional layer files applied on top of the built-in
// settings. Global applies before Local.
type FileLayers struct {
	Global *FileConfig
	Local  *FileConfig
}

func (l FileLayers) files() []*FileConfig {
	var out []*FileConfig
	for _, fc := range []*FileConfig{l.Global, l.Local} {
		if fc != nil {
			out = append(out, fc)
		}
	}
	return out
}

// Resolve builds the mapping for env: built-in Base, then each file's base
// section, then for publish the built-in overrides and each file's publish
// section. Every step is a Resolve call.
func (l FileLayers) Resolve(env Environment) (Settings, error) {
	s := Base()
	for _, fc := range l.files() {
		layer, err := fc.BaseLayer()
		if err != nil {
			return nil, err
		}
		s = Resolve(s, layer)
	}
	if env != Publish {
		return s, nil
	}
	s = Resolve(s, PublishOverrides())
	for _, fc := range l.files() {
		layer, err := fc.PublishLayer()
		if err != nil {
			return nil, err
		}
		s = Resolve(s, layer)
	}
	return s, nil
}

// Template returns a starter layer file overriding a few common keys.
func Template() FileConfig {
	base := Base()
	pub := PublishOverrides()
	return FileConfig{
		Base: map[string]any{
			string(Author):         base[Author],
			string(SiteName):       base[SiteName],
			string(Theme):          base[Theme],
			string(PaginationSize): base[PaginationSize],
		},
		Publish: map[string]any{
			string(SiteURL):    pub[SiteURL],
			string(OutputPath): pub[OutputPath],
		},
	}
}
