package core

import "github.com/sitecfg/sitecfg/internal/config"

// Re-export the resolver types as a stable public API surface. These are
// aliases so values pass freely between this package and the CLI internals.
type (
	Environment = config.Environment
	Settings    = config.Settings
	Key         = config.Key
	Link        = config.Link
	FileLayers  = config.FileLayers
)

const (
	Development = config.Development
	Publish     = config.Publish
)

// Load returns the built-in settings for env.
func Load(env Environment) Settings { return config.Load(env) }

// Resolve overlays overrides on base; see config.Resolve.
func Resolve(base, overrides Settings) Settings { return config.Resolve(base, overrides) }

// Validate reports missing required keys and mis-typed values.
func Validate(s Settings) error { return config.Validate(s) }

// ParseEnvironment maps "development" or "publish" (and aliases) to an Environment.
func ParseEnvironment(s string) (Environment, error) { return config.ParseEnvironment(s) }

// ResolveFiles applies the global and local layer files found for root.
func ResolveFiles(env Environment, root string) (Settings, error) {
	var layers FileLayers
	if fc, err := config.LoadGlobal(); err == nil {
		layers.Global = &fc
	}
	if fc, err := config.LoadLocal(root); err == nil {
		layers.Local = &fc
	}
	return layers.Resolve(env)
}
