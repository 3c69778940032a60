// Package config builds the resolved site configuration handed to the site
// generator. A resolved mapping is the built-in Base (development) settings,
// optionally overlaid by the Publish overrides, with YAML layer files from the
// global and repo-local config locations applied through the same Resolve
// step. Construction is pure: nothing here reads the environment except the
// explicit file loaders in file.go.
package config
