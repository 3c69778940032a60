// Package core provides a small, stable facade over sitecfg's resolver for
// Go programs that want the resolved site settings without shelling out to
// the CLI.
//
// Example:
//
//	s := core.Load(core.Publish)
//	if err := core.Validate(s); err != nil { /* handle */ }
//	_ = core.MarshalSettings(os.Stdout, s)
package core
