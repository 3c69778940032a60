package config

import (
	"strings"

	"github.com/samber/oops"
)

// Environment selects which layers are applied.
type Environment int

const (
	Development Environment = iota
	Publish
)

// Environments lists every environment in resolution order.
func Environments() []Environment { return []Environment{Development, Publish} }

func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Publish:
		return "publish"
	default:
		return "unknown"
	}
}

// ParseEnvironment maps a user-facing selector to an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev", "develop":
		return Development, nil
	case "publish", "production", "prod":
		return Publish, nil
	}
	return Development, oops.
		In("config").
		Code("unknown_environment").
		With("value", s).
		Errorf("unknown environment %q (want development or publish)", s)
}
