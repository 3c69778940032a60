package config

import (
	"github.com/sirupsen/logrus"

	"github.com/sitecfg/sitecfg/internal/logger"
)

var log = logger.Get()

// Resolve overlays overrides on base key by key. Keys present in overrides
// replace the base value; every other base key is carried over unchanged.
// No key is ever removed. Neither argument is modified and the result shares
// no slices or maps with them.
func Resolve(base, overrides Settings) Settings {
	out := base.Clone()
	if out == nil {
		out = make(Settings, len(overrides))
	}
	for k, v := range overrides {
		out[k] = cloneValue(v)
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logger.Fields{
			"base_keys":     len(base),
			"override_keys": len(overrides),
			"resolved_keys": len(out),
		}).Debug("resolved settings layer")
	}
	return out
}

// Load returns the built-in settings for env.
func Load(env Environment) Settings {
	if env == Publish {
		return Resolve(Base(), PublishOverrides())
	}
	return Base()
}
