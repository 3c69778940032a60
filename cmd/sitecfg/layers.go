package sitecfg

import (
	"errors"

	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/logger"
)

// loadLayers collects the global and local layer files honoring --config,
// --root and --no-global. The returned sources name every applied layer.
func loadLayers() (config.FileLayers, []string, error) {
	var layers config.FileLayers
	sources := []string{"builtin"}

	if !flagNoGlobal {
		fc, err := config.LoadGlobal()
		switch {
		case err == nil:
			layers.Global = &fc
			sources = append(sources, fc.Path())
		case !errors.Is(err, config.ErrNoConfig):
			return layers, nil, err
		}
	}

	var (
		fc  config.FileConfig
		err error
	)
	if flagConfig != "" {
		fc, err = config.LoadFile(flagConfig)
	} else {
		fc, err = config.LoadLocal(flagRoot)
	}
	switch {
	case err == nil:
		layers.Local = &fc
		sources = append(sources, fc.Path())
	case !errors.Is(err, config.ErrNoConfig):
		return layers, nil, err
	}

	log.WithField("sources", sources).Debug("layer files loaded")
	return layers, sources, nil
}

// resolveSelected resolves the environment named by --env.
func resolveSelected() (config.Environment, config.Settings, []string, error) {
	env, err := config.ParseEnvironment(flagEnv)
	if err != nil {
		return env, nil, nil, err
	}
	layers, sources, err := loadLayers()
	if err != nil {
		return env, nil, nil, err
	}
	s, err := layers.Resolve(env)
	if err != nil {
		return env, nil, nil, err
	}
	log.WithFields(logger.Fields{"env": env, "keys": len(s)}).Debug("resolved")
	return env, s, sources, nil
}

// resolveBoth resolves development and publish from the same layers.
func resolveBoth() (dev, pub config.Settings, sources []string, err error) {
	layers, sources, err := loadLayers()
	if err != nil {
		return nil, nil, nil, err
	}
	if dev, err = layers.Resolve(config.Development); err != nil {
		return nil, nil, nil, err
	}
	if pub, err = layers.Resolve(config.Publish); err != nil {
		return nil, nil, nil, err
	}
	return dev, pub, sources, nil
}
