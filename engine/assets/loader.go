package assets

import "github.com/spaghettifunk/anima-drills/engine/config"

type Loader interface {
	Load(path string) (config.DrillConfig, error)
}

// ConfigLoader reads a drill config file on top of Base.
type ConfigLoader struct {
	Base config.DrillConfig
}

func (cl *ConfigLoader) Load(path string) (config.DrillConfig, error) {
	return config.Load(path, cl.Base)
}
