package jeod

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _jeodconfig{}
)

// _jeodconfig is a "hidden" struct, just use `jeodConfig`
type _jeodconfig struct {
	gimbalLockThreshold float64
	diagEnabled         bool
}

// jeodConfig returns the package configuration, loading it on first use.
// The load is guarded by a sync.Once so that the conversions staying safe
// for unsynchronized concurrent callers includes their very first calls.
// The configuration file is optional: when the JEOD_CONFIG environment
// variable is unset every knob keeps its default. When it is set, it must
// name a directory holding a readable conf.toml.
func jeodConfig() _jeodconfig {
	cfgOnce.Do(func() {
		config = _jeodconfig{gimbalLockThreshold: GimbalLockThreshold, diagEnabled: true}
		confPath := os.Getenv("JEOD_CONFIG")
		if confPath == "" {
			return
		}
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		viper.SetDefault("gimbal.lock_threshold", GimbalLockThreshold)
		viper.SetDefault("diag.enabled", true)
		config.gimbalLockThreshold = viper.GetFloat64("gimbal.lock_threshold")
		config.diagEnabled = viper.GetBool("diag.enabled")
	})
	return config
}
