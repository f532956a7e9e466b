package qnoise

import (
	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
)

type Config struct {
	ErrorsAfter      bool
	CombineError     bool
	UnitaryTolerance float64
	Seed             uint64
}

func NewConfig() *Config {
	return &Config{
		ErrorsAfter:      true,
		CombineError:     true,
		UnitaryTolerance: 1e-8,
	}
}

/*
LoadConfig reads the noise section of v on top of the defaults. A nil v
falls back to the global viper instance.

	noise:
	  errors_after: true
	  combine_error: true
	  unitary_tolerance: 1e-8
	  seed: 42

A unitary_tolerance of 0 disables the unitarity check. Unset keys keep
their NewConfig value; v itself is only read.
*/
func LoadConfig(v *viper.Viper) *Config {
	if v == nil {
		v = viper.GetViper()
	}

	cfg := NewConfig()

	if v.IsSet("noise.errors_after") {
		cfg.ErrorsAfter = v.GetBool("noise.errors_after")
	}
	if v.IsSet("noise.combine_error") {
		cfg.CombineError = v.GetBool("noise.combine_error")
	}
	if v.IsSet("noise.unitary_tolerance") {
		cfg.UnitaryTolerance = v.GetFloat64("noise.unitary_tolerance")
	}
	if v.IsSet("noise.seed") {
		cfg.Seed = v.GetUint64("noise.seed")
	}

	errnie.Info(
		"LoadConfig - errorsAfter %v, combineError %v, unitaryTolerance %v, seed %v",
		cfg.ErrorsAfter,
		cfg.CombineError,
		cfg.UnitaryTolerance,
		cfg.Seed,
	)

	return cfg
}

// Engine returns the random engine for the given shot. Shots are seeded
// independently so they can run on separate goroutines.
func (cfg *Config) Engine(shot uint64) *Engine {
	return NewEngine(cfg.Seed + shot)
}
