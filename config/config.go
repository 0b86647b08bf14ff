// Package config loads runtime settings from an optional file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"lastinstance/predecessor"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const EnvPrefix = "LASTINSTANCE"

const (
	BackendAuto     = "auto"
	BackendProcfs   = "procfs"
	BackendGopsutil = "gopsutil"
)

type Config struct {
	Backend      string        `mapstructure:"backend"`
	ProcMount    string        `mapstructure:"procMount"`
	ExcludeBy    string        `mapstructure:"excludeBy"`
	FoldCase     bool          `mapstructure:"foldCase"`
	KillTimeout  time.Duration `mapstructure:"killTimeout"`
	WaitExit     bool          `mapstructure:"waitExit"`
	IdleInterval time.Duration `mapstructure:"idleInterval"`
	Color        bool          `mapstructure:"color"`
	Debug        bool          `mapstructure:"debug"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendAuto)
	v.SetDefault("procMount", "/proc")
	v.SetDefault("excludeBy", string(predecessor.ExcludePosition))
	v.SetDefault("foldCase", predecessor.DefaultFoldCase())
	v.SetDefault("killTimeout", 5*time.Second)
	v.SetDefault("waitExit", true)
	v.SetDefault("idleInterval", 10*time.Second)
	v.SetDefault("color", true)
	v.SetDefault("debug", false)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads path (if not empty) into v and decodes the result.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendAuto, BackendProcfs, BackendGopsutil:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if _, err := predecessor.ParseExcludeMode(c.ExcludeBy); err != nil {
		errs = append(errs, err)
	}
	if c.KillTimeout < 0 {
		errs = append(errs, fmt.Errorf("killTimeout must not be negative"))
	}
	if c.IdleInterval <= 0 {
		errs = append(errs, fmt.Errorf("idleInterval must be positive"))
	}

	return multierr.Combine(errs...)
}

// ExcludeMode returns the parsed exclude mode. Call Validate first.
func (c Config) ExcludeMode() predecessor.ExcludeMode {
	m, _ := predecessor.ParseExcludeMode(c.ExcludeBy)
	return m
}
