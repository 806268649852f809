package app

import (
	"os"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/femodel/pkg/model"
	"github.com/mandelsoft/femodel/pkg/storage"
)

const CONFIG_FILE = ".femctl"

// ENV_PREFIX is the prefix of environment variables overriding
// config file settings, for example FEMCTL_DIALECT.
const ENV_PREFIX = "FEMCTL"

const (
	KEY_DIALECT    = "dialect"
	KEY_LOG_LEVEL  = "logLevel"
	KEY_SUBSTITUTE = "substitute"
	KEY_OUTPUT     = "output"
)

type Config struct {
	Dialect    *string `json:"dialect,omitempty"`
	LogLevel   *string `json:"logLevel,omitempty"`
	Substitute *bool   `json:"substitute,omitempty"`
	Output     *string `json:"output,omitempty"`
}

// Settings are the effective settings after merging config
// files, environment and defaults.
type Settings struct {
	Dialect    model.Dialect
	LogLevel   string
	Substitute bool
	Output     storage.Format
}

// GetConfig merges the config files found in the home directory,
// the user config directory and the current directory.
func GetConfig(fs vfs.FileSystem) *Config {
	var cfg Config

	dir, err := os.UserHomeDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	dir, err = os.UserConfigDir()
	if err == nil {
		MergeConfig(&cfg, ReadConfig(fs, filepath.Join(dir, CONFIG_FILE)))
	}
	MergeConfig(&cfg, ReadConfig(fs, CONFIG_FILE))
	return &cfg
}

func ReadConfig(fs vfs.FileSystem, path string) *Config {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil
	}
	return &cfg
}

func MergeConfig(cfg *Config, add *Config) {
	if add == nil {
		return
	}
	if add.Dialect != nil {
		cfg.Dialect = add.Dialect
	}
	if add.LogLevel != nil {
		cfg.LogLevel = add.LogLevel
	}
	if add.Substitute != nil {
		cfg.Substitute = add.Substitute
	}
	if add.Output != nil {
		cfg.Output = add.Output
	}
}

// Settings resolves the effective settings. Environment
// variables take precedence over the config files.
func (c *Config) Settings() (*Settings, error) {
	v := viper.New()
	v.SetDefault(KEY_DIALECT, string(model.TCL))
	v.SetDefault(KEY_LOG_LEVEL, "info")
	v.SetDefault(KEY_SUBSTITUTE, true)
	v.SetDefault(KEY_OUTPUT, string(storage.YAML))

	// config file settings replace the built-in defaults
	if c.Dialect != nil {
		v.SetDefault(KEY_DIALECT, *c.Dialect)
	}
	if c.LogLevel != nil {
		v.SetDefault(KEY_LOG_LEVEL, *c.LogLevel)
	}
	if c.Substitute != nil {
		v.SetDefault(KEY_SUBSTITUTE, *c.Substitute)
	}
	if c.Output != nil {
		v.SetDefault(KEY_OUTPUT, *c.Output)
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	d, err := model.ParseDialect(v.GetString(KEY_DIALECT))
	if err != nil {
		return nil, err
	}
	f, err := storage.ParseFormat(v.GetString(KEY_OUTPUT))
	if err != nil {
		return nil, err
	}
	return &Settings{
		Dialect:    d,
		LogLevel:   v.GetString(KEY_LOG_LEVEL),
		Substitute: v.GetBool(KEY_SUBSTITUTE),
		Output:     f,
	}, nil
}
