// Package config resolves where the tools find the repository and its systems config.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/code198x/devenv/internal/store"
)

// EnvPrefix prefixes every environment variable, e.g. CODE198X_ROOT.
const EnvPrefix = "CODE198X"

// Keys shared by flags, environment and defaults.
const (
	KeyRoot    = "root"
	KeyConfig  = "config"
	KeyVerbose = "verbose"
)

// Settings are the resolved tool settings.
type Settings struct {
	Root       string // repository root holding the system directories
	ConfigFile string // systems config, relative to Root unless absolute
	Verbose    bool
}

// ConfigPath returns the path of the systems config.
func (s Settings) ConfigPath() string {
	if filepath.IsAbs(s.ConfigFile) {
		return s.ConfigFile
	}
	return filepath.Join(s.Root, s.ConfigFile)
}

// Load resolves settings from flags, then CODE198X_* environment variables,
// then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyConfig, store.DefaultFile)
	v.SetDefault(KeyVerbose, false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	return Settings{
		Root:       v.GetString(KeyRoot),
		ConfigFile: v.GetString(KeyConfig),
		Verbose:    v.GetBool(KeyVerbose),
	}, nil
}

// AddFlags registers the flags Load understands.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyRoot, ".", "repository root (env "+EnvPrefix+"_ROOT)")
	flags.String(KeyConfig, store.DefaultFile, "systems config file, relative to --root (env "+EnvPrefix+"_CONFIG)")
	flags.BoolP(KeyVerbose, "v", false, "verbose output on stderr")
}
