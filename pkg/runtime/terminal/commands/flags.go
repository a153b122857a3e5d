package commands

import (
	"os"
	"path/filepath"

	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/spf13/pflag"
)

// GlobalFlags select where credentials are read from.
type GlobalFlags struct {
	ProfilePath string
	Profile     string
	EnvFile     string
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tableaucfg"
	}
	return filepath.Join(home, ".tableaucfg")
}

func (g *GlobalFlags) Register(flags *pflag.FlagSet) {
	flags.StringVarP(&g.ProfilePath, "config", "c", defaultProfilePath(),
		"Path to the .tableaucfg profile file (default is $HOME/.tableaucfg)")
	flags.StringVar(&g.Profile, "profile", config.DefaultProfile, "Profile section to read from the config file")
	flags.StringVar(&g.EnvFile, "env-file", ".env", "Optional env file with TABLEAU_* variables")
}

func (g *GlobalFlags) LoadOptions() config.LoadOptions {
	return config.LoadOptions{
		ProfilePath: g.ProfilePath,
		Profile:     g.Profile,
		EnvFile:     g.EnvFile,
	}
}
