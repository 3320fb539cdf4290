package venv

import (
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

// ConfigFile is the name of the file venv and virtualenv write at the root
// of every environment.
const ConfigFile = "pyvenv.cfg"

// Config is the parsed content of pyvenv.cfg.
type Config struct {
	// Home is the directory of the interpreter the environment was created from.
	Home string

	// Version is the interpreter version, from "version" or "version_info".
	Version string

	IncludeSystemSitePackages bool

	// Executable is the base interpreter path (Python 3.11+).
	Executable string
}

// ReadConfig parses root/pyvenv.cfg. It returns an error satisfying
// os.IsNotExist when the file is absent.
func ReadConfig(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFile)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, err
	}

	section := file.Section(ini.DefaultSection)
	cfg := &Config{
		Home:       section.Key("home").String(),
		Version:    section.Key("version").String(),
		Executable: section.Key("executable").String(),
	}
	if cfg.Version == "" {
		cfg.Version = section.Key("version_info").String()
	}
	cfg.IncludeSystemSitePackages = section.Key("include-system-site-packages").MustBool(false)
	return cfg, nil
}
