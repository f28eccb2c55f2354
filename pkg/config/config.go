// Package config loads optional user defaults for find-symlinks from a TOML
// file in the XDG config directory. Every field is a pointer so callers can
// tell "set in the file" apart from "absent"; command-line flags always win
// over file values, which in turn win over built-in defaults.
//
// A missing file is not an error. A malformed file is logged and treated as
// absent — configuration problems never abort a scan.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/rhukster/find-symlinks/pkg/logging"
)

var log = logging.GetLogger("config")

// AppName is the directory name used under the XDG base directories.
const AppName = "find-symlinks"

// Defaults holds user-configured default flag values from config.toml.
type Defaults struct {
	Hidden           *bool    `toml:"hidden"`
	MaxDepth         *int     `toml:"max_depth"`
	IncludeHeavy     *bool    `toml:"include_heavy"`
	RespectGitignore *bool    `toml:"respect_gitignore"`
	OneFilesystem    *bool    `toml:"one_filesystem"`
	Threads          *int     `toml:"threads"`
	NoStream         *bool    `toml:"no_stream"`
	NoTUI            *bool    `toml:"no_tui"`
	Color            *string  `toml:"color"`
	Ignore           []string `toml:"ignore"`
	IgnoreFiles      []string `toml:"ignore_files"`
}

// DefaultPath returns the conventional location of the config file,
// typically ~/.config/find-symlinks/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load reads defaults from the conventional config path.
func Load() Defaults {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads defaults from the given path. Missing or malformed files
// yield the zero value.
func LoadFrom(path string) Defaults {
	logger := log.With().Str("configPath", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Msg("Config file unreadable, using built-in defaults")
		}
		return Defaults{}
	}

	var d Defaults
	if err := toml.Unmarshal(data, &d); err != nil {
		logger.Warn().Err(err).Msg("Config file malformed, using built-in defaults")
		return Defaults{}
	}

	logger.Debug().
		Int("ignore_globs", len(d.Ignore)).
		Int("ignore_files", len(d.IgnoreFiles)).
		Msg("Config loaded")

	return d
}
