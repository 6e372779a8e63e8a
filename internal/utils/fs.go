package utils

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

const AppName = "seasonfx"

var (
	ConfigFileName = filepath.Join(AppName, "config.toml")
	PrefsFileName  = filepath.Join(AppName, "prefs.toml")
)

// ResolveConfigPath returns the config file to load. A custom path must exist.
// Otherwise the XDG config dirs are searched and "" means none was found.
func ResolveConfigPath(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", errors.Wrapf(err, "config %s", customPath)
		}
		Info("Using custom config: %s", customPath)
		return customPath, nil
	}

	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		Debug("No config file in XDG config dirs, using defaults")
		return "", nil
	}
	Info("Discovered config at: %s", path)
	return path, nil
}

// ResolvePrefsPath returns the preference store location, creating its
// parent directory under $XDG_STATE_HOME.
func ResolvePrefsPath(customPath string) (string, error) {
	if customPath != "" {
		if err := os.MkdirAll(filepath.Dir(customPath), 0755); err != nil {
			return "", errors.Wrap(err, "prefs dir")
		}
		return customPath, nil
	}
	path, err := xdg.StateFile(PrefsFileName)
	if err != nil {
		return "", errors.Wrap(err, "prefs path")
	}
	return path, nil
}
