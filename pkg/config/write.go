package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// GetPath returns the default config file location:
// $XDG_CONFIG_HOME/pagebar/config.yaml, then ~/.config/pagebar/config.yaml,
// then a temp directory.
func GetPath() string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "pagebar", "config.yaml")
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "pagebar", "config.yaml")
	}

	tmpConfig := filepath.Join(os.TempDir(), "pagebar", "config.yaml")

	slog.Warn("could not determine user config directory, using temp path for config",
		slog.String("path", tmpConfig),
		slog.Any("error", err),
	)

	return tmpConfig
}

// WriteDefaultConfig writes the embedded default configuration to path,
// along with its JSON schema. An existing file is kept unless force is set,
// in which case it is renamed to a timestamped backup first.
func WriteDefaultConfig(path string, force bool) error {
	exists := false

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		exists = true
	case err == nil && info.IsDir():
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	case err == nil:
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidPath, path)
	case !os.IsNotExist(err):
		return fmt.Errorf("stat config: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	if exists && force {
		backup := fmt.Sprintf("%s.%d.old", path, time.Now().UnixNano())
		slog.Info("back up existing config file", slog.String("path", backup))

		err = os.Rename(path, backup)
		if err != nil {
			return fmt.Errorf("back up config: %w", err)
		}

		exists = false
	}

	if exists {
		slog.Debug("config file exists, skip write", slog.String("path", path))
	} else {
		slog.Info("write default config", slog.String("path", path))

		err = os.WriteFile(path, defaultConfigYAML, 0o600)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	js, err := Schema()
	if err != nil {
		return err
	}

	schemaPath := filepath.Join(filepath.Dir(path), SchemaFile)
	slog.Debug("write JSON schema", slog.String("path", schemaPath))

	err = os.WriteFile(schemaPath, js, 0o600)
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	return nil
}
