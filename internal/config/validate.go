package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOrganizer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputRoot) == "" {
		return errors.New("paths.output_root must be set")
	}
	if !filepath.IsAbs(c.Paths.OutputRoot) {
		return fmt.Errorf("paths.output_root must be absolute, got %q", c.Paths.OutputRoot)
	}
	return nil
}

func (c *Config) validateOrganizer() error {
	token := c.Organizer.MarkerToken
	if token == "" {
		return errors.New("organizer.marker_token must not be empty")
	}
	if strings.ContainsAny(token, `/\`) {
		return fmt.Errorf("organizer.marker_token must not contain path separators, got %q", token)
	}
	if strings.ContainsAny(c.Organizer.NoteFilename, `/\`) {
		return fmt.Errorf("organizer.note_filename must be a bare file name, got %q", c.Organizer.NoteFilename)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
