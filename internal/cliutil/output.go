// Package cliutil holds helpers shared by the planerender commands.
package cliutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cartesian-plane/internal/profile"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Output formats understood by WriteOutput.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteOutput encodes v as JSON or YAML. Text output is left to the
// caller, so FormatText is rejected here.
func WriteOutput(w io.Writer, format string, v any) error {
	var out []byte
	var err error

	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case FormatJSON:
		out, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	_, err = w.Write(out)
	return err
}

// LoadProfile returns the built-in defaults for an empty path, or the
// profile stored at path. Invalid lines are logged and skipped; only a
// file that cannot be read is an error.
func LoadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}

	p, err := profile.LoadFile(path)
	var list profile.ErrorList
	switch {
	case err == nil:
	case errors.As(err, &list):
		for _, e := range list {
			log.Warn("Skipping invalid profile line", "path", path, "line", e.Line, "error", e.Err)
		}
	default:
		return nil, err
	}
	log.Debug("Loaded profile", "path", path, "name", p.Name)
	return p, nil
}
