package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cartesian-plane/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	v := struct {
		Name  string  `json:"name" yaml:"name"`
		Value float64 `json:"value" yaml:"value"`
	}{"unit", 65}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, FormatJSON, v))
	assert.Equal(t, "{\n  \"name\": \"unit\",\n  \"value\": 65\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteOutput(&buf, FormatYAML, v))
	assert.Equal(t, "name: unit\nvalue: 65\n", buf.String())

	assert.Error(t, WriteOutput(&buf, FormatText, v))
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, profile.Default(), p)

	path := filepath.Join(t.TempDir(), "p.profile")
	require.NoError(t, os.WriteFile(path, []byte("gridUnit 12\nnope 1\n"), 0o644))
	p, err = LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, p.GridUnit)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
