package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cartesian-plane/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	profile *profile.Profile
	err     error
}

func startWatcher(t *testing.T, path string) <-chan change {
	t.Helper()
	w, err := NewProfileWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)

	changes := make(chan change, 16)
	w.OnChange(func(p *profile.Profile, err error) {
		changes <- change{p, err}
	})
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)
	return changes
}

func waitChange(t *testing.T, changes <-chan change) change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("no profile change reported")
		return change{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.profile")
	require.NoError(t, os.WriteFile(path, []byte("gridUnit 65\n"), 0o644))

	changes := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("gridUnit 40\n"), 0o644))

	c := waitChange(t, changes)
	require.NoError(t, c.err)
	assert.Equal(t, 40.0, c.profile.GridUnit)
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.profile")
	changes := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("gridUnit 30\nstroke 2\n"), 0o644))

	c := waitChange(t, changes)
	assert.ErrorIs(t, c.err, profile.ErrNoClass)
	require.NotNil(t, c.profile)
	assert.Equal(t, 30.0, c.profile.GridUnit)
}

func TestWatcherAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.profile")
	require.NoError(t, os.WriteFile(path, []byte("gridUnit 65\n"), 0o644))
	changes := startWatcher(t, path)

	tmp := filepath.Join(dir, ".plane.profile.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("gridUnit 80\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	c := waitChange(t, changes)
	require.NoError(t, c.err)
	assert.Equal(t, 80.0, c.profile.GridUnit)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.profile")
	changes := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	select {
	case c := <-changes:
		t.Fatalf("unexpected change: %+v", c)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStartStop(t *testing.T) {
	dir := t.TempDir()
	w, err := NewProfileWatcher(filepath.Join(dir, "p"), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.True(t, filepath.IsAbs(w.Path()))

	w.Stop()
	require.NoError(t, w.Start())
	assert.Error(t, w.Start())
	w.Stop()
	w.Stop()
	require.NoError(t, w.Start())
	w.Stop()
}

func TestWatcherMissingDir(t *testing.T) {
	w, err := NewProfileWatcher(filepath.Join(t.TempDir(), "missing", "p"), 0)
	require.NoError(t, err)
	assert.Error(t, w.Start())
}

func TestStateLoadProfile(t *testing.T) {
	s := NewState()
	assert.Equal(t, profile.Default(), s.Profile())
	assert.Empty(t, s.Path())

	var loaded []*profile.Profile
	var failures []error
	s.On(EventProfileLoaded, func(data any) { loaded = append(loaded, data.(*profile.Profile)) })
	s.On(EventProfileError, func(data any) { failures = append(failures, data.(error)) })

	path := filepath.Join(t.TempDir(), "plane.profile")
	require.NoError(t, os.WriteFile(path, []byte("gridUnit 20\n"), 0o644))
	require.NoError(t, s.LoadProfile(path))
	assert.Equal(t, 20.0, s.Config().GridUnit)
	assert.Equal(t, path, s.Path())
	require.Len(t, loaded, 1)
	assert.Empty(t, failures)

	require.NoError(t, os.WriteFile(path, []byte("gridUnit 30\nbogus 1\n"), 0o644))
	err := s.LoadProfile(path)
	assert.ErrorIs(t, err, profile.ErrUnknownProperty)
	assert.Equal(t, 30.0, s.Config().GridUnit)
	assert.Len(t, loaded, 2)
	assert.Len(t, failures, 1)

	err = s.LoadProfile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 30.0, s.Config().GridUnit)
	assert.Equal(t, path, s.Path())
	assert.Len(t, failures, 2)
}

func TestStateSaveProfile(t *testing.T) {
	s := NewState()
	p := profile.Default()
	p.Name = "Saved"
	s.SetProfile(p)

	// The state keeps its own copy.
	p.GridUnit = 1
	assert.Equal(t, 65.0, s.Profile().GridUnit)

	var saved string
	s.On(EventProfileSaved, func(data any) { saved = data.(string) })

	path := filepath.Join(t.TempDir(), "out.profile")
	require.NoError(t, s.SaveProfile(path))
	assert.Equal(t, path, saved)

	got, err := profile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Saved", got.Name)
}
