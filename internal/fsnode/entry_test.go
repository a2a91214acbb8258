package fsnode

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// newTestEntry stats name inside dir; the returned Entry owns its base.
func newTestEntry(t *testing.T, dir, name string) Entry {
	t.Helper()
	e := NewEntry(NewFd(openRaw(t, dir)), name)
	t.Cleanup(e.Close)
	return e
}

func TestEntryRegularFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))

	e := newTestEntry(t, dir, "a.txt")

	assert.NoError(t, e.Err())
	assert.False(t, e.IsDir())
	assert.Equal(t, "a.txt", e.Name())
	assert.EqualValues(t, 5, e.Size())
	assert.Equal(t, "a.txt", e.String())
}

func TestEntryDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	e := newTestEntry(t, dir, "sub")

	assert.NoError(t, e.Err())
	assert.True(t, e.IsDir())
}

func TestEntryMissingNameCapturesError(t *testing.T) {
	e := newTestEntry(t, t.TempDir(), "does-not-exist")

	require.Error(t, e.Err())
	assert.ErrorIs(t, e.Err(), unix.ENOENT)
	assert.False(t, e.IsDir(), "an errored entry is never a directory")

	want := fmt.Sprintf("fstatat: (%d) %s", int(unix.ENOENT), unix.ENOENT.Error())
	assert.Equal(t, want, e.Err().Error())
	assert.Equal(t, "does-not-exist (error: "+want+")", e.String())
}

func TestEntrySymlinkToDirectoryIsNotDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "target"), 0o755))
	require.NoError(t, os.Symlink("target", filepath.Join(dir, "link")))

	e := newTestEntry(t, dir, "link")

	assert.NoError(t, e.Err())
	assert.False(t, e.IsDir(), "lookup must not follow symlinks")
}

func TestEntryIterOnNonDirectoryIsEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), nil, 0o644))

	e := newTestEntry(t, dir, "plain")

	it := e.Iter()
	defer it.Close()
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestEntryByAbsolutePathFromCwd(t *testing.T) {
	dir := t.TempDir()

	e := NewEntry(Cwd(), dir)
	defer e.Close()

	assert.NoError(t, e.Err())
	assert.True(t, e.IsDir())
	assert.Equal(t, dir, e.Name())
}
