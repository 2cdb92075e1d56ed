package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soundDir(t *testing.T, category string, files ...string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644))
	}
	return root
}

func TestResolve_FindsFirstExtension(t *testing.T) {
	root := soundDir(t, "beeps", "ready.mp3", "ready.wav", "done.ogg")
	r := NewResolver(root, "beeps")

	// .wav is preferred over .mp3 even though both exist.
	path, ok := r.Resolve("ready")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "beeps", "ready.wav"), path)

	path, ok = r.Resolve("done")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "beeps", "done.ogg"), path)
}

func TestResolve_Miss(t *testing.T) {
	root := soundDir(t, "beeps")
	r := NewResolver(root, "beeps")

	_, ok := r.Resolve("nothing")
	assert.False(t, ok)
}

func TestResolve_RejectsTraversal(t *testing.T) {
	root := soundDir(t, "beeps", "ready.wav")
	r := NewResolver(root, "beeps")

	for _, id := range []string{
		"../ready",
		"..",
		"a/../b",
		"sub/ready",
		`sub\ready`,
		"/etc/passwd",
		"",
	} {
		_, ok := r.Resolve(id)
		assert.False(t, ok, "id %q must be rejected", id)
	}
}

func TestResolve_CachesHitsAndMisses(t *testing.T) {
	root := soundDir(t, "beeps", "ready.wav")
	r := NewResolver(root, "beeps")

	path, ok := r.Resolve("ready")
	require.True(t, ok)

	// The first lookup is cached: removing the file afterwards must
	// not change the answer within the same process.
	require.NoError(t, os.Remove(path))
	again, ok := r.Resolve("ready")
	assert.True(t, ok)
	assert.Equal(t, path, again)

	// Misses are cached the same way.
	_, ok = r.Resolve("absent")
	require.False(t, ok)
	require.NoError(t, os.WriteFile(filepath.Join(root, "beeps", "absent.wav"), []byte("x"), 0644))
	_, ok = r.Resolve("absent")
	assert.False(t, ok)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("ready"))
	assert.True(t, ValidID("git_commit"))
	assert.False(t, ValidID("a/b"))
	assert.False(t, ValidID(`a\b`))
	assert.False(t, ValidID("a..b"))
	assert.False(t, ValidID(""))
}
