package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given contents under dir, creating
// parent directories as needed.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCollectTargets(t *testing.T) {
	t.Run("regular files pass through in order", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "a")
		b := writeFile(t, dir, "b.txt", "b")

		targets := collectTargets([]string{b, a}, false)
		assert.Equal(t, []string{b, a}, targets)
	})

	t.Run("directory without recursive contributes nothing", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")

		targets := collectTargets([]string{dir}, false)
		assert.Empty(t, targets)
	})

	t.Run("directory with recursive walks every file", func(t *testing.T) {
		dir := t.TempDir()
		top := writeFile(t, dir, "top.md", "x")
		nested := writeFile(t, dir, "sub/deep/nested.md", "x")

		targets := collectTargets([]string{dir}, true)
		assert.ElementsMatch(t, []string{top, nested}, targets)
	})

	t.Run("walk order is preserved across inputs", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "one/a.md", "x")
		writeFile(t, dir, "two/b.md", "x")
		extra := writeFile(t, dir, "extra.md", "x")

		targets := collectTargets([]string{filepath.Join(dir, "two"), extra, filepath.Join(dir, "one")}, true)
		assert.Equal(t, []string{
			filepath.Join(dir, "two", "b.md"),
			extra,
			filepath.Join(dir, "one", "a.md"),
		}, targets)
	})

	t.Run("nonexistent paths pass through unchanged", func(t *testing.T) {
		targets := collectTargets([]string{"no/such/file.txt"}, false)
		assert.Equal(t, []string{"no/such/file.txt"}, targets)
	})

	t.Run("mixed files and skipped directory", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "a")
		sub := filepath.Join(dir, "sub")
		writeFile(t, dir, "sub/in.txt", "x")

		targets := collectTargets([]string{a, sub}, false)
		assert.Equal(t, []string{a}, targets)
	})
}
