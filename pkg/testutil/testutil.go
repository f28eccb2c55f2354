// Package testutil provides helpers for building filesystem fixtures used
// by the scanner, resolver and finder tests. Trees are described as a map
// from relative path to content, with two conventions:
//
//   - a value of the form "-> TARGET" creates a symlink to TARGET
//   - a path with a trailing "/" creates an (empty) directory
//
// Parent directories are created implicitly.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempTree materializes the described tree under a fresh temp directory
// and returns its root.
func TempTree(t *testing.T, entries map[string]string) string {
	t.Helper()
	root := t.TempDir()
	MakeTree(t, root, entries)
	return root
}

// MakeTree materializes the described tree under root.
func MakeTree(t *testing.T, root string, entries map[string]string) {
	t.Helper()
	for rel, content := range entries {
		path := filepath.Join(root, rel)
		switch {
		case strings.HasSuffix(rel, "/"):
			require.NoError(t, os.MkdirAll(path, 0755))
		case strings.HasPrefix(content, "-> "):
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			target := strings.TrimPrefix(content, "-> ")
			require.NoError(t, os.Symlink(target, path))
		default:
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		}
	}
}

// Symlink creates a single symlink at root/rel pointing at target.
func Symlink(t *testing.T, root, rel, target string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.Symlink(target, path))
	return path
}

// WriteFile creates a single file at root/rel with the given content.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
