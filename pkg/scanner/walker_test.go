package scanner_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhukster/find-symlinks/pkg/scanner"
	"github.com/rhukster/find-symlinks/pkg/testutil"
)

func walk(t *testing.T, opts scanner.Options) scanner.Result {
	t.Helper()
	return scanner.New(opts).Walk(context.Background())
}

func optsAt(root string) scanner.Options {
	o := scanner.DefaultOptions()
	o.Root = root
	return o
}

func TestWalkBasic(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"real":      "content",
		"a/one.txt": "1",
		"a/b/two":   "2",
		"a/link1":   "-> ../real",
		"c/link2":   "-> /nowhere",
	})

	res := walk(t, optsAt(root))

	// root, a, a/b, c
	assert.Equal(t, int64(4), res.Stats.Dirs)
	assert.Equal(t, int64(3), res.Stats.Files)

	sort.Strings(res.Symlinks)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "link1"),
		filepath.Join(root, "c", "link2"),
	}, res.Symlinks)
}

func TestWalkDoesNotFollowSymlinks(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"dir/file.txt": "x",
	})
	// A cycle back to the root must not loop the walk, and the linked
	// directory must not be re-traversed.
	testutil.Symlink(t, root, "dir/loop", "..")

	res := walk(t, optsAt(root))

	assert.Equal(t, int64(2), res.Stats.Dirs)
	assert.Equal(t, int64(1), res.Stats.Files)
	assert.Equal(t, []string{filepath.Join(root, "dir", "loop")}, res.Symlinks)
}

func TestWalkDepthBoundary(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"top.txt":      "x",
		"sub/file.txt": "x",
	})
	testutil.Symlink(t, root, "toplink", "top.txt")
	testutil.Symlink(t, root, "sub/nested", "file.txt")

	opts := optsAt(root)
	opts.MaxDepth = 0
	res := walk(t, opts)

	// Only entries directly under the root: sub is seen but not entered.
	assert.Equal(t, int64(2), res.Stats.Dirs)
	assert.Equal(t, int64(1), res.Stats.Files)
	assert.Equal(t, []string{filepath.Join(root, "toplink")}, res.Symlinks)
}

func TestWalkHeavyDirectories(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"real":              "content",
		"src/main.go":       "x",
		"node_modules/deep": "x",
	})
	testutil.Symlink(t, root, "node_modules/link", "../real")

	t.Run("pruned_by_default", func(t *testing.T) {
		res := walk(t, optsAt(root))
		assert.Empty(t, res.Symlinks)
		assert.Equal(t, int64(2), res.Stats.Dirs) // root, src
	})

	t.Run("negated_glob_does_not_reinclude", func(t *testing.T) {
		opts := optsAt(root)
		opts.IgnoreGlobs = []string{"!node_modules", "!node_modules/**"}
		res := walk(t, opts)
		assert.Empty(t, res.Symlinks)
	})

	t.Run("include_heavy_restores", func(t *testing.T) {
		opts := optsAt(root)
		opts.IncludeHeavy = true
		res := walk(t, opts)
		assert.Equal(t, []string{filepath.Join(root, "node_modules", "link")}, res.Symlinks)
		assert.Equal(t, int64(3), res.Stats.Dirs)
	})
}

func TestWalkHiddenPolicy(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		".dotdir/file": "x",
		"plain.txt":    "x",
	})
	testutil.Symlink(t, root, ".dotlink", "plain.txt")
	testutil.Symlink(t, root, ".dotdir/inner", "../plain.txt")

	t.Run("hidden_scanned_by_default", func(t *testing.T) {
		res := walk(t, optsAt(root))
		assert.Len(t, res.Symlinks, 2)
	})

	t.Run("hidden_excluded", func(t *testing.T) {
		opts := optsAt(root)
		opts.Hidden = false
		res := walk(t, opts)
		assert.Empty(t, res.Symlinks)
		assert.Equal(t, int64(1), res.Stats.Dirs)
		assert.Equal(t, int64(1), res.Stats.Files)
	})
}

func TestWalkIgnoreGlobs(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"keep.txt": "x",
	})
	testutil.Symlink(t, root, "skipped.bak", "keep.txt")
	testutil.Symlink(t, root, "kept.bak", "keep.txt")

	opts := optsAt(root)
	opts.IgnoreGlobs = []string{"*.bak", "!kept.bak"}
	res := walk(t, opts)

	assert.Equal(t, []string{filepath.Join(root, "kept.bak")}, res.Symlinks)
}

func TestWalkRespectGitignore(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		".gitignore":     "ignored/\n*.tmp\n",
		"sub/.gitignore": "!special.tmp\n",
		"ignored/x.txt":  "x",
		"sub/a.txt":      "x",
	})
	testutil.Symlink(t, root, "link.tmp", "sub/a.txt")
	testutil.Symlink(t, root, "sub/special.tmp", "a.txt")
	testutil.Symlink(t, root, "ignored/hidden-link", "../sub/a.txt")

	t.Run("disabled_by_default", func(t *testing.T) {
		res := walk(t, optsAt(root))
		assert.Len(t, res.Symlinks, 3)
	})

	t.Run("honored_when_enabled", func(t *testing.T) {
		opts := optsAt(root)
		opts.RespectGitignore = true
		res := walk(t, opts)
		sort.Strings(res.Symlinks)
		// link.tmp ignored by the root .gitignore; ignored/ pruned; the
		// nested .gitignore whitelists special.tmp within sub.
		assert.Equal(t, []string{filepath.Join(root, "sub", "special.tmp")}, res.Symlinks)
	})
}

func TestWalkUnreadableRoot(t *testing.T) {
	res := walk(t, optsAt(filepath.Join(t.TempDir(), "missing")))
	assert.Empty(t, res.Symlinks)
	assert.Equal(t, int64(0), res.Stats.Dirs)
}

func TestWalkConcurrencySafety(t *testing.T) {
	root := t.TempDir()
	entries := map[string]string{}
	for d := 0; d < 100; d++ {
		for f := 0; f < 20; f++ {
			entries[fmt.Sprintf("d%03d/f%02d.txt", d, f)] = "x"
		}
	}
	testutil.MakeTree(t, root, entries)
	for i := 0; i < 50; i++ {
		testutil.Symlink(t, root, fmt.Sprintf("d%03d/link%d", i%100, i), "f00.txt")
	}

	reference := walk(t, func() scanner.Options {
		o := optsAt(root)
		o.Workers = 1
		return o
	}())
	sort.Strings(reference.Symlinks)
	require.Len(t, reference.Symlinks, 50)
	require.Equal(t, int64(101), reference.Stats.Dirs)
	require.Equal(t, int64(2000), reference.Stats.Files)

	for _, workers := range []int{2, 16} {
		t.Run(fmt.Sprintf("workers_%d", workers), func(t *testing.T) {
			opts := optsAt(root)
			opts.Workers = workers
			res := walk(t, opts)
			sort.Strings(res.Symlinks)
			assert.Equal(t, reference.Stats, res.Stats)
			assert.Equal(t, reference.Symlinks, res.Symlinks)
		})
	}
}

func TestWalkSoundness(t *testing.T) {
	root := testutil.TempTree(t, map[string]string{
		"file": "x",
		"dir/": "",
	})
	testutil.Symlink(t, root, "link", "file")

	res := walk(t, optsAt(root))

	// Only symlink-typed entries enter the buffer.
	assert.Equal(t, []string{filepath.Join(root, "link")}, res.Symlinks)
}
