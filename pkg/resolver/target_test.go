package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhukster/find-symlinks/pkg/errors"
)

func TestResolveTarget(t *testing.T) {
	t.Run("canonicalizes_through_symlinks", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real")
		require.NoError(t, os.WriteFile(real, []byte("x"), 0644))
		link := filepath.Join(dir, "alias")
		require.NoError(t, os.Symlink(real, link))

		target, err := ResolveTarget(link)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(real)
		require.NoError(t, err)
		assert.Equal(t, want, target.Path)
	})

	t.Run("missing_target_is_fatal", func(t *testing.T) {
		_, err := ResolveTarget(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetResolve))
	})
}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	other := filepath.Join(dir, "other")
	require.NoError(t, os.WriteFile(real, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(other, []byte("y"), 0644))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))
	wrong := filepath.Join(dir, "wrong")
	require.NoError(t, os.Symlink(other, wrong))
	dangling := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), dangling))

	target, err := ResolveTarget(real)
	require.NoError(t, err)

	assert.True(t, target.Matches(link))
	assert.False(t, target.Matches(wrong))
	assert.False(t, target.Matches(dangling))
	assert.False(t, target.Matches(filepath.Join(dir, "nonexistent")))
}

// The identity fast path and the canonicalization fallback must agree on
// every candidate.
func TestFastSlowAgreement(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	decoy := filepath.Join(dir, "decoy")
	require.NoError(t, os.WriteFile(real, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(decoy, []byte("x"), 0644))

	candidates := []string{
		filepath.Join(dir, "direct"),
		filepath.Join(dir, "chained"),
		filepath.Join(dir, "todecoy"),
		filepath.Join(dir, "broken"),
	}
	require.NoError(t, os.Symlink(real, candidates[0]))
	require.NoError(t, os.Symlink(candidates[0], candidates[1]))
	require.NoError(t, os.Symlink(decoy, candidates[2]))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), candidates[3]))

	fast, err := ResolveTarget(real)
	require.NoError(t, err)

	slow := &Target{Path: fast.Path} // identity stripped: always canonicalizes

	for _, c := range candidates {
		assert.Equal(t, slow.Matches(c), fast.Matches(c), c)
	}
}
