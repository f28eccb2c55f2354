package resolver

import (
	"os"
	"path/filepath"

	"github.com/rhukster/find-symlinks/pkg/errors"
)

// identity is a platform-level unique file key (device + inode on Unix).
type identity struct {
	dev uint64
	ino uint64
}

// Target is the canonical path every candidate is compared against.
// Immutable for the run's lifetime; safe for unsynchronized concurrent
// reads.
type Target struct {
	// Path is the fully canonicalized target path.
	Path string

	id    identity
	hasID bool
}

// ResolveTarget canonicalizes the user-supplied path and captures its
// filesystem identity when available. Failure here is the only fatal error
// of a run.
func ResolveTarget(path string) (*Target, error) {
	canon, err := canonicalize(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetResolve, "failed to resolve target %q", path)
	}

	t := &Target{Path: canon}
	if info, err := os.Stat(canon); err == nil {
		if id, ok := fileIdentity(info); ok {
			t.id, t.hasID = id, true
		}
	}
	return t, nil
}

// Matches reports whether the candidate's fully-resolved target equals the
// Target. The identity fast path short-circuits on a hit; any miss or
// unavailability falls back to canonical-path equality. Candidates that
// cannot be resolved (dangling link, permission, race) are non-matches.
func (t *Target) Matches(candidate string) bool {
	if t.hasID {
		if info, err := os.Stat(candidate); err == nil {
			if id, ok := fileIdentity(info); ok && id == t.id {
				return true
			}
		}
	}
	resolved, err := canonicalize(candidate)
	return err == nil && resolved == t.Path
}

// canonicalize returns the absolute path with all symlinks resolved and
// relative segments collapsed.
func canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
