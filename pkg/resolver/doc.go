// Package resolver implements the resolution and match pipeline: a
// data-parallel fan-out over the frozen candidate list produced by the
// scanner. Each candidate is checked with a cheap device+inode comparison
// where the platform offers one, falling back to full path
// canonicalization. Resolution failures are non-matches, never errors.
package resolver
