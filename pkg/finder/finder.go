// Package finder orchestrates the two scan phases: the parallel traversal
// engine and the resolution pipeline, with a hard barrier between them.
// Resolution never starts before the candidate buffer is frozen, so the
// candidate count is exact and no late-discovered symlink can be missed.
package finder

import (
	"context"
	"math"
	"time"

	"github.com/rhukster/find-symlinks/pkg/logging"
	"github.com/rhukster/find-symlinks/pkg/resolver"
	"github.com/rhukster/find-symlinks/pkg/scanner"
)

// Options configures a full run.
type Options struct {
	// TargetPath is the user-supplied path to match symlinks against.
	// Resolved once at startup; failure aborts the run.
	TargetPath string
	// Scan configures the traversal phase.
	Scan scanner.Options
	// Workers bounds the resolution parallelism. 0 = GOMAXPROCS.
	Workers int
}

// Events are optional observation hooks for the reporting layer. All of
// them may be invoked from worker goroutines except WalkDone, which fires
// on the calling goroutine at the phase barrier.
type Events struct {
	// WalkDone fires once traversal has completed and the candidate
	// buffer is frozen.
	WalkDone func(stats scanner.Stats, candidates int)
	// Begin fires exactly once, strictly before the first Match.
	Begin func()
	// Match announces a discovered match, unordered across workers.
	Match func(path string)
	// CandidateDone fires per candidate as its outcome is decided.
	CandidateDone func(path string, matched bool)
}

// Result is the final report of a completed run.
type Result struct {
	Target     string
	Matches    []string // sorted by path
	Dirs       int64
	Files      int64
	Candidates int
	Elapsed    time.Duration
}

// Rate returns candidate resolutions per second over the whole run.
func (r *Result) Rate() int {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return r.Candidates
	}
	return int(math.Round(float64(r.Candidates) / secs))
}

// Run resolves the target, walks the tree, then resolves every candidate.
// The run succeeds even with zero matches; only target resolution can
// fail.
func Run(ctx context.Context, opts Options, ev Events) (*Result, error) {
	start := time.Now()
	logger := logging.GetLogger("finder")

	target, err := resolver.ResolveTarget(opts.TargetPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("target", target.Path).Msg("Target resolved")

	walk := scanner.New(opts.Scan).Walk(ctx)
	if ev.WalkDone != nil {
		ev.WalkDone(walk.Stats, len(walk.Symlinks))
	}

	matches := resolver.Run(walk.Symlinks, target, resolver.Options{
		Workers: opts.Workers,
		OnBegin: ev.Begin,
		OnMatch: ev.Match,
		OnDone:  ev.CandidateDone,
	})

	res := &Result{
		Target:     target.Path,
		Matches:    matches,
		Dirs:       walk.Stats.Dirs,
		Files:      walk.Stats.Files,
		Candidates: len(walk.Symlinks),
		Elapsed:    time.Since(start),
	}

	logger.Info().
		Int("matches", len(res.Matches)).
		Int("candidates", res.Candidates).
		Dur("elapsed", res.Elapsed).
		Msg("Scan finished")

	return res, nil
}
