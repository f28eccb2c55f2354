package resolver

import (
	"runtime"
	"sort"
	"sync"

	"github.com/rhukster/find-symlinks/pkg/logging"
)

// Options configures a resolution run. Callbacks may be invoked from any
// worker goroutine.
type Options struct {
	// Workers bounds the resolution parallelism. 0 = GOMAXPROCS.
	Workers int
	// OnBegin fires exactly once, strictly before the first OnMatch.
	// It is only consulted when OnMatch is set.
	OnBegin func()
	// OnMatch announces a match. It fires after the match set append that
	// produced it, with no ordering guarantee across matches.
	OnMatch func(path string)
	// OnDone fires once per candidate when its outcome is decided.
	OnDone func(path string, matched bool)
}

// Run resolves every candidate against the target in parallel and returns
// the match set sorted by path. Candidates are independent; the mutex is
// held only for the append, never across resolution work.
func Run(candidates []string, target *Target, opts Options) []string {
	if len(candidates) == 0 {
		return nil
	}

	logger := logging.GetLogger("resolver")

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	var (
		mu      sync.Mutex
		matches []string
		begin   sync.Once
	)

	work := make(chan string)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for p := range work {
				matched := target.Matches(p)
				if matched {
					mu.Lock()
					matches = append(matches, p)
					mu.Unlock()
					if opts.OnMatch != nil {
						if opts.OnBegin != nil {
							begin.Do(opts.OnBegin)
						}
						opts.OnMatch(p)
					}
				}
				if opts.OnDone != nil {
					opts.OnDone(p, matched)
				}
			}
		}()
	}

	for _, p := range candidates {
		work <- p
	}
	close(work)
	wg.Wait()

	sort.Strings(matches)

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("matches", len(matches)).
		Str("target", target.Path).
		Msg("Resolution complete")

	return matches
}
