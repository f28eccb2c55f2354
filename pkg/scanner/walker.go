package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/rhukster/find-symlinks/pkg/logging"
)

// Walker enumerates a directory tree in parallel. Create with New, call
// Walk once.
type Walker struct {
	opts   Options
	filter *Filter
	logger zerolog.Logger

	wg  sync.WaitGroup
	sem chan struct{} // bounds concurrent directory reads

	dirs  atomic.Int64
	files atomic.Int64

	mu       sync.Mutex
	symlinks []string

	rootDev  uint64
	checkDev bool
}

// New creates a Walker for the given options.
func New(opts Options) *Walker {
	if opts.Root == "" {
		opts.Root = "."
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Walker{
		opts:   opts,
		filter: newFilter(opts),
		logger: logging.GetLogger("scanner"),
		sem:    make(chan struct{}, workers),
	}
}

// Walk runs the traversal to completion and returns the frozen symlink
// buffer plus the final counters. No entry is produced after Walk returns.
// An unreadable root yields an empty result, not an error; only the target
// resolution phase can abort a run.
func (w *Walker) Walk(ctx context.Context) Result {
	root, err := filepath.Abs(w.opts.Root)
	if err != nil {
		root = w.opts.Root
	}

	info, err := os.Lstat(root)
	if err != nil || !info.IsDir() {
		w.logger.Warn().Err(err).Str("root", root).Msg("Walk root is not a readable directory")
		return Result{}
	}

	// The root itself counts as a traversed directory.
	w.dirs.Add(1)

	if w.opts.OneFilesystem {
		if dev, ok := deviceOf(info); ok {
			w.rootDev, w.checkDev = dev, true
		}
	}

	var stack []scopedIgnore
	if w.opts.RespectGitignore {
		if m, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".git", "info", "exclude")); err == nil {
			stack = append(stack, scopedIgnore{prefix: "", matcher: m})
		}
	}

	w.wg.Add(1)
	go w.walkDir(ctx, root, "", 0, stack)
	w.wg.Wait()

	w.logger.Debug().
		Int64("dirs", w.dirs.Load()).
		Int64("files", w.files.Load()).
		Int("symlinks", len(w.symlinks)).
		Msg("Walk complete")

	return Result{
		Symlinks: w.symlinks,
		Stats:    Stats{Dirs: w.dirs.Load(), Files: w.files.Load()},
	}
}

// walkDir visits one directory: reads it under the semaphore, filters and
// classifies its entries, and spawns a child walker per admitted
// subdirectory. depth is the depth assigned to this directory's entries.
func (w *Walker) walkDir(ctx context.Context, dir, rel string, depth int, ignores []scopedIgnore) {
	defer w.wg.Done()

	select {
	case <-ctx.Done():
		return
	default:
	}

	w.sem <- struct{}{}
	entries, err := os.ReadDir(dir)
	<-w.sem
	if err != nil {
		// Skipped, never fatal: the tree may be mutating under the scan.
		w.logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return
	}

	if w.opts.RespectGitignore {
		if m, err := gitignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil {
			// Full-slice append: sibling walkers share the parent stack.
			ignores = append(ignores[:len(ignores):len(ignores)], scopedIgnore{prefix: rel, matcher: m})
		}
	}

	for _, de := range entries {
		name := de.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		e := Entry{
			Path:  filepath.Join(dir, name),
			Rel:   childRel,
			Type:  classify(de.Type()),
			Depth: depth,
		}

		if !w.filter.Admit(e) {
			continue
		}
		if len(ignores) > 0 && ignoredByStack(ignores, e) {
			continue
		}

		switch e.Type {
		case TypeDir:
			if w.checkDev && w.crossesBoundary(de) {
				continue
			}
			w.dirs.Add(1)
			if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
				continue
			}
			w.wg.Add(1)
			go w.walkDir(ctx, e.Path, childRel, depth+1, ignores)
		case TypeFile:
			w.files.Add(1)
		case TypeSymlink:
			// Symlinks are buffered, never descended into: a directory
			// reached only through a link is not re-traversed, which keeps
			// cyclic links from looping the walk.
			w.mu.Lock()
			w.symlinks = append(w.symlinks, e.Path)
			w.mu.Unlock()
		}
	}
}

// crossesBoundary reports whether the directory entry sits on a different
// device than the walk root.
func (w *Walker) crossesBoundary(de os.DirEntry) bool {
	info, err := de.Info()
	if err != nil {
		return true
	}
	dev, ok := deviceOf(info)
	return ok && dev != w.rootDev
}
