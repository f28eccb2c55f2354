package scanner

import "io/fs"

// EntryType classifies a filesystem entry without following symlinks.
type EntryType int

const (
	TypeFile EntryType = iota
	TypeDir
	TypeSymlink
	TypeOther
)

// String returns the string representation of the entry type
func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is one filesystem object observed during traversal. Entries are
// immutable once produced.
type Entry struct {
	Path  string // absolute path
	Rel   string // slash-separated path relative to the walk root
	Type  EntryType
	Depth int // 0 = direct child of the walk root
}

// Stats holds the running traversal counters.
type Stats struct {
	Dirs  int64
	Files int64
}

// Result is the frozen output of a completed walk: the symlink candidate
// buffer (unordered across workers) and the final counters.
type Result struct {
	Symlinks []string
	Stats    Stats
}

// HeavyDirs is the fixed set of conventionally large, generated directories
// pruned from traversal unless Options.IncludeHeavy is set.
var HeavyDirs = []string{
	"node_modules",
	".cache",
	"target",
	"build",
	"dist",
	"out",
	".git",
	".venv",
	"venv",
}

// Options configures a Walker. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Root is the directory to walk. Defaults to the working directory.
	Root string
	// Hidden includes dot-prefixed entries (on by default, find semantics).
	Hidden bool
	// MaxDepth bounds traversal; 0 visits only the root's direct children,
	// negative means unlimited.
	MaxDepth int
	// IncludeHeavy descends into the HeavyDirs set.
	IncludeHeavy bool
	// IgnoreGlobs are gitignore-style patterns matched relative to the walk
	// root. A leading '!' negates (force-include).
	IgnoreGlobs []string
	// IgnoreFiles are extra files of gitignore-style patterns to load.
	IgnoreFiles []string
	// RespectGitignore honors .gitignore files along the walk and the
	// repository exclude file at the root.
	RespectGitignore bool
	// OneFilesystem confines descent to the root's device.
	OneFilesystem bool
	// Workers bounds concurrent directory reads. 0 = GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the conventional defaults.
func DefaultOptions() Options {
	return Options{
		Root:     ".",
		Hidden:   true,
		MaxDepth: -1,
	}
}

func classify(m fs.FileMode) EntryType {
	switch {
	case m&fs.ModeSymlink != 0:
		return TypeSymlink
	case m.IsDir():
		return TypeDir
	case m.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}
