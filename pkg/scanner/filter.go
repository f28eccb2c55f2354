package scanner

import (
	"path"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/rhukster/find-symlinks/pkg/logging"
)

// Decision is the outcome of one filter rule for one entry.
type Decision int

const (
	// Defer means the rule has no opinion; the next rule is consulted.
	Defer Decision = iota
	// Exclude prunes the entry, and for directories the whole subtree.
	Exclude
	// Include keeps the entry and short-circuits the remaining rules.
	Include
)

// Rule is a single filter policy predicate. Rules are evaluated in order
// and the first non-Defer decision wins.
type Rule interface {
	Name() string
	Decide(e Entry) Decision
}

// Filter is the immutable, ordered rule chain consulted by every traversal
// worker. Safe for unsynchronized concurrent reads.
type Filter struct {
	rules []Rule
}

// newFilter builds the rule chain from options: depth bound, heavy-dir
// deny list, hidden-file policy, then user globs merged with ignore-file
// patterns. Gitignore honoring and filesystem confinement need per-branch
// walker state and live in the walker itself.
func newFilter(opts Options) *Filter {
	logger := logging.GetLogger("scanner.filter")

	rules := []Rule{depthRule{max: opts.MaxDepth}}
	if !opts.IncludeHeavy {
		rules = append(rules, newHeavyDirRule())
	}
	if !opts.Hidden {
		rules = append(rules, hiddenRule{})
	}

	var matchers []*gitignore.GitIgnore
	for _, f := range opts.IgnoreFiles {
		m, err := gitignore.CompileIgnoreFile(f)
		if err != nil {
			// Best-effort filtering: a bad ignore file never aborts the run.
			logger.Warn().Err(err).Str("path", f).Msg("Dropping unreadable ignore file")
			continue
		}
		matchers = append(matchers, m)
	}
	if len(opts.IgnoreGlobs) > 0 {
		// Compiled last so command-line globs (and '!' negations) override
		// ignore-file patterns, gitignore style.
		matchers = append(matchers, gitignore.CompileIgnoreLines(opts.IgnoreGlobs...))
	}
	if len(matchers) > 0 {
		rules = append(rules, &ignoreRule{matchers: matchers})
	}

	return &Filter{rules: rules}
}

// Admit reports whether the entry survives the rule chain.
func (f *Filter) Admit(e Entry) bool {
	for _, r := range f.rules {
		switch r.Decide(e) {
		case Exclude:
			return false
		case Include:
			return true
		}
	}
	return true
}

// depthRule prunes entries beyond the configured depth.
type depthRule struct {
	max int
}

func (r depthRule) Name() string { return "depth" }

func (r depthRule) Decide(e Entry) Decision {
	if r.max >= 0 && e.Depth > r.max {
		return Exclude
	}
	return Defer
}

// heavyDirRule prunes directories whose base name is on the fixed deny
// list. Independent of glob negations: only IncludeHeavy disables it.
type heavyDirRule struct {
	names map[string]struct{}
}

func newHeavyDirRule() heavyDirRule {
	names := make(map[string]struct{}, len(HeavyDirs))
	for _, n := range HeavyDirs {
		names[n] = struct{}{}
	}
	return heavyDirRule{names: names}
}

func (r heavyDirRule) Name() string { return "heavy-dir" }

func (r heavyDirRule) Decide(e Entry) Decision {
	if e.Type != TypeDir {
		return Defer
	}
	if _, heavy := r.names[path.Base(e.Rel)]; heavy {
		return Exclude
	}
	return Defer
}

// hiddenRule prunes dot-prefixed entries. Only installed when hidden
// entries are excluded by policy.
type hiddenRule struct{}

func (r hiddenRule) Name() string { return "hidden" }

func (r hiddenRule) Decide(e Entry) Decision {
	if strings.HasPrefix(path.Base(e.Rel), ".") {
		return Exclude
	}
	return Defer
}

// ignoreRule evaluates the merged gitignore-style matchers against the
// entry's root-relative path. Matchers are consulted in order and the last
// one with an opinion wins, so later (command-line) patterns override
// earlier (ignore-file) ones, including '!' force-includes.
type ignoreRule struct {
	matchers []*gitignore.GitIgnore
}

func (r *ignoreRule) Name() string { return "ignore" }

func (r *ignoreRule) Decide(e Entry) Decision {
	d := Defer
	for _, m := range r.matchers {
		if ignored, ok := matchOpinion(m, e); ok {
			if ignored {
				d = Exclude
			} else {
				d = Include
			}
		}
	}
	return d
}

// matchOpinion reports whether the matcher has an opinion on the entry
// and, if so, whether it ignores it. Directories are retried with a
// trailing slash so "dir/" patterns apply.
func matchOpinion(m *gitignore.GitIgnore, e Entry) (ignored, ok bool) {
	ignored, how := m.MatchesPathHow(e.Rel)
	if how == nil && e.Type == TypeDir {
		ignored, how = m.MatchesPathHow(e.Rel + "/")
	}
	return ignored, how != nil
}

// scopedIgnore is one .gitignore (or exclude file) discovered during the
// walk, scoped to the directory that contains it.
type scopedIgnore struct {
	prefix  string // root-relative dir of the file, "" at the root
	matcher *gitignore.GitIgnore
}

// relTo rebases a root-relative path onto this scope. ok is false when the
// path is outside the scope.
func (s scopedIgnore) relTo(rel string) (string, bool) {
	if s.prefix == "" {
		return rel, true
	}
	trimmed := strings.TrimPrefix(rel, s.prefix+"/")
	if trimmed == rel {
		return "", false
	}
	return trimmed, true
}

// ignoredByStack applies the inherited .gitignore stack to an entry.
// Deeper files appear later in the stack and override shallower ones.
func ignoredByStack(stack []scopedIgnore, e Entry) bool {
	ignored := false
	for _, s := range stack {
		rel, ok := s.relTo(e.Rel)
		if !ok {
			continue
		}
		scoped := Entry{Rel: rel, Type: e.Type}
		if m, hasOpinion := matchOpinion(s.matcher, scoped); hasOpinion {
			ignored = m
		}
	}
	return ignored
}
