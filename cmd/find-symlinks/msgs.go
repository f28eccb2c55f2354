package findsymlinks

// User-facing command and flag descriptions.
const (
	MsgRootShort = "Fast parallel symlink finder"

	MsgRootLong = `find-symlinks walks a directory tree in parallel and reports every
symbolic link whose fully-resolved target is the given path.

The walk starts at the current working directory. Matches stream as they
are found (on a terminal), followed by a summary of traversal statistics.`

	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagHidden     = "Scan hidden files and folders (on by default, matches find)"
	MsgFlagMaxDepth   = "Maximum depth to recurse (-1 = unlimited)"
	MsgFlagIgnore     = "Additional ignore glob (gitignore-style, '!' negates). Repeatable"
	MsgFlagIgnoreFile = "Additional ignore file to load patterns from. Repeatable"
	MsgFlagHeavy      = "Include heavy directories like node_modules, .cache, target"
	MsgFlagGitignore  = "Respect .gitignore during scan"
	MsgFlagOneFS      = "Do not cross filesystem boundaries"
	MsgFlagThreads    = "Thread count for traversal and resolution (0 = auto)"
	MsgFlagJSON       = "Emit JSON array of matches"
	MsgFlagNoStream   = "Disable streaming matches; only show final boxed summary"
	MsgFlagNoTUI      = "Disable spinner and progress output"
	MsgFlagColor      = "Color output: auto, always, or never"
	MsgManualShort    = "Show the full manual"
	MsgVersionShort   = "Print version information"
)
