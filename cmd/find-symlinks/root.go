package findsymlinks

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rhukster/find-symlinks/internal/version"
	"github.com/rhukster/find-symlinks/pkg/config"
	"github.com/rhukster/find-symlinks/pkg/errors"
	"github.com/rhukster/find-symlinks/pkg/finder"
	"github.com/rhukster/find-symlinks/pkg/logging"
	"github.com/rhukster/find-symlinks/pkg/scanner"
	"github.com/rhukster/find-symlinks/pkg/ui"
)

type rootFlags struct {
	hidden           bool
	maxDepth         int
	ignore           []string
	ignoreFiles      []string
	includeHeavy     bool
	respectGitignore bool
	oneFilesystem    bool
	threads          int
	json             bool
	noStream         bool
	noTUI            bool
	color            string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		flags     rootFlags
	)

	rootCmd := &cobra.Command{
		Use:     "find-symlinks TARGET",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Args:    cobra.ExactArgs(1),
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.Flags().BoolVar(&flags.hidden, "hidden", true, MsgFlagHidden)
	rootCmd.Flags().IntVar(&flags.maxDepth, "max-depth", -1, MsgFlagMaxDepth)
	rootCmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil, MsgFlagIgnore)
	rootCmd.Flags().StringArrayVar(&flags.ignoreFiles, "ignore-file", nil, MsgFlagIgnoreFile)
	rootCmd.Flags().BoolVar(&flags.includeHeavy, "include-heavy", false, MsgFlagHeavy)
	rootCmd.Flags().BoolVar(&flags.respectGitignore, "respect-gitignore", false, MsgFlagGitignore)
	rootCmd.Flags().BoolVar(&flags.oneFilesystem, "one-filesystem", false, MsgFlagOneFS)
	rootCmd.Flags().IntVar(&flags.threads, "threads", 0, MsgFlagThreads)
	rootCmd.Flags().BoolVar(&flags.json, "json", false, MsgFlagJSON)
	rootCmd.Flags().BoolVar(&flags.noStream, "no-stream", false, MsgFlagNoStream)
	rootCmd.Flags().BoolVar(&flags.noTUI, "no-tui", false, MsgFlagNoTUI)
	rootCmd.Flags().StringVar(&flags.color, "color", "auto", MsgFlagColor)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManualCmd())

	return rootCmd
}

// applyConfigDefaults fills in flag values the user did not set from the
// optional config file. Command line wins over config; config wins over
// built-in defaults. Ignore globs accumulate, config first so command-line
// patterns override them.
func applyConfigDefaults(cmd *cobra.Command, f *rootFlags) {
	d := config.Load()
	fl := cmd.Flags()

	if !fl.Changed("hidden") && d.Hidden != nil {
		f.hidden = *d.Hidden
	}
	if !fl.Changed("max-depth") && d.MaxDepth != nil {
		f.maxDepth = *d.MaxDepth
	}
	if !fl.Changed("include-heavy") && d.IncludeHeavy != nil {
		f.includeHeavy = *d.IncludeHeavy
	}
	if !fl.Changed("respect-gitignore") && d.RespectGitignore != nil {
		f.respectGitignore = *d.RespectGitignore
	}
	if !fl.Changed("one-filesystem") && d.OneFilesystem != nil {
		f.oneFilesystem = *d.OneFilesystem
	}
	if !fl.Changed("threads") && d.Threads != nil {
		f.threads = *d.Threads
	}
	if !fl.Changed("no-stream") && d.NoStream != nil {
		f.noStream = *d.NoStream
	}
	if !fl.Changed("no-tui") && d.NoTUI != nil {
		f.noTUI = *d.NoTUI
	}
	if !fl.Changed("color") && d.Color != nil {
		f.color = *d.Color
	}
	f.ignore = append(append([]string{}, d.Ignore...), f.ignore...)
	f.ignoreFiles = append(append([]string{}, d.IgnoreFiles...), f.ignoreFiles...)
}

func runScan(cmd *cobra.Command, targetPath string, f rootFlags) error {
	applyConfigDefaults(cmd, &f)

	colorMode, err := ui.ParseColorMode(f.color)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --color value")
	}
	ui.ConfigureColors(ui.ColorsEnabled(colorMode, os.Stdout))

	tui := !f.noTUI && !f.json && ui.IsTerminal(os.Stdout)
	streaming := !f.json && !f.noStream

	renderer := ui.NewRenderer()
	progress := ui.NewProgress(tui)

	var streamed atomic.Int64
	events := finder.Events{
		WalkDone: func(stats scanner.Stats, candidates int) {
			progress.FinishWalk()
			progress.StartResolve(candidates)
		},
		CandidateDone: func(string, bool) {
			progress.Increment()
		},
	}
	if streaming {
		// A leading blank line frames the streamed results.
		events.Begin = func() {
			progress.Println("")
		}
		events.Match = func(path string) {
			streamed.Add(1)
			progress.Println(renderer.Match(path))
		}
	}

	progress.StartWalk()
	res, err := finder.Run(cmd.Context(), finder.Options{
		TargetPath: targetPath,
		Scan: scanner.Options{
			Root:             ".",
			Hidden:           f.hidden,
			MaxDepth:         f.maxDepth,
			IncludeHeavy:     f.includeHeavy,
			IgnoreGlobs:      f.ignore,
			IgnoreFiles:      f.ignoreFiles,
			RespectGitignore: f.respectGitignore,
			OneFilesystem:    f.oneFilesystem,
			Workers:          f.threads,
		},
		Workers: f.threads,
	}, events)
	progress.FinishWalk()
	progress.FinishResolve()
	if err != nil {
		return err
	}

	if f.json {
		out, err := renderer.JSON(res)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if !streaming || streamed.Load() == 0 {
		fmt.Println(renderer.ResultsBox(res.Matches))
	}

	// One blank line between results and the stats block.
	fmt.Println()
	fmt.Println(renderer.Stats(res))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("find-symlinks version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
