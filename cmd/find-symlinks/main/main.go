package main

import (
	"fmt"
	"os"

	findsymlinks "github.com/rhukster/find-symlinks/cmd/find-symlinks"
	"github.com/rhukster/find-symlinks/pkg/ui"
)

func main() {
	rootCmd := findsymlinks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.NewRenderer().Error(err))
		os.Exit(1)
	}
}
