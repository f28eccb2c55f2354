package findsymlinks

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed manual.md
var manualMD string

// newManualCmd renders the embedded manual as rich terminal markdown,
// falling back to the raw text when rendering is unavailable.
func newManualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manual",
		Short: MsgManualShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				fmt.Print(manualMD)
				return
			}
			out, err := renderer.Render(manualMD)
			if err != nil {
				fmt.Print(manualMD)
				return
			}
			fmt.Print(out)
		},
	}
}
