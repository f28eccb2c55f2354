// Package ui renders the scan report: streamed match lines, the boxed
// result panel, the stats block, and machine-readable JSON. It also owns
// color policy and the progress TUI.
package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rhukster/find-symlinks/pkg/finder"
	"github.com/rhukster/find-symlinks/pkg/ui/styles"
)

// Renderer formats scan output for the terminal.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Match renders one streamed match line.
func (r *Renderer) Match(path string) string {
	return styles.GetStyle("Match").Render(path)
}

// Error renders a fatal error message.
func (r *Renderer) Error(err error) string {
	return styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err))
}

// ResultsBox renders the final match set inside a box-drawn panel, used
// when matches were not streamed.
func (r *Renderer) ResultsBox(matches []string) string {
	var lines []string
	if len(matches) == 0 {
		lines = []string{styles.GetStyle("NoMatch").Render("No matches found.")}
	} else {
		for _, m := range matches {
			lines = append(lines, styles.GetStyle("Match").Render(m))
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.GetStyle("Box").GetForeground()).
		Padding(0, 1)

	return box.Render(strings.Join(lines, "\n"))
}

// Stats renders the traversal and resolution counters.
func (r *Renderer) Stats(res *finder.Result) string {
	label := styles.GetStyle("StatLabel")
	value := styles.GetStyle("StatValue")

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", label.Render("Folders traversed:"), value.Render(humanize.Comma(res.Dirs)))
	fmt.Fprintf(&b, "%s %s\n", label.Render("Files traversed:"), value.Render(humanize.Comma(res.Files)))
	fmt.Fprintf(&b, "%s %s\n", label.Render("Symlinks scanned:"), value.Render(humanize.Comma(int64(res.Candidates))))
	fmt.Fprintf(&b, "%s %s\n", label.Render("Matches:"), styles.GetStyle("MatchCount").Render(humanize.Comma(int64(len(res.Matches)))))
	fmt.Fprintf(&b, "%s %.2fs\n", label.Render("Elapsed:"), res.Elapsed.Seconds())
	fmt.Fprintf(&b, "%s %s %s", label.Render("Rate:"),
		styles.GetStyle("Rate").Render(humanize.Comma(int64(res.Rate()))),
		label.Render("symlinks/s"))
	return b.String()
}

// JSON renders the sorted match set as a pretty-printed JSON array, the
// machine-readable mode: no ANSI, no streaming, no stats.
func (r *Renderer) JSON(res *finder.Result) (string, error) {
	matches := res.Matches
	if matches == nil {
		matches = []string{}
	}
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
