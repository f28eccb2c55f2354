package ui

import (
	"sync"

	"github.com/pterm/pterm"
)

// Progress renders the two-phase TUI: a spinner while the walker runs and
// a determinate bar while candidates resolve. All methods are safe from
// concurrent resolution workers and are no-ops when disabled.
type Progress struct {
	enabled bool

	mu      sync.Mutex
	spinner *pterm.SpinnerPrinter
	bar     *pterm.ProgressbarPrinter
}

// NewProgress creates a Progress; pass enabled=false for --no-tui, JSON
// mode, or non-terminal output.
func NewProgress(enabled bool) *Progress {
	return &Progress{enabled: enabled}
}

// StartWalk shows the traversal spinner.
func (p *Progress) StartWalk() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Walking filesystem…")
}

// FinishWalk clears the traversal spinner.
func (p *Progress) FinishWalk() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
}

// StartResolve shows the determinate resolution bar.
func (p *Progress) StartResolve(total int) {
	if !p.enabled || total == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bar, _ = pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Checking symlinks").
		WithRemoveWhenDone(true).
		Start()
}

// Increment advances the resolution bar by one candidate.
func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		p.bar.Increment()
	}
}

// FinishResolve clears the resolution bar.
func (p *Progress) FinishResolve() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}

// Println prints a line above any live TUI element.
func (p *Progress) Println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pterm.Println(s)
}
