// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/logging"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
	"github.com/arthur-debert/shortcut-maker/pkg/ui/styles"
	"github.com/arthur-debert/shortcut-maker/pkg/ui/text"
)

// Renderer provides styled output. Lines carry the same words as the text
// renderer so they stay greppable.
type Renderer struct {
	output io.Writer
	styles *styles.Registry
	badge  *pterm.Style
}

// New creates a new terminal renderer writing to w.
func New(w io.Writer) (*Renderer, error) {
	return NewWithRenderer(w, lipgloss.NewRenderer(w))
}

// NewWithRenderer creates a terminal renderer using an explicit lipgloss
// renderer, which fixes the color profile.
func NewWithRenderer(w io.Writer, renderer *lipgloss.Renderer) (*Renderer, error) {
	logger := logging.GetLogger("ui.terminal")
	logger.Debug().
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Terminal renderer created")

	return &Renderer{
		output: w,
		styles: styles.Default(renderer),
		badge:  pterm.NewStyle(pterm.FgYellow, pterm.Bold),
	}, nil
}

func (r *Renderer) prefix(dryRun bool) string {
	if !dryRun {
		return ""
	}
	return r.styles.Render("DryRun", strings.TrimSpace(text.DryRunPrefix)) + " "
}

// RenderAction prints a styled action line.
func (r *Renderer) RenderAction(action types.Action, dryRun bool) error {
	var line string
	switch action.Kind {
	case types.ActionRemovedShortcut:
		line = r.styles.Render("Removed", "Removed shortcut:") + " " + r.styles.Render("Path", action.Path)
	case types.ActionRemovedFolder:
		line = r.styles.Render("Removed", "Removed folder:") + " " + r.styles.Render("Path", action.Path)
	case types.ActionCreatedShortcut:
		line = r.styles.Render("Created", "Shortcut created:") + " " +
			r.styles.Render("Path", action.Path) + " " +
			r.styles.Render("Arrow", "->") + " " +
			r.styles.Render("Target", action.Target)
	default:
		line = action.Message()
	}
	_, err := fmt.Fprintln(r.output, r.prefix(dryRun)+line)
	return err
}

// RenderSummary prints the no changes line, or a count of actions for
// dry runs.
func (r *Renderer) RenderSummary(report *types.Report, shortcutRoot string) error {
	if report.NoChanges() {
		_, err := fmt.Fprintln(r.output, r.prefix(report.DryRun)+
			r.styles.Render("NoChanges", text.NoChangesMessage(shortcutRoot)))
		return err
	}
	if report.DryRun {
		_, err := fmt.Fprintln(r.output, r.badge.Sprintf("%d change(s) would be made, nothing was touched", len(report.Actions)))
		return err
	}
	return nil
}

// RenderUsage renders a usage problem
func (r *Renderer) RenderUsage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", r.styles.Render("Usage", "Usage:"), msg)
	return err
}

// RenderError renders an error with its code kept out of the message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.styles.Render("Error", "Error:"), errors.Message(err))
	return werr
}
