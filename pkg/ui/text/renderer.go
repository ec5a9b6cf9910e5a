// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

// DryRunPrefix starts every line printed during a dry run.
const DryRunPrefix = "[dry run] "

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderAction prints the action line.
func (r *Renderer) RenderAction(action types.Action, dryRun bool) error {
	_, err := fmt.Fprintln(r.output, Prefix(dryRun)+action.Message())
	return err
}

// RenderSummary prints the no changes line when the run changed nothing.
func (r *Renderer) RenderSummary(report *types.Report, shortcutRoot string) error {
	if !report.NoChanges() {
		return nil
	}
	_, err := fmt.Fprintln(r.output, Prefix(report.DryRun)+NoChangesMessage(shortcutRoot))
	return err
}

// RenderUsage renders a usage problem
func (r *Renderer) RenderUsage(msg string) error {
	_, err := fmt.Fprintf(r.output, "Usage: %s\n", msg)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errors.Message(err))
	return werr
}

// NoChangesMessage is the line printed when a run changed nothing.
func NoChangesMessage(shortcutRoot string) string {
	return fmt.Sprintf("No changes made to: '%s'", shortcutRoot)
}

// Prefix returns the line prefix for dry runs, or "".
func Prefix(dryRun bool) string {
	if dryRun {
		return DryRunPrefix
	}
	return ""
}
