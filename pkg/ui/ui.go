// Package ui renders what a run did, in one of several formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/shortcut-maker/pkg/types"
	"github.com/arthur-debert/shortcut-maker/pkg/ui/json"
	"github.com/arthur-debert/shortcut-maker/pkg/ui/terminal"
	"github.com/arthur-debert/shortcut-maker/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderAction renders one action as it happens.
	RenderAction(action types.Action, dryRun bool) error

	// RenderSummary renders the end of a run. Renderers that stream actions
	// only print a line when nothing changed.
	RenderSummary(report *types.Report, shortcutRoot string) error

	// RenderUsage renders a command line usage problem
	RenderUsage(msg string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates the renderer for format, resolving FormatAuto
// against output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
