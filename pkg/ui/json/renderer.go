// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

// Renderer provides JSON output for machine consumption. Actions are not
// streamed; the summary carries all of them in a single document.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// Summary is the document written at the end of a run.
type Summary struct {
	ShortcutRoot string         `json:"shortcut_root"`
	DryRun       bool           `json:"dry_run"`
	NoChanges    bool           `json:"no_changes"`
	Actions      []types.Action `json:"actions"`
}

// Problem is the document written for usage problems and errors.
type Problem struct {
	Kind    string `json:"kind"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderAction does nothing; see RenderSummary.
func (r *Renderer) RenderAction(types.Action, bool) error {
	return nil
}

// RenderSummary renders the whole report
func (r *Renderer) RenderSummary(report *types.Report, shortcutRoot string) error {
	actions := report.Actions
	if actions == nil {
		actions = []types.Action{}
	}
	return r.encoder.Encode(Summary{
		ShortcutRoot: shortcutRoot,
		DryRun:       report.DryRun,
		NoChanges:    report.NoChanges(),
		Actions:      actions,
	})
}

// RenderUsage renders a usage problem as JSON
func (r *Renderer) RenderUsage(msg string) error {
	return r.encoder.Encode(Problem{Kind: "usage", Message: msg})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(Problem{
		Kind:    "error",
		Code:    string(errors.GetErrorCode(err)),
		Message: errors.Message(err),
	})
}
