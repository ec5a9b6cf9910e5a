package types

import "fmt"

// ActionKind names a mutation performed on the shortcut tree.
type ActionKind string

const (
	ActionRemovedShortcut ActionKind = "removed_shortcut"
	ActionRemovedFolder   ActionKind = "removed_folder"
	ActionCreatedShortcut ActionKind = "created_shortcut"
)

// Action is a single mutation. Target is only set for created shortcuts.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Path   string     `json:"path"`
	Target string     `json:"target,omitempty"`
}

// Message returns the line printed for the action.
func (a Action) Message() string {
	switch a.Kind {
	case ActionRemovedShortcut:
		return fmt.Sprintf("Removed shortcut: %s", a.Path)
	case ActionRemovedFolder:
		return fmt.Sprintf("Removed folder: %s", a.Path)
	case ActionCreatedShortcut:
		return fmt.Sprintf("Shortcut created: %s -> %s", a.Path, a.Target)
	default:
		return fmt.Sprintf("%s: %s", a.Kind, a.Path)
	}
}

// Report accumulates the actions of a run. It is threaded through the walk
// and merged by the driver; an empty report means nothing changed.
type Report struct {
	Actions []Action `json:"actions"`
	DryRun  bool     `json:"dry_run"`

	onAction func(Action)
}

// NewReport creates a report. onAction, when set, is called for every added
// action as it happens.
func NewReport(dryRun bool, onAction func(Action)) *Report {
	return &Report{
		Actions:  []Action{},
		DryRun:   dryRun,
		onAction: onAction,
	}
}

// Add records an action.
func (r *Report) Add(a Action) {
	r.Actions = append(r.Actions, a)
	if r.onAction != nil {
		r.onAction(a)
	}
}

// Merge appends the actions of other without notifying again.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Actions = append(r.Actions, other.Actions...)
}

// NoChanges reports whether the run left the filesystem untouched.
func (r *Report) NoChanges() bool {
	return len(r.Actions) == 0
}

// Count returns the number of actions of kind.
func (r *Report) Count(kind ActionKind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
