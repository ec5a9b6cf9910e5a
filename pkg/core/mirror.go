package core

import (
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/shortcut-maker/pkg/links"
	"github.com/arthur-debert/shortcut-maker/pkg/linkstate"
	"github.com/arthur-debert/shortcut-maker/pkg/logging"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
	"github.com/arthur-debert/shortcut-maker/pkg/walker"
)

// MirrorOptions contains everything a run needs.
type MirrorOptions struct {
	Trees      types.Trees
	FileSystem filesystem.FS
	Links      links.Provider
	DryRun     bool
	PruneEmpty bool
	// OnAction is called once per action as it happens.
	OnAction func(types.Action)
}

// Mirror cleans the shortcut tree, then fills it from the target tree. The
// returned report holds the actions of both passes, including the ones made
// before an error aborted the run.
func Mirror(opts MirrorOptions) (*types.Report, error) {
	logger := logging.GetLogger("core.mirror")
	done := logging.LogOperationStart(logger, "mirror")
	defer done()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	logger.Info().
		Str("target", opts.Trees.Target.Root).
		Str("targetFormat", opts.Trees.Target.Format.String()).
		Str("shortcuts", opts.Trees.Shortcut.Root).
		Str("shortcutFormat", opts.Trees.Shortcut.Format.String()).
		Str("links", opts.Links.Name()).
		Bool("dryRun", opts.DryRun).
		Msg("Starting mirror")

	report := types.NewReport(opts.DryRun, nil)
	suffix := opts.Links.Suffix()

	cleanState, err := linkstate.New(types.RoleShortcut, opts.Trees, suffix)
	if err != nil {
		return report, err
	}
	createState, err := linkstate.New(types.RoleTarget, opts.Trees, suffix)
	if err != nil {
		return report, err
	}

	w := walker.New(fsys, opts.Links, walker.Options{
		DryRun:     opts.DryRun,
		PruneEmpty: opts.PruneEmpty,
		Logger:     logger,
		OnAction:   opts.OnAction,
	})

	cleaned, err := w.Clean(cleanState)
	report.Merge(cleaned)
	if err != nil {
		logger.Error().Err(err).Msg("Clean pass failed")
		return report, err
	}

	created, err := w.Create(createState)
	report.Merge(created)
	if err != nil {
		logger.Error().Err(err).Msg("Create pass failed")
		return report, err
	}

	logger.Info().
		Int("removedShortcuts", report.Count(types.ActionRemovedShortcut)).
		Int("removedFolders", report.Count(types.ActionRemovedFolder)).
		Int("createdShortcuts", report.Count(types.ActionCreatedShortcut)).
		Msg("Mirror completed")
	return report, nil
}
