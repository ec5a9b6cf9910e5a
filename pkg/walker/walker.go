// Package walker runs the two passes over the trees: the clean pass removes
// stale links from the shortcut tree and prunes the folders they leave
// empty, the create pass adds a link for every leaf directory of the target
// tree that has none yet.
package walker

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/shortcut-maker/pkg/links"
	"github.com/arthur-debert/shortcut-maker/pkg/linkstate"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

// Options configure a Walker.
type Options struct {
	DryRun bool
	// PruneEmpty removes folders of the shortcut tree left empty by the
	// clean pass.
	PruneEmpty bool
	Logger     zerolog.Logger
	// OnAction is called for every action as it happens.
	OnAction func(types.Action)
}

// Walker walks a tree level by level, following its format.
type Walker struct {
	fs     filesystem.FS
	links  links.Provider
	opts   Options
	logger zerolog.Logger
}

// New creates a walker reading trees through fsys and handling links with p.
func New(fsys filesystem.FS, p links.Provider, opts Options) *Walker {
	return &Walker{
		fs:     fsys,
		links:  p,
		opts:   opts,
		logger: opts.Logger.With().Str("links", p.Name()).Bool("dryRun", opts.DryRun).Logger(),
	}
}

// Clean walks the shortcut tree from state and removes links whose target
// no longer exists. The returned report is valid even when an error aborts
// the walk.
func (w *Walker) Clean(state linkstate.State) (*types.Report, error) {
	report := types.NewReport(w.opts.DryRun, w.opts.OnAction)
	root := state.Root()

	if !filesystem.IsDir(w.fs, root) {
		w.logger.Debug().Str("root", root).Msg("Shortcut root does not exist, nothing to clean")
		return report, nil
	}

	w.logger.Info().Str("root", root).Msg("Cleaning shortcut tree")
	empty, err := w.cleanDir(state, root, report)
	if err != nil {
		return report, err
	}
	if empty && w.opts.PruneEmpty {
		if err := w.removeFolder(root, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// cleanDir processes the entries of dir and reports whether dir is left
// empty. In dry run emptiness is derived from what would have been removed.
func (w *Walker) cleanDir(state linkstate.State, dir string, report *types.Report) (bool, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			w.logger.Debug().Str("dir", dir).Msg("Directory vanished, skipping")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrDirRead, "failed to read directory %s", dir)
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		next, err := state.SetPath(path)
		if err != nil {
			return false, err
		}

		if next.Complete() {
			gone, err := w.cleanLeaf(path, report)
			if err != nil {
				return false, err
			}
			if gone {
				removed++
			}
			continue
		}

		if next.IsLeaf() || !entry.IsDir() {
			w.logger.Trace().Str("path", path).Msg("Skipping entry that names no shortcut")
			continue
		}

		empty, err := w.cleanDir(next.Descend(), path, report)
		if err != nil {
			return false, err
		}
		if empty && w.opts.PruneEmpty {
			if err := w.removeFolder(path, report); err != nil {
				return false, err
			}
			removed++
		}
	}

	if w.opts.DryRun {
		return removed == len(entries), nil
	}
	return filesystem.IsEmptyDir(w.fs, dir)
}

// cleanLeaf removes the link at path when its target is gone. It reports
// whether the entry was (or would have been) removed.
func (w *Walker) cleanLeaf(path string, report *types.Report) (bool, error) {
	if !w.links.IsLink(path) {
		w.logger.Trace().Str("path", path).Msg("Not a shortcut, ignoring")
		return false, nil
	}

	target, err := w.links.ReadTarget(path)
	if err != nil {
		w.logger.Warn().Err(err).Str("path", path).Msg("Cannot read shortcut target, skipping")
		return false, nil
	}

	if filesystem.Resolves(w.fs, target) {
		return false, nil
	}

	w.logger.Debug().Str("path", path).Str("target", target).Msg("Shortcut target is gone")
	if !w.opts.DryRun {
		if err := w.links.Delete(path); err != nil {
			return false, err
		}
	}
	report.Add(types.Action{Kind: types.ActionRemovedShortcut, Path: path})
	return true, nil
}

func (w *Walker) removeFolder(path string, report *types.Report) error {
	if !w.opts.DryRun {
		removed, err := filesystem.RemoveEmptyDir(w.fs, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDirRemove, "failed to remove folder %s", path)
		}
		if !removed {
			w.logger.Debug().Str("path", path).Msg("Folder gone or no longer empty, keeping it")
			return nil
		}
	}
	report.Add(types.Action{Kind: types.ActionRemovedFolder, Path: path})
	return nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

// Create walks the target tree from state and creates the missing links.
// Only directories are visited.
func (w *Walker) Create(state linkstate.State) (*types.Report, error) {
	report := types.NewReport(w.opts.DryRun, w.opts.OnAction)
	root := state.Root()

	if !filesystem.IsDir(w.fs, root) {
		w.logger.Debug().Str("root", root).Msg("Target root does not exist, nothing to create")
		return report, nil
	}

	w.logger.Info().Str("root", root).Msg("Creating shortcuts")
	return report, w.createDir(state, root, report)
}

func (w *Walker) createDir(state linkstate.State, dir string, report *types.Report) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			w.logger.Debug().Str("dir", dir).Msg("Directory vanished, skipping")
			return nil
		}
		return errors.Wrapf(err, errors.ErrDirRead, "failed to read directory %s", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !filesystem.IsDir(w.fs, path) {
			continue
		}

		next, err := state.SetPath(path)
		if err != nil {
			return err
		}

		if !next.Complete() {
			if next.IsLeaf() {
				continue
			}
			if err := w.createDir(next.Descend(), path, report); err != nil {
				return err
			}
			continue
		}

		shortcut, err := next.CorrespondingPath()
		if err != nil {
			return err
		}
		if filesystem.Exists(w.fs, shortcut) {
			continue
		}

		if !w.opts.DryRun {
			if err := next.Create(w.links); err != nil {
				return err
			}
		}
		w.logger.Debug().Str("shortcut", shortcut).Str("target", path).Msg("Shortcut created")
		report.Add(types.Action{Kind: types.ActionCreatedShortcut, Path: shortcut, Target: path})
	}
	return nil
}
