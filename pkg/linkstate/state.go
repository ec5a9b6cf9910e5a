// Package linkstate holds the cursor used while walking one tree to build the
// matching path in the other tree.
//
// A State is immutable. SetPath and Descend return new values, so the state
// held by a parent directory is never changed by the walk of its children.
package linkstate

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/format"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

// Creator is the part of a link provider needed to materialise a link.
type Creator interface {
	Create(shortcutPath, targetPath string) error
}

// State is the traversal cursor for one level of the walk.
type State struct {
	exploring types.Role
	trees     types.Trees
	mapper    *format.Mapper
	suffix    string
	level     int
	current   string
	values    []string
}

// New creates the level 0 state for walking the tree playing exploring.
func New(exploring types.Role, trees types.Trees, suffix string) (State, error) {
	source := trees.Select(exploring)
	target := trees.Select(exploring.Other())

	mapper, err := format.NewMapper(source.Format, target.Format)
	if err != nil {
		return State{}, err
	}

	return State{
		exploring: exploring,
		trees:     trees.Clone(),
		mapper:    mapper,
		suffix:    suffix,
		values:    make([]string, mapper.Depth()),
	}, nil
}

// SetPath records path as the entry visited at the current level. Its base
// name, without the link suffix when walking the shortcut tree, is stored in
// the slot the current category occupies in the other format.
func (s State) SetPath(path string) (State, error) {
	_, index, err := s.mapper.Map(s.level)
	if err != nil {
		return State{}, err
	}

	next := s.clone()
	next.current = path
	next.values[index] = s.segment(path)
	return next, nil
}

func (s State) segment(path string) string {
	name := filepath.Base(path)
	if s.exploring == types.RoleShortcut && s.suffix != "" && strings.HasSuffix(name, s.suffix) {
		name = strings.TrimSuffix(name, s.suffix)
	}
	return name
}

// Complete reports whether every slot of the other format has a value.
func (s State) Complete() bool {
	for _, v := range s.values {
		if v == "" {
			return false
		}
	}
	return true
}

// CorrespondingPath returns the path in the other tree matching the current
// entry. Paths in the shortcut tree carry the link suffix.
func (s State) CorrespondingPath() (string, error) {
	if !s.Complete() {
		return "", errors.Newf(errors.ErrIncompleteState,
			"cannot build a path from incomplete state at level %d under %s", s.level, s.Root()).
			WithDetail("values", s.Values())
	}

	other := s.trees.Select(s.exploring.Other())
	parts := make([]string, 0, len(s.values)+1)
	parts = append(parts, other.Root)
	parts = append(parts, s.values...)
	path := filepath.Join(parts...)

	if other.Role == types.RoleShortcut {
		path += s.suffix
	}
	return path, nil
}

// Descend returns the state for the level below the current entry.
func (s State) Descend() State {
	next := s.clone()
	next.level++
	return next
}

// Create makes a link at the corresponding path pointing at the current entry.
func (s State) Create(c Creator) error {
	shortcut, err := s.CorrespondingPath()
	if err != nil {
		return err
	}
	if err := c.Create(shortcut, s.current); err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "failed to create shortcut %s", shortcut).
			WithDetail("target", s.current)
	}
	return nil
}

// IsLeaf reports whether the current level is the last one of the format.
func (s State) IsLeaf() bool {
	return s.level == s.mapper.Depth()-1
}

// Level is the depth of the current entry, 0 being a direct child of the root.
func (s State) Level() int { return s.level }

// Depth is the number of levels in the formats.
func (s State) Depth() int { return s.mapper.Depth() }

// Exploring is the role of the tree being walked.
func (s State) Exploring() types.Role { return s.exploring }

// Suffix is the link suffix.
func (s State) Suffix() string { return s.suffix }

// Root is the root of the tree being walked.
func (s State) Root() string {
	return s.trees.Select(s.exploring).Root
}

// Current is the last path recorded with SetPath, or the root before any.
func (s State) Current() string {
	if s.current == "" {
		return s.Root()
	}
	return s.current
}

// Values returns a copy of the slot values, in the order of the other format.
func (s State) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

func (s State) clone() State {
	next := s
	next.values = s.Values()
	return next
}
