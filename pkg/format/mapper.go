package format

import (
	"github.com/arthur-debert/shortcut-maker/pkg/errors"
)

// Mapper maps levels of the source format onto positions in the target format.
type Mapper struct {
	source Format
	target Format
	index  []int
}

// NewMapper validates that source and target hold the same categories and
// precomputes the level to index table.
func NewMapper(source, target Format) (*Mapper, error) {
	if !SameCategories(source, target) {
		return nil, errors.Newf(errors.ErrFormatMismatch,
			"Formats need to contain the same elements: %s, %s", source, target).
			WithDetail("source", source.String()).
			WithDetail("target", target.String())
	}

	m := &Mapper{
		source: source.Clone(),
		target: target.Clone(),
		index:  make([]int, len(source)),
	}
	for level, c := range m.source {
		m.index[level] = m.target.Index(c)
	}
	return m, nil
}

// Map returns the category held at level of the source format and the
// position of that category in the target format. A level outside the
// source format means the walk went deeper than the format describes.
func (m *Mapper) Map(level int) (Category, int, error) {
	if level < 0 || level >= len(m.source) {
		return "", -1, errors.Newf(errors.ErrLevelOutOfRange,
			"level %d is outside format %s (depth %d)", level, m.source, len(m.source)).
			WithDetail("level", level)
	}
	return m.source[level], m.index[level], nil
}

// Reverse returns the mapper going from target back to source.
func (m *Mapper) Reverse() *Mapper {
	r, _ := NewMapper(m.target, m.source)
	return r
}

// Depth is the number of levels in both formats.
func (m *Mapper) Depth() int {
	return len(m.source)
}

// Source returns a copy of the format being walked.
func (m *Mapper) Source() Format {
	return m.source.Clone()
}

// Target returns a copy of the format being built.
func (m *Mapper) Target() Format {
	return m.target.Clone()
}
