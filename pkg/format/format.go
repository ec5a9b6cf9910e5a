package format

import (
	"strings"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
)

// Category is a named path segment role, such as "name" or "year".
type Category string

// Format is an ordered list of distinct categories, outermost level first.
type Format []Category

// Parse splits a format string on path separators. Both "/" and "\" are
// accepted so formats written on either platform parse the same way.
func Parse(s string) (Format, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(fields) == 0 {
		return nil, errors.Newf(errors.ErrEmptyArgument, "Format argument invalid: '%s'", s)
	}

	f := make(Format, 0, len(fields))
	for _, field := range fields {
		f = append(f, Category(field))
	}

	if dup, ok := f.duplicate(); ok {
		return nil, errors.Newf(errors.ErrDuplicateCategory,
			"Format argument can't contain duplicate elements: %s (repeated %q)", f, dup).
			WithDetail("category", string(dup))
	}
	return f, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Format {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Index returns the position of c in f, or -1.
func (f Format) Index(c Category) int {
	for i, existing := range f {
		if existing == c {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of f.
func (f Format) Clone() Format {
	if f == nil {
		return nil
	}
	out := make(Format, len(f))
	copy(out, f)
	return out
}

// String renders f the way it is written on the command line.
func (f Format) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = string(c)
	}
	return strings.Join(parts, "/")
}

func (f Format) duplicate() (Category, bool) {
	seen := make(map[Category]bool, len(f))
	for _, c := range f {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return "", false
}

// SameCategories reports whether a and b hold the same categories with the
// same counts, in any order.
func SameCategories(a, b Format) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Category]int, len(a))
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}
