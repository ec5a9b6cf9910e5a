// Package arguments cleans and validates the four positional arguments of
// the command line. Every error it returns is an argument error, raised
// before anything on disk is touched.
package arguments

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/shortcut-maker/pkg/format"
	"github.com/arthur-debert/shortcut-maker/pkg/types"
)

// Usage is the synopsis shown when the argument count is wrong.
const Usage = "shortcut-maker <target_path> <target_format> <shortcut_path> <shortcut_format>"

const forbiddenChars = `<>:"|?*`

// Arguments are the cleaned positional arguments.
type Arguments struct {
	TargetPath     string        `validate:"required,pathchars"`
	TargetFormat   format.Format `validate:"required,min=1,unique"`
	ShortcutPath   string        `validate:"required,pathchars"`
	ShortcutFormat format.Format `validate:"required,min=1,unique"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("pathchars", validatePathChars)
	validate.RegisterStructValidation(validateSameCategories, Arguments{})
}

func validatePathChars(fl validator.FieldLevel) bool {
	return forbiddenIndex(fl.Field().String()) < 0
}

func validateSameCategories(sl validator.StructLevel) {
	a := sl.Current().Interface().(Arguments)
	if len(a.TargetFormat) > 0 && !format.SameCategories(a.TargetFormat, a.ShortcutFormat) {
		sl.ReportError(a.ShortcutFormat, "ShortcutFormat", "ShortcutFormat", "samecategories", "")
	}
}

// Parse cleans args, resolves both paths to absolute paths and checks that
// the target path exists in fsys.
func Parse(args []string, fsys filesystem.FS) (*Arguments, error) {
	if len(args) != 4 {
		return nil, errors.New(errors.ErrArgCount, Usage).WithDetail("count", len(args))
	}

	cleaned := make([]string, len(args))
	for i, arg := range args {
		c, err := Clean(arg)
		if err != nil {
			return nil, err
		}
		cleaned[i] = c
	}

	targetPath, err := absolute(cleaned[0])
	if err != nil {
		return nil, err
	}
	if _, err := fsys.Stat(targetPath); err != nil {
		return nil, errors.Newf(errors.ErrPathNotFound, "File not found: %s", cleaned[0]).
			WithDetail("path", targetPath)
	}

	shortcutPath, err := absolute(cleaned[2])
	if err != nil {
		return nil, err
	}

	targetFormat, err := format.Parse(cleaned[1])
	if err != nil {
		return nil, err
	}
	shortcutFormat, err := format.Parse(cleaned[3])
	if err != nil {
		return nil, err
	}

	a := &Arguments{
		TargetPath:     targetPath,
		TargetFormat:   targetFormat,
		ShortcutPath:   shortcutPath,
		ShortcutFormat: shortcutFormat,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks a, including that both formats hold the same categories.
func (a *Arguments) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid arguments")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "samecategories":
		return errors.Newf(errors.ErrFormatMismatch,
			"Formats need to contain the same elements: %s, %s", a.TargetFormat, a.ShortcutFormat)
	case "pathchars":
		return forbiddenError(fmt.Sprint(fe.Value()))
	case "unique":
		return errors.Newf(errors.ErrDuplicateCategory,
			"Format argument can't contain duplicate elements: %v", fe.Value())
	}
	return errors.Newf(errors.ErrInvalidInput, "%s failed the %q check", fe.Field(), fe.Tag()).
		WithDetail("field", fe.Field())
}

// Trees builds the descriptors of both trees.
func (a *Arguments) Trees() types.Trees {
	return types.Trees{
		Target:   types.NewDescriptor(types.RoleTarget, a.TargetPath, a.TargetFormat),
		Shortcut: types.NewDescriptor(types.RoleShortcut, a.ShortcutPath, a.ShortcutFormat),
	}
}

// Clean strips surrounding blanks and quotes, drops non printable runes and
// applies NFKC normalisation. Strings that end up empty or hold a character
// forbidden in paths are rejected.
func Clean(s string) (string, error) {
	s = strings.Trim(s, " \"\t\n\r")
	s = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
	s = norm.NFKC.String(s)

	if forbiddenIndex(s) >= 0 {
		return "", forbiddenError(s)
	}
	if s == "" {
		return "", errors.Newf(errors.ErrEmptyArgument, "Argument invalid: '%s'", s)
	}
	return s, nil
}

// forbiddenIndex returns the position of the first forbidden character, or
// -1. A drive letter colon such as "C:" is allowed.
func forbiddenIndex(s string) int {
	for i, r := range s {
		if !strings.ContainsRune(forbiddenChars, r) {
			continue
		}
		if r == ':' && i == 1 && isDriveLetter(rune(s[0])) {
			continue
		}
		return i
	}
	return -1
}

func isDriveLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func forbiddenError(s string) *errors.Error {
	return errors.Newf(errors.ErrForbiddenChars,
		"Argument contains invalid characters(< > : \" | ? *): '%s'", s)
}

func absolute(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", p)
	}
	return abs, nil
}
