package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/shortcut-maker/pkg/errors"
)

// Format is an output mode, spelled as in the output.format setting.
type Format string

const (
	// FormatAuto picks term for color terminals and text otherwise
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	// FormatJSON prints one summary document per run
	FormatJSON Format = "json"
)

// Formats lists the accepted output.format values.
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat reads an output.format value, case insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[s]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", s).
		WithDetail("format", s)
}

// Resolve turns FormatAuto into the mode that suits w. Writers other than
// files, redirected output and NO_COLOR get text; color terminals get term.
func (f Format) Resolve(w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}
	out := termenv.NewOutput(file)
	if out.EnvNoColor() || out.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
