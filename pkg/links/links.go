// Package links implements the link objects stored in the shortcut tree.
//
// Three kinds are available: native symbolic links, portable TOML shortcut
// files and macOS webloc files. All of them record an absolute target path
// and are recognised by their file name suffix.
package links

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	smerrors "github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
)

// Kind names a link implementation.
type Kind string

const (
	KindSymlink Kind = "symlink"
	KindTOML    Kind = "toml"
	KindWebloc  Kind = "webloc"
)

// Kinds lists the supported link kinds.
var Kinds = []Kind{KindSymlink, KindTOML, KindWebloc}

// DefaultSuffix returns the suffix used by kind when none is configured.
func DefaultSuffix(kind Kind) string {
	switch kind {
	case KindTOML:
		return ".shortcut"
	case KindWebloc:
		return ".webloc"
	default:
		return ".lnk"
	}
}

// Recognition decides what counts as a link when walking the shortcut tree.
type Recognition string

const (
	// RecognizeSuffix treats every entry carrying the suffix as a link.
	RecognizeSuffix Recognition = "suffix"
	// RecognizeObject also requires the link object to be readable.
	RecognizeObject Recognition = "object"
)

// ParseRecognition validates a recognition mode name.
func ParseRecognition(s string) (Recognition, error) {
	switch Recognition(s) {
	case RecognizeSuffix, RecognizeObject:
		return Recognition(s), nil
	case "":
		return RecognizeObject, nil
	}
	return "", smerrors.Newf(smerrors.ErrUnknownRecognize,
		"unknown recognition mode %q (expected suffix or object)", s)
}

// Provider creates, reads and deletes link objects.
type Provider interface {
	Name() string
	Suffix() string
	// Create writes a link at shortcutPath pointing at targetPath, creating
	// parent directories as needed.
	Create(shortcutPath, targetPath string) error
	// ReadTarget returns the absolute target stored in the link.
	ReadTarget(shortcutPath string) (string, error)
	// Delete removes the link. Deleting a missing link is not an error.
	Delete(shortcutPath string) error
	IsLink(path string) bool
}

// Options configure a provider.
type Options struct {
	// Suffix overrides the kind's default suffix when set.
	Suffix      string
	Recognition Recognition
}

// New builds the provider for kind. File based kinds go through fsys;
// symlinks go through the OS filesystem.
func New(kind Kind, fsys filesystem.FS, opts Options) (Provider, error) {
	switch kind {
	case KindSymlink:
		return NewSymlink(nil, opts), nil
	case KindTOML:
		return NewTOML(fsys, opts), nil
	case KindWebloc:
		return NewWebloc(fsys, opts), nil
	}
	return nil, smerrors.Newf(smerrors.ErrUnknownLinkType,
		"unknown link type %q (expected symlink, toml or webloc)", kind).
		WithDetail("kind", string(kind))
}

// matcher holds the recognition logic shared by all providers.
type matcher struct {
	suffix      string
	recognition Recognition
}

func newMatcher(kind Kind, opts Options) matcher {
	m := matcher{suffix: opts.Suffix, recognition: opts.Recognition}
	if m.suffix == "" {
		m.suffix = DefaultSuffix(kind)
	}
	if m.recognition == "" {
		m.recognition = RecognizeObject
	}
	return m
}

func (m matcher) Suffix() string {
	return m.suffix
}

func (m matcher) matches(path string, read func(string) (string, error)) bool {
	if !strings.HasSuffix(filepath.Base(path), m.suffix) {
		return false
	}
	if m.recognition == RecognizeSuffix {
		return true
	}
	_, err := read(path)
	return err == nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}

// absTarget resolves a stored target relative to the directory holding the link.
func absTarget(linkPath, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(linkPath), target)
}
