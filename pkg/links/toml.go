package links

import (
	"github.com/pelletier/go-toml/v2"

	smerrors "github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
)

// shortcutFile is the document written by the toml provider.
type shortcutFile struct {
	Target    string `toml:"target"`
	Generator string `toml:"generator,omitempty"`
}

const generator = "shortcut-maker"

type tomlProvider struct {
	matcher
	fs filesystem.FS
}

// NewTOML returns a provider storing links as small TOML documents.
func NewTOML(fsys filesystem.FS, opts Options) Provider {
	return &tomlProvider{
		matcher: newMatcher(KindTOML, opts),
		fs:      fsys,
	}
}

func (p *tomlProvider) Name() string {
	return string(KindTOML)
}

func (p *tomlProvider) Create(shortcutPath, targetPath string) error {
	data, err := toml.Marshal(shortcutFile{Target: targetPath, Generator: generator})
	if err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to encode shortcut %s", shortcutPath)
	}
	if err := filesystem.EnsureParent(p.fs, shortcutPath); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to create directory for %s", shortcutPath)
	}
	if err := p.fs.WriteFile(shortcutPath, data, 0644); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to write shortcut %s", shortcutPath)
	}
	return nil
}

func (p *tomlProvider) ReadTarget(shortcutPath string) (string, error) {
	data, err := p.fs.ReadFile(shortcutPath)
	if err != nil {
		return "", smerrors.Wrapf(err, smerrors.ErrLinkRead, "failed to read shortcut %s", shortcutPath)
	}

	var doc shortcutFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", smerrors.Wrapf(err, smerrors.ErrLinkRead, "failed to parse shortcut %s", shortcutPath)
	}
	if doc.Target == "" {
		return "", smerrors.Newf(smerrors.ErrLinkRead, "shortcut %s has no target", shortcutPath)
	}
	return absTarget(shortcutPath, doc.Target), nil
}

func (p *tomlProvider) Delete(shortcutPath string) error {
	if err := p.fs.Remove(shortcutPath); err != nil && !isNotExist(err) {
		return smerrors.Wrapf(err, smerrors.ErrLinkRemove, "failed to remove shortcut %s", shortcutPath)
	}
	return nil
}

func (p *tomlProvider) IsLink(path string) bool {
	return p.matches(path, p.ReadTarget)
}
