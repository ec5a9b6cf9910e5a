package links

import (
	"path/filepath"

	smerrors "github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfsys "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

type symlinkProvider struct {
	matcher
	fs       sfsys.FullFileSystem
	readlink func(name string) (string, error)
}

// NewSymlink returns a provider storing links as symbolic links. A nil fs
// uses the OS filesystem rooted at "/"; links are then read back from the OS
// as written, so relative targets made by hand resolve against the link's
// directory. A custom fs must be rooted at "/".
func NewSymlink(fs sfsys.FullFileSystem, opts Options) Provider {
	p := &symlinkProvider{matcher: newMatcher(KindSymlink, opts), fs: fs}
	if fs == nil {
		osfs := sfsys.NewOSFileSystem("/")
		p.fs = synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()
		p.readlink = filesystem.NewOS().Readlink
	} else {
		p.readlink = rootedReadlink(fs)
	}
	return p
}

// rootedReadlink reads links through a synthfs filesystem, which hands back
// targets under its root relative to that root.
func rootedReadlink(fs sfsys.FullFileSystem) func(string) (string, error) {
	return func(name string) (string, error) {
		target, err := fs.Readlink(name)
		if err != nil || filepath.IsAbs(target) {
			return target, err
		}
		return filepath.Join(string(filepath.Separator), target), nil
	}
}

func (p *symlinkProvider) Name() string {
	return string(KindSymlink)
}

func (p *symlinkProvider) Create(shortcutPath, targetPath string) error {
	if err := p.fs.MkdirAll(filepath.Dir(shortcutPath), 0755); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to create directory for %s", shortcutPath)
	}
	if err := p.fs.Symlink(targetPath, shortcutPath); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to create symlink %s", shortcutPath)
	}
	return nil
}

func (p *symlinkProvider) ReadTarget(shortcutPath string) (string, error) {
	target, err := p.readlink(shortcutPath)
	if err != nil {
		return "", smerrors.Wrapf(err, smerrors.ErrLinkRead, "failed to read symlink %s", shortcutPath)
	}
	return absTarget(shortcutPath, target), nil
}

func (p *symlinkProvider) Delete(shortcutPath string) error {
	if err := p.fs.Remove(shortcutPath); err != nil && !isNotExist(err) {
		return smerrors.Wrapf(err, smerrors.ErrLinkRemove, "failed to remove symlink %s", shortcutPath)
	}
	return nil
}

func (p *symlinkProvider) IsLink(path string) bool {
	return p.matches(path, p.ReadTarget)
}
