package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required by the walker and the link providers
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a file or an empty directory
	Remove(name string) error

	// For in-memory filesystems Lstat may fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Exists reports whether anything, including a dangling link, sits at path.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// Resolves reports whether path exists once links are followed. A dangling
// link does not resolve.
func Resolves(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory, following links.
func IsDir(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsEmptyDir reports whether the directory at path has no entries.
func IsEmptyDir(fsys FS, path string) (bool, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// RemoveEmptyDir removes path only when it is an empty directory. It returns
// false without error when the directory still has entries.
func RemoveEmptyDir(fsys FS, path string) (bool, error) {
	empty, err := IsEmptyDir(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !empty {
		return false, nil
	}
	if err := fsys.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureParent creates the parent directory of path.
func EnsureParent(fsys FS, path string) error {
	return fsys.MkdirAll(filepath.Dir(path), 0755)
}
