package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
)

// FileTree represents a directory structure for testing. Values are a string
// (file content), a nested FileTree (directory) or a Symlink.
type FileTree map[string]interface{}

// Symlink is a FileTree entry created as a symbolic link to its value.
type Symlink string

// CreateFileTree recursively creates tree under basePath.
func CreateFileTree(t *testing.T, fsys filesystem.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fsys.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fsys, fullPath, v)
		case Symlink:
			if err := fsys.Symlink(string(v), fullPath); err != nil {
				t.Fatalf("Failed to create symlink %s -> %s: %v", fullPath, v, err)
			}
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// Listing returns every path under root relative to it, sorted, with a
// trailing slash on directories. A missing root lists as empty.
func Listing(t *testing.T, fsys filesystem.FS, root string) []string {
	t.Helper()

	var out []string
	if !filesystem.IsDir(fsys, root) {
		return out
	}
	walkListing(t, fsys, root, "", &out)
	sort.Strings(out)
	return out
}

func walkListing(t *testing.T, fsys filesystem.FS, dir, rel string, out *[]string) {
	t.Helper()

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		relPath := filepath.ToSlash(filepath.Join(rel, entry.Name()))
		if entry.IsDir() {
			*out = append(*out, relPath+"/")
			walkListing(t, fsys, path, relPath, out)
			continue
		}
		*out = append(*out, relPath)
	}
}

// Files filters a Listing down to entries that are not directories.
func Files(listing []string) []string {
	var out []string
	for _, p := range listing {
		if !strings.HasSuffix(p, "/") {
			out = append(out, p)
		}
	}
	return out
}
