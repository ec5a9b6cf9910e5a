// Package testutil provides fixtures for tests that build directory trees.
//
// Key components:
//   - FileTree: declarative tree of files, directories and links created
//     through any filesystem.FS, in memory or on disk
//   - Listing: a sorted snapshot of a tree used to assert on results
//   - OS helpers for tests that need real symbolic links
//
// Usage guidelines:
//   - Walker and driver tests run in memory with the toml link kind
//   - Only tests that exercise native symlinks should touch the disk
//   - Test data is defined inline, not in external files
package testutil
