// Package filesystem provides the filesystem implementations used by the
// tree walker and the file based link providers.
//
// FS is deliberately small: listing, inspecting, creating directories and
// removing entries. NewOS talks to the real filesystem; NewAferoFS wraps an
// afero.Fs, which tests use with an in-memory backend.
package filesystem
