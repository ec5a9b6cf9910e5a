// Package types defines the values shared by the walker, the driver and the
// renderers: the two tree roles, the descriptors of each tree and the report
// of what a run changed.
package types
