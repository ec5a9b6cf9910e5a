package types

import (
	"fmt"

	"github.com/arthur-debert/shortcut-maker/pkg/format"
)

// Role identifies which of the two trees a descriptor describes.
type Role int

const (
	// RoleTarget is the real directory tree links point at.
	RoleTarget Role = iota
	// RoleShortcut is the tree holding the links.
	RoleShortcut
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleTarget:
		return "target"
	case RoleShortcut:
		return "shortcut"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == RoleTarget {
		return RoleShortcut
	}
	return RoleTarget
}

// Descriptor describes one tree: its role, root path and nesting format.
type Descriptor struct {
	Role   Role
	Root   string
	Format format.Format
}

// NewDescriptor builds a descriptor holding its own copy of f.
func NewDescriptor(role Role, root string, f format.Format) Descriptor {
	return Descriptor{Role: role, Root: root, Format: f.Clone()}
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	return NewDescriptor(d.Role, d.Root, d.Format)
}

// Trees holds the descriptors of both trees of a run.
type Trees struct {
	Target   Descriptor
	Shortcut Descriptor
}

// Select returns the descriptor playing role.
func (t Trees) Select(role Role) Descriptor {
	switch role {
	case RoleTarget:
		return t.Target
	case RoleShortcut:
		return t.Shortcut
	default:
		panic(fmt.Sprintf("unknown role %d", int(role)))
	}
}

// Clone returns a deep copy of t.
func (t Trees) Clone() Trees {
	return Trees{Target: t.Target.Clone(), Shortcut: t.Shortcut.Clone()}
}
