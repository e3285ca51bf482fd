// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"

	"github.com/juju/initconfig"
)

// Group creates a system group. Only meaningful on the Unix-like
// family; binding one for Windows is an error.
type Group struct {
	// Name is the group name.
	Name string

	// GID is the numeric group id, or negative to let the target
	// system pick one.
	GID int
}

// NewGroup returns a group directive with a system-assigned gid.
func NewGroup(name string) *Group {
	return &Group{Name: name, GID: -1}
}

// Kind is part of the initconfig.Element interface.
func (g *Group) Kind() initconfig.ElementType {
	return initconfig.GroupElement
}

// Bind is part of the initconfig.Element interface.
func (g *Group) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if ctx.Platform == jujuos.Windows {
		return initconfig.Binding{}, errors.NotSupportedf("group %q on Windows", g.Name)
	}
	entry := map[string]interface{}{}
	if g.GID >= 0 {
		entry["gid"] = g.GID
	}
	return initconfig.Binding{
		Config: map[string]interface{}{g.Name: entry},
	}, nil
}

// User creates a system user. Only meaningful on the Unix-like
// family; binding one for Windows is an error.
type User struct {
	// Name is the user name.
	Name string

	// UID is the numeric user id, or negative to let the target
	// system pick one.
	UID int

	// Groups are supplementary groups the user belongs to.
	Groups []string

	// HomeDir is the user's home directory, empty for the target
	// system's default.
	HomeDir string
}

// NewUser returns a user directive with a system-assigned uid and no
// supplementary groups.
func NewUser(name string) *User {
	return &User{Name: name, UID: -1}
}

// Kind is part of the initconfig.Element interface.
func (u *User) Kind() initconfig.ElementType {
	return initconfig.UserElement
}

// Bind is part of the initconfig.Element interface.
func (u *User) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if ctx.Platform == jujuos.Windows {
		return initconfig.Binding{}, errors.NotSupportedf("user %q on Windows", u.Name)
	}
	entry := map[string]interface{}{}
	if u.UID >= 0 {
		entry["uid"] = u.UID
	}
	if len(u.Groups) > 0 {
		groups := make([]interface{}, len(u.Groups))
		for i, group := range u.Groups {
			groups[i] = group
		}
		entry["groups"] = groups
	}
	if u.HomeDir != "" {
		entry["homeDir"] = u.HomeDir
	}
	return initconfig.Binding{
		Config: map[string]interface{}{u.Name: entry},
	}, nil
}
