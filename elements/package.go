// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"fmt"

	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"

	"github.com/juju/initconfig"
)

// Package managers a package directive can target. Named-package
// managers install by name and optional version list; location
// managers install a single installer fetched from a URL.
const (
	aptManager    = "apt"
	yumManager    = "yum"
	rpmManager    = "rpm"
	pythonManager = "python"
	rubyManager   = "rubygems"
	msiManager    = "msi"
)

// Package installs a package through a platform package manager.
type Package struct {
	manager  string
	name     string
	location string
	versions []string
}

// AptPackage installs a package by name through apt, optionally
// pinned to the given versions.
func AptPackage(name string, versions ...string) *Package {
	return &Package{manager: aptManager, name: name, versions: versions}
}

// YumPackage installs a package by name through yum.
func YumPackage(name string, versions ...string) *Package {
	return &Package{manager: yumManager, name: name, versions: versions}
}

// PythonPackage installs a package by name through the Python package
// manager.
func PythonPackage(name string, versions ...string) *Package {
	return &Package{manager: pythonManager, name: name, versions: versions}
}

// RubyGem installs a gem by name.
func RubyGem(name string, versions ...string) *Package {
	return &Package{manager: rubyManager, name: name, versions: versions}
}

// RpmPackage installs an rpm fetched from the given location.
func RpmPackage(location string) *Package {
	return &Package{manager: rpmManager, location: location}
}

// MsiPackage installs a Windows msi fetched from the given location.
func MsiPackage(location string) *Package {
	return &Package{manager: msiManager, location: location}
}

// Kind is part of the initconfig.Element interface.
func (p *Package) Kind() initconfig.ElementType {
	return initconfig.PackageElement
}

// Bind is part of the initconfig.Element interface. Named packages
// render as name-to-versions entries under their manager; location
// packages render keyed by their ordinal so multiple installers for
// the same manager do not collide.
func (p *Package) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if (p.manager == msiManager) != (ctx.Platform == jujuos.Windows) {
		return initconfig.Binding{}, errors.NotSupportedf("%s package on %s", p.manager, ctx.Platform)
	}
	var entry map[string]interface{}
	if p.location != "" {
		entry = map[string]interface{}{
			fmt.Sprintf("%03d", ctx.Index): p.location,
		}
	} else {
		versions := make([]interface{}, len(p.versions))
		for i, version := range p.versions {
			versions[i] = version
		}
		entry = map[string]interface{}{p.name: versions}
	}
	return initconfig.Binding{
		Config: map[string]interface{}{p.manager: entry},
	}, nil
}
