// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"

	"github.com/juju/initconfig"
)

// Service enables and starts a system service. The engine binds
// service elements strictly after every other kind, so restart
// triggers can reference packages, files and commands bound earlier
// in the same config.
type Service struct {
	// Name is the service name.
	Name string

	// Enabled makes the service start on boot.
	Enabled bool

	// EnsureRunning makes the bootstrap tool start the service at
	// the end of the run if it is not already running.
	EnsureRunning bool

	// RestartFiles, RestartPackages and RestartCommands are the
	// bound entries of this config whose change triggers a restart
	// of the service: file paths, package names per manager, and
	// command keys.
	RestartFiles    []string
	RestartPackages map[string][]string
	RestartCommands []string
}

// NewService returns a service directive that is enabled and kept
// running, with no restart triggers.
func NewService(name string) *Service {
	return &Service{Name: name, Enabled: true, EnsureRunning: true}
}

// Kind is part of the initconfig.Element interface.
func (s *Service) Kind() initconfig.ElementType {
	return initconfig.ServiceElement
}

// Bind is part of the initconfig.Element interface. The fragment is
// nested under the platform's service manager key so documents bound
// for different platforms do not mix entries.
func (s *Service) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if s.Name == "" {
		return initconfig.Binding{}, errors.NotValidf("service with empty name")
	}
	entry := map[string]interface{}{
		"enabled":       s.Enabled,
		"ensureRunning": s.EnsureRunning,
	}
	if len(s.RestartFiles) > 0 {
		entry["files"] = stringList(s.RestartFiles)
	}
	if len(s.RestartPackages) > 0 {
		packages := make(map[string]interface{}, len(s.RestartPackages))
		for manager, names := range s.RestartPackages {
			packages[manager] = stringList(names)
		}
		entry["packages"] = packages
	}
	if len(s.RestartCommands) > 0 {
		entry["commands"] = stringList(s.RestartCommands)
	}
	manager := "systemd"
	if ctx.Platform == jujuos.Windows {
		manager = "windows"
	}
	return initconfig.Binding{
		Config: map[string]interface{}{
			manager: map[string]interface{}{
				s.Name: entry,
			},
		},
	}, nil
}

func stringList(values []string) []interface{} {
	list := make([]interface{}, len(values))
	for i, value := range values {
		list[i] = value
	}
	return list
}
