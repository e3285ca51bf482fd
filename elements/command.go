// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/juju/initconfig"
)

// Command runs a shell command or argv vector during bootstrap.
// Commands of a config run in insertion order: each one is keyed by
// its zero-padded ordinal, and the bootstrap tool executes command
// entries in key order.
type Command struct {
	command interface{}

	// Env sets additional environment variables for the command.
	Env map[string]string

	// Cwd is the working directory the command runs in.
	Cwd string

	// Test is a guard command; the command itself only runs if the
	// guard exits successfully.
	Test string

	// IgnoreErrors continues the bootstrap run even if the command
	// fails.
	IgnoreErrors bool
}

// ShellCommand returns a command directive run through the platform
// shell. Metacharacters are not escaped.
func ShellCommand(command string) *Command {
	return &Command{command: command}
}

// ArgvCommand returns a command directive executed directly from the
// given argument vector, bypassing the shell.
func ArgvCommand(argv ...string) *Command {
	args := make([]interface{}, len(argv))
	for i, arg := range argv {
		args[i] = arg
	}
	return &Command{command: args}
}

// Kind is part of the initconfig.Element interface.
func (c *Command) Kind() initconfig.ElementType {
	return initconfig.CommandElement
}

// Bind is part of the initconfig.Element interface.
func (c *Command) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if c.command == nil {
		return initconfig.Binding{}, errors.NotValidf("command with no command line")
	}
	entry := map[string]interface{}{
		"command": c.command,
	}
	if len(c.Env) > 0 {
		env := make(map[string]interface{}, len(c.Env))
		for name, value := range c.Env {
			env[name] = value
		}
		entry["env"] = env
	}
	if c.Cwd != "" {
		entry["cwd"] = c.Cwd
	}
	if c.Test != "" {
		entry["test"] = c.Test
	}
	if c.IgnoreErrors {
		entry["ignoreErrors"] = true
	}
	return initconfig.Binding{
		Config: map[string]interface{}{
			fmt.Sprintf("%03d", ctx.Index): entry,
		},
	}, nil
}
