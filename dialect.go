// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"
	"github.com/juju/utils/v4"
)

// The bootstrap tool the emitted startup commands invoke. The tool
// itself is external: it reads the attached document back through the
// provisioning system, applies the selected config sets, and signals
// the outcome.
const (
	initTool   = "machine-init"
	signalTool = "machine-signal"

	posixInitLog   = "/var/log/machine-init.log"
	windowsInitLog = `C:\machine-init\machine-init.log`
)

// shellDialect emits the platform-appropriate startup-script commands
// for one attach.
type shellDialect interface {
	comment(text string) string
	initCommand(locator ResourceLocator, configSets []string) string
	signalCommand(locator ResourceLocator, ignoreFailures bool) string
	logDumpCommand() string
}

// dialectForPlatform maps a target platform to its shell dialect.
// Anything in the Unix-like family shares the POSIX dialect.
func dialectForPlatform(platform jujuos.OSType) (shellDialect, error) {
	switch platform {
	case jujuos.Windows:
		return powershellDialect{}, nil
	case jujuos.Ubuntu, jujuos.CentOS, jujuos.GenericLinux:
		return posixDialect{}, nil
	}
	return nil, errors.NotSupportedf("startup commands for platform %q", platform)
}

type posixDialect struct{}

func (posixDialect) comment(text string) string {
	return "# " + text
}

func (posixDialect) initCommand(locator ResourceLocator, configSets []string) string {
	return fmt.Sprintf("%s --region %s --stack %s --resource %s --configsets %s",
		initTool,
		utils.ShQuote(locator.Region),
		utils.ShQuote(locator.StackName),
		utils.ShQuote(locator.LogicalID),
		utils.ShQuote(strings.Join(configSets, ",")),
	)
}

func (posixDialect) signalCommand(locator ResourceLocator, ignoreFailures bool) string {
	// The exit status expression must directly follow the init
	// command in the script; anything emitted between them would
	// clobber $?.
	status := "$?"
	if ignoreFailures {
		status = "0"
	}
	return fmt.Sprintf("%s --exit-status %s --region %s --stack %s --resource %s",
		signalTool,
		status,
		utils.ShQuote(locator.Region),
		utils.ShQuote(locator.StackName),
		utils.ShQuote(locator.LogicalID),
	)
}

func (posixDialect) logDumpCommand() string {
	return fmt.Sprintf("cat %s >&2", utils.ShQuote(posixInitLog))
}

type powershellDialect struct{}

func (powershellDialect) comment(text string) string {
	return "# " + text
}

func (powershellDialect) initCommand(locator ResourceLocator, configSets []string) string {
	return fmt.Sprintf("%s --region %s --stack %s --resource %s --configsets %s",
		initTool,
		utils.WinPSQuote(locator.Region),
		utils.WinPSQuote(locator.StackName),
		utils.WinPSQuote(locator.LogicalID),
		utils.WinPSQuote(strings.Join(configSets, ",")),
	)
}

func (powershellDialect) signalCommand(locator ResourceLocator, ignoreFailures bool) string {
	status := "$lastexitcode"
	if ignoreFailures {
		status = "0"
	}
	return fmt.Sprintf("%s --exit-status %s --region %s --stack %s --resource %s",
		signalTool,
		status,
		utils.WinPSQuote(locator.Region),
		utils.WinPSQuote(locator.StackName),
		utils.WinPSQuote(locator.LogicalID),
	)
}

func (powershellDialect) logDumpCommand() string {
	return fmt.Sprintf("Get-Content %s -ErrorAction SilentlyContinue", utils.WinPSQuote(windowsInitLog))
}
