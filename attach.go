// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"
)

// Metadata keys the rendered document and its authentication artifact
// are attached under. The consuming provisioning system treats both
// payloads as opaque.
const (
	InitMetadataKey           = "init"
	AuthenticationMetadataKey = "authentication"
)

// Actions granted to the attach principal, scoped to the enclosing
// stack identity, so the bootstrap tool can fetch the attached
// document and report completion.
const (
	DescribeResourceAction = "DescribeResource"
	SignalResourceAction   = "SignalResource"
)

// fingerprintLength is the number of hex characters of the document
// content hash embedded in the startup script.
const fingerprintLength = 16

// Principal is the credential principal permissions are granted to:
// the identity the machine's bootstrap tool runs under.
type Principal interface {
	// Grant allows the principal the given actions against the
	// named resource.
	Grant(resource string, actions ...string)
}

// ResourceLocator identifies the attached machine resource to the
// bootstrap tool: the region and stack it lives in and its logical
// name within the stack.
type ResourceLocator struct {
	Region    string
	StackName string
	StackID   string
	LogicalID string
}

// Target is the machine resource an assembled document is attached
// to. Implementations belong to the consuming provisioning system.
type Target interface {
	// SetMetadata stores an attachment payload under the given key.
	SetMetadata(key string, value map[string]interface{})

	// AddStartupCommands appends commands to the machine's startup
	// script.
	AddStartupCommands(commands ...string)

	// Locator returns the resource locator the emitted bootstrap
	// commands reference.
	Locator() ResourceLocator
}

// AttachOptions configures one Attach call. The zero value of the
// flag fields gives the documented defaults: fingerprint embedded,
// log output printed, real exit status forwarded.
type AttachOptions struct {
	// Platform selects the shell dialect of the emitted startup
	// commands and is passed through to every element binding.
	Platform jujuos.OSType

	// Principal is granted the fixed describe and signal
	// permissions and passed through to every element binding.
	Principal Principal

	// ConfigSets names the config sets the bootstrap tool invokes,
	// in order. Empty means the "default" set.
	ConfigSets []string

	// IgnoreFailures makes the emitted signal command always report
	// success, regardless of the bootstrap tool's real exit code.
	IgnoreFailures bool

	// OmitFingerprint suppresses the fingerprint comment line in
	// the startup script. With the fingerprint embedded, any change
	// to the rendered document shows up as a startup-script diff,
	// forcing systems that key off script changes to re-provision.
	OmitFingerprint bool

	// OmitLogOutput suppresses the diagnostic log dump emitted
	// after the bootstrap tool runs.
	OmitLogOutput bool
}

// Attachment is the result of one Attach call.
type Attachment struct {
	// Document is the rendered config document, as attached under
	// InitMetadataKey.
	Document map[string]interface{}

	// Authentication is the sibling authentication artifact, nil
	// when no element contributed one.
	Authentication map[string]interface{}

	// Fingerprint is the short content hash of the rendered
	// document, used to detect configuration drift.
	Fingerprint string
}

// Attach renders the registry into its final document and emits the
// attachment side effects on the target, in order: the document
// metadata, the permission grants, the authentication metadata if
// present, and the startup-script commands invoking the bootstrap
// tool. The operation is all-or-nothing: on error nothing has been
// emitted.
func (r *Registry) Attach(target Target, options AttachOptions) (*Attachment, error) {
	if target == nil {
		return nil, errors.NotValidf("attach with nil target")
	}
	if options.Principal == nil {
		return nil, errors.NotValidf("attach without a principal")
	}
	dialect, err := dialectForPlatform(options.Platform)
	if err != nil {
		return nil, errors.Trace(err)
	}
	configSets := options.ConfigSets
	if len(configSets) == 0 {
		configSets = []string{DefaultConfigSet}
	}
	known := set.NewStrings(configSetNames(r.configSets)...)
	if missing := set.NewStrings(configSets...).Difference(known); !missing.IsEmpty() {
		return nil, errors.NotFoundf("config sets %v", missing.SortedValues())
	}

	binding, err := r.bind(BindContext{
		Platform:  options.Platform,
		Principal: options.Principal,
		Target:    target,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	fingerprint, err := fingerprintDocument(binding)
	if err != nil {
		return nil, errors.Trace(err)
	}
	logger.Debugf("attaching init document with fingerprint %s", fingerprint)

	locator := target.Locator()
	target.SetMetadata(InitMetadataKey, binding.Config)
	options.Principal.Grant(locator.StackID, DescribeResourceAction, SignalResourceAction)
	if binding.Authentication != nil {
		target.SetMetadata(AuthenticationMetadataKey, binding.Authentication)
	}

	var commands []string
	if !options.OmitFingerprint {
		commands = append(commands, dialect.comment("fingerprint: "+fingerprint))
	}
	commands = append(commands,
		dialect.initCommand(locator, configSets),
		dialect.signalCommand(locator, options.IgnoreFailures),
	)
	if !options.OmitLogOutput {
		commands = append(commands, dialect.logDumpCommand())
	}
	target.AddStartupCommands(commands...)

	return &Attachment{
		Document:       binding.Config,
		Authentication: binding.Authentication,
		Fingerprint:    fingerprint,
	}, nil
}

// fingerprintDocument hashes the canonical serialization of the full
// binding, authentication included, so that a change to any bound
// fragment changes the fingerprint.
func fingerprintDocument(binding Binding) (string, error) {
	data, err := json.Marshal(map[string]interface{}{
		"document":       binding.Config,
		"authentication": binding.Authentication,
	})
	if err != nil {
		return "", errors.Annotate(err, "serializing init document")
	}
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])[:fingerprintLength], nil
}

func configSetNames(configSets map[string][]string) []string {
	names := make([]string, 0, len(configSets))
	for name := range configSets {
		names = append(names, name)
	}
	return names
}
