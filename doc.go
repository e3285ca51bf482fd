// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package initconfig assembles declarative machine bootstrap
// configuration documents.
//
// A caller builds named Configs out of bootstrap elements (package
// installs, users and groups, file writes, archive sources, commands
// and services), registers them into a Registry together with named
// config sets, and attaches the registry to a machine resource. The
// attach step binds every non-empty config, deep-merges the emitted
// fragments into a single document, fingerprints the result and emits
// the metadata, permission grants and startup-script commands needed
// for the machine's bootstrap tool to interpret the document on first
// boot.
//
// The engine itself is platform and provider agnostic: the concrete
// machine resource, the credential principal and the bootstrap tool
// are all external collaborators reached through narrow interfaces.
package initconfig
