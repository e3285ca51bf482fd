// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package elements provides the concrete bootstrap element kinds
// consumed by the initconfig engine: package installs, groups and
// users, archive sources, file writes, commands and services. Each
// element renders itself into the document fragment shape its kind's
// section uses; the engine owns grouping, ordering and merging.
package elements
