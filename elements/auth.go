// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

// Authentication is a named credential source definition, referenced
// by url-backed files and sources that need credentials to fetch
// their content. The definition's shape is interpreted by the
// bootstrap tool, not by the engine; it is carried opaquely into the
// document's authentication artifact.
type Authentication struct {
	Name       string
	Definition map[string]interface{}
}

// fragment returns the named-definition fragment merged into the
// authentication artifact, or nil for a nil receiver.
func (a *Authentication) fragment() map[string]interface{} {
	if a == nil {
		return nil
	}
	return map[string]interface{}{a.Name: a.Definition}
}
