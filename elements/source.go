// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"github.com/juju/errors"

	"github.com/juju/initconfig"
)

// Source fetches an archive from a URL and extracts it into a target
// directory.
type Source struct {
	// TargetDirectory is where the archive is extracted.
	TargetDirectory string

	// URL locates the archive.
	URL string

	// Auth optionally names the credential source used to fetch
	// the archive.
	Auth *Authentication
}

// NewSource returns a source directive extracting the archive at url
// into targetDirectory.
func NewSource(targetDirectory, url string) *Source {
	return &Source{TargetDirectory: targetDirectory, URL: url}
}

// Kind is part of the initconfig.Element interface.
func (s *Source) Kind() initconfig.ElementType {
	return initconfig.SourceElement
}

// Bind is part of the initconfig.Element interface.
func (s *Source) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if s.TargetDirectory == "" || s.URL == "" {
		return initconfig.Binding{}, errors.NotValidf("source with empty target directory or url")
	}
	return initconfig.Binding{
		Config: map[string]interface{}{
			s.TargetDirectory: s.URL,
		},
		Authentication: s.Auth.fragment(),
	}, nil
}
