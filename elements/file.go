// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package elements

import (
	"github.com/juju/errors"
	jujuos "github.com/juju/os/v2"

	"github.com/juju/initconfig"
)

// File writes a file on the target machine from exactly one content
// source: literal text, a pre-encoded base64 body, a JSON object, or
// a remote URL.
type File struct {
	// Path is the absolute path the file is written to.
	Path string

	// Content is literal text content.
	Content string

	// Base64Content is a pre-encoded binary body.
	Base64Content string

	// JSONContent is an object serialized into the file by the
	// bootstrap tool.
	JSONContent map[string]interface{}

	// SourceURL locates remote content to fetch.
	SourceURL string

	// Mode, Owner and Group set ownership and permissions on the
	// Unix-like family. Empty values take the bootstrap tool's
	// defaults; all three must be empty on Windows.
	Mode  string
	Owner string
	Group string

	// Auth optionally names the credential source used to fetch
	// url-backed content.
	Auth *Authentication
}

// FileFromString returns a file directive with literal text content.
func FileFromString(path, content string) *File {
	return &File{Path: path, Content: content}
}

// FileFromBase64 returns a file directive with a pre-encoded binary
// body.
func FileFromBase64(path, body string) *File {
	return &File{Path: path, Base64Content: body}
}

// FileFromJSON returns a file directive whose content is the JSON
// serialization of the given object.
func FileFromJSON(path string, content map[string]interface{}) *File {
	return &File{Path: path, JSONContent: content}
}

// FileFromURL returns a file directive fetching its content from url.
func FileFromURL(path, url string) *File {
	return &File{Path: path, SourceURL: url}
}

// Kind is part of the initconfig.Element interface.
func (f *File) Kind() initconfig.ElementType {
	return initconfig.FileElement
}

// Bind is part of the initconfig.Element interface.
func (f *File) Bind(ctx initconfig.BindContext) (initconfig.Binding, error) {
	if f.Path == "" {
		return initconfig.Binding{}, errors.NotValidf("file with empty path")
	}
	entry := map[string]interface{}{}
	sources := 0
	if f.Content != "" {
		entry["content"] = f.Content
		sources++
	}
	if f.Base64Content != "" {
		entry["content"] = f.Base64Content
		entry["encoding"] = "base64"
		sources++
	}
	if f.JSONContent != nil {
		entry["content"] = f.JSONContent
		sources++
	}
	if f.SourceURL != "" {
		entry["source"] = f.SourceURL
		sources++
	}
	if sources != 1 {
		return initconfig.Binding{}, errors.NotValidf("file %q with %d content sources", f.Path, sources)
	}
	if ctx.Platform == jujuos.Windows {
		if f.Mode != "" || f.Owner != "" || f.Group != "" {
			return initconfig.Binding{}, errors.NotSupportedf("file %q ownership on Windows", f.Path)
		}
	} else {
		if f.Mode != "" {
			entry["mode"] = f.Mode
		}
		if f.Owner != "" {
			entry["owner"] = f.Owner
		}
		if f.Group != "" {
			entry["group"] = f.Group
		}
	}
	return initconfig.Binding{
		Config: map[string]interface{}{
			f.Path: entry,
		},
		Authentication: f.Auth.fragment(),
	}, nil
}
