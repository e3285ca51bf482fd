// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	jujuos "github.com/juju/os/v2"
)

// ElementType identifies the directive kind of a bootstrap element.
// The set of kinds is closed: binding order and document layout are
// kind-specific, and both are exhaustive over these seven values.
type ElementType int

const (
	PackageElement ElementType = iota
	GroupElement
	UserElement
	SourceElement
	FileElement
	CommandElement
	ServiceElement
)

// elementTypes holds the mandatory binding order. Services come
// strictly last: service activation depends on the packages, files,
// users and commands bound before it having been materialised.
var elementTypes = []ElementType{
	PackageElement,
	GroupElement,
	UserElement,
	SourceElement,
	FileElement,
	CommandElement,
	ServiceElement,
}

// String returns the singular directive name, as used in logs and
// error messages.
func (t ElementType) String() string {
	switch t {
	case PackageElement:
		return "package"
	case GroupElement:
		return "group"
	case UserElement:
		return "user"
	case SourceElement:
		return "source"
	case FileElement:
		return "file"
	case CommandElement:
		return "command"
	case ServiceElement:
		return "service"
	}
	return "unknown"
}

// sectionKey returns the key the kind's merged fragment is stored
// under in a bound config document.
func (t ElementType) sectionKey() string {
	return t.String() + "s"
}

// Element is a single bootstrap directive. Implementations are
// immutable once constructed and must be side-effect free with
// respect to the registry; any external effect (such as granting a
// permission) is performed by the element itself through the
// principal handle supplied in the BindContext.
type Element interface {
	// Kind returns the directive kind of this element.
	Kind() ElementType

	// Bind renders the element into its config and authentication
	// fragments for the given context.
	Bind(ctx BindContext) (Binding, error)
}

// BindContext carries the per-attach values an element needs to
// render itself. It is ephemeral: assembled for one Bind call and
// never persisted.
type BindContext struct {
	// Platform is the target platform family the element is being
	// rendered for.
	Platform jujuos.OSType

	// Principal is the credential principal the element may grant
	// permissions to.
	Principal Principal

	// Target is the enclosing machine resource the assembled
	// document will be attached to.
	Target Target

	// Index is the element's zero-based ordinal among elements of
	// the same kind within the same config. Assigned by the config
	// during binding.
	Index int
}

// Binding is the result of binding one element, one kind group or one
// whole config. Either fragment may be nil when nothing was
// contributed to that slot.
type Binding struct {
	// Config is the fragment merged into the config document.
	Config map[string]interface{}

	// Authentication holds named credential source definitions,
	// merged into the document's sibling authentication artifact.
	Authentication map[string]interface{}
}
