// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	"github.com/juju/errors"
)

// Config is a named, ordered collection of bootstrap elements,
// consumed at attach time. Elements may be appended at any point
// before attaching; a config must not be mutated while an attach that
// uses it is in progress.
type Config struct {
	elements []Element
}

// NewConfig returns a config holding the given elements, in order.
func NewConfig(elements ...Element) *Config {
	return &Config{elements: elements}
}

// Add appends elements to the config, preserving order.
func (c *Config) Add(elements ...Element) {
	c.elements = append(c.elements, elements...)
}

// IsEmpty reports whether the config has no elements. Empty configs
// are elided from the rendered document and from config-set member
// lists.
func (c *Config) IsEmpty() bool {
	return len(c.elements) == 0
}

// Bind renders all of the config's elements into a single fragment
// pair. Elements are grouped by kind and bound one kind at a time, in
// the fixed kind order with services strictly last. Within a kind,
// elements bind in insertion order and each receives its zero-based
// ordinal in the context. The per-element fragments of a kind are
// folded into one section stored under the kind's plural key;
// authentication fragments from all kinds fold into one.
func (c *Config) Bind(ctx BindContext) (Binding, error) {
	doc := make(map[string]interface{})
	var auth map[string]interface{}
	for _, kind := range elementTypes {
		section, kindAuth, err := c.bindKind(kind, ctx)
		if err != nil {
			return Binding{}, errors.Trace(err)
		}
		if section != nil {
			doc[kind.sectionKey()] = section
		}
		if auth, err = Merge(auth, kindAuth); err != nil {
			return Binding{}, errors.Trace(err)
		}
	}
	return Binding{Config: doc, Authentication: auth}, nil
}

// bindKind binds all elements of one kind, returning the kind's
// merged config section and authentication fragment. Both are nil
// when the config holds no elements of the kind.
func (c *Config) bindKind(kind ElementType, ctx BindContext) (map[string]interface{}, map[string]interface{}, error) {
	var section, auth map[string]interface{}
	index := 0
	for _, element := range c.elements {
		if element.Kind() != kind {
			continue
		}
		elementCtx := ctx
		elementCtx.Index = index
		binding, err := element.Bind(elementCtx)
		if err != nil {
			return nil, nil, errors.Annotatef(err, "binding %s element %d", kind, index)
		}
		if section, err = Merge(section, binding.Config); err != nil {
			return nil, nil, errors.Annotatef(err, "merging %s element %d", kind, index)
		}
		if auth, err = Merge(auth, binding.Authentication); err != nil {
			return nil, nil, errors.Annotatef(err, "merging %s element %d authentication", kind, index)
		}
		index++
	}
	return section, auth, nil
}
