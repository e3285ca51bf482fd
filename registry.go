// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("initconfig")

// configSetsKey is the document slot holding the rendered config-set
// membership lists; config names live alongside it, so the name is
// reserved.
const configSetsKey = "configSets"

// DefaultConfigSet is the config set invoked at bootstrap time when
// an attach does not select any.
const DefaultConfigSet = "default"

// Registry is the catalog of named configs and named config sets that
// together describe a machine's bootstrap actions. A registry is
// single-owner mutable state: it performs no internal locking and
// must not be mutated concurrently with an in-progress Attach.
type Registry struct {
	configs    map[string]*Config
	configSets map[string][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		configs:    make(map[string]*Config),
		configSets: make(map[string][]string),
	}
}

// NewDefaultRegistry returns a registry holding the given elements as
// a single config named "config", invoked by the "default" config
// set. This covers the common case of a machine with one undivided
// bootstrap sequence.
func NewDefaultRegistry(elements ...Element) *Registry {
	r := NewRegistry()
	if err := r.AddConfig("config", NewConfig(elements...)); err != nil {
		panic(err)
	}
	if err := r.AddConfigSet(DefaultConfigSet, "config"); err != nil {
		panic(err)
	}
	return r
}

// AddConfig registers a config under the given name. Registering a
// name twice is a configuration error, as is the reserved name
// "configSets"; on error the catalog is left unchanged.
func (r *Registry) AddConfig(name string, config *Config) error {
	if name == configSetsKey {
		return errors.NotValidf("config name %q", name)
	}
	if _, ok := r.configs[name]; ok {
		return errors.AlreadyExistsf("config %q", name)
	}
	r.configs[name] = config
	return nil
}

// AddConfigSet registers a config set: an ordered list of config
// names invoked together at bootstrap time. Every referenced config
// must already be in the catalog; unknown names are all reported
// together. On error the registry is left unchanged.
func (r *Registry) AddConfigSet(name string, configNames ...string) error {
	if _, ok := r.configSets[name]; ok {
		return errors.AlreadyExistsf("config set %q", name)
	}
	unknown := set.NewStrings()
	for _, configName := range configNames {
		if _, ok := r.configs[configName]; !ok {
			unknown.Add(configName)
		}
	}
	if !unknown.IsEmpty() {
		return errors.NotFoundf(
			"config set %q: configs %s",
			name, strings.Join(unknown.SortedValues(), ", "),
		)
	}
	r.configSets[name] = append([]string(nil), configNames...)
	return nil
}

// bind renders every non-empty config in the catalog and assembles
// the full document: the filtered config-set membership lists under
// "configSets", one slot per non-empty config name, and the folded
// authentication artifact as a separate sibling.
func (r *Registry) bind(ctx BindContext) (Binding, error) {
	bound := make(map[string]interface{})
	var auth map[string]interface{}
	for _, name := range set.NewStrings(r.configNames()...).SortedValues() {
		config := r.configs[name]
		if config.IsEmpty() {
			logger.Debugf("eliding empty config %q", name)
			continue
		}
		binding, err := config.Bind(ctx)
		if err != nil {
			return Binding{}, errors.Annotatef(err, "config %q", name)
		}
		bound[name] = binding.Config
		if auth, err = Merge(auth, binding.Authentication); err != nil {
			return Binding{}, errors.Annotatef(err, "config %q authentication", name)
		}
	}

	configSets := make(map[string]interface{}, len(r.configSets))
	for setName, members := range r.configSets {
		filtered := make([]string, 0, len(members))
		for _, member := range members {
			if _, ok := bound[member]; ok {
				filtered = append(filtered, member)
			}
		}
		configSets[setName] = filtered
	}

	doc := make(map[string]interface{}, len(bound)+1)
	doc[configSetsKey] = configSets
	for name, fragment := range bound {
		doc[name] = fragment
	}
	return Binding{Config: doc, Authentication: auth}, nil
}

func (r *Registry) configNames() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	return names
}
