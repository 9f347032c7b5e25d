// Package store holds the ordered collection of component instances that
// make up a SyncRim model. Order within a ComponentStore is cosmetic (UI
// placement); the evaluation order is derived by the graph/simulator
// packages.
package store

import (
	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
)

// ComponentStore is an ordered sequence of component instances, the root of
// persistence for a model.
type ComponentStore struct {
	components []component.Component
	index      map[signal.Id]int
}

// New returns an empty ComponentStore.
func New() *ComponentStore {
	return &ComponentStore{index: make(map[signal.Id]int)}
}

// Add appends a component to the store. It does not check for duplicate
// Ids — that is a construction-time model error, detected uniformly (for
// every component in the store) by the graph/simulator packages so the
// *Duplicate Id* error always carries the full context of the build.
func (s *ComponentStore) Add(c component.Component) {
	id, _ := c.IDPorts()
	s.index[id] = len(s.components)
	s.components = append(s.components, c)
}

// Components returns the store's components in insertion order.
func (s *ComponentStore) Components() []component.Component {
	return s.components
}

// Len returns the number of components in the store.
func (s *ComponentStore) Len() int {
	return len(s.components)
}

// Get returns the component with the given Id, or false if none exists.
func (s *ComponentStore) Get(id signal.Id) (component.Component, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.components[i], true
}

// String renders the store's component Ids, for debug output.
func (s *ComponentStore) String() string {
	out := "ComponentStore["
	for i, c := range s.components {
		if i > 0 {
			out += ", "
		}
		id, _ := c.IDPorts()
		out += string(id)
	}
	return out + "]"
}
