// Package graph builds the combinatorial dependency graph for a model and
// topologically sorts it into an evaluation order. Only combinatorial
// fanin contributes edges, which is what lets feedback loops broken by a
// Register schedule without cycles.
package graph

import (
	"fmt"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
)

// Layout is the resolved signal-store layout for a ComponentStore: where
// each component's outputs live in the dense sim_state slice.
type Layout struct {
	StartIndex map[signal.Id]int
	FieldIndex map[signal.Id]map[signal.Field]int
	NumOutputs map[signal.Id]int
	Total      int
}

// Scheduled is the result of building and scheduling a model's dependency
// graph: a signal-store layout plus a total evaluation order.
type Scheduled struct {
	Layout    Layout
	Order     []component.Component
	Class     []component.Classification
	Edges     map[signal.Id][]signal.Id // for DOT export
}

// DuplicateIdError reports a component Id that appears more than once in the
// store.
type DuplicateIdError struct{ Id signal.Id }

func (e *DuplicateIdError) Error() string {
	return fmt.Sprintf("duplicate component id %q", e.Id)
}

// DuplicateFieldError reports an output field declared twice by the same
// component.
type DuplicateFieldError struct {
	Id    signal.Id
	Field signal.Field
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("component %q: duplicate output field %q", e.Id, e.Field)
}

// UnresolvedInputError reports an Input reference that does not resolve to
// a known (id, field) pair.
type UnresolvedInputError struct {
	Consumer signal.Id
	Input    signal.Input
}

func (e *UnresolvedInputError) Error() string {
	return fmt.Sprintf("component %q: unresolved input %s", e.Consumer, e.Input)
}

// CycleError reports a cycle in the combinatorial-only dependency graph.
type CycleError struct{ Remaining []signal.Id }

func (e *CycleError) Error() string {
	return fmt.Sprintf("combinatorial cycle detected among components: %v", e.Remaining)
}

// Build lays out the signal store, resolves every Input reference, builds
// the combinatorial dependency DAG, and topologically sorts it. It returns
// a typed error (never panics) on any model error.
func Build(components []component.Component) (*Scheduled, error) {
	layout, order, err := layoutAndPorts(components)
	if err != nil {
		return nil, err
	}

	if err := resolveInputs(order, layout); err != nil {
		return nil, err
	}

	adj, indegree, edges := buildEdges(order)

	sorted, err := topoSort(order, adj, indegree)
	if err != nil {
		return nil, err
	}

	class := make([]component.Classification, len(sorted))
	for i, c := range sorted {
		_, p := c.IDPorts()
		class[i] = p.Class
	}

	return &Scheduled{Layout: layout, Order: sorted, Class: class, Edges: edges}, nil
}

// layoutAndPorts allocates dense output-slot indices for every component and
// detects Duplicate Id / Duplicate Field errors.
func layoutAndPorts(components []component.Component) (Layout, []component.Component, error) {
	layout := Layout{
		StartIndex: make(map[signal.Id]int),
		FieldIndex: make(map[signal.Id]map[signal.Field]int),
		NumOutputs: make(map[signal.Id]int),
	}
	order := make([]component.Component, 0, len(components))

	next := 0
	for _, c := range components {
		id, p := c.IDPorts()
		if _, dup := layout.StartIndex[id]; dup {
			return layout, nil, &DuplicateIdError{Id: id}
		}

		fields := make(map[signal.Field]int, len(p.Outputs))
		for i, f := range p.Outputs {
			if _, dup := fields[f]; dup {
				return layout, nil, &DuplicateFieldError{Id: id, Field: f}
			}
			fields[f] = next + i
		}

		layout.StartIndex[id] = next
		layout.FieldIndex[id] = fields
		layout.NumOutputs[id] = len(p.Outputs)
		next += len(p.Outputs)

		order = append(order, c)
	}

	layout.Total = next
	return layout, order, nil
}

// resolveInputs checks that every Input reference names a known component
// and one of its declared output fields.
func resolveInputs(order []component.Component, layout Layout) error {
	for _, c := range order {
		id, p := c.IDPorts()
		for _, in := range p.Inputs {
			fields, ok := layout.FieldIndex[in.Id]
			if !ok {
				return &UnresolvedInputError{Consumer: id, Input: in}
			}
			if _, ok := fields[in.Field]; !ok {
				return &UnresolvedInputError{Consumer: id, Input: in}
			}
		}
	}
	return nil
}

// buildEdges adds a directed edge src -> consumer for every input of a
// Combinatorial consumer. Sequential consumers contribute no incoming
// edges, regardless of what they read — that is the mechanism that lets
// feedback loops schedule instead of rejecting the model as cyclic.
func buildEdges(order []component.Component) (adj map[signal.Id][]signal.Id, indegree map[signal.Id]int, edgesForDot map[signal.Id][]signal.Id) {
	adj = make(map[signal.Id][]signal.Id)
	indegree = make(map[signal.Id]int)
	edgesForDot = make(map[signal.Id][]signal.Id)

	for _, c := range order {
		id, _ := c.IDPorts()
		indegree[id] += 0 // ensure every node has an entry
	}

	for _, c := range order {
		id, p := c.IDPorts()
		for _, in := range p.Inputs {
			edgesForDot[in.Id] = append(edgesForDot[in.Id], id)
			if p.Class == component.Combinatorial {
				adj[in.Id] = append(adj[in.Id], id)
				indegree[id]++
			}
		}
	}

	return adj, indegree, edgesForDot
}

// topoSort runs Kahn's algorithm, breaking ties by insertion order in the
// store (a stable sort), and reports a CycleError naming the components
// that could never be scheduled if the combinatorial subgraph has a cycle.
func topoSort(order []component.Component, adj map[signal.Id][]signal.Id, indegree map[signal.Id]int) ([]component.Component, error) {
	byId := make(map[signal.Id]component.Component, len(order))
	position := make(map[signal.Id]int, len(order))
	for i, c := range order {
		id, _ := c.IDPorts()
		byId[id] = c
		position[id] = i
	}

	remaining := make(map[signal.Id]int, len(indegree))
	for id, d := range indegree {
		remaining[id] = d
	}

	// queue holds the ids currently available to schedule (indegree 0). It
	// starts in original insertion order; ids that become ready later are
	// appended, so the loop below picks by original position to keep ties
	// stable.
	var queue []signal.Id
	for _, c := range order {
		id, _ := c.IDPorts()
		if remaining[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]component.Component, 0, len(order))
	for len(queue) > 0 {
		// Pick the queued id with the smallest original position, keeping
		// the result stable without needing a priority queue: the store is
		// small enough (a single model's component count) that a linear
		// scan per step is simple and fast enough.
		bestIdx := 0
		for i := 1; i < len(queue); i++ {
			if position[queue[i]] < position[queue[bestIdx]] {
				bestIdx = i
			}
		}
		id := queue[bestIdx]
		queue = append(queue[:bestIdx], queue[bestIdx+1:]...)

		sorted = append(sorted, byId[id])

		for _, next := range adj[id] {
			remaining[next]--
			if remaining[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(order) {
		var stuck []signal.Id
		for id, d := range remaining {
			if d > 0 {
				stuck = append(stuck, id)
			}
		}
		return nil, &CycleError{Remaining: stuck}
	}

	return sorted, nil
}
