package simulator

import (
	"fmt"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
)

// index resolves an Input to its dense slice offset. It always succeeds for
// inputs that passed graph.Build's resolution check; components that hold
// raw Input values constructed outside that check (a host driving a
// ProbeOut's consumers, say) get a clear panic instead of an out-of-range
// slice access.
func (s *Simulator) index(id signal.Id, field signal.Field) int {
	fields, ok := s.layout.FieldIndex[id]
	if !ok {
		panic(fmt.Sprintf("syncrim: unknown component id %q", id))
	}
	idx, ok := fields[field]
	if !ok {
		panic(fmt.Sprintf("syncrim: component %q has no output field %q", id, field))
	}
	return idx
}

// GetInputVal resolves an Input reference and returns its current value.
// Combinatorial callers see the live signal store, including any writes
// already made earlier this cycle by upstream components the scheduler
// guarantees ran first. Sequential callers (Register) see the snapshot
// taken before this cycle's writes began, regardless of scheduling order
// relative to their own source — this is what gives Register its one-cycle
// delay even when its source has no incoming-edge relationship forcing it
// to run afterwards.
func (s *Simulator) GetInputVal(in signal.Input) signal.Signal {
	idx := s.index(in.Id, in.Field)
	if s.currentClass == component.Sequential {
		return s.prevState[idx]
	}
	return s.simState[idx]
}

// SetOutVal publishes a value on a component's output port.
func (s *Simulator) SetOutVal(id signal.Id, field signal.Field, v signal.Signal) {
	s.simState[s.index(id, field)] = v
}

// Get is the resolved-index fast path: callers that cached an index at
// construction can bypass the (id, field) map lookup.
func (s *Simulator) Get(index int) signal.Signal {
	return s.simState[index]
}

// Set is the resolved-index fast path counterpart to Get.
func (s *Simulator) Set(index int, v signal.Signal) {
	s.simState[index] = v
}

// Index exposes the (id, field) -> dense index resolution performed once at
// construction, for callers (persistence, debug dump, test harnesses) that
// want to cache it themselves.
func (s *Simulator) Index(id signal.Id, field signal.Field) int {
	return s.index(id, field)
}
