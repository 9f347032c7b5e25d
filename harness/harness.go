// Package harness wraps one or more simulator.Simulator instances as an
// akita TickingComponent, so a SyncRim model can be dropped into a larger
// akita simulation or driven standalone as a batch/regression runner.
package harness

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/vaneri-9/syncrim/simulator"
)

// Harness drives a Simulator one cycle per Tick. It embeds
// *sim.TickingComponent the same way the teacher's Core and driverImpl do,
// so it can be registered with any akita engine; its own Run method is the
// batch-mode entry point used by regression tests, which drive the model
// directly rather than through the engine's event loop (the model is
// synchronous and single-threaded).
type Harness struct {
	*sim.TickingComponent

	sim        *simulator.Simulator
	maxCycles  int
	cyclesSeen int
}

// Builder constructs a Harness, following the teacher's WithEngine/WithFreq
// functional-options style (core.Builder, api.DriverBuilder).
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	sim    *simulator.Simulator
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithEngine sets the akita engine the Harness will tick under.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the Harness's tick frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithSimulator sets the Simulator the Harness drives.
func (b Builder) WithSimulator(s *simulator.Simulator) Builder {
	b.sim = s
	return b
}

// Build constructs the Harness.
func (b Builder) Build(name string) *Harness {
	if b.sim == nil {
		panic("syncrim: harness.Builder.Build: no simulator set, call WithSimulator first")
	}

	h := &Harness{sim: b.sim}
	h.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, h)
	return h
}

// Tick advances the wrapped Simulator by one cycle and reports true. Once
// SetMaxCycles' bound has been reached it clocks nothing and reports false;
// otherwise the model has no notion of stalling at the harness level.
func (h *Harness) Tick(now sim.VTimeInSec) (madeProgress bool) {
	if h.maxCycles > 0 && h.cyclesSeen >= h.maxCycles {
		return false
	}
	h.sim.Clock()
	h.cyclesSeen++
	return true
}

// SetMaxCycles bounds how many cycles Tick will run before reporting no
// progress, so a Harness embedded in a larger akita simulation terminates.
// Zero (the default) means unbounded.
func (h *Harness) SetMaxCycles(n int) {
	h.maxCycles = n
}

// Run drives the wrapped Simulator directly for the given number of cycles,
// independent of any akita engine's event queue. This is the batch-mode path
// used by regression tests.
func (h *Harness) Run(cycles int) {
	for i := 0; i < cycles; i++ {
		h.sim.Clock()
		h.cyclesSeen++
	}
}

// CyclesSeen reports how many cycles this Harness has driven, across Tick
// and Run calls combined.
func (h *Harness) CyclesSeen() int {
	return h.cyclesSeen
}

// RunBatch is the convenience entry point for a standalone batch run: build
// a serial engine and a Harness around sim and run it for cycles cycles.
// Callers at the process boundary (cmd/syncrim-demo) are responsible for
// the teacher's atexit.Exit(0) graceful-shutdown convention; a library
// function must not call it itself.
func RunBatch(name string, s *simulator.Simulator, cycles int) *Harness {
	engine := sim.NewSerialEngine()
	h := NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithSimulator(s).
		Build(name)

	h.Run(cycles)
	return h
}

// String satisfies fmt.Stringer for debug printing.
func (h *Harness) String() string {
	return fmt.Sprintf("Harness(cyclesSeen=%d)", h.cyclesSeen)
}
