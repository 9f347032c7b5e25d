package component

import "github.com/vaneri-9/syncrim/signal"

// Wire is pure data-routing with no outputs: it exists for UI layout and
// carries no computation. A Wire's "value" is whatever it is wired from;
// downstream components reference the upstream component directly, so Wire
// never needs to republish anything.
type Wire struct {
	Id   signal.Id
	From signal.Input
}

// NewWire builds a Wire.
func NewWire(id signal.Id, from signal.Input) *Wire {
	return &Wire{Id: id, From: from}
}

// IDPorts implements Component.
func (c *Wire) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs: []signal.Input{c.From},
		Class:  Combinatorial,
	}
}

// Clock implements Component. Wire has no outputs to write.
func (c *Wire) Clock(Signals) {}

// Probe observes a signal for display purposes. Like Wire, it has no
// outputs and performs no computation.
type Probe struct {
	Id     signal.Id
	Target signal.Input
	Label  string
}

// NewProbe builds a Probe watching Target.
func NewProbe(id signal.Id, target signal.Input) *Probe {
	return &Probe{Id: id, Target: target}
}

// IDPorts implements Component.
func (c *Probe) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs: []signal.Input{c.Target},
		Class:  Combinatorial,
	}
}

// Clock implements Component. Probe has no outputs to write.
func (c *Probe) Clock(Signals) {}

// ProbeOut is a model-level input stub: an output-bearing component with no
// declared inputs. Its value is never computed by Clock; it is driven
// externally by the host calling Simulator.SetOutVal(id, "out", value)
// between cycles (test harnesses and UI stimulus use this to inject signals
// into an otherwise self-contained model). Whatever value was last poked in
// persists across cycles untouched, exactly like Wire and Probe leave their
// declared-but-uncomputed state alone.
type ProbeOut struct {
	Id    signal.Id
	Label string
}

// NewProbeOut builds a ProbeOut.
func NewProbeOut(id signal.Id) *ProbeOut {
	return &ProbeOut{Id: id}
}

// IDPorts implements Component.
func (c *ProbeOut) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Outputs: []signal.Field{signal.Out},
		Class:   Combinatorial,
	}
}

// Clock implements Component. ProbeOut's output is set externally via
// Simulator.SetOutVal, never computed here.
func (c *ProbeOut) Clock(Signals) {}
