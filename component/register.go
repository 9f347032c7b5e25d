package component

import "github.com/vaneri-9/syncrim/signal"

// Register latches its input at the previous cycle boundary: its output for
// cycle N is whatever r_in held at the end of cycle N-1. It is the only
// primitive that breaks combinatorial feedback loops, since the scheduler
// never adds an incoming edge for a Sequential component's fanin.
type Register struct {
	Id   signal.Id
	RIn  signal.Input
}

// NewRegister builds a Register latching RIn.
func NewRegister(id signal.Id, rIn signal.Input) *Register {
	return &Register{Id: id, RIn: rIn}
}

// IDPorts implements Component.
func (c *Register) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs:  []signal.Input{c.RIn},
		Outputs: []signal.Field{signal.Out},
		Class:   Sequential,
	}
}

// Clock implements Component. The Signals implementation is responsible for
// routing a Sequential component's GetInputVal to the pre-cycle snapshot
// rather than to this cycle's in-flight writes; Register itself just reads
// and republishes.
func (c *Register) Clock(s Signals) {
	s.SetOutVal(c.Id, signal.Out, s.GetInputVal(c.RIn))
}
