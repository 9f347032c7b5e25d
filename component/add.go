package component

import "github.com/vaneri-9/syncrim/signal"

// Add computes the wrapping 32-bit sum of its two inputs.
type Add struct {
	Id   signal.Id
	A, B signal.Input
}

// NewAdd builds an Add component. Inputs are presented back, in order, as
// (a, b).
func NewAdd(id signal.Id, a, b signal.Input) *Add {
	return &Add{Id: id, A: a, B: b}
}

// IDPorts implements Component.
func (c *Add) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs:  []signal.Input{c.A, c.B},
		Outputs: []signal.Field{signal.Out},
		Class:   Combinatorial,
	}
}

// Clock implements Component.
func (c *Add) Clock(s Signals) {
	a := s.GetInputVal(c.A).Uint()
	b := s.GetInputVal(c.B).Uint()
	s.SetOutVal(c.Id, signal.Out, signal.New(a+b))
}
