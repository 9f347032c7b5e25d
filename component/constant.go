package component

import "github.com/vaneri-9/syncrim/signal"

// Constant publishes a fixed value every cycle. It has no inputs.
type Constant struct {
	Id    signal.Id
	Value signal.Signal
}

// NewConstant builds a Constant component.
func NewConstant(id signal.Id, value signal.Signal) *Constant {
	return &Constant{Id: id, Value: value}
}

// IDPorts implements Component.
func (c *Constant) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Outputs: []signal.Field{signal.Out},
		Class:   Combinatorial,
	}
}

// Clock implements Component.
func (c *Constant) Clock(s Signals) {
	s.SetOutVal(c.Id, signal.Out, c.Value)
}
