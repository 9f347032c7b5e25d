package component

import (
	"fmt"

	"github.com/vaneri-9/syncrim/signal"
)

// Mux selects one of its data inputs, chosen by Select, and publishes it.
type Mux struct {
	Id     signal.Id
	Select signal.Input
	Inputs []signal.Input
}

// NewMux builds a Mux component over the given select line and data inputs.
func NewMux(id signal.Id, sel signal.Input, inputs []signal.Input) *Mux {
	return &Mux{Id: id, Select: sel, Inputs: inputs}
}

// IDPorts implements Component. Select is presented first, followed by the
// data inputs in order.
func (c *Mux) IDPorts() (signal.Id, Ports) {
	ins := make([]signal.Input, 0, len(c.Inputs)+1)
	ins = append(ins, c.Select)
	ins = append(ins, c.Inputs...)
	return c.Id, Ports{
		Inputs:  ins,
		Outputs: []signal.Field{signal.Out},
		Class:   Combinatorial,
	}
}

// Clock implements Component. An out-of-range select is fatal: it indicates
// a malformed model, not a runtime condition the host should recover from.
func (c *Mux) Clock(s Signals) {
	sel := int(s.GetInputVal(c.Select).Uint())
	if sel < 0 || sel >= len(c.Inputs) {
		panic(fmt.Sprintf("mux %q: select %d out of range [0,%d)", c.Id, sel, len(c.Inputs)))
	}
	s.SetOutVal(c.Id, signal.Out, s.GetInputVal(c.Inputs[sel]))
}
