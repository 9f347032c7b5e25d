package component

import (
	"fmt"

	"github.com/vaneri-9/syncrim/signal"
)

// Sext sign-extends a value from InSize bits to OutSize bits. InSize and
// OutSize are structural configuration fixed by the model author (the width
// of an immediate field, say), not runtime signals — unlike Mem's size/sign,
// which genuinely vary per access.
type Sext struct {
	Id              signal.Id
	In              signal.Input
	InSize, OutSize uint
}

// NewSext builds a Sext extending In from InSize bits to OutSize bits.
func NewSext(id signal.Id, in signal.Input, inSize, outSize uint) *Sext {
	return &Sext{Id: id, In: in, InSize: inSize, OutSize: outSize}
}

// IDPorts implements Component.
func (c *Sext) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs:  []signal.Input{c.In},
		Outputs: []signal.Field{signal.Out},
		Class:   Combinatorial,
	}
}

// Clock implements Component. The precondition v < 2^InSize is strict: a
// value equal to 2^InSize aborts rather than silently truncating, matching
// the reference simulator's behavior.
func (c *Sext) Clock(s Signals) {
	v := s.GetInputVal(c.In).Uint()

	limit := uint32(1) << c.InSize
	if v >= limit {
		panic(fmt.Sprintf("sext %q: input %d exceeds declared width %d", c.Id, v, c.InSize))
	}

	if c.InSize > 0 && v&(uint32(1)<<(c.InSize-1)) != 0 {
		for bit := c.InSize; bit < c.OutSize; bit++ {
			v |= uint32(1) << bit
		}
	}

	s.SetOutVal(c.Id, signal.Out, signal.New(v))
}
