package component

import (
	"fmt"

	"github.com/vaneri-9/syncrim/signal"
)

// MemCtrl is the control code a Mem component's ctrl input decodes to.
type MemCtrl uint32

const (
	MemNone  MemCtrl = 0
	MemRead  MemCtrl = 1
	MemWrite MemCtrl = 2
)

// Mem is a byte-addressable memory. Bytes are stored sparsely; an unmapped
// byte reads as 0. Endianness is fixed configuration, set once at
// construction, unlike ctrl/size/sign/addr/data which are runtime inputs.
//
// Mem intentionally has no UnClock: stepping backwards past a write does not
// restore overwritten bytes. Its "data" and
// "err" outputs do roll back with sim_state like any other component's
// outputs; only the byte map itself is not time-travelled.
type Mem struct {
	Id               signal.Id
	Data, Addr, Ctrl signal.Input
	Size, Sign       signal.Input
	BigEndian        bool

	bytes    map[uint32]byte
	lastData signal.Signal
}

// NewMem builds a Mem component.
func NewMem(id signal.Id, data, addr, ctrl, size, sign signal.Input, bigEndian bool) *Mem {
	return &Mem{
		Id:        id,
		Data:      data,
		Addr:      addr,
		Ctrl:      ctrl,
		Size:      size,
		Sign:      sign,
		BigEndian: bigEndian,
		bytes:     make(map[uint32]byte),
	}
}

// IDPorts implements Component.
func (c *Mem) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs:  []signal.Input{c.Data, c.Addr, c.Ctrl, c.Size, c.Sign},
		Outputs: []signal.Field{"data", "err"},
		Class:   Combinatorial,
	}
}

// Clock implements Component.
func (c *Mem) Clock(s Signals) {
	ctrl := MemCtrl(s.GetInputVal(c.Ctrl).Uint())
	addr := s.GetInputVal(c.Addr).Uint()
	size := s.GetInputVal(c.Size).Uint()

	switch size {
	case 1, 2, 4:
	default:
		panic(fmt.Sprintf("mem %q: illegal size %d", c.Id, size))
	}

	err := signal.New(0)
	if addr%size != 0 {
		err = signal.New(1)
	}

	switch ctrl {
	case MemNone:
		// Publish err and republish the last read value; do not touch the
		// byte map or compute a new "data" value.
	case MemRead:
		sign := s.GetInputVal(c.Sign).Uint() != 0
		c.lastData = signal.New(c.read(addr, size, sign))
	case MemWrite:
		c.write(addr, size, s.GetInputVal(c.Data).Uint())
	default:
		panic(fmt.Sprintf("mem %q: illegal ctrl code %d", c.Id, ctrl))
	}

	s.SetOutVal(c.Id, "data", c.lastData)
	s.SetOutVal(c.Id, "err", err)
}

// shift returns the bit-shift for the k-th byte (k=0 is the byte stored at
// the lowest address) of a size-byte access under this Mem's endianness.
func (c *Mem) shift(k, size uint32) uint {
	if c.BigEndian {
		return uint(8 * (size - 1 - k))
	}
	return uint(8 * k)
}

func (c *Mem) read(addr, size uint32, sign bool) uint32 {
	var v uint32
	for k := uint32(0); k < size; k++ {
		v |= uint32(c.bytes[addr+k]) << c.shift(k, size)
	}

	if sign {
		signBit := 8*size - 1
		if v&(1<<signBit) != 0 {
			for bit := 8 * size; bit < 32; bit++ {
				v |= 1 << bit
			}
		}
	}

	return v
}

func (c *Mem) write(addr, size, data uint32) {
	for k := uint32(0); k < size; k++ {
		c.bytes[addr+k] = byte(data >> c.shift(k, size))
	}
}
