package component

import "github.com/vaneri-9/syncrim/signal"

// regFileWrite records what happened to the register file on a single
// Clock call, so UnClock can undo it. It is pushed exactly once per Clock
// call (even when no write occurred) to stay in lockstep with the
// simulator's own history stack.
type regFileWrite struct {
	wrote bool
	addr  uint32
	old   uint32
}

// RegFile is a 32-register, 32-bit-wide register file with MIPS-style
// register-zero-is-always-zero semantics and write-before-read ordering
// within a cycle.
type RegFile struct {
	Id                                                     signal.Id
	ReadAddr1, ReadAddr2, WriteData, WriteAddr, WriteEnable signal.Input

	registers [32]uint32
	writeLog  []regFileWrite
}

// NewRegFile builds a RegFile.
func NewRegFile(id signal.Id, readAddr1, readAddr2, writeData, writeAddr, writeEnable signal.Input) *RegFile {
	return &RegFile{
		Id:          id,
		ReadAddr1:   readAddr1,
		ReadAddr2:   readAddr2,
		WriteData:   writeData,
		WriteAddr:   writeAddr,
		WriteEnable: writeEnable,
	}
}

// IDPorts implements Component.
func (c *RegFile) IDPorts() (signal.Id, Ports) {
	return c.Id, Ports{
		Inputs:  []signal.Input{c.ReadAddr1, c.ReadAddr2, c.WriteData, c.WriteAddr, c.WriteEnable},
		Outputs: []signal.Field{"reg_a", "reg_b"},
		Class:   Combinatorial,
	}
}

// Clock implements Component. A write to register R is visible to a read of
// register R in the same cycle, except R=0, which always reads 0.
func (c *RegFile) Clock(s Signals) {
	writeAddr := s.GetInputVal(c.WriteAddr).Uint()
	writeEnable := s.GetInputVal(c.WriteEnable).Uint() != 0

	entry := regFileWrite{}
	if writeEnable && writeAddr != 0 {
		entry = regFileWrite{wrote: true, addr: writeAddr, old: c.registers[writeAddr]}
		c.registers[writeAddr] = s.GetInputVal(c.WriteData).Uint()
	}
	c.writeLog = append(c.writeLog, entry)

	a := s.GetInputVal(c.ReadAddr1).Uint()
	b := s.GetInputVal(c.ReadAddr2).Uint()
	s.SetOutVal(c.Id, "reg_a", signal.New(c.readRegister(a)))
	s.SetOutVal(c.Id, "reg_b", signal.New(c.readRegister(b)))
}

func (c *RegFile) readRegister(addr uint32) uint32 {
	if addr == 0 {
		return 0
	}
	return c.registers[addr]
}

// UnClock implements component.UnClocker.
func (c *RegFile) UnClock() {
	n := len(c.writeLog)
	if n == 0 {
		return
	}

	last := c.writeLog[n-1]
	c.writeLog = c.writeLog[:n-1]
	if last.wrote {
		c.registers[last.addr] = last.old
	}
}
