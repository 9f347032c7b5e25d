package simulator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
	"github.com/vaneri-9/syncrim/simulator"
	"github.com/vaneri-9/syncrim/store"
)

func regOut(sim *simulator.Simulator) uint32 {
	return sim.Get(sim.Index("reg", signal.Out)).Uint()
}

var _ = Describe("Simulator PC+4 loop (S1)", func() {
	It("latches reg.out one cycle behind add.out and supports UnClock", func() {
		s := store.New()
		s.Add(component.NewConstant("c1", signal.New(4)))
		reg := component.NewRegister("reg", signal.Input{Id: "add", Field: signal.Out})
		s.Add(reg)
		s.Add(component.NewAdd("add",
			signal.Input{Id: "c1", Field: signal.Out},
			signal.Input{Id: "reg", Field: signal.Out}))

		sim, err := simulator.New(s)
		Expect(err).NotTo(HaveOccurred())

		Expect(sim.ClockCounter()).To(Equal(1))
		Expect(regOut(sim)).To(Equal(uint32(0)))

		sim.Clock()
		Expect(sim.ClockCounter()).To(Equal(2))
		Expect(regOut(sim)).To(Equal(uint32(4)))

		// Five Clock calls after construction bring ClockCounter() to 6.
		for sim.ClockCounter() < 6 {
			sim.Clock()
		}
		Expect(regOut(sim)).To(Equal(uint32(20)))

		sim.UnClock()
		Expect(sim.ClockCounter()).To(Equal(5))
		Expect(regOut(sim)).To(Equal(uint32(16)))
	})

	It("UnClock is a no-op at ClockCounter() == 1", func() {
		s := store.New()
		s.Add(component.NewConstant("c1", signal.New(1)))
		sim, err := simulator.New(s)
		Expect(err).NotTo(HaveOccurred())

		Expect(sim.ClockCounter()).To(Equal(1))
		sim.UnClock()
		Expect(sim.ClockCounter()).To(Equal(1))
	})
})

var _ = Describe("Simulator RegFile wiring (S2)", func() {
	It("same-cycle write is visible to a read of the written register", func() {
		s := store.New()
		s.Add(component.NewProbeOut("read_addr_1"))
		s.Add(component.NewProbeOut("read_addr_2"))
		s.Add(component.NewProbeOut("write_data"))
		s.Add(component.NewProbeOut("write_addr"))
		s.Add(component.NewProbeOut("write_enable"))
		s.Add(component.NewRegFile("rf",
			signal.Input{Id: "read_addr_1", Field: signal.Out},
			signal.Input{Id: "read_addr_2", Field: signal.Out},
			signal.Input{Id: "write_data", Field: signal.Out},
			signal.Input{Id: "write_addr", Field: signal.Out},
			signal.Input{Id: "write_enable", Field: signal.Out}))

		sim, err := simulator.New(s)
		Expect(err).NotTo(HaveOccurred())

		regA := func() uint32 { return sim.Get(sim.Index("rf", "reg_a")).Uint() }
		regB := func() uint32 { return sim.Get(sim.Index("rf", "reg_b")).Uint() }
		Expect(regA()).To(Equal(uint32(0)))
		Expect(regB()).To(Equal(uint32(0)))

		sim.SetOutVal("read_addr_1", signal.Out, signal.New(0))
		sim.SetOutVal("read_addr_2", signal.Out, signal.New(1))
		sim.SetOutVal("write_data", signal.Out, signal.New(1337))
		sim.SetOutVal("write_addr", signal.Out, signal.New(1))
		sim.SetOutVal("write_enable", signal.Out, signal.New(1))
		sim.Clock()

		Expect(regA()).To(Equal(uint32(0)))
		Expect(regB()).To(Equal(uint32(1337)))

		sim.SetOutVal("write_data", signal.Out, signal.New(42))
		sim.SetOutVal("write_addr", signal.Out, signal.New(0))
		sim.Clock()

		Expect(regA()).To(Equal(uint32(0)))
		Expect(regB()).To(Equal(uint32(1337)))
	})
})

var _ = Describe("Reversibility", func() {
	It("clocking n times then un-clocking n times restores sim_state bit-exactly", func() {
		s := store.New()
		s.Add(component.NewConstant("c1", signal.New(4)))
		reg := component.NewRegister("reg", signal.Input{Id: "add", Field: signal.Out})
		s.Add(reg)
		s.Add(component.NewAdd("add",
			signal.Input{Id: "c1", Field: signal.Out},
			signal.Input{Id: "reg", Field: signal.Out}))

		sim, err := simulator.New(s)
		Expect(err).NotTo(HaveOccurred())

		initial := regOut(sim)
		const n = 6
		for i := 0; i < n; i++ {
			sim.Clock()
		}
		for i := 0; i < n; i++ {
			sim.UnClock()
		}

		Expect(regOut(sim)).To(Equal(initial))
	})
})
