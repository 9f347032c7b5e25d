package component_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
)

var _ = Describe("Add", func() {
	It("wraps on overflow", func() {
		s := newFakeSignals()
		s.set("a", signal.Out, signal.New(0xffffffff))
		s.set("b", signal.Out, signal.New(2))

		add := component.NewAdd("add", signal.Input{Id: "a", Field: signal.Out}, signal.Input{Id: "b", Field: signal.Out})
		add.Clock(s)

		Expect(s.GetInputVal(signal.Input{Id: "add", Field: signal.Out}).Uint()).To(Equal(uint32(1)))
	})
})

var _ = Describe("Mux", func() {
	var sel, i0, i1, i2 signal.Input

	BeforeEach(func() {
		sel = signal.Input{Id: "sel", Field: signal.Out}
		i0 = signal.Input{Id: "i0", Field: signal.Out}
		i1 = signal.Input{Id: "i1", Field: signal.Out}
		i2 = signal.Input{Id: "i2", Field: signal.Out}
	})

	It("selects the chosen input", func() {
		s := newFakeSignals()
		s.set("sel", signal.Out, signal.New(1))
		s.set("i0", signal.Out, signal.New(10))
		s.set("i1", signal.Out, signal.New(20))
		s.set("i2", signal.Out, signal.New(30))

		mux := component.NewMux("mux", sel, []signal.Input{i0, i1, i2})
		mux.Clock(s)

		Expect(s.GetInputVal(signal.Input{Id: "mux", Field: signal.Out}).Uint()).To(Equal(uint32(20)))
	})

	It("panics on an out-of-range select", func() {
		s := newFakeSignals()
		s.set("sel", signal.Out, signal.New(5))
		s.set("i0", signal.Out, signal.New(10))

		mux := component.NewMux("mux", sel, []signal.Input{i0})
		Expect(func() { mux.Clock(s) }).To(Panic())
	})
})

var _ = Describe("Register", func() {
	It("republishes whatever GetInputVal returns, trusting the host to route it", func() {
		s := newFakeSignals()
		s.set("d", signal.Out, signal.New(42))

		reg := component.NewRegister("reg", signal.Input{Id: "d", Field: signal.Out})
		_, ports := reg.IDPorts()
		Expect(ports.Class).To(Equal(component.Sequential))

		reg.Clock(s)
		Expect(s.GetInputVal(signal.Input{Id: "reg", Field: signal.Out}).Uint()).To(Equal(uint32(42)))
	})
})

var _ = Describe("Sext", func() {
	It("leaves a zero-sign-bit value untouched", func() {
		s := newFakeSignals()
		s.set("in", signal.Out, signal.New(0x3))

		sext := component.NewSext("sext", signal.Input{Id: "in", Field: signal.Out}, 4, 8)
		sext.Clock(s)

		Expect(s.GetInputVal(signal.Input{Id: "sext", Field: signal.Out}).Uint()).To(Equal(uint32(0x3)))
	})

	It("extends a set sign bit with ones", func() {
		s := newFakeSignals()
		s.set("in", signal.Out, signal.New(0xb)) // 1011, sign bit of a 4-bit field set

		sext := component.NewSext("sext", signal.Input{Id: "in", Field: signal.Out}, 4, 8)
		sext.Clock(s)

		Expect(s.GetInputVal(signal.Input{Id: "sext", Field: signal.Out}).Uint()).To(Equal(uint32(0xfb)))
	})

	It("panics when the input exceeds its declared width", func() {
		s := newFakeSignals()
		s.set("in", signal.Out, signal.New(1<<4)) // == 2^in_size, strictly out of range

		sext := component.NewSext("sext", signal.Input{Id: "in", Field: signal.Out}, 4, 8)
		Expect(func() { sext.Clock(s) }).To(Panic())
	})

	It("accepts every value strictly below 2^in_size without panicking", func() {
		s := newFakeSignals()
		sext := component.NewSext("sext", signal.Input{Id: "in", Field: signal.Out}, 4, 8)

		for v := uint32(0); v < 1<<4; v++ {
			s.set("in", signal.Out, signal.New(v))
			Expect(func() { sext.Clock(s) }).NotTo(Panic())
		}
	})
})
