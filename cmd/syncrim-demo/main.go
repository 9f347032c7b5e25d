// Command syncrim-demo builds the PC+4 loop model from the walkthrough
// scenario and runs it for a handful of cycles, printing reg.out and the
// un_clock step back, the same way samples/passthrough demonstrates a
// minimal device end-to-end.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/debugdump"
	"github.com/vaneri-9/syncrim/signal"
	"github.com/vaneri-9/syncrim/simulator"
	"github.com/vaneri-9/syncrim/store"
)

func pcLoop() *store.ComponentStore {
	s := store.New()
	s.Add(component.NewConstant("c1", signal.New(4)))
	s.Add(component.NewRegister("reg", signal.Input{Id: "add", Field: signal.Out}))
	s.Add(component.NewAdd("add",
		signal.Input{Id: "c1", Field: signal.Out},
		signal.Input{Id: "reg", Field: signal.Out}))
	return s
}

func main() {
	sim, err := simulator.New(pcLoop())
	if err != nil {
		fmt.Fprintln(os.Stderr, "syncrim-demo: building model:", err)
		atexit.Exit(1)
		return
	}

	for sim.ClockCounter() < 6 {
		sim.Clock()
	}
	fmt.Printf("after 5 clocks: reg.out=%d\n", sim.Get(sim.Index("reg", signal.Out)).Uint())

	sim.UnClock()
	fmt.Printf("after un_clock: clock=%d reg.out=%d\n", sim.ClockCounter(), sim.Get(sim.Index("reg", signal.Out)).Uint())

	debugdump.Signals(os.Stdout, sim)

	atexit.Exit(0)
}
