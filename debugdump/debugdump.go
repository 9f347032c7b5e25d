// Package debugdump renders a Simulator's current signal-store contents as
// a table, for interactive debugging.
package debugdump

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vaneri-9/syncrim/component"
	"github.com/vaneri-9/syncrim/signal"
	"github.com/vaneri-9/syncrim/simulator"
)

// Signals writes one row per (component, output field) pair currently held
// in sim's signal store, sorted by component id for a stable diff-friendly
// dump.
func Signals(w io.Writer, sim *simulator.Simulator) {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("SyncRim signals @ clock=%d", sim.ClockCounter()))
	t.AppendHeader(table.Row{"Component", "Class", "Field", "Value"})

	type row struct {
		id    signal.Id
		class component.Classification
		field signal.Field
		value signal.Signal
	}
	var rows []row
	for _, c := range sim.Components() {
		id, ports := c.IDPorts()
		for _, out := range sim.Outputs(c) {
			rows = append(rows, row{id: id, class: ports.Class, field: out.Field, value: out.Value})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].id != rows[j].id {
			return rows[i].id < rows[j].id
		}
		return rows[i].field < rows[j].field
	})

	for _, r := range rows {
		t.AppendRow(table.Row{string(r.id), className(r.class), string(r.field), r.value.String()})
	}

	fmt.Fprintln(w, t.Render())
}

func className(c component.Classification) string {
	if c == component.Sequential {
		return "sequential"
	}
	return "combinatorial"
}
