package graph

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vaneri-9/syncrim/signal"
)

// SaveDot writes a DOT file of the dependency graph for debugging. The path
// is normalized to end in ".gv" regardless of the extension passed in.
func (sch *Scheduled) SaveDot(path string) error {
	path = normalizeDotPath(path)
	return os.WriteFile(path, []byte(sch.dot()), 0o644)
}

func normalizeDotPath(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		path = path[:i]
	}
	return path + ".gv"
}

func (sch *Scheduled) dot() string {
	var buf bytes.Buffer
	buf.WriteString("digraph syncrim {\n")

	ids := make([]string, 0, len(sch.Order))
	for _, c := range sch.Order {
		id, _ := c.IDPorts()
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}

	srcIds := make([]string, 0, len(sch.Edges))
	for src := range sch.Edges {
		srcIds = append(srcIds, string(src))
	}
	sort.Strings(srcIds)
	for _, src := range srcIds {
		dsts := append([]signal.Id(nil), sch.Edges[signal.Id(src)]...)
		sort.Slice(dsts, func(i, j int) bool { return dsts[i] < dsts[j] })
		for _, dst := range dsts {
			fmt.Fprintf(&buf, "  %q -> %q;\n", src, dst)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
