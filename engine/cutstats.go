package engine

import (
	"fmt"
	"io"
)

// CutStatistics collects node and cutoff counts for one search.
type CutStatistics struct {
	Nodes       uint64
	LeafEvals   uint64
	BetaCutoffs uint64
	EmptyNodes  uint64
}

func (c *CutStatistics) add(o CutStatistics) {
	c.Nodes += o.Nodes
	c.LeafEvals += o.LeafEvals
	c.BetaCutoffs += o.BetaCutoffs
	c.EmptyNodes += o.EmptyNodes
}

func dumpCutStats(w io.Writer, c CutStatistics) {
	fmt.Fprintln(w, "info string Cut statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", c.Nodes)
	fmt.Fprintf(w, "info string   Leaf evaluations: %d\n", c.LeafEvals)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", c.BetaCutoffs)
	fmt.Fprintf(w, "info string   Nodes without moves: %d\n", c.EmptyNodes)
}
