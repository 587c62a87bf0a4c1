// SPDX-License-Identifier: MIT

// Package dot renders a production network as a Graphviz digraph.
//
// Nodes are labeled "<resource>\n<rate>/t", edges carry their consumption
// weight. Output order follows graph insertion order, so the same network
// always renders byte-for-byte identically.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/prodnet/core"
)

// DefaultName is the digraph identifier used when WithName is not given.
const DefaultName = "production"

// Option configures Write.
type Option[R comparable] func(*config[R])

type config[R comparable] struct {
	name    string
	labeler func(R) string
	rankdir string
}

// WithName sets the digraph identifier.
func WithName[R comparable](name string) Option[R] {
	return func(c *config[R]) { c.name = name }
}

// WithLabeler overrides how a resource is printed (default fmt "%v").
func WithLabeler[R comparable](fn func(R) string) Option[R] {
	return func(c *config[R]) {
		if fn != nil {
			c.labeler = fn
		}
	}
}

// WithLeftToRight lays the graph out horizontally (rankdir=LR).
func WithLeftToRight[R comparable]() Option[R] {
	return func(c *config[R]) { c.rankdir = "LR" }
}

// Write renders g to w. Node identifiers are n0..nN-1 by handle, so
// resource names never need escaping in identifiers.
func Write[R comparable](w io.Writer, g *core.Graph[R], opts ...Option[R]) error {
	cfg := config[R]{
		name:    DefaultName,
		labeler: func(r R) string { return fmt.Sprintf("%v", r) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quote(cfg.name))
	if cfg.rankdir != "" {
		fmt.Fprintf(bw, "  rankdir=%s;\n", cfg.rankdir)
	}

	nodes := g.Nodes()
	ids := make(map[R]int, len(nodes))
	for i, n := range nodes {
		ids[n.Resource] = i
		label := cfg.labeler(n.Resource) + "\n" + formatRate(n.Rate) + "/t"
		fmt.Fprintf(bw, "  n%d [label=%s];\n", i, quote(label))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  n%d -> n%d [label=%s];\n", ids[e.From], ids[e.To], quote(formatRate(e.Weight)))
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// String renders g into a string.
func String[R comparable](g *core.Graph[R], opts ...Option[R]) string {
	var sb strings.Builder
	_ = Write(&sb, g, opts...)

	return sb.String()
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote returns s as a DOT double-quoted string. Newlines become the \n
// escape Graphviz understands in labels.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}
