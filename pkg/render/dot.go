package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/casegen/pkg/gen"
)

const header = `  bgcolor="transparent";
  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.4, fixedsize=true];
  edge [fontsize=12];
`

// ToDOT converts an adjacency list to Graphviz DOT.
func ToDOT(name string, adj gen.Adjacency, directed bool) string {
	var buf bytes.Buffer
	writeHeader(&buf, name, directed)

	for _, v := range adj.Vertices() {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")

	arrow := edgeOp(directed)
	for _, u := range adj.Vertices() {
		for _, v := range adj[u] {
			if !directed && v < u {
				continue
			}
			fmt.Fprintf(&buf, "  %d %s %d;\n", u, arrow, v)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// WeightedToDOT converts a weighted edge list to Graphviz DOT. Vertices are
// those referenced by an edge; edges keep list order.
func WeightedToDOT(name string, edges []gen.WeightedEdge, directed bool) string {
	var buf bytes.Buffer
	writeHeader(&buf, name, directed)

	seen := make(map[int]bool)
	var vertices []int
	for _, e := range edges {
		for _, v := range [2]int{e.U, e.V} {
			if !seen[v] {
				seen[v] = true
				vertices = append(vertices, v)
			}
		}
	}
	for _, v := range sortedInts(vertices) {
		fmt.Fprintf(&buf, "  %d;\n", v)
	}
	buf.WriteString("\n")

	arrow := edgeOp(directed)
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %d %s %d [label=%q];\n", e.U, arrow, e.V, strconv.Itoa(e.Weight))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeHeader(buf *bytes.Buffer, name string, directed bool) {
	kind := "graph"
	if directed {
		kind = "digraph"
	}
	fmt.Fprintf(buf, "%s %q {\n", kind, name)
	buf.WriteString(header)
	buf.WriteString("\n")
}

func edgeOp(directed bool) string {
	if directed {
		return "->"
	}
	return "--"
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg element with one whose
// width and height match the viewBox, so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
