// Package render draws generated graphs with Graphviz.
//
// # Overview
//
// Graph-shaped values (graph, tree and weightedEdges fields) are easier to
// check by eye than by reading adjacency lists. This package turns them into
// Graphviz DOT source and renders that source to SVG with the embedded
// go-graphviz engine, so no external binary is required.
//
//	dot := render.ToDOT("tree", adj, false)
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Record Fields
//
// [Fields] walks a generated record alongside its constraint set and returns
// one [Drawable] per graph-shaped field, in field order. Records decoded from
// cache hold raw JSON values; Fields decodes those as well.
//
// # DOT Conventions
//
// Vertices are emitted in ascending order as circles labelled with their
// index. Undirected adjacency lists contain every edge twice; ToDOT emits each
// edge once, from the lower to the higher index. Weighted edges carry their
// weight as the edge label.
package render
