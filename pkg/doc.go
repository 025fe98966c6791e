// Package pkg provides the core libraries for casegen test data generation.
//
// # Overview
//
// casegen turns a declarative, ordered set of constraints into random test
// data. Every value is drawn from one seedable linear congruential generator,
// so a seed reproduces a whole record exactly. The pkg directory is organized
// into three areas:
//
//  1. Generation: [random], [constraint], [gen]
//  2. Orchestration: [batch], [cache], [observability]
//  3. Output: [render], [testcase]
//
// # Architecture
//
// The typical data flow:
//
//	constraints file (JSON / YAML / TOML)
//	         ↓
//	    [constraint] package (ordered Set)
//	         ↓
//	    [batch] package (count, cache lookup, hooks)
//	         ↓
//	    [gen] package (dispatch each field to a generator)
//	         ↓
//	    records as JSON / YAML, DOT / SVG drawings
//
// # Quick Start
//
//	set, _ := constraint.Parse([]byte(`{
//	    "n": {"type": "int", "min": 1, "max": 100},
//	    "g": {"type": "graph", "vertices": 5, "edges": 4}
//	}`), constraint.FormatJSON)
//
//	g := gen.New(gen.WithSeed(42))
//	rec, err := g.GenerateTestCase(set)
//	if err != nil {
//	    // errors.GetCode(err) is e.g. TOO_MANY_EDGES
//	}
//	out, _ := json.Marshal(rec)
//
// # Main Packages
//
// [random] - The deterministic source: a 32-bit LCG when seeded, the runtime
// generator otherwise.
//
// [gen] - Primitive generators (int, float, string, bool, choice, subset),
// composites (intArray, matrix, graph, tree, weightedEdges) and the
// dispatcher that maps a constraint set to a [gen.Record].
//
// [batch] - Repeats generation, caches seeded batches and emits hook events.
// Shared by the CLI and the HTTP server.
//
// [cache] - File, Redis and null backends behind one interface, plus key
// builders.
//
// [render] - DOT text and Graphviz SVG for graph-valued fields.
//
// [testcase] - Reformats judge results into test case records.
//
// [errors] - Error codes shared by every layer.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test -short ./pkg/...    # Skip Graphviz rendering
//
// [random]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/random
// [constraint]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/constraint
// [gen]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/gen
// [gen.Record]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/gen#Record
// [batch]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/batch
// [cache]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/render
// [testcase]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/testcase
// [errors]: https://pkg.go.dev/github.com/matzehuels/casegen/pkg/errors
package pkg
