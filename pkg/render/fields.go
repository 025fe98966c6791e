package render

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/errors"
	"github.com/matzehuels/casegen/pkg/gen"
)

// Drawable is the DOT source for one graph-shaped record field.
type Drawable struct {
	Field    string
	Type     constraint.Type
	Directed bool
	DOT      string
}

// Fields returns a Drawable for every graph, tree and weightedEdges field of
// rec, in the order of set. Fields whose value cannot be interpreted are
// reported as errors.
func Fields(rec *gen.Record, set *constraint.Set) ([]Drawable, error) {
	var out []Drawable
	for name, c := range set.All() {
		if !c.Type.IsGraph() {
			continue
		}
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		directed := c.Directed && c.Type != constraint.TypeTree

		var dot string
		switch c.Type {
		case constraint.TypeWeightedEdges:
			edges, err := asWeightedEdges(v)
			if err != nil {
				return nil, errors.Annotate(err, "field %s", name)
			}
			dot = WeightedToDOT(name, edges, directed)
		default:
			adj, err := asAdjacency(v)
			if err != nil {
				return nil, errors.Annotate(err, "field %s", name)
			}
			dot = ToDOT(name, adj, directed)
		}
		out = append(out, Drawable{Field: name, Type: c.Type, Directed: directed, DOT: dot})
	}
	return out, nil
}

func asAdjacency(v any) (gen.Adjacency, error) {
	switch x := v.(type) {
	case gen.Adjacency:
		return x, nil
	case json.RawMessage:
		var adj gen.Adjacency
		if err := json.Unmarshal(x, &adj); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode adjacency")
		}
		return adj, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected adjacency value of type %T", v)
}

func asWeightedEdges(v any) ([]gen.WeightedEdge, error) {
	switch x := v.(type) {
	case []gen.WeightedEdge:
		return x, nil
	case json.RawMessage:
		var edges []gen.WeightedEdge
		if err := json.Unmarshal(x, &edges); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode weighted edges")
		}
		return edges, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected edge list value of type %T", v)
}

func sortedInts(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}
