package gen

import (
	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/errors"
)

// Parameter defaults applied by the dispatcher.
const (
	DefaultDecimals    = 2
	DefaultProbability = 0.5
)

// GenerateTestCase produces one record from set, visiting fields in
// declaration order so that seeded runs are reproducible.
//
// The first failing field aborts generation. Its error keeps its code and is
// prefixed with the field name.
func (g *Generator) GenerateTestCase(set *constraint.Set) (*Record, error) {
	rec := NewRecord()
	if set == nil {
		return rec, nil
	}
	for name, c := range set.All() {
		v, err := g.Generate(c)
		if err != nil {
			return nil, errors.Annotate(err, "field %s", name)
		}
		rec.Set(name, v)
	}
	return rec, nil
}

// Generate produces a single value for c.
func (g *Generator) Generate(c constraint.Constraint) (any, error) {
	switch c.Type {
	case constraint.TypeInt:
		lo, hi, err := c.IntRange()
		if err != nil {
			return nil, err
		}
		return g.Int(lo, hi)

	case constraint.TypeFloat:
		lo, err := constraint.Float("min", c.Min)
		if err != nil {
			return nil, err
		}
		hi, err := constraint.Float("max", c.Max)
		if err != nil {
			return nil, err
		}
		decimals, err := constraint.IntOr("decimals", c.Decimals, DefaultDecimals)
		if err != nil {
			return nil, err
		}
		return g.Float(lo, hi, decimals)

	case constraint.TypeString:
		n, err := constraint.Int("length", c.Length)
		if err != nil {
			return nil, err
		}
		return g.String(n, c.Charset)

	case constraint.TypeBool:
		p, err := constraint.FloatOr("probability", c.Probability, DefaultProbability)
		if err != nil {
			return nil, err
		}
		return g.Bool(p), nil

	case constraint.TypeChoice:
		if c.Options == nil {
			return nil, errors.New(errors.ErrCodeMissingParameter, "missing required parameter %q", "options")
		}
		return g.Choice(c.Options)

	case constraint.TypeIntArray:
		minLen, maxLen, err := c.Lengths()
		if err != nil {
			return nil, err
		}
		lo, hi, err := c.IntRange()
		if err != nil {
			return nil, err
		}
		return g.IntArray(minLen, maxLen, lo, hi, c.Unique)

	case constraint.TypeMatrix:
		rows, err := constraint.Int("rows", c.Rows)
		if err != nil {
			return nil, err
		}
		cols, err := constraint.Int("cols", c.Cols)
		if err != nil {
			return nil, err
		}
		lo, hi, err := c.IntRange()
		if err != nil {
			return nil, err
		}
		return g.Matrix(rows, cols, lo, hi)

	case constraint.TypeGraph:
		v, e, err := graphSize(c)
		if err != nil {
			return nil, err
		}
		return g.Graph(v, e, c.Directed)

	case constraint.TypeTree:
		v, err := constraint.Int("vertices", c.Vertices)
		if err != nil {
			return nil, err
		}
		return g.Tree(v)

	case constraint.TypeWeightedEdges:
		v, e, err := graphSize(c)
		if err != nil {
			return nil, err
		}
		lo, err := constraint.Int("minWeight", c.MinWeight)
		if err != nil {
			return nil, err
		}
		hi, err := constraint.Int("maxWeight", c.MaxWeight)
		if err != nil {
			return nil, err
		}
		return g.WeightedEdges(v, e, lo, hi, c.Directed)

	default:
		return nil, errors.New(errors.ErrCodeUnknownConstraintType, "unknown constraint type %q", c.Type)
	}
}

func graphSize(c constraint.Constraint) (vertices, edges int, err error) {
	if vertices, err = constraint.Int("vertices", c.Vertices); err != nil {
		return 0, 0, err
	}
	if edges, err = constraint.Int("edges", c.Edges); err != nil {
		return 0, 0, err
	}
	return vertices, edges, nil
}
