package gen

import (
	"math"
	"math/bits"

	"github.com/matzehuels/casegen/pkg/errors"
)

// MaxEdges returns the number of distinct non-loop edges on n vertices,
// saturating at math.MaxInt.
func MaxEdges(vertices int, directed bool) int {
	if vertices < 2 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(vertices), uint64(vertices-1))
	if !directed {
		// n(n-1) is even, so halving the 128-bit product is exact.
		hi, lo = hi>>1, lo>>1|hi<<63
	}
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}

type edgeKey struct{ u, v int }

// edgeSampler draws distinct non-loop vertex pairs.
type edgeSampler struct {
	g        *Generator
	vertices int
	directed bool
	seen     map[edgeKey]struct{}
}

func (g *Generator) newEdgeSampler(vertices, edges int, directed bool) (*edgeSampler, error) {
	if vertices < 0 || edges < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "vertices and edges must be non-negative, got %d and %d", vertices, edges)
	}
	if limit := MaxEdges(vertices, directed); edges > limit {
		return nil, errors.New(errors.ErrCodeTooManyEdges, "%d edges requested but %d vertices allow at most %d", edges, vertices, limit)
	}
	return &edgeSampler{
		g:        g,
		vertices: vertices,
		directed: directed,
		seen:     make(map[edgeKey]struct{}, edges),
	}, nil
}

// next draws u then v until the pair is neither a self loop nor a repeat.
// Undirected pairs are keyed by (min, max).
func (s *edgeSampler) next() (u, v int) {
	for {
		u = s.g.intn(0, s.vertices-1)
		v = s.g.intn(0, s.vertices-1)
		if u == v {
			continue
		}
		key := edgeKey{u, v}
		if !s.directed && u > v {
			key = edgeKey{v, u}
		}
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		return u, v
	}
}

// Graph returns a random simple graph with exactly edges edges.
//
// Each accepted pair (u, v) appends v to u's list and, for undirected graphs,
// u to v's list. Sampling retries on loops and duplicates; dense requests
// near the maximum take correspondingly longer.
func (g *Generator) Graph(vertices, edges int, directed bool) (Adjacency, error) {
	s, err := g.newEdgeSampler(vertices, edges, directed)
	if err != nil {
		return nil, err
	}

	adj := NewAdjacency(vertices)
	for range edges {
		u, v := s.next()
		adj[u] = append(adj[u], v)
		if !directed {
			adj[v] = append(adj[v], u)
		}
	}
	return adj, nil
}

// WeightedEdges returns edges distinct edges in acceptance order, each with a
// weight in [minWeight, maxWeight] drawn right after its pair.
func (g *Generator) WeightedEdges(vertices, edges, minWeight, maxWeight int, directed bool) ([]WeightedEdge, error) {
	if err := checkRange("minWeight", "maxWeight", minWeight, maxWeight); err != nil {
		return nil, err
	}
	s, err := g.newEdgeSampler(vertices, edges, directed)
	if err != nil {
		return nil, err
	}

	out := make([]WeightedEdge, 0, edges)
	for range edges {
		u, v := s.next()
		out = append(out, WeightedEdge{U: u, V: v, Weight: g.intn(minWeight, maxWeight)})
	}
	return out, nil
}
