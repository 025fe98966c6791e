package gen

import "github.com/matzehuels/casegen/pkg/errors"

// Tree returns a random labelled tree on vertices vertices by decoding a
// random Prüfer sequence.
//
// The sequence has vertices-2 entries drawn from [0, vertices-1]. Each entry
// is joined to the lowest-indexed vertex whose remaining degree is exactly 1;
// the entry's list receives the leaf first, then the leaf's list receives the
// entry. The two vertices left with degree 1 are joined last, lower index
// first. A single vertex yields {0: []}.
func (g *Generator) Tree(vertices int) (Adjacency, error) {
	if vertices < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "tree must have at least 1 vertex, got %d", vertices)
	}
	adj := NewAdjacency(vertices)
	if vertices == 1 {
		return adj, nil
	}

	seq := make([]int, vertices-2)
	for i := range seq {
		seq[i] = g.intn(0, vertices-1)
	}
	decodePrufer(adj, seq)
	return adj, nil
}

// decodePrufer adds the edges encoded by seq to adj, which must hold
// len(seq)+2 isolated vertices.
func decodePrufer(adj Adjacency, seq []int) {
	n := len(seq) + 2
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, node := range seq {
		degree[node]++
	}

	for _, node := range seq {
		for leaf := range n {
			if degree[leaf] != 1 {
				continue
			}
			adj[node] = append(adj[node], leaf)
			adj[leaf] = append(adj[leaf], node)
			degree[node]--
			degree[leaf]--
			break
		}
	}

	var last []int
	for v := range n {
		if degree[v] == 1 {
			last = append(last, v)
		}
	}
	if len(last) == 2 {
		adj[last[0]] = append(adj[last[0]], last[1])
		adj[last[1]] = append(adj[last[1]], last[0])
	}
}
