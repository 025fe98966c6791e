package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Adjacency maps each vertex 0..n-1 to its ordered neighbor list. Every
// vertex has an entry, possibly empty.
type Adjacency map[int][]int

// NewAdjacency returns an adjacency with n isolated vertices.
func NewAdjacency(n int) Adjacency {
	adj := make(Adjacency, n)
	for v := range n {
		adj[v] = []int{}
	}
	return adj
}

// Vertices returns the vertex indices in ascending order.
func (a Adjacency) Vertices() []int {
	vs := make([]int, 0, len(a))
	for v := range a {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// EdgeCount returns the number of edges. Undirected edges appear in both
// endpoint lists and are counted once.
func (a Adjacency) EdgeCount(directed bool) int {
	n := 0
	for _, ns := range a {
		n += len(ns)
	}
	if !directed {
		n /= 2
	}
	return n
}

// MarshalJSON encodes the adjacency as an object keyed by vertex index in
// numeric order.
func (a Adjacency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range a.Vertices() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(v))
		buf.WriteString(`":`)
		ns := a[v]
		if ns == nil {
			ns = []int{}
		}
		b, err := json.Marshal(ns)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WeightedEdge is an edge from U to V with an integer weight.
type WeightedEdge struct {
	U, V   int
	Weight int
}

// MarshalJSON encodes the edge as the triple [u, v, weight].
func (e WeightedEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{e.U, e.V, e.Weight})
}

// UnmarshalJSON decodes the triple [u, v, weight].
func (e *WeightedEdge) UnmarshalJSON(data []byte) error {
	var t []int
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) != 3 {
		return fmt.Errorf("weighted edge must have 3 elements, got %d", len(t))
	}
	e.U, e.V, e.Weight = t[0], t[1], t[2]
	return nil
}

// MarshalYAML encodes the edge as a three-element sequence.
func (e WeightedEdge) MarshalYAML() (any, error) {
	return []int{e.U, e.V, e.Weight}, nil
}
