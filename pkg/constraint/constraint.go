// Package constraint defines the declarative input of casegen: a named,
// ordered set of constraints, each describing the shape and numeric bounds of
// one generated value.
//
// # Constraint Types
//
// Every [Constraint] carries a [Type] tag and the parameters that type uses:
//
//	int            min, max
//	float          min, max, decimals (default 2)
//	string         length, charset (default a-zA-Z0-9)
//	bool           probability (default 0.5)
//	choice         options
//	intArray       minLength + maxLength (or size), min, max, unique
//	matrix         rows, cols, min, max
//	graph          vertices, edges, directed
//	tree           vertices
//	weightedEdges  vertices, edges, minWeight, maxWeight, directed
//
// Numeric parameters are pointers so that an absent parameter can be told
// apart from a zero one. Integer parameters must hold integral values.
//
// # Ordering
//
// A [Set] remembers the order in which fields were declared. Generation walks
// the set in that order, which fixes the order of random draws and therefore
// what a seeded run produces. The JSON, YAML and TOML decoders in this
// package all preserve document order.
package constraint

import "slices"

// Type is the tag that selects a generator.
type Type string

// Recognized constraint types.
const (
	TypeInt           Type = "int"
	TypeFloat         Type = "float"
	TypeString        Type = "string"
	TypeBool          Type = "bool"
	TypeChoice        Type = "choice"
	TypeIntArray      Type = "intArray"
	TypeMatrix        Type = "matrix"
	TypeGraph         Type = "graph"
	TypeTree          Type = "tree"
	TypeWeightedEdges Type = "weightedEdges"
)

// Types lists every recognized type in documentation order.
var Types = []Type{
	TypeInt,
	TypeFloat,
	TypeString,
	TypeBool,
	TypeChoice,
	TypeIntArray,
	TypeMatrix,
	TypeGraph,
	TypeTree,
	TypeWeightedEdges,
}

// Valid reports whether t is a recognized type.
func (t Type) Valid() bool {
	return slices.Contains(Types, t)
}

// IsGraph reports whether values of this type are graphs or edge lists.
func (t Type) IsGraph() bool {
	return t == TypeGraph || t == TypeTree || t == TypeWeightedEdges
}

// Constraint describes one generated value.
type Constraint struct {
	Type Type `json:"type" yaml:"type" toml:"type"`

	Min *float64 `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`

	Decimals    *float64 `json:"decimals,omitempty" yaml:"decimals,omitempty" toml:"decimals,omitempty"`
	Length      *float64 `json:"length,omitempty" yaml:"length,omitempty" toml:"length,omitempty"`
	Charset     string   `json:"charset,omitempty" yaml:"charset,omitempty" toml:"charset,omitempty"`
	Probability *float64 `json:"probability,omitempty" yaml:"probability,omitempty" toml:"probability,omitempty"`
	Options     []any    `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`

	MinLength *float64 `json:"minLength,omitempty" yaml:"minLength,omitempty" toml:"minLength,omitempty"`
	MaxLength *float64 `json:"maxLength,omitempty" yaml:"maxLength,omitempty" toml:"maxLength,omitempty"`
	Size      *float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Unique    bool     `json:"unique,omitempty" yaml:"unique,omitempty" toml:"unique,omitempty"`

	Rows *float64 `json:"rows,omitempty" yaml:"rows,omitempty" toml:"rows,omitempty"`
	Cols *float64 `json:"cols,omitempty" yaml:"cols,omitempty" toml:"cols,omitempty"`

	Vertices  *float64 `json:"vertices,omitempty" yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges     *float64 `json:"edges,omitempty" yaml:"edges,omitempty" toml:"edges,omitempty"`
	Directed  bool     `json:"directed,omitempty" yaml:"directed,omitempty" toml:"directed,omitempty"`
	MinWeight *float64 `json:"minWeight,omitempty" yaml:"minWeight,omitempty" toml:"minWeight,omitempty"`
	MaxWeight *float64 `json:"maxWeight,omitempty" yaml:"maxWeight,omitempty" toml:"maxWeight,omitempty"`
}

// Num returns a pointer to v, for building constraints in code.
func Num(v float64) *float64 {
	return &v
}
