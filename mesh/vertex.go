package mesh

import "fmt"

// Vertex identifies a (position, normal) combination by pool index.
// Two vertices with the same indices are the same vertex.
type Vertex struct {
	Position int
	Normal   int
}

func (v Vertex) String() string {
	return fmt.Sprintf("v(%d/%d)", v.Position, v.Normal)
}

func (v Vertex) less(w Vertex) bool {
	if v.Position != w.Position {
		return v.Position < w.Position
	}
	return v.Normal < w.Normal
}

// Edge is a directed pair of vertices.
type Edge struct {
	V1, V2 Vertex
}

// Reversed returns the edge pointing the other way.
func (e Edge) Reversed() Edge { return Edge{e.V2, e.V1} }

// Undirected returns a canonical form of e such that
// e.Undirected() == e.Reversed().Undirected().
func (e Edge) Undirected() Edge {
	if e.V2.less(e.V1) {
		return e.Reversed()
	}
	return e
}

// Face is a triangle of three distinct vertices in winding order.
type Face struct {
	V1, V2, V3 Vertex
}

// NewFace returns a face, failing with ErrDegenerateFace when
// any two of the vertices are equal.
func NewFace(v1, v2, v3 Vertex) (Face, error) {
	if v1 == v2 || v2 == v3 || v1 == v3 {
		return Face{}, fmt.Errorf("%w: %v %v %v", ErrDegenerateFace, v1, v2, v3)
	}
	return Face{v1, v2, v3}, nil
}

// Vertices returns the corners in winding order.
func (f Face) Vertices() [3]Vertex { return [3]Vertex{f.V1, f.V2, f.V3} }

// Edges returns the three directed edges V1→V2, V2→V3, V3→V1.
func (f Face) Edges() [3]Edge {
	return [3]Edge{{f.V1, f.V2}, {f.V2, f.V3}, {f.V3, f.V1}}
}

// key rotates the face so that the smallest vertex comes first, keeping the
// winding. Rotations of one triangle share a key, mirrored windings do not.
func (f Face) key() Face {
	switch {
	case f.V2.less(f.V1) && f.V2.less(f.V3):
		return Face{f.V2, f.V3, f.V1}
	case f.V3.less(f.V1) && f.V3.less(f.V2):
		return Face{f.V3, f.V1, f.V2}
	}
	return f
}

func (f Face) String() string {
	return fmt.Sprintf("f(%v %v %v)", f.V1, f.V2, f.V3)
}
