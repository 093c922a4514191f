package mesh

// Flat is a mesh unrolled into GPU-ready arrays, three corners per face.
type Flat struct {
	Positions []float32 // x, y, z per corner
	Normals   []float32 // x, y, z per corner
	TexCoords []float32 // u, v per corner; only filled by Wrapped
	Indices   []uint32  // 0 .. 3*faces-1
}

// Corners returns the number of unrolled corners.
func (flat *Flat) Corners() int { return len(flat.Indices) }

// Flatten walks the faces in order and each face's corners in winding
// order, resolving positions and normals. Polar constructs are emitted in
// Cartesian form.
func (c *Construct) Flatten() Flat {
	n := len(c.faces) * 3
	flat := Flat{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		Indices:   make([]uint32, 0, n),
	}

	for _, face := range c.faces {
		for _, v := range face.Vertices() {
			p := c.cartesian(c.positions[v.Position])
			nv := c.cartesian(c.normals[v.Normal])
			flat.Positions = append(flat.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
			flat.Normals = append(flat.Normals, float32(nv[0]), float32(nv[1]), float32(nv[2]))
			flat.Indices = append(flat.Indices, uint32(len(flat.Indices)))
		}
	}
	return flat
}
