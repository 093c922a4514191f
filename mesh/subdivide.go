package mesh

// Subdivide replaces every triangle with four by splitting each edge at its
// midpoint. Midpoints are shared between the faces on either side of an
// edge regardless of the direction each face walks it.
//
// Pools and the vertex table only grow; the face table is replaced.
func (c *Construct) Subdivide() {
	faces := c.faces
	midpoints := make(map[Edge]int, len(faces)*3/2)

	c.faces = make([]Face, 0, len(faces)*4)
	c.faceIndex = make(map[Face]int, len(faces)*4)

	verticesBefore := len(c.vertices)
	for _, face := range faces {
		m01 := c.midpoint(midpoints, Edge{face.V1, face.V2})
		m12 := c.midpoint(midpoints, Edge{face.V2, face.V3})
		m20 := c.midpoint(midpoints, Edge{face.V3, face.V1})

		c.addFace(Face{face.V1, m01, m20})
		c.addFace(Face{face.V2, m12, m01})
		c.addFace(Face{face.V3, m20, m12})
		c.addFace(Face{m01, m12, m20})
	}

	Logger().Debug("mesh: subdivided",
		"faces", len(c.faces),
		"vertices", len(c.vertices),
		"midpoints", len(c.vertices)-verticesBefore)
}

// midpoint returns the vertex halfway along e, creating it on first use.
func (c *Construct) midpoint(cache map[Edge]int, e Edge) Vertex {
	key := e.Undirected()
	if index, ok := cache[key]; ok {
		return c.vertices[index]
	}

	p1, p2 := c.cartesian(c.positions[e.V1.Position]), c.cartesian(c.positions[e.V2.Position])
	n1, n2 := c.cartesian(c.normals[e.V1.Normal]), c.cartesian(c.normals[e.V2.Normal])

	c.positions = append(c.positions, c.native(p1.Add(p2).Mul(0.5)))
	c.normals = append(c.normals, c.native(n1.Add(n2).Mul(0.5)))

	mid := Vertex{Position: len(c.positions) - 1, Normal: len(c.normals) - 1}
	c.vertices = append(c.vertices, mid)
	index := len(c.vertices) - 1
	c.vertexIndex[mid] = index
	cache[key] = index

	a, b := c.vertexIndex[e.V1], c.vertexIndex[e.V2]
	for _, hook := range c.midpointHooks {
		hook(index, a, b)
	}
	return mid
}
