package buffer

import (
	"math"
	"testing"

	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/polymesh/mesh"
)

func TestMeshDataVertex(t *testing.T) {
	var data MeshData
	a := data.Vertex(m.Vec3{1, 2, 3}, m.Vec3{0, 0, 2}, m.Vec2{0.5, 1})
	b := data.Vertex(m.Vec3{4, 5, 6}, m.Vec3{0, 0, 0}, m.Vec2{})
	data.Triangle(a, b, a)

	if a != 0 || b != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", a, b)
	}
	want := []float32{
		1, 2, 3, 0, 0, 1, 0.5, 1,
		4, 5, 6, 0, 0, 0, 0, 0,
	}
	if len(data.Vertices) != len(want) {
		t.Fatalf("Vertices = %v, want %v", data.Vertices, want)
	}
	for i := range want {
		if data.Vertices[i] != want[i] {
			t.Errorf("Vertices[%d] = %v, want %v", i, data.Vertices[i], want[i])
		}
	}
	if data.VertexCount() != 2 || len(data.Indices) != 3 {
		t.Errorf("VertexCount = %d, len(Indices) = %d, want 2 and 3", data.VertexCount(), len(data.Indices))
	}
}

func TestNewMeshData(t *testing.T) {
	w := mesh.NewWrapped()
	n := w.AddVertexNormal(0, 0, 1)
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		pi := w.AddVertexPosition(p[0], p[1], 0)
		vi, err := w.AddVertex(mesh.Vertex{Position: pi, Normal: n})
		if err != nil {
			t.Fatal(err)
		}
		if err := w.AddVertexTextureCoordinate(vi, p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range [][3]int{{0, 1, 2}, {0, 2, 3}} {
		if _, err := w.AddFace(f[0], f[1], f[2]); err != nil {
			t.Fatal(err)
		}
	}
	w.Subdivide()

	flat := w.Flatten()
	data := NewMeshData(flat)

	if data.VertexCount() != flat.Corners() {
		t.Errorf("VertexCount = %d, want %d", data.VertexCount(), flat.Corners())
	}
	if len(data.Indices) != flat.Corners() {
		t.Errorf("len(Indices) = %d, want %d", len(data.Indices), flat.Corners())
	}
	for i := 0; i < data.VertexCount(); i++ {
		v := data.Vertices[i*MeshVertexFloats : (i+1)*MeshVertexFloats]
		if v[0] != v[6] || v[1] != v[7] {
			t.Errorf("vertex %d position (%v, %v) uv (%v, %v)", i, v[0], v[1], v[6], v[7])
		}
		if l := math.Sqrt(float64(v[3]*v[3] + v[4]*v[4] + v[5]*v[5])); math.Abs(l-1) > 1e-6 {
			t.Errorf("vertex %d normal length %v, want 1", i, l)
		}
	}
}

func TestNewMeshDataUntextured(t *testing.T) {
	flat := mesh.Flat{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
	data := NewMeshData(flat)
	if data.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d, want 3", data.VertexCount())
	}
	for i := 0; i < 3; i++ {
		if uv := data.Vertices[i*MeshVertexFloats+6 : i*MeshVertexFloats+8]; uv[0] != 0 || uv[1] != 0 {
			t.Errorf("vertex %d uv = %v, want (0, 0)", i, uv)
		}
		if data.Indices[i] != uint32(i) {
			t.Errorf("Indices[%d] = %d, want %d", i, data.Indices[i], i)
		}
	}
}
