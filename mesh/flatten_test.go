package mesh

import (
	"math"
	"testing"
)

func TestFlatten(t *testing.T) {
	c := quad(t)
	flat := c.Flatten()

	if len(flat.Positions) != 3*c.FaceCount()*3 {
		t.Errorf("len(Positions) = %d, want %d", len(flat.Positions), 3*c.FaceCount()*3)
	}
	if len(flat.Normals) != len(flat.Positions) {
		t.Errorf("len(Normals) = %d, want %d", len(flat.Normals), len(flat.Positions))
	}
	if flat.Corners() != 3*c.FaceCount() {
		t.Errorf("Corners = %d, want %d", flat.Corners(), 3*c.FaceCount())
	}
	if flat.TexCoords != nil {
		t.Errorf("TexCoords = %v, want nil for untextured construct", flat.TexCoords)
	}

	// faces (0,1,2), (0,2,3) of the unit square
	want := []float32{
		0, 0, 0, 1, 0, 0, 1, 1, 0,
		0, 0, 0, 1, 1, 0, 0, 1, 0,
	}
	for i := range want {
		if flat.Positions[i] != want[i] {
			t.Fatalf("Positions = %v, want %v", flat.Positions, want)
		}
	}
	for i := 0; i < len(flat.Normals); i += 3 {
		if flat.Normals[i] != 0 || flat.Normals[i+1] != 0 || flat.Normals[i+2] != 1 {
			t.Errorf("normal %d = %v, want (0, 0, 1)", i/3, flat.Normals[i:i+3])
		}
	}
	for i, index := range flat.Indices {
		if index != uint32(i) {
			t.Errorf("Indices[%d] = %d, want %d", i, index, i)
		}
	}
}

func TestFlattenPolarEmitsCartesian(t *testing.T) {
	c := tetrahedron(t)
	want := c.Flatten()
	if err := c.SetCoordinateType(Polar); err != nil {
		t.Fatal(err)
	}
	got := c.Flatten()

	for i := range want.Positions {
		if math.Abs(float64(got.Positions[i]-want.Positions[i])) > roundTripTolerance {
			t.Fatalf("Positions[%d] = %v, want %v", i, got.Positions[i], want.Positions[i])
		}
		if math.Abs(float64(got.Normals[i]-want.Normals[i])) > roundTripTolerance {
			t.Fatalf("Normals[%d] = %v, want %v", i, got.Normals[i], want.Normals[i])
		}
	}
}

func TestWrappedFlatten(t *testing.T) {
	w := texturedQuad(t)
	flat := w.Flatten()

	if len(flat.TexCoords) != 2*flat.Corners() {
		t.Fatalf("len(TexCoords) = %d, want %d", len(flat.TexCoords), 2*flat.Corners())
	}
	for corner := 0; corner < flat.Corners(); corner++ {
		x, y := flat.Positions[corner*3], flat.Positions[corner*3+1]
		u, v := flat.TexCoords[corner*2], flat.TexCoords[corner*2+1]
		if x != u || y != v {
			t.Errorf("corner %d at (%v, %v) has uv (%v, %v)", corner, x, y, u, v)
		}
	}
}
