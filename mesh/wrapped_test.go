package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func texturedQuad(t *testing.T) *Wrapped {
	t.Helper()
	w := NewWrapped()
	n := w.AddVertexNormal(0, 0, 1)
	for _, p := range []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		pi := w.AddVertexPosition(p[0], p[1], 0)
		vi, err := w.AddVertex(Vertex{pi, n})
		if err != nil {
			t.Fatal(err)
		}
		if err := w.AddVertexTextureCoordinate(vi, p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}
	mustFace(t, w.Construct, 0, 1, 2)
	mustFace(t, w.Construct, 0, 2, 3)
	return w
}

func TestAddVertexTextureCoordinate(t *testing.T) {
	w := texturedQuad(t)

	if err := w.AddVertexTextureCoordinate(4, 0, 0); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("AddVertexTextureCoordinate(4) error = %v, want ErrInvalidReference", err)
	}
	if err := w.AddVertexTextureCoordinate(-1, 0, 0); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("AddVertexTextureCoordinate(-1) error = %v, want ErrInvalidReference", err)
	}

	if err := w.AddVertexTextureCoordinate(2, 0.25, 0.75); err != nil {
		t.Fatal(err)
	}
	if uv, ok := w.TextureCoordinate(2); !ok || uv != (mgl64.Vec2{0.25, 0.75}) {
		t.Errorf("TextureCoordinate(2) = %v, %v, want overwritten (0.25, 0.75)", uv, ok)
	}
	if w.TextureCoordinateCount() != 4 {
		t.Errorf("TextureCoordinateCount = %d, want 4", w.TextureCoordinateCount())
	}
}

func TestWrappedSubdivide(t *testing.T) {
	w := texturedQuad(t)
	w.Subdivide()

	if w.FaceCount() != 8 {
		t.Fatalf("FaceCount = %d, want 8", w.FaceCount())
	}
	if w.TextureCoordinateCount() != w.VertexCount() {
		t.Fatalf("%d texture coordinates for %d vertices", w.TextureCoordinateCount(), w.VertexCount())
	}

	// the quad's UVs equal its XY positions, so every midpoint must too
	for i := 0; i < w.VertexCount(); i++ {
		p := w.Position(w.Vertex(i).Position)
		uv, _ := w.TextureCoordinate(i)
		if !uvNear(uv, mgl64.Vec2{p[0], p[1]}, 1e-12) {
			t.Errorf("vertex %d at %v has uv %v", i, p, uv)
		}
	}

	w.Subdivide()
	if w.TextureCoordinateCount() != w.VertexCount() {
		t.Errorf("after two passes %d texture coordinates for %d vertices", w.TextureCoordinateCount(), w.VertexCount())
	}
}

func TestWrappedSubdivideMissingTextureCoordinate(t *testing.T) {
	w := NewWrapped()
	n := w.AddVertexNormal(0, 0, 1)
	for i := 0; i < 3; i++ {
		p := w.AddVertexPosition(float64(i), float64(i*i), 0)
		if _, err := w.AddVertex(Vertex{p, n}); err != nil {
			t.Fatal(err)
		}
	}
	mustFace(t, w.Construct, 0, 1, 2)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingTextureCoordinate) {
			t.Errorf("recovered %v, want ErrMissingTextureCoordinate", r)
		}
	}()
	w.Subdivide()
}

func TestWrap(t *testing.T) {
	c := tetrahedron(t)
	w := Wrap(c, SphericalUV)
	if w.TextureCoordinateCount() != 4 {
		t.Fatalf("TextureCoordinateCount = %d, want 4", w.TextureCoordinateCount())
	}
	w.Subdivide()
	if w.TextureCoordinateCount() != w.VertexCount() {
		t.Errorf("%d texture coordinates for %d vertices", w.TextureCoordinateCount(), w.VertexCount())
	}
}

func TestSphericalUV(t *testing.T) {
	tests := []struct {
		p    mgl64.Vec3
		want mgl64.Vec2
	}{
		{mgl64.Vec3{0, 0, 1}, mgl64.Vec2{0.5, 0}},
		{mgl64.Vec3{0, 0, -2}, mgl64.Vec2{0.5, 1}},
		{mgl64.Vec3{1, 0, 0}, mgl64.Vec2{0.5, 0.5}},
		{mgl64.Vec3{0, 1, 0}, mgl64.Vec2{0.75, 0.5}},
		{mgl64.Vec3{-1, 0, 0}, mgl64.Vec2{1, 0.5}},
	}
	for _, tt := range tests {
		if got := SphericalUV(tt.p); !uvNear(got, tt.want, 1e-12) {
			t.Errorf("SphericalUV(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
