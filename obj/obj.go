// Package obj reads and writes triangulated Wavefront OBJ meshes.
//
// The supported subset is
//
//	v x y z
//	vt u v
//	vn x y z
//	f p/t/n p/t/n p/t/n
//
// with 1-based indices. Every other line is ignored. A file is either
// loaded completely or not at all: any structural or referential error
// aborts the load.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/adinfit/polymesh/mesh"
)

var (
	// ErrMalformedFile is wrapped by every *ParseError.
	ErrMalformedFile = errors.New("obj: malformed file")

	// ErrReferentialIntegrity is returned when a face refers to a position,
	// texture coordinate or normal that the file does not define.
	ErrReferentialIntegrity = errors.New("obj: referential integrity error")

	// ErrFileNotFound is returned by Load for missing files.
	ErrFileNotFound = errors.New("obj: file not found")
)

// ParseError describes a structurally invalid line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformedFile }

// descriptor is one corner of a face line, 0-based.
type descriptor struct {
	position, texture, normal int
}

type face struct {
	line    int
	corners [3]descriptor
}

type file struct {
	positions []mgl64.Vec3
	texcoords []mgl64.Vec2
	normals   []mgl64.Vec3
	faces     []face
}

// Load reads the OBJ file at path.
func Load(path string) (*mesh.Wrapped, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", mesh.ErrInvalidArgument)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q: %w", ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("obj: unable to open %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads an OBJ mesh from r.
func Parse(r io.Reader) (*mesh.Wrapped, error) {
	data, err := scan(r)
	if err != nil {
		return nil, err
	}
	for _, f := range data.faces {
		if err := data.check(f); err != nil {
			return nil, err
		}
	}
	m, err := data.build()
	if err != nil {
		return nil, err
	}

	mesh.Logger().Debug("obj: parsed",
		"positions", len(data.positions), "texcoords", len(data.texcoords), "normals", len(data.normals),
		"vertices", m.VertexCount(), "faces", m.FaceCount())
	return m, nil
}

func scan(r io.Reader) (*file, error) {
	data := &file{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v []float64
			if v, err = parseFloats(fields[1:], 3); err == nil {
				data.positions = append(data.positions, mgl64.Vec3{v[0], v[1], v[2]})
			}
		case "vt":
			var v []float64
			if v, err = parseFloats(fields[1:], 2); err == nil {
				data.texcoords = append(data.texcoords, mgl64.Vec2{v[0], v[1]})
			}
		case "vn":
			var v []float64
			if v, err = parseFloats(fields[1:], 3); err == nil {
				data.normals = append(data.normals, mgl64.Vec3{v[0], v[1], v[2]})
			}
		case "f":
			var f face
			if f, err = parseFace(fields[1:]); err == nil {
				f.line = line
				data.faces = append(data.faces, f)
			}
		}
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Reason: err.Error()}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	return data, nil
}

func parseFloats(fields []string, count int) ([]float64, error) {
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d values, got %d", count, len(fields))
	}
	values := make([]float64, count)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}

func parseFace(fields []string) (face, error) {
	var f face
	if len(fields) != 3 {
		return f, fmt.Errorf("expected 3 vertices, got %d: faces must be triangulated", len(fields))
	}
	for i, field := range fields {
		parts := strings.Split(field, "/")
		if len(parts) != 3 {
			return f, fmt.Errorf("vertex %q: expected position/texture/normal", field)
		}
		var index [3]int
		for k, part := range parts {
			n, err := strconv.Atoi(part)
			if err != nil {
				return f, fmt.Errorf("vertex %q: invalid index %q", field, part)
			}
			index[k] = n - 1
		}
		f.corners[i] = descriptor{position: index[0], texture: index[1], normal: index[2]}
	}
	return f, nil
}

// check verifies that every corner of f refers to defined data.
func (data *file) check(f face) error {
	for _, d := range f.corners {
		switch {
		case d.position < 0 || d.position >= len(data.positions):
			return fmt.Errorf("%w: line %d: position %d, have %d", ErrReferentialIntegrity, f.line, d.position+1, len(data.positions))
		case d.texture < 0 || d.texture >= len(data.texcoords):
			return fmt.Errorf("%w: line %d: texture coordinate %d, have %d", ErrReferentialIntegrity, f.line, d.texture+1, len(data.texcoords))
		case d.normal < 0 || d.normal >= len(data.normals):
			return fmt.Errorf("%w: line %d: normal %d, have %d", ErrReferentialIntegrity, f.line, d.normal+1, len(data.normals))
		}
	}
	return nil
}

func (data *file) build() (*mesh.Wrapped, error) {
	m := mesh.NewWrapped()
	for _, p := range data.positions {
		m.AddVertexPosition(p[0], p[1], p[2])
	}
	for _, n := range data.normals {
		m.AddVertexNormal(n[0], n[1], n[2])
	}

	vertices := make(map[descriptor]int)
	for _, f := range data.faces {
		for _, d := range f.corners {
			if _, ok := vertices[d]; ok {
				continue
			}
			index, err := m.AddVertex(mesh.Vertex{Position: d.position, Normal: d.normal})
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", f.line, err)
			}
			uv := data.texcoords[d.texture]
			if err := m.AddVertexTextureCoordinate(index, uv[0], uv[1]); err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", f.line, err)
			}
			vertices[d] = index
		}
	}

	for _, f := range data.faces {
		a, b, c := vertices[f.corners[0]], vertices[f.corners[1]], vertices[f.corners[2]]
		if _, err := m.AddFace(a, b, c); err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", f.line, err)
		}
	}
	return m, nil
}
