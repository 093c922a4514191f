// Package source builds the textured mesh shared by the commands.
package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/loov/hrtime"

	"github.com/adinfit/polymesh/icosahedron"
	"github.com/adinfit/polymesh/mesh"
	"github.com/adinfit/polymesh/obj"
)

// Options selects the mesh. When OBJ is set Radius and Shading are ignored.
type Options struct {
	OBJ       string
	Radius    float64
	Shading   string
	Subdivide int
}

// Timings records how long each stage of Build took.
type Timings struct {
	Load      time.Duration
	Subdivide time.Duration
}

// Build loads or generates the mesh and subdivides it.
// Generated icosahedra are textured with mesh.SphericalUV.
func Build(opts Options) (*mesh.Wrapped, Timings, error) {
	var timings Timings
	if opts.Subdivide < 0 {
		return nil, timings, fmt.Errorf("%w: subdivide %d", mesh.ErrInvalidArgument, opts.Subdivide)
	}

	loadStart := hrtime.Now()
	var wrapped *mesh.Wrapped
	if opts.OBJ != "" {
		m, err := obj.Load(opts.OBJ)
		if err != nil {
			return nil, timings, err
		}
		wrapped = m
	} else {
		shading, err := icosahedron.ParseShading(opts.Shading)
		if err != nil {
			return nil, timings, err
		}
		ico, err := icosahedron.New(opts.Radius, shading)
		if err != nil {
			return nil, timings, err
		}
		wrapped = mesh.Wrap(ico.Mesh(), mesh.SphericalUV)
	}
	timings.Load = hrtime.Since(loadStart)

	subdivideStart := hrtime.Now()
	for i := 0; i < opts.Subdivide; i++ {
		wrapped.Subdivide()
	}
	timings.Subdivide = hrtime.Since(subdivideStart)

	mesh.Logger().Debug("source: built mesh",
		slog.Int("vertices", wrapped.VertexCount()),
		slog.Int("faces", wrapped.FaceCount()),
		slog.Duration("load", timings.Load),
		slog.Duration("subdivide", timings.Subdivide))
	return wrapped, timings, nil
}
