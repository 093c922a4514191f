// Command meshinfo builds a mesh without a window and reports its size
// and how long each stage took.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/loov/hrtime"

	"github.com/adinfit/polymesh/internal/source"
	"github.com/adinfit/polymesh/mesh"
	"github.com/adinfit/polymesh/obj"
	"github.com/adinfit/polymesh/render/buffer"
)

type config struct {
	source.Options

	Polar bool
	Out   string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.OBJ, "obj", "", "load mesh from Wavefront OBJ file instead of an icosahedron")
	flag.Float64Var(&cfg.Radius, "radius", 1, "icosahedron radius")
	flag.StringVar(&cfg.Shading, "shading", "smooth", "icosahedron shading: smooth or flat")
	flag.IntVar(&cfg.Subdivide, "subdivide", 0, "subdivision passes")
	flag.BoolVar(&cfg.Polar, "polar", false, "convert the result to polar coordinates")
	flag.StringVar(&cfg.Out, "out", "", "write the result as Wavefront OBJ")
	verbose := flag.Bool("v", false, "log mesh construction")
	flag.Parse()

	if *verbose {
		mesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config, stdout io.Writer) error {
	wrapped, timings, err := source.Build(cfg.Options)
	if err != nil {
		return err
	}

	var convert time.Duration
	if cfg.Polar {
		start := hrtime.Now()
		if err := wrapped.SetCoordinateType(mesh.Polar); err != nil {
			return err
		}
		convert = hrtime.Since(start)
	}

	flattenStart := hrtime.Now()
	data := buffer.NewMeshData(wrapped.Flatten())
	flatten := hrtime.Since(flattenStart)

	fmt.Fprintf(stdout, "coordinates\t%v\n", wrapped.CoordinateType())
	fmt.Fprintf(stdout, "positions\t%d\n", wrapped.PositionCount())
	fmt.Fprintf(stdout, "normals\t%d\n", wrapped.NormalCount())
	fmt.Fprintf(stdout, "vertices\t%d\n", wrapped.VertexCount())
	fmt.Fprintf(stdout, "faces\t%d\n", wrapped.FaceCount())
	fmt.Fprintf(stdout, "gpu vertices\t%d\n", data.VertexCount())
	fmt.Fprintf(stdout, "gpu indices\t%d\n", len(data.Indices))
	fmt.Fprintf(stdout, "load\t%v\n", timings.Load)
	fmt.Fprintf(stdout, "subdivide\t%v\n", timings.Subdivide)
	if cfg.Polar {
		fmt.Fprintf(stdout, "convert\t%v\n", convert)
	}
	fmt.Fprintf(stdout, "flatten\t%v\n", flatten)

	if cfg.Out == "" {
		return nil
	}
	return writeOBJ(cfg.Out, wrapped)
}

func writeOBJ(path string, m *mesh.Wrapped) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshinfo: unable to create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return obj.Encode(f, m)
}
