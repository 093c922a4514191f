// Command viewer renders a subdivided icosahedron or an OBJ mesh.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"

	"github.com/adinfit/polymesh/internal/source"
	"github.com/adinfit/polymesh/mesh"
	"github.com/adinfit/polymesh/render"
	"github.com/adinfit/polymesh/render/buffer"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "profile")
	verbose    = flag.Bool("v", false, "log mesh construction")

	windowWidth  = flag.Int("width", 800, "window width")
	windowHeight = flag.Int("height", 600, "window height")

	objPath     = flag.String("obj", "", "load mesh from Wavefront OBJ file instead of an icosahedron")
	texturePath = flag.String("texture", "", "albedo texture (png or jpeg)")
	radius      = flag.Float64("radius", 10, "icosahedron radius")
	shading     = flag.String("shading", "smooth", "icosahedron shading: smooth or flat")
	subdivide   = flag.Int("subdivide", 2, "subdivision passes")
)

func init() { runtime.LockOSThread() }

func main() {
	flag.Parse()

	if *verbose {
		mesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("unable to create cpu-profile %q: %v", *cpuprofile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("unable to start cpu-profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	wrapped, timings, err := source.Build(source.Options{
		OBJ:       *objPath,
		Radius:    *radius,
		Shading:   *shading,
		Subdivide: *subdivide,
	})
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("mesh: %d vertices, %d faces (load %v, subdivide %v)",
		wrapped.VertexCount(), wrapped.FaceCount(), timings.Load, timings.Subdivide)

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 2)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*windowWidth, *windowHeight, "Mesh", nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize glow:", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	shader, err := render.NewShader(render.MeshVertexShader, render.MeshFragmentShader)
	if err != nil {
		log.Fatalln(err)
	}
	defer shader.Delete()

	var texture *render.Texture
	if *texturePath != "" {
		texture, err = render.LoadTexture(*texturePath)
		if err != nil {
			log.Fatalln(err)
		}
		defer texture.Delete()
	}

	gpuMesh := &render.Mesh{Data: buffer.NewMeshData(wrapped.Flatten())}
	if err := gpuMesh.Upload(shader.Program); err != nil {
		log.Fatalln(err)
	}
	defer gpuMesh.Delete()

	world := NewWorld(float32(sceneRadius(wrapped)))
	world.NextFrameGLFW(window)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	gl.ClearColor(0x26/255.0, 0x42/255.0, 0x6b/255.0, 1.0)

	angle := float32(0.0)
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		angle += world.DeltaTime * 0.3
		sn, cs := g.Sincos(angle)
		world.Camera.Eye.X = sn * world.Distance
		world.Camera.Eye.Z = cs * world.Distance
		world.DiffuseLightPosition = world.Camera.Eye.Add(world.Camera.Up.Mul(world.Distance))

		world.NextFrameGLFW(window)

		renderStart := hrtime.Now()

		shader.Begin()
		shader.UniformMatrix("ProjectionMatrix", world.Camera.Projection)
		shader.UniformMatrix("CameraMatrix", world.Camera.Camera)
		shader.UniformVec3("DiffuseLightPosition", world.DiffuseLightPosition)
		shader.UniformInt("AlbedoTexture", 0)
		if texture != nil {
			texture.Bind(0)
			shader.UniformInt("UseTexture", 1)
		} else {
			shader.UniformInt("UseTexture", 0)
		}

		gpuMesh.Draw()
		shader.End()

		renderStop := hrtime.Now()

		window.SetTitle(fmt.Sprintf("Faces:\t%v\tRender:\t%v", wrapped.FaceCount(), renderStop-renderStart))

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// sceneRadius is the distance of the farthest position from the origin.
func sceneRadius(m *mesh.Wrapped) float64 {
	r := 0.0
	for i := 0; i < m.PositionCount(); i++ {
		p := m.Position(i)
		if m.CoordinateType() == mesh.Polar {
			p = mesh.ToCartesian(p)
		}
		if l := p.Len(); l > r {
			r = l
		}
	}
	if r == 0 {
		return 1
	}
	return r
}
