package main

import (
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type World struct {
	ScreenSize g.Vec2
	Camera     Camera

	// Distance is how far the camera orbits from the origin.
	Distance             float32
	DiffuseLightPosition g.Vec3

	Time      float64
	DeltaTime float32
}

// NewWorld frames a mesh that fits inside a sphere of the given radius.
func NewWorld(radius float32) *World {
	world := &World{}
	world.Distance = radius * 2.5
	world.Camera = *NewCamera(world.Distance)
	return world
}

func (world *World) NextFrameGLFW(window *glfw.Window) {
	width, height := window.GetFramebufferSize()
	screenSize := g.V2(float32(width), float32(height))
	now := glfw.GetTime()

	if world.ScreenSize != screenSize {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
	world.NextFrame(screenSize, now)
}

func (world *World) NextFrame(screenSize g.Vec2, now float64) {
	if world.ScreenSize != screenSize {
		log.Println("screen", screenSize)
	}
	world.ScreenSize = screenSize
	world.DeltaTime = float32(now - world.Time)
	world.Time = now

	world.Camera.UpdateScreenSize(screenSize)
}

type Camera struct {
	Eye, LookAt, Up g.Vec3

	FOV       float32
	Near, Far float32

	Projection g.Mat4
	Camera     g.Mat4
}

func NewCamera(distance float32) *Camera {
	return &Camera{
		Eye:    g.V3(0, distance*0.4, distance),
		LookAt: g.V3(0, 0, 0),
		Up:     g.V3(0, 1, 0),
		FOV:    60,
		Near:   distance * 0.01,
		Far:    distance * 4,
	}
}

func (camera *Camera) UpdateScreenSize(size g.Vec2) {
	if size.Y <= 0 {
		return
	}
	camera.Projection = g.Perspective(g.DegToRad(camera.FOV), size.X/size.Y, camera.Near, camera.Far)
	camera.Camera = g.LookAtV(camera.Eye, camera.LookAt, camera.Up)
}
