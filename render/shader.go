package render

import (
	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader is a linked program with a uniform location cache.
type Shader struct {
	Program       uint32
	locationCache map[string]int32
}

// NewShader compiles and links the given sources.
func NewShader(vertexShaderSource, fragmentShaderSource string) (*Shader, error) {
	program, err := NewProgram(vertexShaderSource, fragmentShaderSource, "")
	if err != nil {
		return nil, err
	}
	return &Shader{
		Program:       program,
		locationCache: make(map[string]int32),
	}, nil
}

func (shader *Shader) Begin() { gl.UseProgram(shader.Program) }
func (shader *Shader) End()   { gl.UseProgram(0) }

func (shader *Shader) Delete() {
	gl.DeleteProgram(shader.Program)
	shader.Program = 0
}

func (shader *Shader) uniformLocation(name string) int32 {
	location, ok := shader.locationCache[name]
	if !ok {
		location = gl.GetUniformLocation(shader.Program, gl.Str(name+"\x00"))
		shader.locationCache[name] = location
	}
	return location
}

func (shader *Shader) UniformInt(name string, v int32) {
	location := shader.uniformLocation(name)
	if location < 0 {
		return
	}
	gl.Uniform1i(location, v)
}

func (shader *Shader) UniformFloat32(name string, v float32) {
	location := shader.uniformLocation(name)
	if location < 0 {
		return
	}
	gl.Uniform1f(location, v)
}

func (shader *Shader) UniformVec3(name string, v g.Vec3) {
	location := shader.uniformLocation(name)
	if location < 0 {
		return
	}
	gl.Uniform3f(location, v.X, v.Y, v.Z)
}

func (shader *Shader) UniformMatrix(name string, v g.Mat4) {
	location := shader.uniformLocation(name)
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, v.Ptr())
}
