package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type stage struct {
	kind   uint32
	name   string
	source string
}

// NewProgram compiles and links a program. geometryShaderSource may be empty.
// Sources must be NUL terminated.
func NewProgram(vertexShaderSource, fragmentShaderSource, geometryShaderSource string) (uint32, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, "vertex", vertexShaderSource},
		{gl.FRAGMENT_SHADER, "fragment", fragmentShaderSource},
	}
	if geometryShaderSource != "" {
		stages = append(stages, stage{gl.GEOMETRY_SHADER, "geometry", geometryShaderSource})
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		shader, err := compileShader(st)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, shader)
		// flagged for deletion, freed once the program is deleted
		defer gl.DeleteShader(shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(size int32, buf *uint8) {
			gl.GetProgramInfoLog(program, size, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("render: link program: %s", log)
	}

	return program, nil
}

func compileShader(st stage) (uint32, error) {
	shader := gl.CreateShader(st.kind)

	sources, free := gl.Strs(st.source)
	gl.ShaderSource(shader, 1, sources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := infoLog(length, func(size int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, size, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("render: compile %s shader: %s", st.name, log)
	}

	return shader, nil
}

// infoLog reads a NUL terminated GL info log of the given length.
func infoLog(length int32, read func(size int32, buf *uint8)) string {
	if length <= 0 {
		return "no info log"
	}
	buf := make([]byte, length)
	read(length, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// MeshVertexShader transforms interleaved buffer.MeshData vertices.
var MeshVertexShader = `
#version 330

uniform mat4 ProjectionMatrix;
uniform mat4 CameraMatrix;

in vec3 VertexPosition;
in vec3 VertexNormal;
in vec2 VertexUV;

out vec3 FragmentPosition;
out vec3 FragmentNormal;
out vec2 FragmentUV;

void main() {
	gl_Position = ProjectionMatrix * CameraMatrix * vec4(VertexPosition, 1);

	FragmentPosition = VertexPosition;
	FragmentNormal = VertexNormal;
	FragmentUV = VertexUV;
}
` + "\x00"

// MeshFragmentShader shades with one diffuse point light and an optional texture.
var MeshFragmentShader = `
#version 330

uniform vec3 DiffuseLightPosition;
uniform sampler2D AlbedoTexture;
uniform int UseTexture;

in vec3 FragmentPosition;
in vec3 FragmentNormal;
in vec2 FragmentUV;

out vec4 OutputColor;

void main() {
	vec3 albedo = vec3(0.8, 0.8, 0.85);
	if (UseTexture != 0) {
		albedo = texture(AlbedoTexture, FragmentUV).rgb;
	}
	float ambientLight = 0.3;

	vec3 normal = normalize(FragmentNormal);
	vec3 diffuseLightDirection = normalize(DiffuseLightPosition - FragmentPosition);
	float diffuseShade = clamp(dot(normal, diffuseLightDirection), 0.0, 1.0);

	OutputColor = vec4(albedo * (ambientLight + diffuseShade), 1);
}
` + "\x00"
