package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/polymesh/render/buffer"
)

// Mesh is buffer.MeshData uploaded to the GPU.
type Mesh struct {
	VAO uint32
	VBO uint32
	IBO uint32

	Data buffer.MeshData
}

// Upload creates the vertex array and buffers and binds the
// VertexPosition, VertexNormal and VertexUV attributes of program.
func (mesh *Mesh) Upload(program uint32) error {
	if len(mesh.Data.Indices) == 0 {
		return fmt.Errorf("render: empty mesh")
	}

	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Data.Vertices)*4, gl.Ptr(mesh.Data.Vertices), gl.STATIC_DRAW)

	attrib(program, "VertexPosition", 3, 0)
	attrib(program, "VertexNormal", 3, 3*4)
	attrib(program, "VertexUV", 2, 3*4+3*4)

	gl.GenBuffers(1, &mesh.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(mesh.Data.Indices), gl.Ptr(mesh.Data.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return nil
}

func attrib(program uint32, name string, size int32, offset int) {
	location := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	if location < 0 {
		return
	}
	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointer(uint32(location), size, gl.FLOAT, false, buffer.MeshVertexBytes, gl.PtrOffset(offset))
}

func (mesh *Mesh) Draw() {
	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(mesh.Data.Indices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (mesh *Mesh) Delete() {
	gl.DeleteBuffers(1, &mesh.IBO)
	gl.DeleteBuffers(1, &mesh.VBO)
	gl.DeleteVertexArrays(1, &mesh.VAO)
	mesh.VAO, mesh.VBO, mesh.IBO = 0, 0, 0
}
