package render

import (
	"fmt"
	"image"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/polymesh/render/buffer"
)

// Texture is a mipmapped 2D texture. It repeats along u, matching the
// azimuth seam of spherical UVs, and clamps along v at the poles.
type Texture struct {
	ID            uint32
	Width, Height int32
}

// LoadTexture reads a PNG or JPEG file and uploads it.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open texture: %w", err)
	}
	defer file.Close()

	rgba, err := buffer.DecodeRGBA(file)
	if err != nil {
		return nil, fmt.Errorf("render: texture %q: %w", path, err)
	}
	return NewTexture(rgba), nil
}

// NewTexture uploads rgba, which must start at the origin.
func NewTexture(rgba *image.RGBA) *Texture {
	texture := &Texture{
		Width:  int32(rgba.Rect.Dx()),
		Height: int32(rgba.Rect.Dy()),
	}

	gl.GenTextures(1, &texture.ID)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, texture.Width, texture.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}

// Bind binds the texture to the given texture unit.
func (texture *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}

func (texture *Texture) Delete() {
	if texture.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}
