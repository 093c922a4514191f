package buffer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

// DecodeRGBA decodes a PNG or JPEG image into tightly packed RGBA rows
// starting at the origin, the layout glTexImage2D expects.
func DecodeRGBA(r io.Reader) (*image.RGBA, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: decode image: %w", err)
	}
	rgba := ToRGBA(img)
	if rgba.Rect.Empty() {
		return nil, fmt.Errorf("buffer: empty %s image", format)
	}
	return rgba, nil
}

// ToRGBA copies img into a new RGBA image whose bounds start at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)
	return rgba
}
