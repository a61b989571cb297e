package texture

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
)

// imageSize is the fixed face-texture dimension (§3): every face texture is
// an 8x8 palette-indexed image.
const imageSize = 8

// Image is an 8x8, row-major grid of palette colours.
type Image struct {
	pixels [imageSize * imageSize]Colour
}

func (img *Image) at(x, y int) Colour {
	return img.pixels[y*imageSize+x]
}

// decodeImage decodes an 8x8 BMP asset (embedded or read from a configured
// directory) into an Image, mapping each
// pixel's RGB through the fixed palette table. Wrong dimensions or an
// unrecognised RGB triple fail construction (configuration error), the way
// the teacher's DecodeTGA rejects unsupported TGA variants up front rather
// than guessing.
func decodeImage(data []byte) (*Image, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decoding BMP: %w", err)
	}
	return decodeRawImage(img)
}

// decodeRawImage builds an Image directly from an already-decoded
// image.Image. It is decodeImage's pixel-mapping step, so the embedded set
// and a configured directory (internal/config's Textures.Dir) share it.
func decodeRawImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Dx() != imageSize || bounds.Dy() != imageSize {
		return nil, fmt.Errorf("texture: image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), imageSize, imageSize)
	}
	out := &Image{}
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c, err := colourFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			if err != nil {
				return nil, fmt.Errorf("texture: pixel (%d,%d): %w", x, y, err)
			}
			out.pixels[y*imageSize+x] = c
		}
	}
	return out, nil
}
