// Package texture loads the fixed set of 8x8 face textures and samples a
// palette colour for a ray hit.
package texture

import "fmt"

// Colour is a palette index in [0, 15]. Index 9 is the sky default,
// reserved and never loadable from a texture image.
type Colour uint8

// Sky is returned for rays that miss all geometry, and for Air hits.
const Sky Colour = 9

// hexDigits is the canonical lowercase hex encoding used by the teletext
// encoder's fg/bg bands.
const hexDigits = "0123456789abcdef"

// Hex returns the colour's canonical lowercase hex digit.
func (c Colour) Hex() byte {
	return hexDigits[c&0x0f]
}

// rgbToIndex is the fixed 24-bit RGB -> palette index table from §6. Any
// triple not in this table fails texture construction (a configuration
// error, not a per-frame one).
var rgbToIndex = map[uint32]Colour{
	0xf0f0f0: 0,
	0x73b349: 1,
	0x5f9f35: 2,
	0x509026: 3,
	0x966c4a: 4,
	0x79553a: 5,
	0x593d29: 6,
	0x3266cc: 7,
	0x4c32cc: 8,
	0x8f8f8f: 10,
	0x747474: 11,
	0x686868: 12,
}

// colourFromRGB maps a 24-bit RGB triple to a palette Colour, failing
// construction on anything outside the fixed set.
func colourFromRGB(r, g, b uint8) (Colour, error) {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	c, ok := rgbToIndex[key]
	if !ok {
		return 0, fmt.Errorf("texture: unrecognised RGB triple #%06x", key)
	}
	return c, nil
}
