package texture

import (
	"embed"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/voxelmon/server/internal/voxel"
)

//go:embed assets/*.bmp
var embeddedAssets embed.FS

// assetNames is the fixed set of ten logical texture names from §6: one for
// water (used on every axis) and three (x, y, z) each for dirt, grass, and
// stone.
var assetNames = []string{
	"water",
	"dirt_x", "dirt_y", "dirt_z",
	"grass_x", "grass_y", "grass_z",
	"stone_x", "stone_y", "stone_z",
}

// Table maps (block, face axis) to a texture image and samples a palette
// colour for a ray hit. Built once at startup; shared read-only by every
// concurrent pixel computation within a session.
type Table struct {
	water                  *Image
	dirtX, dirtY, dirtZ    *Image
	grassX, grassY, grassZ *Image
	stoneX, stoneY, stoneZ *Image
}

// NewTable decodes the ten embedded face textures. An unknown RGB triple or
// a wrongly sized image fails construction outright — this is a
// configuration error (§7), fatal at startup, never surfaced per-frame.
func NewTable() (*Table, error) {
	images := make(map[string]*Image, len(assetNames))
	for _, name := range assetNames {
		data, err := embeddedAssets.ReadFile("assets/" + name + ".bmp")
		if err != nil {
			return nil, fmt.Errorf("texture: missing embedded asset %q: %w", name, err)
		}
		img, err := decodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("texture: asset %q: %w", name, err)
		}
		images[name] = img
	}
	return newTableFromImages(images)
}

// NewTableFromDir decodes the ten face textures from dir/<name>.bmp, for
// deployments that configure Textures.Dir instead of using the compiled-in
// defaults (§2.2).
func NewTableFromDir(dir string) (*Table, error) {
	images := make(map[string]*Image, len(assetNames))
	for _, name := range assetNames {
		path := filepath.Join(dir, name+".bmp")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("texture: missing asset file %q: %w", path, err)
		}
		img, err := decodeImage(data)
		if err != nil {
			return nil, fmt.Errorf("texture: asset %q: %w", path, err)
		}
		images[name] = img
	}
	return newTableFromImages(images)
}

func newTableFromImages(images map[string]*Image) (*Table, error) {
	return &Table{
		water:  images["water"],
		dirtX:  images["dirt_x"],
		dirtY:  images["dirt_y"],
		dirtZ:  images["dirt_z"],
		grassX: images["grass_x"],
		grassY: images["grass_y"],
		grassZ: images["grass_z"],
		stoneX: images["stone_x"],
		stoneY: images["stone_y"],
		stoneZ: images["stone_z"],
	}, nil
}

// imageFor picks the texture image for a (block, axis) pair per §4.2:
// water ignores axis, dirt/grass/stone pick their axis-specific variant (Y
// is the brightest "top", Z the mid "front/back", X the darkest "side").
func (t *Table) imageFor(block voxel.Block, axis voxel.FaceAxis) *Image {
	switch block {
	case voxel.Water:
		return t.water
	case voxel.Dirt:
		switch axis {
		case voxel.AxisY:
			return t.dirtY
		case voxel.AxisZ:
			return t.dirtZ
		default:
			return t.dirtX
		}
	case voxel.Grass:
		switch axis {
		case voxel.AxisY:
			return t.grassY
		case voxel.AxisZ:
			return t.grassZ
		default:
			return t.grassX
		}
	case voxel.Stone:
		switch axis {
		case voxel.AxisY:
			return t.stoneY
		case voxel.AxisZ:
			return t.stoneZ
		default:
			return t.stoneX
		}
	default:
		return nil
	}
}

// Sample returns the palette colour for a ray hit, per §4.2: the UV offset
// is clamped into the 8x8 texel grid here (C3 deliberately does not clamp,
// to preserve the out-of-range signal for logging).
func (t *Table) Sample(hit voxel.Hit) Colour {
	if hit.Block == voxel.Air {
		return Sky
	}
	img := t.imageFor(hit.Block, hit.Axis)
	if img == nil {
		return Sky
	}

	ix := clampTexel(hit.Offset.X)
	iy := clampTexel(hit.Offset.Y)
	return img.at(ix, iy)
}

func clampTexel(uv float64) int {
	i := int(math.Floor(uv * imageSize))
	if i < 0 {
		return 0
	}
	if i > imageSize-1 {
		return imageSize - 1
	}
	return i
}
