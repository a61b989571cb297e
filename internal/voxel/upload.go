package voxel

import "fmt"

// FromRows builds a World from the nested-string encoding used by the
// world-upload message (§6): contents[y][z] is a row of W characters along
// X. W is inferred from the first row, H from len(contents), D from
// len(contents[0]); every row must agree with those or the upload is
// rejected as a protocol error, never partially applied.
func FromRows(contents [][]string) (*World, error) {
	h := len(contents)
	if h == 0 {
		return nil, fmt.Errorf("voxel: empty world upload (no Y layers)")
	}
	d := len(contents[0])
	if d == 0 {
		return nil, fmt.Errorf("voxel: empty world upload (no Z rows)")
	}
	if len(contents[0][0]) == 0 {
		return nil, fmt.Errorf("voxel: empty world upload (no X columns)")
	}
	wdt := len(contents[0][0])

	world, err := New(wdt, h, d)
	if err != nil {
		return nil, err
	}

	for y, layer := range contents {
		if len(layer) != d {
			return nil, fmt.Errorf("voxel: layer y=%d has %d rows, want %d", y, len(layer), d)
		}
		for z, row := range layer {
			if len(row) != wdt {
				return nil, fmt.Errorf("voxel: row y=%d z=%d has width %d, want %d", y, z, len(row), wdt)
			}
			for x := 0; x < wdt; x++ {
				block, ok := ParseBlock(row[x])
				if !ok {
					return nil, fmt.Errorf("voxel: unknown block character %q at (%d,%d,%d)", row[x], x, y, z)
				}
				world.Set(x, y, z, block)
			}
		}
	}
	return world, nil
}
