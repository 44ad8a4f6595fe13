package main

import (
	"math"

	"github.com/milk9111/isoedit/tile"
)

// isoView maps grid coordinates to screen pixels on a 2:1 diamond grid.
// Tile (0,0) has its top corner at (OriginX, OriginY).
type isoView struct {
	OriginX float64
	OriginY float64
	TileW   float64
	TileH   float64
	ZScale  float64
}

// toScreen returns the top corner of the diamond for tile (x, y) at height z.
func (v isoView) toScreen(x, y, z float64) (float64, float64) {
	sx := v.OriginX + (x-y)*v.TileW/2
	sy := v.OriginY + (x+y)*v.TileH/2 - z*v.ZScale
	return sx, sy
}

// toGrid projects screen point (sx, sy) onto the plane at height z and
// returns the fractional grid position.
func (v isoView) toGrid(sx, sy, z float64) (float64, float64) {
	a := (sx - v.OriginX) / (v.TileW / 2)
	b := (sy - v.OriginY + z*v.ZScale) / (v.TileH / 2)
	return (a + b) / 2, (b - a) / 2
}

// pick returns the tile whose diamond at height z contains (sx, sy).
func (v isoView) pick(sx, sy float64, z int) tile.Point3 {
	gx, gy := v.toGrid(sx, sy, float64(z))
	return tile.Point3{X: int(math.Floor(gx)), Y: int(math.Floor(gy)), Z: z}
}

// contains reports whether (sx, sy) lies in the diamond of tile (x, y, z).
func (v isoView) contains(sx, sy float64, x, y, z int) bool {
	p := v.pick(sx, sy, z)
	return p.X == x && p.Y == y
}

// diamond returns the four corners (top, right, bottom, left) of a tile.
func (v isoView) diamond(x, y, z float64) [4][2]float64 {
	tx, ty := v.toScreen(x, y, z)
	return [4][2]float64{
		{tx, ty},
		{tx + v.TileW/2, ty + v.TileH/2},
		{tx, ty + v.TileH},
		{tx - v.TileW/2, ty + v.TileH/2},
	}
}
