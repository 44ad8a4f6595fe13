package main

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/isoedit/common"
	"github.com/milk9111/isoedit/mapstore"
	"github.com/milk9111/isoedit/tile"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// staticPlacement is a static queued for depth-sorted drawing.
type staticPlacement struct {
	obj   *tile.StaticObject
	ghost bool
}

// Canvas draws the map, ghosts and virtual layer, and picks the object
// under the cursor.
type Canvas struct {
	view   isoView
	store  *mapstore.Store
	ghosts *mapstore.GhostLayer
	plane  *mapstore.VirtualLayer
	data   *tile.Data
}

func NewCanvas(view isoView, store *mapstore.Store, ghosts *mapstore.GhostLayer, plane *mapstore.VirtualLayer, data *tile.Data) *Canvas {
	return &Canvas{view: view, store: store, ghosts: ghosts, plane: plane, data: data}
}

func (c *Canvas) SetData(d *tile.Data) { c.data = d }

func (c *Canvas) staticHeight(id uint16) float64 {
	h := float64(c.data.StaticHeight(id))
	if h < 2 {
		h = 2
	}
	return h
}

// staticRect is the screen box a static occupies: a column rising from the
// center of its tile.
func (c *Canvas) staticRect(st *tile.StaticTile) Rect {
	tx, ty := c.view.toScreen(float64(st.X), float64(st.Y), float64(st.Z))
	cy := ty + c.view.TileH/2
	w := c.view.TileW / 3
	h := c.staticHeight(st.ID) * c.view.ZScale
	return Rect{X: tx - w/2, Y: cy - h, Width: w, Height: h}
}

func depth(x, y uint16, z int8) int {
	return (int(x)+int(y))*512 + int(z)
}

// Pick returns the frontmost object drawn under (sx, sy): statics win over
// the land they stand on.
func (c *Canvas) Pick(sx, sy int) tile.Object {
	fx, fy := float64(sx), float64(sy)

	var best *tile.StaticObject
	bestDepth := 0
	for _, so := range c.store.Statics() {
		if !c.staticRect(so.Tile).Contains(fx, fy) {
			continue
		}
		d := depth(so.Tile.X, so.Tile.Y, so.Tile.Z)
		if best == nil || d >= bestDepth {
			best = so
			bestDepth = d
		}
	}
	if best != nil {
		return best
	}

	var land *tile.LandObject
	landDepth := 0
	for y := 0; y < c.store.Height(); y++ {
		for x := 0; x < c.store.Width(); x++ {
			lt := c.store.LandAt(uint16(x), uint16(y))
			if !c.view.contains(fx, fy, x, y, int(lt.Z)) {
				continue
			}
			d := depth(lt.X, lt.Y, lt.Z)
			if land == nil || d >= landDepth {
				land = c.store.LandObject(uint16(x), uint16(y))
				landDepth = d
			}
		}
	}
	if land == nil {
		return nil
	}
	return land
}

// PlanePos projects the cursor onto the virtual layer.
func (c *Canvas) PlanePos(sx, sy int) tile.Point3 {
	return c.view.pick(float64(sx), float64(sy), c.plane.Z())
}

func (c *Canvas) Draw(screen *ebiten.Image) {
	ghostLand := make(map[[2]uint16]*tile.LandObject, len(c.ghosts.Land()))
	for _, g := range c.ghosts.Land() {
		ghostLand[[2]uint16{g.Tile.X, g.Tile.Y}] = g
	}

	for y := 0; y < c.store.Height(); y++ {
		for x := 0; x < c.store.Width(); x++ {
			lo := c.store.LandObject(uint16(x), uint16(y))
			if g, ok := ghostLand[[2]uint16{uint16(x), uint16(y)}]; ok && !lo.Visible() {
				c.drawLand(screen, g.Tile, 0.6)
				continue
			}
			if lo.Visible() {
				c.drawLand(screen, lo.Tile, lo.Alpha())
			}
		}
	}
	// Land ghosts away from the hovered tile (virtual layer previews).
	for _, g := range c.ghosts.Land() {
		if lo := c.store.LandObject(g.Tile.X, g.Tile.Y); lo != nil && !lo.Visible() {
			continue
		}
		c.drawLand(screen, g.Tile, 0.6)
	}

	if c.plane.Visible() {
		c.drawPlane(screen)
	}

	placements := make([]staticPlacement, 0, len(c.store.Statics())+len(c.ghosts.Statics()))
	for _, so := range c.store.Statics() {
		placements = append(placements, staticPlacement{obj: so})
	}
	for _, g := range c.ghosts.Statics() {
		placements = append(placements, staticPlacement{obj: g, ghost: true})
	}
	sort.SliceStable(placements, func(i, j int) bool {
		a, b := placements[i].obj.Tile, placements[j].obj.Tile
		return depth(a.X, a.Y, a.Z) < depth(b.X, b.Y, b.Z)
	})
	b := screen.Bounds()
	view := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	for _, p := range placements {
		if !p.obj.Visible() || !view.Intersects(c.staticRect(p.obj.Tile)) {
			continue
		}
		alpha := p.obj.Alpha()
		if p.ghost {
			alpha = common.Lerp(alpha, 0, 0.35)
		}
		c.drawStatic(screen, p.obj.Tile, alpha, p.ghost)
	}
}

func (c *Canvas) drawLand(screen *ebiten.Image, lt *tile.LandTile, alpha float32) {
	col := landColor(lt.ID)
	c.fillDiamond(screen, float64(lt.X), float64(lt.Y), float64(lt.Z), col, alpha)
}

func (c *Canvas) drawPlane(screen *ebiten.Image) {
	z := float64(c.plane.Z())
	col := color.RGBA{120, 170, 255, 255}
	for y := 0; y < c.store.Height(); y++ {
		for x := 0; x < c.store.Width(); x++ {
			if (x+y)%2 == 0 {
				c.fillDiamond(screen, float64(x), float64(y), z, col, 0.15)
			}
		}
	}
	p := c.plane.TilePos()
	c.fillDiamond(screen, float64(p.X), float64(p.Y), z, col, 0.5)
}

func (c *Canvas) drawStatic(screen *ebiten.Image, st *tile.StaticTile, alpha float32, ghost bool) {
	r := c.staticRect(st)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.Width, r.Y+r.Height
	col := staticColor(st.ID, st.Hue)
	if ghost {
		col = color.RGBA{col.R/2 + 127, col.G/2 + 127, col.B/2 + 127, 255}
	}
	c.fillQuad(screen, [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, col, alpha)
	if info, ok := c.data.Static(st.ID); ok && !ghost && info.Name != "" && x1-x0 > 8 {
		ebitenutil.DebugPrintAt(screen, info.Name[:1], int(x0)+2, int(y0))
	}
}

func (c *Canvas) fillDiamond(screen *ebiten.Image, x, y, z float64, col color.RGBA, alpha float32) {
	c.fillQuad(screen, c.view.diamond(x, y, z), col, alpha)
}

func (c *Canvas) fillQuad(screen *ebiten.Image, pts [4][2]float64, col color.RGBA, alpha float32) {
	r := float32(col.R) / 255 * alpha
	g := float32(col.G) / 255 * alpha
	b := float32(col.B) / 255 * alpha
	vs := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: alpha,
		}
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func landColor(id uint16) color.RGBA {
	palette := []color.RGBA{
		{90, 140, 70, 255},
		{110, 160, 80, 255},
		{150, 130, 90, 255},
		{80, 110, 160, 255},
		{170, 170, 150, 255},
	}
	return palette[int(id)%len(palette)]
}

func staticColor(id, hue uint16) color.RGBA {
	base := color.RGBA{
		R: uint8(80 + (int(id)*53)%150),
		G: uint8(60 + (int(id)*97)%150),
		B: uint8(50 + (int(id)*31)%150),
		A: 255,
	}
	if hue != 0 {
		base.R = uint8((int(base.R) + int(hue)*7) % 256)
		base.B = uint8((int(base.B) + int(hue)*13) % 256)
	}
	return base
}
