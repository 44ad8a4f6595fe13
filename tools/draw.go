package tools

import (
	"github.com/milk9111/isoedit/common"
	"github.com/milk9111/isoedit/tile"
)

// DrawMode selects where a new static is placed relative to the hovered tile.
type DrawMode int

const (
	ModeOnTop DrawMode = iota
	ModeReplace
	ModeSamePos
	ModeVirtualLayer
)

func (m DrawMode) String() string {
	switch m {
	case ModeOnTop:
		return "On Top"
	case ModeReplace:
		return "Replace"
	case ModeSamePos:
		return "Same Position"
	case ModeVirtualLayer:
		return "Virtual Layer"
	default:
		return "Unknown"
	}
}

// DrawModes lists the modes in display order.
var DrawModes = []DrawMode{ModeOnTop, ModeReplace, ModeSamePos, ModeVirtualLayer}

// DrawTool places land or static tiles under the cursor.
type DrawTool struct {
	client  MapClient
	heights Heights
	sel     Selection
	ghosts  Ghosts
	plane   VirtualPlane
	rng     Rand

	pressed bool
	hovered tile.Object

	withHue          bool
	mode             DrawMode
	chance           int
	showVirtualLayer bool
}

func NewDrawTool(d Deps) *DrawTool {
	rng := d.Rand
	if rng == nil {
		rng = globalRand{}
	}
	return &DrawTool{
		client:  d.Client,
		heights: d.Heights,
		sel:     d.Selection,
		ghosts:  d.Ghosts,
		plane:   d.Plane,
		rng:     rng,
		chance:  100,
	}
}

func (t *DrawTool) Name() string { return "Draw" }

func (t *DrawTool) WithHue() bool { return t.withHue }

func (t *DrawTool) SetWithHue(v bool) { t.withHue = v }

func (t *DrawTool) Mode() DrawMode { return t.mode }

// SetMode switches placement mode. The current preview is dropped and
// rebuilt for the hovered object under the new rule.
func (t *DrawTool) SetMode(m DrawMode) {
	if m < ModeOnTop || m > ModeVirtualLayer || m == t.mode {
		return
	}
	hovered := t.hovered
	restore(hovered)
	clearGhosts(t.ghosts)
	t.mode = m
	t.syncPlane()
	if hovered != nil {
		t.OnMouseEnter(hovered)
	}
}

// Chance is the percentage of commits that actually edit the map.
func (t *DrawTool) Chance() int { return t.chance }

func (t *DrawTool) SetChance(c int) { t.chance = common.Clamp(c, 0, 100) }

func (t *DrawTool) ShowVirtualLayer() bool { return t.showVirtualLayer }

func (t *DrawTool) SetShowVirtualLayer(v bool) {
	t.showVirtualLayer = v
	t.syncPlane()
}

func (t *DrawTool) VirtualLayerZ() int { return t.plane.Z() }

func (t *DrawTool) SetVirtualLayerZ(z int) { t.plane.SetZ(z) }

// VirtualLayerPos is the pointer position on the virtual plane.
func (t *DrawTool) VirtualLayerPos() tile.Point3 { return t.plane.TilePos() }

func (t *DrawTool) syncPlane() {
	t.plane.SetVisible(t.mode == ModeVirtualLayer && t.showVirtualLayer)
}

func (t *DrawTool) OnActivated(o tile.Object) {
	t.syncPlane()
}

func (t *DrawTool) OnDeactivated(o tile.Object) {
	t.plane.SetVisible(false)
	restore(o)
	restore(t.hovered)
	clearGhosts(t.ghosts)
	t.hovered = nil
	t.pressed = false
}

func (t *DrawTool) Update(in Input) {
	t.syncPlane()
}

func (t *DrawTool) hue() uint16 {
	if !t.withHue {
		return 0
	}
	return t.sel.SelectedHue()
}

// OnVirtualLayerTile restages the preview at p on the virtual plane.
// Static ghosts sit one tile further along both axes so they line up with
// the half-tile offset the plane is drawn with.
func (t *DrawTool) OnVirtualLayerTile(p tile.Point3) {
	if t.mode != ModeVirtualLayer {
		return
	}
	if t.sel.LandMode() {
		t.ghosts.ClearLand()
		t.ghosts.AddLand(tile.NewLandObject(&tile.LandTile{
			ID: t.sel.ActiveID(),
			X:  uint16(p.X),
			Y:  uint16(p.Y),
			Z:  int8(p.Z),
		}))
		return
	}
	t.ghosts.ClearStatic()
	t.ghosts.AddStatic(tile.NewStaticObject(&tile.StaticTile{
		ID:  t.sel.ActiveID(),
		X:   uint16(p.X + 1),
		Y:   uint16(p.Y + 1),
		Z:   int8(p.Z),
		Hue: t.hue(),
	}))
}

func (t *DrawTool) OnMouseEnter(o tile.Object) {
	t.hovered = o
	if o == nil || t.mode == ModeVirtualLayer {
		return
	}
	x, y, z := o.Pos()

	if t.sel.LandMode() {
		if lo, ok := o.(*tile.LandObject); ok {
			lo.SetVisible(false)
			t.ghosts.AddLand(tile.NewLandObject(&tile.LandTile{ID: t.sel.ActiveID(), X: x, Y: y, Z: z}))
		}
		return
	}

	newZ := z
	if t.mode == ModeOnTop {
		newZ = int8(int(z) + int(t.heightOf(o)))
	}
	if _, ok := o.(*tile.StaticObject); ok && t.mode == ModeReplace {
		o.SetAlpha(ghostAlpha)
	}
	t.ghosts.AddStatic(tile.NewStaticObject(&tile.StaticTile{
		ID:  t.sel.ActiveID(),
		X:   x,
		Y:   y,
		Z:   newZ,
		Hue: t.hue(),
	}))
}

func (t *DrawTool) heightOf(o tile.Object) uint8 {
	switch so := o.(type) {
	case *tile.StaticObject:
		return t.heights.StaticHeight(so.Tile.ID)
	case *tile.LandObject:
		return 0
	default:
		return 0
	}
}

func (t *DrawTool) OnMouseLeave(o tile.Object) {
	if t.pressed {
		t.apply(o)
	}
	restore(o)
	clearGhosts(t.ghosts)
	t.hovered = nil
}

func (t *DrawTool) OnMousePressed(o tile.Object) {
	t.pressed = true
}

func (t *DrawTool) OnMouseReleased(o tile.Object) {
	if t.pressed {
		t.apply(o)
	}
	t.pressed = false
}

func (t *DrawTool) apply(o tile.Object) {
	if t.sel.LandMode() {
		target := t.landTarget(o)
		if target == nil || !t.roll() {
			return
		}
		t.client.SetLandID(target, t.sel.ActiveID())
		return
	}

	// Only the first staged static is committed.
	ghosts := t.ghosts.Statics()
	if len(ghosts) == 0 || !t.roll() {
		return
	}
	t.client.AddStatic(*ghosts[0].Tile)
}

// landTarget is the land record a land-mode commit overwrites: the tile
// under the virtual layer ghost in virtual layer mode, else the hovered land.
func (t *DrawTool) landTarget(o tile.Object) *tile.LandTile {
	if t.mode == ModeVirtualLayer {
		if ghosts := t.ghosts.Land(); len(ghosts) > 0 {
			return t.client.LandAt(ghosts[0].Tile.X, ghosts[0].Tile.Y)
		}
		return nil
	}
	if lo, ok := o.(*tile.LandObject); ok {
		return lo.Tile
	}
	return nil
}

// roll reports whether this commit goes ahead. It is skipped only when the
// roll exceeds chance.
func (t *DrawTool) roll() bool {
	return t.rng.IntN(100) <= t.chance
}
