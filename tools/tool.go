package tools

import (
	"math/rand/v2"

	"github.com/milk9111/isoedit/tile"
)

// ghostAlpha is the opacity of a hovered object whose edit is being previewed.
const ghostAlpha float32 = 0.3

// Tool is an editing tool driven by pointer events over the map. The
// object argument is the object under the cursor and may be nil.
type Tool interface {
	Name() string
	OnActivated(o tile.Object)
	OnDeactivated(o tile.Object)
	OnMouseEnter(o tile.Object)
	OnMouseLeave(o tile.Object)
	OnMousePressed(o tile.Object)
	OnMouseReleased(o tile.Object)
	OnVirtualLayerTile(p tile.Point3)
	// Update runs once per frame with the current pointer state.
	Update(in Input)
}

// MapClient is the map store edits are committed to.
type MapClient interface {
	AddStatic(t tile.StaticTile)
	SetLandID(t *tile.LandTile, id uint16)
	MoveStatic(t *tile.StaticTile, x, y uint16, z int8)
	LandAt(x, y uint16) *tile.LandTile
}

// Heights looks up the physical height of a static tile id.
type Heights interface {
	StaticHeight(id uint16) uint8
}

// Selection is what the surrounding UI has selected.
type Selection interface {
	ActiveID() uint16
	SelectedHue() uint16
	LandMode() bool
}

// Ghosts is the render-only preview layer.
type Ghosts interface {
	AddLand(o *tile.LandObject)
	AddStatic(o *tile.StaticObject)
	ClearLand()
	ClearStatic()
	Land() []*tile.LandObject
	Statics() []*tile.StaticObject
}

// VirtualPlane is a floating z plane the pointer can be projected onto.
type VirtualPlane interface {
	Visible() bool
	SetVisible(v bool)
	Z() int
	SetZ(z int)
	TilePos() tile.Point3
}

type Rand interface {
	IntN(n int) int
}

// Input is the per-frame pointer state.
type Input interface {
	MouseReleased() bool
}

// Deps are the collaborators a tool is built with.
type Deps struct {
	Client    MapClient
	Heights   Heights
	Selection Selection
	Ghosts    Ghosts
	Plane     VirtualPlane
	Rand      Rand
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// restore undoes any preview render state on o.
func restore(o tile.Object) {
	if o == nil {
		return
	}
	o.SetVisible(true)
	o.SetAlpha(1)
}

func clearGhosts(g Ghosts) {
	g.ClearLand()
	g.ClearStatic()
}

// offset adds d to a coordinate with uint16 wraparound.
func offset(v uint16, d int) uint16 {
	return uint16(int(v) + d)
}
