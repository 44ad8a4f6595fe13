package mapstore

import (
	"github.com/milk9111/isoedit/common"
	"github.com/milk9111/isoedit/tile"
)

const (
	MinVirtualZ = -127
	MaxVirtualZ = 127
)

// VirtualLayer is a free-floating z plane used to place tiles regardless
// of the terrain underneath.
type VirtualLayer struct {
	visible bool
	z       int
	pos     tile.Point3
}

func (v *VirtualLayer) Visible() bool { return v.visible }

func (v *VirtualLayer) SetVisible(visible bool) { v.visible = visible }

func (v *VirtualLayer) Z() int { return v.z }

func (v *VirtualLayer) SetZ(z int) {
	v.z = common.Clamp(z, MinVirtualZ, MaxVirtualZ)
}

// TilePos is the grid position the pointer projects onto the plane.
func (v *VirtualLayer) TilePos() tile.Point3 { return v.pos }

func (v *VirtualLayer) SetTilePos(p tile.Point3) { v.pos = p }
