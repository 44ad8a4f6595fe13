package mapstore

import "github.com/milk9111/isoedit/tile"

// GhostLayer holds preview tiles. They are drawn over the map and never
// committed.
type GhostLayer struct {
	land    []*tile.LandObject
	statics []*tile.StaticObject
}

func NewGhostLayer() *GhostLayer {
	return &GhostLayer{}
}

func (g *GhostLayer) AddLand(o *tile.LandObject) {
	g.land = append(g.land, o)
}

func (g *GhostLayer) AddStatic(o *tile.StaticObject) {
	g.statics = append(g.statics, o)
}

func (g *GhostLayer) ClearLand() {
	g.land = nil
}

func (g *GhostLayer) ClearStatic() {
	g.statics = nil
}

func (g *GhostLayer) Clear() {
	g.ClearLand()
	g.ClearStatic()
}

func (g *GhostLayer) Land() []*tile.LandObject {
	return g.land
}

func (g *GhostLayer) Statics() []*tile.StaticObject {
	return g.statics
}

func (g *GhostLayer) Len() int {
	return len(g.land) + len(g.statics)
}
