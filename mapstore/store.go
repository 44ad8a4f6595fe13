package mapstore

import (
	"github.com/milk9111/isoedit/tile"
)

const defaultMaxUndo = 100

// Store is an in-memory map: a land grid plus freely placed statics. It is
// the map client the editing tools commit to.
type Store struct {
	width    int
	height   int
	land     []tile.LandTile
	landObjs []*tile.LandObject
	statics  []*tile.StaticObject
	undo     []edit
	maxUndo  int
}

// New creates a width x height map with every land cell set to landID at z 0.
func New(width, height int, landID uint16) *Store {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Store{
		width:    width,
		height:   height,
		land:     make([]tile.LandTile, width*height),
		landObjs: make([]*tile.LandObject, width*height),
		maxUndo:  defaultMaxUndo,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			s.land[idx] = tile.LandTile{ID: landID, X: uint16(x), Y: uint16(y)}
			s.landObjs[idx] = tile.NewLandObject(&s.land[idx])
		}
	}
	return s
}

func (s *Store) Width() int  { return s.width }
func (s *Store) Height() int { return s.height }

func (s *Store) SetMaxUndo(n int) {
	if n <= 0 {
		n = defaultMaxUndo
	}
	s.maxUndo = n
	if len(s.undo) > n {
		s.undo = s.undo[len(s.undo)-n:]
	}
}

func (s *Store) index(x, y uint16) int {
	if int(x) >= s.width || int(y) >= s.height {
		return -1
	}
	return int(y)*s.width + int(x)
}

// LandAt returns the land record at (x, y), or nil outside the map.
func (s *Store) LandAt(x, y uint16) *tile.LandTile {
	idx := s.index(x, y)
	if idx < 0 {
		return nil
	}
	return &s.land[idx]
}

// LandObject returns the render object for the land cell at (x, y).
func (s *Store) LandObject(x, y uint16) *tile.LandObject {
	idx := s.index(x, y)
	if idx < 0 {
		return nil
	}
	return s.landObjs[idx]
}

// SetLandZ changes terrain height without recording undo; used to build maps.
func (s *Store) SetLandZ(x, y uint16, z int8) {
	if lt := s.LandAt(x, y); lt != nil {
		lt.Z = z
	}
}

// Statics returns the static objects in insertion order.
func (s *Store) Statics() []*tile.StaticObject {
	return s.statics
}

// StaticsAt returns the statics standing on (x, y) in insertion order.
func (s *Store) StaticsAt(x, y uint16) []*tile.StaticObject {
	var res []*tile.StaticObject
	for _, so := range s.statics {
		if so.Tile.X == x && so.Tile.Y == y {
			res = append(res, so)
		}
	}
	return res
}

// ObjectAt returns the topmost object at (x, y): the highest static (later
// additions win ties), else the land tile. Returns nil outside the map.
func (s *Store) ObjectAt(x, y uint16) tile.Object {
	var top *tile.StaticObject
	for _, so := range s.StaticsAt(x, y) {
		if top == nil || so.Tile.Z >= top.Tile.Z {
			top = so
		}
	}
	if top != nil {
		return top
	}
	if lo := s.LandObject(x, y); lo != nil {
		return lo
	}
	return nil
}

// AddStatic places a copy of t on the map.
func (s *Store) AddStatic(t tile.StaticTile) {
	nt := t
	so := tile.NewStaticObject(&nt)
	s.statics = append(s.statics, so)
	s.pushUndo(edit{kind: editAdd, static: so})
}

// SetLandID overwrites the id of an existing land record in place.
func (s *Store) SetLandID(t *tile.LandTile, id uint16) {
	if t == nil || t.ID == id {
		return
	}
	s.pushUndo(edit{kind: editLandID, land: t, prevID: t.ID})
	t.ID = id
}

// MoveStatic repositions an existing static. The target is not checked
// against the map extents.
func (s *Store) MoveStatic(t *tile.StaticTile, x, y uint16, z int8) {
	if t == nil {
		return
	}
	if t.X == x && t.Y == y && t.Z == z {
		return
	}
	s.pushUndo(edit{kind: editMove, moved: t, prevX: t.X, prevY: t.Y, prevZ: t.Z})
	t.UpdatePos(x, y, z)
}

func (s *Store) removeStatic(so *tile.StaticObject) {
	for i, cur := range s.statics {
		if cur == so {
			s.statics = append(s.statics[:i], s.statics[i+1:]...)
			return
		}
	}
}
