package mapstore

import "github.com/milk9111/isoedit/tile"

type editKind int

const (
	editAdd editKind = iota
	editLandID
	editMove
)

type edit struct {
	kind   editKind
	static *tile.StaticObject
	land   *tile.LandTile
	prevID uint16
	moved  *tile.StaticTile
	prevX  uint16
	prevY  uint16
	prevZ  int8
}

func (s *Store) pushUndo(e edit) {
	if s.maxUndo <= 0 {
		s.maxUndo = defaultMaxUndo
	}
	if len(s.undo) >= s.maxUndo {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, e)
}

func (s *Store) ClearUndo() {
	s.undo = nil
}

// CanUndo reports whether there is an edit to revert.
func (s *Store) CanUndo() bool {
	return len(s.undo) > 0
}

// Undo reverts the most recent edit. It returns false if there was none.
func (s *Store) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	idx := len(s.undo) - 1
	e := s.undo[idx]
	s.undo = s.undo[:idx]

	switch e.kind {
	case editAdd:
		s.removeStatic(e.static)
	case editLandID:
		e.land.ID = e.prevID
	case editMove:
		e.moved.UpdatePos(e.prevX, e.prevY, e.prevZ)
	}
	return true
}
