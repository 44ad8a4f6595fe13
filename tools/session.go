package tools

import "github.com/milk9111/isoedit/tile"

// Session turns per-frame pointer state into lifecycle calls on the active
// tool. Call Hover, then Button, then Update once per frame.
type Session struct {
	tool    Tool
	hovered tile.Object
	down    bool
}

func NewSession(t Tool) *Session {
	s := &Session{}
	s.SetTool(t)
	return s
}

func (s *Session) Tool() Tool { return s.tool }

func (s *Session) Hovered() tile.Object { return s.hovered }

// SetTool swaps the active tool. The outgoing tool is deactivated and the
// incoming one starts a fresh hover session on the current object.
func (s *Session) SetTool(t Tool) {
	if t == s.tool {
		return
	}
	if s.tool != nil {
		s.tool.OnDeactivated(s.hovered)
	}
	s.tool = t
	if t == nil {
		return
	}
	t.OnActivated(s.hovered)
	if s.hovered != nil {
		t.OnMouseEnter(s.hovered)
	}
}

// Hover reports the object under the cursor this frame.
func (s *Session) Hover(o tile.Object) {
	if o == s.hovered {
		return
	}
	prev := s.hovered
	s.hovered = o
	if s.tool == nil {
		return
	}
	if prev != nil {
		s.tool.OnMouseLeave(prev)
	}
	if o != nil {
		s.tool.OnMouseEnter(o)
	}
}

// Button reports whether the primary button is held this frame.
func (s *Session) Button(down bool) {
	if down == s.down {
		return
	}
	s.down = down
	if s.tool == nil {
		return
	}
	if down {
		s.tool.OnMousePressed(s.hovered)
	} else {
		s.tool.OnMouseReleased(s.hovered)
	}
}

// VirtualLayer reports the pointer position on the virtual plane.
func (s *Session) VirtualLayer(p tile.Point3) {
	if s.tool != nil {
		s.tool.OnVirtualLayerTile(p)
	}
}

func (s *Session) Update(in Input) {
	if s.tool != nil {
		s.tool.Update(in)
	}
}
