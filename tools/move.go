package tools

import (
	"github.com/milk9111/isoedit/common"
	"github.com/milk9111/isoedit/tile"
)

const (
	// dragScale is how many screen pixels of drag make one grid step.
	dragScale = 20
	// dragAngle rotates screen space into the isometric grid basis.
	dragAngle = -45
)

// Direction is one of the eight nudge controls. Up/Down/Left/Right are
// screen directions on the isometric diamond; the X/Y ones move along a
// single map axis.
type Direction int

const (
	DirXMinus Direction = iota
	DirUp
	DirYMinus
	DirLeft
	DirRight
	DirYPlus
	DirDown
	DirXPlus
)

var directionSteps = [...][2]int{
	DirXMinus: {-1, 0},
	DirUp:     {-1, -1},
	DirYMinus: {0, -1},
	DirLeft:   {-1, 1},
	DirRight:  {1, -1},
	DirYPlus:  {0, 1},
	DirDown:   {1, 1},
	DirXPlus:  {1, 0},
}

// Step returns the delta the direction adds.
func (d Direction) Step() (dx, dy int) {
	if d < DirXMinus || d > DirXPlus {
		return 0, 0
	}
	s := directionSteps[d]
	return s[0], s[1]
}

// MoveTool offsets the hovered static by an accumulated delta.
type MoveTool struct {
	client MapClient
	ghosts Ghosts

	xDelta int
	yDelta int

	pressed bool
	hovered tile.Object

	dragX      float64
	dragY      float64
	xDragDelta int
	yDragDelta int
}

func NewMoveTool(d Deps) *MoveTool {
	return &MoveTool{
		client: d.Client,
		ghosts: d.Ghosts,
	}
}

func (t *MoveTool) Name() string { return "Move" }

// Committed is the delta applied on commit.
func (t *MoveTool) Committed() (int, int) { return t.xDelta, t.yDelta }

// Delta is the delta to display: committed plus any drag in progress.
func (t *MoveTool) Delta() (int, int) {
	return t.xDelta + t.xDragDelta, t.yDelta + t.yDragDelta
}

func (t *MoveTool) Nudge(d Direction) {
	dx, dy := d.Step()
	t.xDelta += dx
	t.yDelta += dy
}

func (t *MoveTool) Inverse() {
	t.xDelta = -t.xDelta
	t.yDelta = -t.yDelta
}

func (t *MoveTool) SetDelta(x, y int) {
	t.xDelta = x
	t.yDelta = y
}

// Dragging reports whether a drag delta is pending.
func (t *MoveTool) Dragging() bool {
	return t.dragX != 0 || t.dragY != 0
}

// DragHandle sets the in-progress drag from the raw pixel vector since the
// drag started.
func (t *MoveTool) DragHandle(px, py float64) {
	t.dragX = px
	t.dragY = py
	x, y := common.Rotate(px/dragScale, py/dragScale, dragAngle)
	t.xDragDelta = int(x)
	t.yDragDelta = int(y)
}

// ClickReset zeroes the committed delta unless a drag is in progress.
func (t *MoveTool) ClickReset() {
	if t.Dragging() {
		return
	}
	t.xDelta = 0
	t.yDelta = 0
}

// Update folds a finished drag into the committed delta.
func (t *MoveTool) Update(in Input) {
	if !in.MouseReleased() || !t.Dragging() {
		return
	}
	t.xDelta += t.xDragDelta
	t.yDelta += t.yDragDelta
	t.dragX = 0
	t.dragY = 0
	t.xDragDelta = 0
	t.yDragDelta = 0
}

func (t *MoveTool) OnActivated(o tile.Object) {}

func (t *MoveTool) OnDeactivated(o tile.Object) {
	restore(o)
	restore(t.hovered)
	clearGhosts(t.ghosts)
	t.hovered = nil
	t.pressed = false
}

func (t *MoveTool) OnVirtualLayerTile(p tile.Point3) {}

func (t *MoveTool) OnMouseEnter(o tile.Object) {
	t.hovered = o
	so, ok := o.(*tile.StaticObject)
	if !ok {
		return
	}
	so.SetAlpha(ghostAlpha)
	t.ghosts.AddStatic(tile.NewStaticObject(&tile.StaticTile{
		ID:  so.Tile.ID,
		X:   offset(so.Tile.X, t.xDelta),
		Y:   offset(so.Tile.Y, t.yDelta),
		Z:   so.Tile.Z,
		Hue: so.Tile.Hue,
	}))
}

func (t *MoveTool) OnMouseLeave(o tile.Object) {
	if t.pressed {
		t.apply(o)
	}
	restore(o)
	clearGhosts(t.ghosts)
	t.hovered = nil
}

func (t *MoveTool) OnMousePressed(o tile.Object) {
	t.pressed = true
}

func (t *MoveTool) OnMouseReleased(o tile.Object) {
	if t.pressed {
		t.apply(o)
	}
	t.pressed = false
}

func (t *MoveTool) apply(o tile.Object) {
	switch so := o.(type) {
	case *tile.StaticObject:
		t.client.MoveStatic(so.Tile, offset(so.Tile.X, t.xDelta), offset(so.Tile.Y, t.yDelta), so.Tile.Z)
	case *tile.LandObject:
	}
}
