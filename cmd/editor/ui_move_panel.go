package main

import (
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/isoedit/tools"
)

const (
	// Frames a nudge button must be held before it starts repeating, and
	// the frames between repeats after that.
	repeatDelay    = 24
	repeatInterval = 4
	nudgeSize      = 40
)

// MovePanel holds the nudge grid, drag handle and delta inputs of the move tool.
type MovePanel struct {
	Container *widget.Container
	tool      *tools.MoveTool

	// corner buttons show the pending offset along each map axis
	xMinus *widget.Button
	yMinus *widget.Button
	yPlus  *widget.Button
	xPlus  *widget.Button

	xInput *widget.TextInput
	yInput *widget.TextInput
	shownX int
	shownY int
	resync bool

	held      tools.Direction
	holding   bool
	heldFor   int
	dragging  bool
	dragStart [2]int
}

func buildMovePanel(theme *widget.Theme, fontFace *text.Face, tool *tools.MoveTool) *MovePanel {
	p := &MovePanel{tool: tool}
	p.Container = newColumn(6)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(3),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)

	nudge := func(label string, d tools.Direction) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, toggleTextCols),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(nudgeSize, nudgeSize)),
			widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
				p.tool.Nudge(d)
				p.held = d
				p.holding = true
				p.heldFor = 0
			}),
			widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
				p.holding = false
			}),
		)
	}

	handle := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("?", fontFace, toggleTextCols),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(nudgeSize, nudgeSize)),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			p.dragging = true
			p.dragStart[0], p.dragStart[1] = ebiten.CursorPosition()
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.tool.ClickReset()
		}),
	)

	p.xMinus = nudge("", tools.DirXMinus)
	p.yMinus = nudge("", tools.DirYMinus)
	p.yPlus = nudge("", tools.DirYPlus)
	p.xPlus = nudge("", tools.DirXPlus)

	grid.AddChild(p.xMinus)
	grid.AddChild(nudge("^", tools.DirUp))
	grid.AddChild(p.yMinus)
	grid.AddChild(nudge("<", tools.DirLeft))
	grid.AddChild(handle)
	grid.AddChild(nudge(">", tools.DirRight))
	grid.AddChild(p.yPlus)
	grid.AddChild(nudge("v", tools.DirDown))
	grid.AddChild(p.xPlus)
	p.Container.AddChild(grid)
	p.Container.AddChild(newLabel(fontFace, "Drag ? to move, click to reset", hintColor))

	p.Container.AddChild(newButton(theme, fontFace, "Inverse", 120, 26, func() {
		p.tool.Inverse()
	}))

	p.xInput = newTextInput(fontFace, 80, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			_, y := p.tool.Committed()
			p.tool.SetDelta(v, y)
		}
		p.resync = true
	})
	p.yInput = newTextInput(fontFace, 80, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			x, _ := p.tool.Committed()
			p.tool.SetDelta(x, v)
		}
		p.resync = true
	})
	for _, f := range []struct {
		label string
		input *widget.TextInput
	}{{"X", p.xInput}, {"Y", p.yInput}} {
		row := newRow(6)
		row.AddChild(newLabel(fontFace, f.label, labelColor))
		row.AddChild(f.input)
		p.Container.AddChild(row)
	}

	p.xInput.SetText("0")
	p.yInput.SetText("0")
	p.Refresh()
	return p
}

// Dragging reports whether the drag handle is held.
func (p *MovePanel) Dragging() bool {
	return p.dragging
}

// Update feeds held buttons and the drag handle to the tool. It runs after
// the UI has processed this frame's input.
func (p *MovePanel) Update() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if p.holding {
		if !left {
			p.holding = false
		} else {
			p.heldFor++
			if p.heldFor >= repeatDelay && (p.heldFor-repeatDelay)%repeatInterval == 0 {
				p.tool.Nudge(p.held)
			}
		}
	}

	if p.dragging {
		if !left {
			p.dragging = false
			return
		}
		cx, cy := ebiten.CursorPosition()
		p.tool.DragHandle(float64(cx-p.dragStart[0]), float64(cy-p.dragStart[1]))
	}
}

// Refresh copies the tool state into the widgets.
func (p *MovePanel) Refresh() {
	x, y := p.tool.Delta()
	setButtonLabel(p.xMinus, magnitude(x < 0, -x))
	setButtonLabel(p.yMinus, magnitude(y < 0, -y))
	setButtonLabel(p.yPlus, magnitude(y > 0, y))
	setButtonLabel(p.xPlus, magnitude(x > 0, x))

	cx, cy := p.tool.Committed()
	if p.resync || cx != p.shownX {
		p.xInput.SetText(strconv.Itoa(cx))
		p.shownX = cx
	}
	if p.resync || cy != p.shownY {
		p.yInput.SetText(strconv.Itoa(cy))
		p.shownY = cy
	}
	p.resync = false
}

func magnitude(show bool, v int) string {
	if !show {
		return ""
	}
	return strconv.Itoa(v)
}
