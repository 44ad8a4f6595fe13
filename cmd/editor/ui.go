package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/isoedit/tools"
)

// ToolPanels shows the settings panel of the active tool.
type ToolPanels struct {
	draw   *DrawPanel
	move   *MovePanel
	active tools.Tool
}

func (tp *ToolPanels) Show(t tools.Tool) {
	tp.active = t
	setVisible(tp.draw.Container, t == tools.Tool(tp.draw.tool))
	setVisible(tp.move.Container, t == tools.Tool(tp.move.tool))
}

// Update runs per-frame widget input that ebitenui does not cover.
func (tp *ToolPanels) Update() {
	if tp.active == tools.Tool(tp.move.tool) {
		tp.move.Update()
	}
}

func (tp *ToolPanels) Refresh() {
	switch tp.active {
	case tools.Tool(tp.draw.tool):
		tp.draw.Refresh()
	case tools.Tool(tp.move.tool):
		tp.move.Refresh()
	}
}

// Dragging reports whether a panel gesture owns the pointer.
func (tp *ToolPanels) Dragging() bool {
	return tp.move.Dragging()
}

func BuildEditorUI(
	panelWidth int,
	ts []tools.Tool,
	onToolSelected func(t tools.Tool),
	draw *tools.DrawTool,
	move *tools.MoveTool,
) (*ebitenui.UI, *ToolBar, *ToolPanels, *widget.Text) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, ts, onToolSelected)
	panels := &ToolPanels{
		draw: buildDrawPanel(ui.PrimaryTheme, &fontFace, draw),
		move: buildMovePanel(ui.PrimaryTheme, &fontFace, move),
	}
	status := newText(&fontFace, "", hintIdle)

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(10),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
	)
	leftPanel.AddChild(toolbarContainer)
	leftPanel.AddChild(status)
	leftPanel.AddChild(panels.draw.Container)
	leftPanel.AddChild(panels.move.Container)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel)
	ui.Container = root

	return ui, toolBar, panels, status
}
