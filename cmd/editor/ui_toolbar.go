package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/isoedit/tools"
)

// ToolBar contains the radio-group state for the tool buttons.
type ToolBar struct {
	group    *widget.RadioGroup
	buttons  []*widget.Button
	tools    []tools.Tool
	suppress bool
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, ts []tools.Tool, onToolSelected func(t tools.Tool)) (*widget.Container, *ToolBar) {
	tb := &ToolBar{tools: ts}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 40),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	for _, t := range ts {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.Name(), fontFace, toggleTextCols),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(80, 32),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}

	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if tb.suppress || onToolSelected == nil {
				return
			}
			for idx, b := range tb.buttons {
				if args.Active == b {
					onToolSelected(tb.tools[idx])
					return
				}
			}
		}),
	)

	if len(tb.buttons) > 0 {
		tb.SetTool(ts[0])
	}
	return toolbar, tb
}

// SetTool marks t active without reporting a selection.
func (tb *ToolBar) SetTool(t tools.Tool) {
	if tb == nil || tb.group == nil {
		return
	}
	for idx, cur := range tb.tools {
		if cur == t {
			tb.suppress = true
			tb.group.SetActive(tb.buttons[idx])
			tb.suppress = false
			return
		}
	}
}
