package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/isoedit/tools"
)

// DrawPanel holds the widgets for the draw tool settings.
type DrawPanel struct {
	Container *widget.Container
	tool      *tools.DrawTool

	hueBtn      *widget.Button
	chanceInput *widget.TextInput
	modeGroup   *widget.RadioGroup
	modeButtons []*widget.Button
	vlForm      *widget.Container
	showBtn     *widget.Button
	zLabel      *widget.Text
	posLabel    *widget.Text

	shownChance int
	suppress    bool
}

func buildDrawPanel(theme *widget.Theme, fontFace *text.Face, tool *tools.DrawTool) *DrawPanel {
	p := &DrawPanel{tool: tool, shownChance: -1}
	p.Container = newColumn(6)

	p.hueBtn = newButton(theme, fontFace, "With Hue: Off", 180, 28, func() {
		p.tool.SetWithHue(!p.tool.WithHue())
	})
	p.Container.AddChild(p.hueBtn)

	p.Container.AddChild(newLabel(fontFace, "Chance", labelColor))
	chanceRow := newRow(4)
	chanceRow.AddChild(newButton(theme, fontFace, "-", 28, 24, func() {
		p.tool.SetChance(p.tool.Chance() - 1)
	}))
	p.chanceInput = newTextInput(fontFace, 60, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			p.tool.SetChance(v)
		}
		p.shownChance = -1
	})
	chanceRow.AddChild(p.chanceInput)
	chanceRow.AddChild(newButton(theme, fontFace, "+", 28, 24, func() {
		p.tool.SetChance(p.tool.Chance() + 1)
	}))
	p.Container.AddChild(chanceRow)
	p.Container.AddChild(newLabel(fontFace, "Type a value and press Enter", hintColor))

	elements := make([]widget.RadioGroupElement, 0, len(tools.DrawModes))
	for _, m := range tools.DrawModes {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(m.String(), fontFace, toggleTextCols),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 26)),
		)
		p.modeButtons = append(p.modeButtons, btn)
		elements = append(elements, btn)
		p.Container.AddChild(btn)
	}
	p.modeGroup = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if p.suppress {
				return
			}
			for idx, b := range p.modeButtons {
				if args.Active == b {
					p.tool.SetMode(tools.DrawModes[idx])
					return
				}
			}
		}),
	)

	p.vlForm = newColumn(4)
	p.showBtn = newButton(theme, fontFace, "Show: Off", 180, 26, func() {
		p.tool.SetShowVirtualLayer(!p.tool.ShowVirtualLayer())
	})
	p.vlForm.AddChild(p.showBtn)
	zRow := newRow(4)
	zRow.AddChild(newButton(theme, fontFace, "-", 28, 24, func() {
		p.tool.SetVirtualLayerZ(p.tool.VirtualLayerZ() - 1)
	}))
	p.zLabel = newText(fontFace, "Z 0", color.White)
	zRow.AddChild(p.zLabel)
	zRow.AddChild(newButton(theme, fontFace, "+", 28, 24, func() {
		p.tool.SetVirtualLayerZ(p.tool.VirtualLayerZ() + 1)
	}))
	p.vlForm.AddChild(zRow)
	p.posLabel = newText(fontFace, "", hintIdle)
	p.vlForm.AddChild(p.posLabel)
	p.Container.AddChild(p.vlForm)

	p.Refresh()
	return p
}

// Refresh copies the tool state into the widgets.
func (p *DrawPanel) Refresh() {
	hue := "Off"
	if p.tool.WithHue() {
		hue = "On"
	}
	setButtonLabel(p.hueBtn, "With Hue: "+hue)

	if c := p.tool.Chance(); c != p.shownChance {
		p.chanceInput.SetText(strconv.Itoa(c))
		p.shownChance = c
	}

	mode := p.tool.Mode()
	if idx := int(mode); idx >= 0 && idx < len(p.modeButtons) && p.modeGroup.Active() != p.modeButtons[idx] {
		p.suppress = true
		p.modeGroup.SetActive(p.modeButtons[idx])
		p.suppress = false
	}

	setVisible(p.vlForm, mode == tools.ModeVirtualLayer)
	show := "Off"
	if p.tool.ShowVirtualLayer() {
		show = "On"
	}
	setButtonLabel(p.showBtn, "Show: "+show)
	p.zLabel.Label = fmt.Sprintf("Z %d", p.tool.VirtualLayerZ())
	pos := p.tool.VirtualLayerPos()
	p.posLabel.Label = fmt.Sprintf("Mouse pos on VL: %d %d, %d", pos.X, pos.Y, pos.Z)
}
