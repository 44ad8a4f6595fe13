package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/isoedit/mapstore"
	"github.com/milk9111/isoedit/tile"
	"github.com/milk9111/isoedit/tools"
)

// selection is the editor-wide choice of tile id, hue and land/static mode.
type selection struct {
	activeID uint16
	hue      uint16
	land     bool
	data     *tile.Data
}

func (s *selection) ActiveID() uint16    { return s.activeID }
func (s *selection) SelectedHue() uint16 { return s.hue }
func (s *selection) LandMode() bool      { return s.land }

// cycleID steps the active id through the known static ids, or through a
// small land palette in land mode.
func (s *selection) cycleID(step int) {
	if s.land {
		s.activeID = uint16((int(s.activeID) + step + 5) % 5)
		return
	}
	ids := s.data.IDs()
	if len(ids) == 0 {
		return
	}
	cur := 0
	for i, id := range ids {
		if id == s.activeID {
			cur = i
			break
		}
	}
	s.activeID = ids[(cur+step+len(ids))%len(ids)]
}

// heightTable lets the tile data be swapped under the tools on reload.
type heightTable struct {
	data *tile.Data
}

func (h *heightTable) StaticHeight(id uint16) uint8 { return h.data.StaticHeight(id) }

// canvasPress remembers whether the held button went down over the canvas,
// so presses that start on the panel never reach the tools.
type canvasPress struct {
	held     bool
	onCanvas bool
}

// Update reports whether the tools should see the button as held.
func (p *canvasPress) Update(down, overCanvas bool) bool {
	if !down {
		p.held = false
		p.onCanvas = false
		return false
	}
	if !p.held {
		p.held = true
		p.onCanvas = overCanvas
	}
	return p.onCanvas
}

type frameInput struct {
	released bool
}

func (f frameInput) MouseReleased() bool { return f.released }

type Editor struct {
	cfg     *Config
	ui      *ebitenui.UI
	toolBar *ToolBar
	panels  *ToolPanels
	status  *widget.Text
	canvas  *Canvas
	store   *mapstore.Store
	ghosts  *mapstore.GhostLayer
	plane   *mapstore.VirtualLayer
	sel     *selection
	heights *heightTable
	session *tools.Session
	tools   []tools.Tool
	draw    *tools.DrawTool
	move    *tools.MoveTool
	watcher *tile.Watcher
	clip    *tileClipboard
	press   canvasPress
}

func NewEditor(cfg *Config, data *tile.Data, watcher *tile.Watcher) *Editor {
	store := cfg.buildStore()
	ghosts := mapstore.NewGhostLayer()
	plane := &mapstore.VirtualLayer{}
	sel := &selection{data: data}
	heights := &heightTable{data: data}
	if ids := data.IDs(); len(ids) > 0 {
		sel.activeID = ids[0]
	}

	deps := tools.Deps{
		Client:    store,
		Heights:   heights,
		Selection: sel,
		Ghosts:    ghosts,
		Plane:     plane,
	}
	draw := tools.NewDrawTool(deps)
	move := tools.NewMoveTool(deps)

	view := isoView{
		OriginX: float64(cfg.View.PanelWidth) + float64(cfg.Window.Width-cfg.View.PanelWidth)/2,
		OriginY: 40,
		TileW:   float64(cfg.View.TileWidth),
		TileH:   float64(cfg.View.TileHeight),
		ZScale:  float64(cfg.View.ZScale),
	}

	e := &Editor{
		cfg:     cfg,
		canvas:  NewCanvas(view, store, ghosts, plane, data),
		store:   store,
		ghosts:  ghosts,
		plane:   plane,
		sel:     sel,
		heights: heights,
		tools:   []tools.Tool{draw, move},
		draw:    draw,
		move:    move,
		watcher: watcher,
		clip:    newTileClipboard(),
	}
	e.session = tools.NewSession(draw)
	e.ui, e.toolBar, e.panels, e.status = BuildEditorUI(cfg.View.PanelWidth, e.tools, e.selectTool, draw, move)
	e.panels.Show(draw)
	return e
}

func (e *Editor) selectTool(t tools.Tool) {
	e.session.SetTool(t)
	e.panels.Show(t)
	e.toolBar.SetTool(t)
}

func (e *Editor) pollWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			data, err := tile.LoadData(name)
			if err != nil {
				log.Printf("reload tile data %s: %v", name, err)
				continue
			}
			e.sel.data = data
			e.heights.data = data
			e.canvas.SetData(data)
			log.Printf("reloaded tile data from %s", name)
		case err, ok := <-e.watcher.Errors:
			if ok {
				log.Printf("tile data watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (e *Editor) handleHotkeys() {
	if fw := e.ui.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return
		}
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		// Drop previews before the map changes under them.
		e.session.Hover(nil)
		if !e.store.Undo() {
			log.Printf("nothing to undo")
		}
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		if so, ok := e.session.Hovered().(*tile.StaticObject); ok {
			e.clip.Copy(*so.Tile)
		}
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		e.paste()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		e.selectTool(e.draw)
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		e.selectTool(e.move)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		e.session.Hover(nil)
		e.sel.land = !e.sel.land
		e.sel.activeID = 0
		e.sel.cycleID(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		e.session.Hover(nil)
		e.sel.cycleID(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		e.session.Hover(nil)
		e.sel.cycleID(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		e.sel.hue = (e.sel.hue + 1) % 64
	}
}

// paste places the clipboard static on top of the hovered object.
func (e *Editor) paste() {
	o := e.session.Hovered()
	if o == nil {
		return
	}
	st, ok := e.clip.Paste()
	if !ok {
		return
	}
	x, y, z := o.Pos()
	if so, ok := o.(*tile.StaticObject); ok {
		z += int8(e.heights.StaticHeight(so.Tile.ID))
	}
	st.X, st.Y, st.Z = x, y, z
	e.session.Hover(nil)
	e.store.AddStatic(st)
}

func (e *Editor) Update() error {
	e.pollWatcher()
	e.ui.Update()
	e.handleHotkeys()
	e.panels.Update()

	mx, my := ebiten.CursorPosition()
	overCanvas := mx >= e.cfg.View.PanelWidth

	var hovered tile.Object
	if overCanvas && !e.panels.Dragging() {
		hovered = e.canvas.Pick(mx, my)
	}
	e.session.Hover(hovered)
	if e.plane.Visible() && overCanvas {
		pos := e.canvas.PlanePos(mx, my)
		e.plane.SetTilePos(pos)
		e.session.VirtualLayer(pos)
	}
	down := e.press.Update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), overCanvas) && !e.panels.Dragging()
	e.session.Button(down)
	e.session.Update(frameInput{released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)})
	e.panels.Refresh()

	e.status.Label = e.statusText()
	return nil
}

func (e *Editor) statusText() string {
	mode := "static"
	if e.sel.land {
		mode = "land"
	}
	name := ""
	if info, ok := e.sel.data.Static(e.sel.activeID); ok && !e.sel.land {
		name = " " + info.Name
	}
	return fmt.Sprintf("%s id %d%s hue %d", mode, e.sel.activeID, name, e.sel.hue)
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.canvas.Draw(screen)
	e.ui.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "F2 draw  F3 move  L land/static  [ ] id  H hue  Ctrl+C/V copy/paste  Ctrl+Z undo", e.cfg.View.PanelWidth+8, e.cfg.Window.Height-20)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Window.Width, e.cfg.Window.Height
}
