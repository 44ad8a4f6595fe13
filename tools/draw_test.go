package tools

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/isoedit/tile"
)

func TestDrawStaticPlacementModes(t *testing.T) {
	cases := []struct {
		name    string
		mode    DrawMode
		onLand  bool
		wantZ   int8
		wantDim bool
	}{
		{"on_top_static", ModeOnTop, false, 4 + 12, false},
		{"on_top_land", ModeOnTop, true, 2, false},
		{"replace_static", ModeReplace, false, 4, true},
		{"replace_land", ModeReplace, true, 2, false},
		{"same_pos_static", ModeSamePos, false, 4, false},
		{"same_pos_land", ModeSamePos, true, 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture()
			f.store.SetLandZ(3, 3, 2)
			var hovered tile.Object
			if c.onLand {
				hovered = f.store.ObjectAt(3, 3)
			} else {
				hovered = f.addStatic(t, tile.StaticTile{ID: 5, X: 3, Y: 3, Z: 4, Hue: 11})
			}

			d := NewDrawTool(f.deps())
			d.SetMode(c.mode)
			d.OnMouseEnter(hovered)

			ghosts := f.ghosts.Statics()
			if len(ghosts) != 1 {
				t.Fatalf("expected one static ghost, got %d", len(ghosts))
			}
			g := ghosts[0].Tile
			if g.ID != 42 || g.X != 3 || g.Y != 3 || g.Z != c.wantZ || g.Hue != 0 {
				t.Fatalf("unexpected ghost %+v, want z=%d", *g, c.wantZ)
			}
			dimmed := hovered.Alpha() != 1
			if dimmed != c.wantDim {
				t.Fatalf("dimmed=%v, want %v", dimmed, c.wantDim)
			}

			d.OnMouseLeave(hovered)
			if hovered.Alpha() != 1 || !hovered.Visible() {
				t.Fatalf("hovered object not restored: alpha=%v visible=%v", hovered.Alpha(), hovered.Visible())
			}
			if f.ghosts.Len() != 0 {
				t.Fatalf("ghosts should be empty after leave, got %d", f.ghosts.Len())
			}
			if f.client.commits() != 0 {
				t.Fatalf("hover alone should not commit")
			}
		})
	}
}

func TestDrawWithHue(t *testing.T) {
	f := newFixture()
	d := NewDrawTool(f.deps())
	d.SetWithHue(true)
	d.OnMouseEnter(f.store.ObjectAt(1, 1))
	if h := f.ghosts.Statics()[0].Tile.Hue; h != 7 {
		t.Fatalf("expected selected hue 7, got %d", h)
	}
}

func TestDrawLandMode(t *testing.T) {
	f := newFixture()
	f.sel.land = true
	d := NewDrawTool(f.deps())
	lo := f.store.ObjectAt(2, 5)

	d.OnMouseEnter(lo)
	if lo.Visible() {
		t.Fatalf("hovered land should be hidden while previewed")
	}
	if land := f.ghosts.Land(); len(land) != 1 || land[0].Tile.ID != 42 || land[0].Tile.X != 2 || land[0].Tile.Y != 5 {
		t.Fatalf("unexpected land ghosts %v", land)
	}

	d.OnMousePressed(lo)
	d.OnMouseReleased(lo)
	if id := f.store.LandAt(2, 5).ID; id != 42 {
		t.Fatalf("expected land id 42, got %d", id)
	}
	if f.client.adds != 0 {
		t.Fatalf("land mode should not add statics")
	}

	d.OnMouseLeave(lo)
	if !lo.Visible() || f.ghosts.Len() != 0 {
		t.Fatalf("leave should restore land and clear ghosts")
	}
}

func TestDrawLandModeIgnoresStatics(t *testing.T) {
	f := newFixture()
	f.sel.land = true
	so := f.addStatic(t, tile.StaticTile{ID: 6, X: 1, Y: 1})
	d := NewDrawTool(f.deps())
	d.OnMouseEnter(so)
	d.OnMousePressed(so)
	d.OnMouseReleased(so)
	d.OnMouseLeave(so)
	if f.client.commits() != 0 {
		t.Fatalf("land mode over a static should be a no-op, got %d commits", f.client.commits())
	}
}

func TestDrawReleaseAddsFirstGhost(t *testing.T) {
	f := newFixture()
	so := f.addStatic(t, tile.StaticTile{ID: 6, X: 4, Y: 2, Z: 1})
	d := NewDrawTool(f.deps())

	d.OnMouseEnter(so)
	d.OnMousePressed(so)
	d.OnMouseReleased(so)

	if f.client.adds != 1 {
		t.Fatalf("expected one add, got %d", f.client.adds)
	}
	top, ok := f.store.ObjectAt(4, 2).(*tile.StaticObject)
	if !ok || top.Tile.ID != 42 || top.Tile.Z != 4 {
		t.Fatalf("expected new static id 42 at z 4 on top")
	}
	if len(f.store.StaticsAt(4, 2)) != 2 {
		t.Fatalf("replace-style commits add, they never delete")
	}

	d.OnMouseReleased(so)
	if f.client.adds != 1 {
		t.Fatalf("release without press should not commit")
	}
}

func TestDrawNoTargetIsNoop(t *testing.T) {
	f := newFixture()
	d := NewDrawTool(f.deps())
	d.OnMouseEnter(nil)
	d.OnMousePressed(nil)
	d.OnMouseReleased(nil)
	d.OnMouseLeave(nil)
	if f.client.commits() != 0 {
		t.Fatalf("expected no commits, got %d", f.client.commits())
	}
}

func TestDrawLeaveWhilePressedCommitsOnce(t *testing.T) {
	for _, land := range []bool{false, true} {
		f := newFixture()
		f.sel.land = land
		d := NewDrawTool(f.deps())
		o := f.store.ObjectAt(3, 4)

		d.OnMouseEnter(o)
		d.OnMousePressed(o)
		d.OnMouseLeave(o)

		if f.client.commits() != 1 {
			t.Fatalf("land=%v: expected exactly one commit, got %d", land, f.client.commits())
		}
		if f.ghosts.Len() != 0 {
			t.Fatalf("land=%v: ghosts should be cleared after leave", land)
		}
	}
}

func TestDrawChance(t *testing.T) {
	cases := []struct {
		name   string
		chance int
		roll   int
		commit bool
	}{
		{"always", 100, 99, true},
		{"zero_at_roll", 0, 0, true},
		{"zero_above", 0, 1, false},
		{"below", 50, 49, true},
		{"at", 50, 50, true},
		{"just_above", 50, 51, false},
		{"above", 50, 80, false},
		{"high_at", 99, 99, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture()
			f.rng.vals = []int{c.roll}
			d := NewDrawTool(f.deps())
			d.SetChance(c.chance)
			o := f.store.ObjectAt(0, 0)
			d.OnMouseEnter(o)
			d.OnMousePressed(o)
			d.OnMouseReleased(o)
			if got := f.client.adds == 1; got != c.commit {
				t.Fatalf("commit=%v, want %v", got, c.commit)
			}
		})
	}
}

func TestDrawChanceFrequency(t *testing.T) {
	const trials = 20000
	for _, chance := range []int{0, 10, 50, 90, 100} {
		f := newFixture()
		d := NewDrawTool(f.deps())
		d.rng = rand.New(rand.NewPCG(1, uint64(chance)))
		d.SetChance(chance)
		o := f.store.ObjectAt(0, 0)
		d.OnMouseEnter(o)
		for i := 0; i < trials; i++ {
			d.OnMousePressed(o)
			d.OnMouseReleased(o)
		}
		got := float64(f.client.adds) / trials * 100
		if got < float64(chance)-2 || got > float64(chance)+2 {
			t.Fatalf("chance %d: observed %.2f%%", chance, got)
		}
	}
}

func TestDrawSetChanceClamps(t *testing.T) {
	d := NewDrawTool(newFixture().deps())
	if d.Chance() != 100 {
		t.Fatalf("default chance should be 100, got %d", d.Chance())
	}
	d.SetChance(250)
	if d.Chance() != 100 {
		t.Fatalf("expected clamp to 100, got %d", d.Chance())
	}
	d.SetChance(-3)
	if d.Chance() != 0 {
		t.Fatalf("expected clamp to 0, got %d", d.Chance())
	}
}

func TestDrawVirtualLayer(t *testing.T) {
	f := newFixture()
	d := NewDrawTool(f.deps())
	d.SetShowVirtualLayer(true)
	if f.plane.Visible() {
		t.Fatalf("plane should stay hidden outside virtual layer mode")
	}

	d.OnVirtualLayerTile(tile.Point3{X: 2, Y: 2, Z: 5})
	if f.ghosts.Len() != 0 {
		t.Fatalf("virtual layer tiles are ignored outside virtual layer mode")
	}

	d.SetMode(ModeVirtualLayer)
	if !f.plane.Visible() {
		t.Fatalf("plane should be visible in virtual layer mode")
	}

	o := f.store.ObjectAt(6, 6)
	d.OnMouseEnter(o)
	if f.ghosts.Len() != 0 {
		t.Fatalf("hover should not stage in virtual layer mode")
	}

	d.OnVirtualLayerTile(tile.Point3{X: 2, Y: 3, Z: 20})
	d.OnVirtualLayerTile(tile.Point3{X: 4, Y: 5, Z: 20})
	ghosts := f.ghosts.Statics()
	if len(ghosts) != 1 {
		t.Fatalf("expected a single restaged ghost, got %d", len(ghosts))
	}
	if g := ghosts[0].Tile; g.X != 5 || g.Y != 6 || g.Z != 20 || g.ID != 42 {
		t.Fatalf("unexpected virtual layer ghost %+v", *g)
	}

	d.OnMousePressed(o)
	d.OnMouseReleased(o)
	statics := f.store.StaticsAt(5, 6)
	if len(statics) != 1 || statics[0].Tile.Z != 20 {
		t.Fatalf("expected static committed at (5,6,20)")
	}

	d.SetMode(ModeSamePos)
	if f.plane.Visible() {
		t.Fatalf("plane should hide when leaving virtual layer mode")
	}
}

func TestDrawVirtualLayerLand(t *testing.T) {
	f := newFixture()
	f.sel.land = true
	d := NewDrawTool(f.deps())
	d.SetMode(ModeVirtualLayer)

	d.OnVirtualLayerTile(tile.Point3{X: 2, Y: 3, Z: -4})
	land := f.ghosts.Land()
	if len(land) != 1 || land[0].Tile.X != 2 || land[0].Tile.Y != 3 || land[0].Tile.Z != -4 {
		t.Fatalf("unexpected land ghost %v", land)
	}

	d.OnMousePressed(nil)
	d.OnMouseReleased(nil)
	if id := f.store.LandAt(2, 3).ID; id != 42 {
		t.Fatalf("expected land at ghost position to become 42, got %d", id)
	}
}

func TestDrawSetModeRestagesHovered(t *testing.T) {
	f := newFixture()
	so := f.addStatic(t, tile.StaticTile{ID: 5, X: 2, Y: 2, Z: 0})
	d := NewDrawTool(f.deps())
	d.SetMode(ModeReplace)
	d.OnMouseEnter(so)
	if so.Alpha() == 1 {
		t.Fatalf("replace should dim the hovered static")
	}

	d.SetMode(ModeOnTop)
	if so.Alpha() != 1 {
		t.Fatalf("mode change should restore alpha")
	}
	ghosts := f.ghosts.Statics()
	if len(ghosts) != 1 || ghosts[0].Tile.Z != 12 {
		t.Fatalf("expected one on-top ghost at z 12, got %v", ghosts)
	}
}

func TestDrawDeactivateRestores(t *testing.T) {
	f := newFixture()
	so := f.addStatic(t, tile.StaticTile{ID: 5, X: 2, Y: 2})
	d := NewDrawTool(f.deps())
	d.SetMode(ModeReplace)
	d.OnMouseEnter(so)
	d.OnMousePressed(so)
	d.OnDeactivated(so)

	if so.Alpha() != 1 || f.ghosts.Len() != 0 {
		t.Fatalf("deactivation should restore alpha and clear ghosts")
	}
	d.OnMouseReleased(so)
	if f.client.commits() != 0 {
		t.Fatalf("deactivation drops the pending press")
	}
}

func TestDrawUpdateSyncsPlane(t *testing.T) {
	f := newFixture()
	d := NewDrawTool(f.deps())
	f.plane.SetVisible(true)
	d.Update(input{})
	if f.plane.Visible() {
		t.Fatalf("plane should be hidden outside virtual layer mode")
	}
	d.SetVirtualLayerZ(300)
	if d.VirtualLayerZ() != 127 {
		t.Fatalf("virtual layer z should clamp, got %d", d.VirtualLayerZ())
	}
}
