package tools

import (
	"reflect"
	"testing"

	"github.com/milk9111/isoedit/tile"
)

type recorder struct {
	name  string
	calls []string
}

func (r *recorder) Name() string                     { return r.name }
func (r *recorder) OnActivated(o tile.Object)        { r.calls = append(r.calls, "activated") }
func (r *recorder) OnDeactivated(o tile.Object)      { r.calls = append(r.calls, "deactivated") }
func (r *recorder) OnMouseEnter(o tile.Object)       { r.calls = append(r.calls, "enter") }
func (r *recorder) OnMouseLeave(o tile.Object)       { r.calls = append(r.calls, "leave") }
func (r *recorder) OnMousePressed(o tile.Object)     { r.calls = append(r.calls, "pressed") }
func (r *recorder) OnMouseReleased(o tile.Object)    { r.calls = append(r.calls, "released") }
func (r *recorder) OnVirtualLayerTile(p tile.Point3) { r.calls = append(r.calls, "vl") }
func (r *recorder) Update(in Input)                  { r.calls = append(r.calls, "update") }

func TestSessionLifecycle(t *testing.T) {
	a := tile.NewLandObject(&tile.LandTile{X: 1})
	b := tile.NewLandObject(&tile.LandTile{X: 2})

	r := &recorder{name: "rec"}
	s := NewSession(r)

	s.Hover(a)
	s.Hover(a)
	s.Button(true)
	s.Button(true)
	s.Hover(b)
	s.Button(false)
	s.Hover(nil)
	s.VirtualLayer(tile.Point3{})
	s.Update(input{})

	want := []string{"activated", "enter", "pressed", "leave", "enter", "released", "leave", "vl", "update"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestSessionSetTool(t *testing.T) {
	a := tile.NewLandObject(&tile.LandTile{X: 1})
	first := &recorder{name: "first"}
	second := &recorder{name: "second"}

	s := NewSession(first)
	s.Hover(a)
	s.SetTool(second)
	s.SetTool(second)

	if want := []string{"activated", "enter", "deactivated"}; !reflect.DeepEqual(first.calls, want) {
		t.Fatalf("first calls = %v, want %v", first.calls, want)
	}
	if want := []string{"activated", "enter"}; !reflect.DeepEqual(second.calls, want) {
		t.Fatalf("second calls = %v, want %v", second.calls, want)
	}
	if s.Tool() != second || s.Hovered() != a {
		t.Fatalf("unexpected session state")
	}
}

func TestSessionDrawStroke(t *testing.T) {
	f := newFixture()
	d := NewDrawTool(f.deps())
	s := NewSession(d)

	// Press on one tile and drag across two more before releasing.
	s.Hover(f.store.ObjectAt(0, 0))
	s.Button(true)
	s.Hover(f.store.ObjectAt(1, 0))
	s.Hover(f.store.ObjectAt(2, 0))
	s.Button(false)

	if f.client.adds != 3 {
		t.Fatalf("expected a static on each tile of the stroke, got %d", f.client.adds)
	}
	for x := uint16(0); x < 3; x++ {
		if len(f.store.StaticsAt(x, 0)) != 1 {
			t.Fatalf("expected a static at (%d,0)", x)
		}
	}

	s.Hover(nil)
	if f.ghosts.Len() != 0 {
		t.Fatalf("ghosts should be cleared after the cursor leaves the map")
	}
}
