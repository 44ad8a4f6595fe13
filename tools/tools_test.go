package tools

import (
	"testing"

	"github.com/milk9111/isoedit/mapstore"
	"github.com/milk9111/isoedit/tile"
)

type selection struct {
	active uint16
	hue    uint16
	land   bool
}

func (s *selection) ActiveID() uint16    { return s.active }
func (s *selection) SelectedHue() uint16 { return s.hue }
func (s *selection) LandMode() bool      { return s.land }

type heights map[uint16]uint8

func (h heights) StaticHeight(id uint16) uint8 { return h[id] }

// seqRand returns its values in order, then repeats the last one.
type seqRand struct {
	vals []int
	n    int
}

func (r *seqRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	i := r.n
	if i >= len(r.vals) {
		i = len(r.vals) - 1
	}
	r.n++
	return r.vals[i] % n
}

type input struct{ released bool }

func (i input) MouseReleased() bool { return i.released }

// countingClient records how often each commit path is taken.
type countingClient struct {
	*mapstore.Store
	adds  int
	lands int
	moves int
}

func (c *countingClient) AddStatic(t tile.StaticTile) {
	c.adds++
	c.Store.AddStatic(t)
}

func (c *countingClient) SetLandID(t *tile.LandTile, id uint16) {
	c.lands++
	c.Store.SetLandID(t, id)
}

func (c *countingClient) MoveStatic(t *tile.StaticTile, x, y uint16, z int8) {
	c.moves++
	c.Store.MoveStatic(t, x, y, z)
}

func (c *countingClient) commits() int {
	return c.adds + c.lands + c.moves
}

type fixture struct {
	store  *mapstore.Store
	client *countingClient
	ghosts *mapstore.GhostLayer
	plane  *mapstore.VirtualLayer
	sel    *selection
	rng    *seqRand
}

func newFixture() *fixture {
	store := mapstore.New(8, 8, 1)
	return &fixture{
		store:  store,
		client: &countingClient{Store: store},
		ghosts: mapstore.NewGhostLayer(),
		plane:  &mapstore.VirtualLayer{},
		sel:    &selection{active: 42, hue: 7},
		rng:    &seqRand{},
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		Client:    f.client,
		Heights:   heights{5: 12, 6: 3},
		Selection: f.sel,
		Ghosts:    f.ghosts,
		Plane:     f.plane,
		Rand:      f.rng,
	}
}

// addStatic places a static and returns its live render object.
func (f *fixture) addStatic(t *testing.T, st tile.StaticTile) *tile.StaticObject {
	t.Helper()
	f.store.AddStatic(st)
	so, ok := f.store.ObjectAt(st.X, st.Y).(*tile.StaticObject)
	if !ok || so.Tile.ID != st.ID {
		t.Fatalf("expected static %d at (%d,%d)", st.ID, st.X, st.Y)
	}
	return so
}

func TestToolsImplementTool(t *testing.T) {
	f := newFixture()
	for _, tl := range []Tool{NewDrawTool(f.deps()), NewMoveTool(f.deps())} {
		if tl.Name() == "" {
			t.Fatalf("%T should have a name", tl)
		}
	}
}
