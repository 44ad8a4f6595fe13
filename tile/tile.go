package tile

// LandTile is one cell of the terrain grid.
type LandTile struct {
	ID uint16 `yaml:"id"`
	X  uint16 `yaml:"x"`
	Y  uint16 `yaml:"y"`
	Z  int8   `yaml:"z"`
}

// StaticTile is a freely positioned object placed on top of the terrain.
type StaticTile struct {
	ID  uint16 `yaml:"id"`
	X   uint16 `yaml:"x"`
	Y   uint16 `yaml:"y"`
	Z   int8   `yaml:"z"`
	Hue uint16 `yaml:"hue"`
}

func (s *StaticTile) UpdatePos(x, y uint16, z int8) {
	s.X = x
	s.Y = y
	s.Z = z
}

// Point3 is a grid position with height, used for virtual layer picking.
type Point3 struct {
	X int
	Y int
	Z int
}

// Object is a tile as seen by the renderer. It is either a *LandObject or a
// *StaticObject; a nil Object means nothing is under the cursor.
type Object interface {
	Pos() (x, y uint16, z int8)
	Visible() bool
	SetVisible(v bool)
	Alpha() float32
	SetAlpha(a float32)

	object()
}

// renderState is the per-object state the renderer reads every frame.
type renderState struct {
	hidden bool
	alpha  float32
	dimmed bool
}

func (r *renderState) Visible() bool { return !r.hidden }

func (r *renderState) SetVisible(v bool) { r.hidden = !v }

func (r *renderState) Alpha() float32 {
	if !r.dimmed {
		return 1
	}
	return r.alpha
}

func (r *renderState) SetAlpha(a float32) {
	r.alpha = a
	r.dimmed = a != 1
}

type LandObject struct {
	renderState
	Tile *LandTile
}

func NewLandObject(t *LandTile) *LandObject {
	return &LandObject{Tile: t}
}

func (o *LandObject) Pos() (uint16, uint16, int8) {
	return o.Tile.X, o.Tile.Y, o.Tile.Z
}

func (o *LandObject) object() {}

type StaticObject struct {
	renderState
	Tile *StaticTile
}

func NewStaticObject(t *StaticTile) *StaticObject {
	return &StaticObject{Tile: t}
}

func (o *StaticObject) Pos() (uint16, uint16, int8) {
	return o.Tile.X, o.Tile.Y, o.Tile.Z
}

func (o *StaticObject) object() {}
