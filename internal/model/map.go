package model

// Light is an (intensity, colour) pair used by both ambient map light and
// per-creature light sources.
type Light struct {
	Intensity uint8 `json:"intensity"`
	Color     uint8 `json:"color"`
}

// Map owns the visible tile window and overall ambient light. Tiles are
// addressed by relative indexing modulo the window dimensions; the
// window slides as the player moves, so a Position maps to a ring slot
// via (x mod W, y mod H, z).
type Map struct {
	Tiles       map[Position]*Tile `json:"-"`
	AmbientLight Light             `json:"ambient_light"`
}

// NewMap constructs an empty tile window.
func NewMap() *Map {
	return &Map{Tiles: make(map[Position]*Tile)}
}

// TileAt returns the tile at pos, creating an empty one if absent.
func (m *Map) TileAt(pos Position) *Tile {
	t, ok := m.Tiles[pos]
	if !ok {
		t = &Tile{}
		m.Tiles[pos] = t
	}
	return t
}

// Clear discards every tile, used when rewinding playback to tick 0.
func (m *Map) Clear() {
	m.Tiles = make(map[Position]*Tile)
}
