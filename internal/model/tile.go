package model

import "github.com/tibiacast/tibiarc-sub000/internal/rerr"

// TileObjectCapacity and the effect ring sizes are hard memory bounds;
// parser/gamestate code must never let a tile exceed them.
const (
	TileObjectCapacity = 10
	EffectRingCapacity = 10
)

// GraphicalEffect is a short-lived particle effect popped on a tile.
type GraphicalEffect struct {
	EffectID  uint16 `json:"effect_id"`
	StartTick uint32 `json:"start_tick"`
}

// NumericalEffect is a floating damage/heal/experience popup.
type NumericalEffect struct {
	Value     int32  `json:"value"`
	Color     uint8  `json:"color"`
	StartTick uint32 `json:"start_tick"`
}

// TextEffect is a legacy floating text popup (pre-numerical-effect
// versions rendered some status text this way).
type TextEffect struct {
	Text      string `json:"text"`
	Color     uint8  `json:"color"`
	StartTick uint32 `json:"start_tick"`
}

// Tile is a fixed-capacity stack of objects plus bounded ring buffers of
// ephemeral effects. Objects are kept in non-decreasing stack-priority
// order; expiry of effects is by elapsed-tick comparison, never explicit
// removal.
type Tile struct {
	Objects []Object `json:"objects"`

	Graphical []GraphicalEffect `json:"graphical,omitempty"`
	Numerical []NumericalEffect `json:"numerical,omitempty"`
	Text      []TextEffect      `json:"text,omitempty"`
}

// InsertAt inserts o at the stack slot appropriate for priority,
// honouring the legacy-vs-modern "insert at top" tie-break rule: modern
// stacking inserts creatures strictly above equal-priority entries,
// legacy rules insert at-or-above.
func (t *Tile) InsertAt(o Object, priority StackPriority, modernStacking bool) error {
	if len(t.Objects) >= TileObjectCapacity {
		return rerr.Invalid("model.Tile.InsertAt", "tile already holds %d objects", TileObjectCapacity)
	}
	idx := len(t.Objects)
	for i, existing := range t.Objects {
		p := existing.StackPriority
		if modernStacking {
			if p > priority {
				idx = i
				break
			}
		} else {
			if p >= priority {
				idx = i
				break
			}
		}
	}
	t.Objects = append(t.Objects, Object{})
	copy(t.Objects[idx+1:], t.Objects[idx:])
	t.Objects[idx] = o
	return nil
}

// RemoveAt removes the object at the given stack index.
func (t *Tile) RemoveAt(index int) error {
	if index < 0 || index >= len(t.Objects) {
		return rerr.Invalid("model.Tile.RemoveAt", "index %d out of range [0,%d)", index, len(t.Objects))
	}
	t.Objects = append(t.Objects[:index], t.Objects[index+1:]...)
	return nil
}

// PushGraphical appends a graphical effect, evicting the oldest when the
// ring is full.
func (t *Tile) PushGraphical(e GraphicalEffect) {
	t.Graphical = pushRing(t.Graphical, e, EffectRingCapacity)
}

// PushNumerical appends a numerical effect, evicting the oldest when the
// ring is full.
func (t *Tile) PushNumerical(e NumericalEffect) {
	t.Numerical = pushRing(t.Numerical, e, EffectRingCapacity)
}

// PushText appends a text effect, evicting the oldest when the ring is
// full.
func (t *Tile) PushText(e TextEffect) {
	t.Text = pushRing(t.Text, e, EffectRingCapacity)
}

func pushRing[T any](ring []T, v T, capacity int) []T {
	ring = append(ring, v)
	if len(ring) > capacity {
		ring = ring[len(ring)-capacity:]
	}
	return ring
}
