package event

import (
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// TileUpdated replaces a tile's entire object stack in one shot, as
// produced by a full floor/map description.
type TileUpdated struct {
	Position model.Position
	Objects  []model.Object
}

func (e TileUpdated) Apply(s *gamestate.State) {
	t := s.Map.TileAt(e.Position)
	t.Objects = e.Objects
}

// TileObjectAdded inserts a single object at the slot its priority
// dictates.
type TileObjectAdded struct {
	Position model.Position
	Object   model.Object
	Priority model.StackPriority
}

func (e TileObjectAdded) Apply(s *gamestate.State) {
	t := s.Map.TileAt(e.Position)
	_ = t.InsertAt(e.Object, e.Priority, s.Profile.Features.ModernStacking)
}

// TileObjectTransformed overwrites the object at a known stack index.
type TileObjectTransformed struct {
	Position model.Position
	Index    int
	Object   model.Object
}

func (e TileObjectTransformed) Apply(s *gamestate.State) {
	t := s.Map.TileAt(e.Position)
	if e.Index >= 0 && e.Index < len(t.Objects) {
		t.Objects[e.Index] = e.Object
	}
}

// TileObjectRemoved removes the object at a known stack index.
type TileObjectRemoved struct {
	Position model.Position
	Index    int
}

func (e TileObjectRemoved) Apply(s *gamestate.State) {
	t := s.Map.TileAt(e.Position)
	_ = t.RemoveAt(e.Index)
}

// AmbientLightChanged replaces the map's ambient light.
type AmbientLightChanged struct {
	Light model.Light
}

func (e AmbientLightChanged) Apply(s *gamestate.State) { s.Map.AmbientLight = e.Light }

// GraphicalEffectPopped pushes a short-lived particle effect at a tile.
// StartTick is stamped from GameState.CurrentTick at apply time — the
// parser that emits this event has no notion of "current tick" (§4.8
// scopes its cross-frame state to view position and known creatures
// only); only the frame-application loop driving CurrentTick does.
type GraphicalEffectPopped struct {
	Position model.Position
	EffectID uint16
}

func (e GraphicalEffectPopped) Apply(s *gamestate.State) {
	s.Map.TileAt(e.Position).PushGraphical(model.GraphicalEffect{EffectID: e.EffectID, StartTick: s.CurrentTick})
}

// NumberEffectPopped pushes a floating damage/heal/experience popup.
type NumberEffectPopped struct {
	Position model.Position
	Value    int32
	Color    uint8
}

func (e NumberEffectPopped) Apply(s *gamestate.State) {
	s.Map.TileAt(e.Position).PushNumerical(model.NumericalEffect{Value: e.Value, Color: e.Color, StartTick: s.CurrentTick})
}

// MissileFired pushes a missile onto the fixed-size ring.
type MissileFired struct {
	Origin    model.Position
	Target    model.Position
	MissileID uint16
}

func (e MissileFired) Apply(s *gamestate.State) {
	s.PushMissile(gamestate.Missile{
		Origin:    e.Origin,
		Target:    e.Target,
		MissileID: e.MissileID,
		StartTick: s.CurrentTick,
	})
}
