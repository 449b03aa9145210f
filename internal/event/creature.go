package event

import (
	"math"

	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// CreatureSeen introduces or replaces a creature, as emitted by the
// 0x61 Object sub-parser.
type CreatureSeen struct {
	Creature model.Creature
}

func (e CreatureSeen) Apply(s *gamestate.State) {
	c := e.Creature
	s.UpsertCreature(&c)
}

// CreatureRemoved evicts a creature, emitted when a 0x61 packet's
// remove-id differs from its add-id and the remove-id was known.
type CreatureRemoved struct {
	ID uint32
}

func (e CreatureRemoved) Apply(s *gamestate.State) { s.RemoveCreature(e.ID) }

// CreatureHealthUpdated sets a creature's health percentage.
type CreatureHealthUpdated struct {
	ID      uint32
	Percent uint8
}

func (e CreatureHealthUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.HealthPercent = e.Percent
	}
}

// CreatureHeadingUpdated sets a creature's facing direction.
type CreatureHeadingUpdated struct {
	ID      uint32
	Heading model.Heading
}

func (e CreatureHeadingUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Heading = e.Heading
	}
}

// CreatureOutfitUpdated sets a creature's visual outfit descriptor.
type CreatureOutfitUpdated struct {
	ID     uint32
	Outfit model.Outfit
}

func (e CreatureOutfitUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Outfit = e.Outfit
	}
}

// CreatureLightUpdated sets a creature's light source.
type CreatureLightUpdated struct {
	ID    uint32
	Light model.Light
}

func (e CreatureLightUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Light = e.Light
	}
}

// CreatureSpeedUpdated sets a creature's raw speed attribute.
type CreatureSpeedUpdated struct {
	ID    uint32
	Speed uint16
}

func (e CreatureSpeedUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Speed = e.Speed
	}
}

// CreatureSkullUpdated sets a creature's skull badge.
type CreatureSkullUpdated struct {
	ID    uint32
	Skull uint8
}

func (e CreatureSkullUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Skull = e.Skull
	}
}

// CreatureShieldUpdated sets a creature's party-shield badge.
type CreatureShieldUpdated struct {
	ID     uint32
	Shield uint8
}

func (e CreatureShieldUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Shield = e.Shield
	}
}

// CreatureTypeUpdated sets a creature's kind classification.
type CreatureTypeUpdated struct {
	ID   uint32
	Kind model.CreatureKind
}

func (e CreatureTypeUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Kind = e.Kind
	}
}

// CreatureNPCCategoryUpdated sets a creature's NPC vendor category.
type CreatureNPCCategoryUpdated struct {
	ID       uint32
	Category uint8
}

func (e CreatureNPCCategoryUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.NPCCategory = e.Category
	}
}

// CreaturePvPHelpersUpdated sets a creature's war-icon helper count byte.
type CreaturePvPHelpersUpdated struct {
	ID      uint32
	WarIcon uint8
}

func (e CreaturePvPHelpersUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.WarIcon = e.WarIcon
	}
}

// CreatureGuildMembersUpdated sets a creature's guild-members-online
// count and mark colour.
type CreatureGuildMembersUpdated struct {
	ID     uint32
	Mark   uint8
	Online uint16
}

func (e CreatureGuildMembersUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Mark = e.Mark
		c.GuildMembersOnline = e.Online
	}
}

// CreatureImpassableUpdated sets a creature's impassable flag.
type CreatureImpassableUpdated struct {
	ID         uint32
	Impassable bool
}

func (e CreatureImpassableUpdated) Apply(s *gamestate.State) {
	if c, ok := s.Creature(e.ID); ok {
		c.Impassable = e.Impassable
	}
}

// CreatureMoved updates a creature's movement timing, used by the
// renderer's interpolation. Legacy (pre-8.53) wire frames identify the
// moving creature only by its origin tile's stack index rather than by
// id directly; Apply resolves that against the live map, since it's the
// only place holding both the map and the creatures-by-id table (§4.8
// keeps the parser's cross-frame state to view position and known
// creatures only).
type CreatureMoved struct {
	ID         uint32
	Legacy     bool
	StackIndex int
	Origin     model.Position
	Target     model.Position
}

func (e CreatureMoved) Apply(s *gamestate.State) {
	id := e.ID
	if e.Legacy {
		origin := s.Map.TileAt(e.Origin)
		if e.StackIndex < 0 || e.StackIndex >= len(origin.Objects) {
			return
		}
		obj := origin.Objects[e.StackIndex]
		if !obj.IsCreature {
			return
		}
		id = obj.CreatureID
	}

	c, ok := s.Creature(id)
	if !ok {
		return
	}

	startTick := s.CurrentTick
	endTick := startTick
	if isWalk(e.Origin, e.Target) {
		if groundSpeed, ok := groundSpeedAt(s, e.Target); ok {
			walkSpeed := s.WalkSpeed(c.Speed)
			duration := uint32(math.Round(float64(groundSpeed) * 1000 / walkSpeed))
			endTick = startTick + duration
		}
	}

	c.Movement = model.Movement{
		Origin:    e.Origin,
		Target:    e.Target,
		StartTick: startTick,
		EndTick:   endTick,
	}
}

// isWalk reports whether a move is between map-adjacent tiles on the
// same floor, as opposed to a floor change or teleport, which §4.6
// treats as instantaneous (duration 0).
func isWalk(origin, target model.Position) bool {
	if origin.Z != target.Z {
		return false
	}
	dx := int(target.X) - int(origin.X)
	dy := int(target.Y) - int(origin.Y)
	return (dx != 0 || dy != 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// groundSpeedAt returns the Speed property of pos's ground object, the
// basis of the walk_duration_ms formula in §4.6.
func groundSpeedAt(s *gamestate.State, pos model.Position) (uint16, bool) {
	for _, o := range s.Map.TileAt(pos).Objects {
		if !o.IsCreature && o.StackPriority == model.PriorityGround {
			return o.GroundSpeed, true
		}
	}
	return 0, false
}

// PlayerMoved updates the parser's view-position mirror, the only
// creature-adjacent event that targets the player record rather than a
// creatures-by-id entry.
type PlayerMoved struct {
	Position model.Position
}

func (e PlayerMoved) Apply(s *gamestate.State) { s.Center = e.Position }
