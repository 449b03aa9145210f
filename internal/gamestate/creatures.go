package gamestate

import (
	"math"

	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// UpsertCreature creates or replaces the creature with c.ID.
func (s *State) UpsertCreature(c *model.Creature) {
	s.CreaturesByID[c.ID] = c
}

// RemoveCreature evicts a creature by id, a no-op if absent.
func (s *State) RemoveCreature(id uint32) {
	delete(s.CreaturesByID, id)
}

// Creature looks up a creature by id, returning (nil, false) if unknown.
func (s *State) Creature(id uint32) (*model.Creature, bool) {
	c, ok := s.CreaturesByID[id]
	return c, ok
}

// WalkSpeed computes the per-tile walk speed for a creature given its raw
// speed attribute, honouring Profile.Protocol.SpeedAdjustment.
func (s *State) WalkSpeed(rawSpeed uint16) float64 {
	if !s.Profile.Protocol.SpeedAdjustment {
		if rawSpeed < 1 {
			return 1
		}
		return float64(rawSpeed)
	}
	a, b, c := s.SpeedAdjustment[0], s.SpeedAdjustment[1], s.SpeedAdjustment[2]
	v := a*math.Log(float64(rawSpeed)+b) + c
	if v < 1 {
		return 1
	}
	return v
}
