// Package gamestate holds the mutable aggregate events are applied to: the
// map, creatures, open containers, the local player, and the message
// log. Nothing here parses bytes; internal/event's Apply methods are the
// only mutators.
package gamestate

import (
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// MissileRingCapacity bounds the fixed-size missile-event ring.
const MissileRingCapacity = 16

// Missile is one fired-missile visual, kept only long enough for the
// renderer to draw its flight.
type Missile struct {
	Origin    model.Position
	Target    model.Position
	MissileID uint16
	StartTick uint32
}

// State is the full reconstructed game state at the current tick.
type State struct {
	Profile *version.Profile

	Map          *model.Map
	CreaturesByID map[uint32]*model.Creature
	Containers   map[uint8]*model.Container
	Player       model.Player
	Messages     []model.Message
	Missiles     []Missile
	Channels     map[uint16]string

	CurrentTick uint32

	// Center is the player's current view position; the visible tile
	// window is always centred on it.
	Center model.Position

	// SpeedAdjustment is the (A, B, C) triple parsed from the
	// initialisation packet, used by the walk_speed formula when
	// Profile.Protocol.SpeedAdjustment is set.
	SpeedAdjustment [3]float64
}

// New constructs an empty state bound to profile.
func New(profile *version.Profile) *State {
	return &State{
		Profile:       profile,
		Map:           model.NewMap(),
		CreaturesByID: make(map[uint32]*model.Creature),
		Containers:    make(map[uint8]*model.Container),
		Channels:      make(map[uint16]string),
	}
}

// Reset rewinds the state to empty, used when the playback clock seeks
// backward — the interactive player re-applies frames from the start
// rather than maintaining snapshots.
func (s *State) Reset() {
	s.Map.Clear()
	s.CreaturesByID = make(map[uint32]*model.Creature)
	s.Containers = make(map[uint8]*model.Container)
	s.Player = model.Player{}
	s.Messages = nil
	s.Missiles = nil
	s.Channels = make(map[uint16]string)
	s.CurrentTick = 0
}

// PushMissile appends m to the ring, evicting the oldest entry once full.
func (s *State) PushMissile(m Missile) {
	s.Missiles = append(s.Missiles, m)
	if len(s.Missiles) > MissileRingCapacity {
		s.Missiles = s.Missiles[len(s.Missiles)-MissileRingCapacity:]
	}
}
