package event

import (
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// PlayerBlessingsUpdated replaces the player's blessing bitmask.
type PlayerBlessingsUpdated struct {
	Blessings uint16
}

func (e PlayerBlessingsUpdated) Apply(s *gamestate.State) { s.Player.Blessings = e.Blessings }

// PlayerHotkeyPresetUpdated replaces the player's active hotkey preset.
type PlayerHotkeyPresetUpdated struct {
	Preset uint8
}

func (e PlayerHotkeyPresetUpdated) Apply(s *gamestate.State) { s.Player.HotkeyPreset = e.Preset }

// PlayerDataBasicUpdated carries premium/vocation/known-spell fields
// from the 0x9F packet.
type PlayerDataBasicUpdated struct {
	Premium      bool
	PremiumUntil uint32
	Vocation     uint8
	KnownSpells  []uint16
}

func (e PlayerDataBasicUpdated) Apply(s *gamestate.State) {
	s.Player.Premium = e.Premium
	s.Player.PremiumUntil = e.PremiumUntil
	s.Player.Vocation = e.Vocation
	s.Player.KnownSpells = e.KnownSpells
}

// PlayerDataUpdated carries the 0xA0 current-stats block.
type PlayerDataUpdated struct {
	Health, MaxHealth     int32
	Capacity, MaxCapacity uint32
	Experience            uint64
	Level                  uint16
	LevelPercent           uint8
	Mana, MaxMana          int32
	MagicLevel, MagicLevelBase, MagicLevelPercent uint8
	SoulPoints            uint8
	Stamina               uint16
	OfflineStamina        uint16
	Speed                 uint16
	Fed                   uint16
	ExperienceBonus       float64
}

func (e PlayerDataUpdated) Apply(s *gamestate.State) {
	p := &s.Player
	p.Health, p.MaxHealth = e.Health, e.MaxHealth
	p.Capacity, p.MaxCapacity = e.Capacity, e.MaxCapacity
	p.Experience = e.Experience
	p.Level, p.LevelPercent = e.Level, e.LevelPercent
	p.Mana, p.MaxMana = e.Mana, e.MaxMana
	p.MagicLevel, p.MagicLevelBase, p.MagicLevelPercent = e.MagicLevel, e.MagicLevelBase, e.MagicLevelPercent
	p.SoulPoints = e.SoulPoints
	p.Stamina = e.Stamina
	p.OfflineStamina = e.OfflineStamina
	p.Speed = e.Speed
	p.Fed = e.Fed
	p.ExperienceBonus = e.ExperienceBonus
}

// PlayerSkillsUpdated replaces all seven skill entries.
type PlayerSkillsUpdated struct {
	Skills [7]model.Skill
}

func (e PlayerSkillsUpdated) Apply(s *gamestate.State) { s.Player.Skills = e.Skills }

// PlayerIconsUpdated replaces the player's status-icon bitmask.
type PlayerIconsUpdated struct {
	Icons uint32
}

func (e PlayerIconsUpdated) Apply(s *gamestate.State) { s.Player.StatusIcons = e.Icons }

// PlayerTacticsUpdated replaces the four combat-mode toggles.
type PlayerTacticsUpdated struct {
	Tactics model.Tactics
}

func (e PlayerTacticsUpdated) Apply(s *gamestate.State) { s.Player.Tactics = e.Tactics }

// PvPSituationsChanged replaces the open-PvP-situation counter.
type PvPSituationsChanged struct {
	OpenSituations uint8
}

func (e PvPSituationsChanged) Apply(s *gamestate.State) { s.Player.OpenPvPSituations = e.OpenSituations }

// WorldInitialized seeds the player id, beat duration, and speed
// adjustment triple from the initialisation packet.
type WorldInitialized struct {
	PlayerID        uint32
	BeatDuration    uint16
	SpeedAdjustment [3]float64
}

func (e WorldInitialized) Apply(s *gamestate.State) {
	s.Player.ID = e.PlayerID
	s.Player.BeatDuration = e.BeatDuration
	s.SpeedAdjustment = e.SpeedAdjustment
}
