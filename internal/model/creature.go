package model

// CreatureKind classifies a creature for rendering and event semantics.
type CreatureKind uint8

const (
	CreaturePlayer CreatureKind = iota
	CreatureMonster
	CreatureNPC
	CreatureOwnSummon
	CreatureOtherSummon
)

// Heading is the four-way facing direction.
type Heading uint8

const (
	HeadingNorth Heading = iota
	HeadingEast
	HeadingSouth
	HeadingWest
)

// Outfit is a creature's visual descriptor: either a type id with colour
// channels, addons, and an optional mount, or a plain item worn as an
// outfit ("invisible"/disguise forms use item id 0 or a specific item).
type Outfit struct {
	TypeID    uint16 `json:"type_id,omitempty"`
	ItemID    uint16 `json:"item_id,omitempty"`
	Head      uint8  `json:"head,omitempty"`
	Primary   uint8  `json:"primary,omitempty"`
	Secondary uint8  `json:"secondary,omitempty"`
	Detail    uint8  `json:"detail,omitempty"`
	Addons    uint8  `json:"addons,omitempty"`
	MountID   uint16 `json:"mount_id,omitempty"`
}

// Movement describes an in-flight walk animation; the renderer computes
// the current pixel offset from these fields and the current tick.
type Movement struct {
	Origin    Position `json:"origin"`
	Target    Position `json:"target"`
	StartTick uint32   `json:"start_tick"`
	EndTick   uint32   `json:"end_tick"`
}

// Creature is a full creature record, keyed by ID in GameState's
// creatures-by-id map; tiles only ever hold a creature reference by ID.
type Creature struct {
	ID   uint32       `json:"id"`
	Name string       `json:"name"`
	Kind CreatureKind `json:"kind"`

	Heading Heading `json:"heading"`
	Outfit  Outfit  `json:"outfit"`

	HealthPercent uint8 `json:"health_percent"`
	Light         Light `json:"light"`
	Speed         uint16 `json:"speed"`

	Movement Movement `json:"movement"`

	Skull            uint8 `json:"skull,omitempty"`
	Shield           uint8 `json:"shield,omitempty"`
	WarIcon          uint8 `json:"war_icon,omitempty"`
	NPCCategory      uint8 `json:"npc_category,omitempty"`
	Mark             uint8 `json:"mark,omitempty"`
	GuildMembersOnline uint16 `json:"guild_members_online,omitempty"`
	Impassable       bool  `json:"impassable,omitempty"`
}
