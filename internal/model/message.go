package model

import "github.com/tibiacast/tibiarc-sub000/internal/version"

// Message is one chat or status-bar line. Mode comes straight from the
// version's translated MessageMode table.
type Message struct {
	Mode        version.MessageMode `json:"mode"`
	AuthorName  string              `json:"author_name,omitempty"`
	AuthorLevel uint16              `json:"author_level,omitempty"`
	ChannelID   uint16              `json:"channel_id,omitempty"`
	Position    *Position           `json:"position,omitempty"`
	Text        string              `json:"text"`
	ExpireTick  uint32              `json:"expire_tick"`
}

// DefaultMessageLifetimeTicks is the ~5s expiry window given to every
// message event whose Lifetime is zero. The parser emits every message
// with a zero Lifetime, so no mode, notifications included, lives longer.
const DefaultMessageLifetimeTicks = 5000
