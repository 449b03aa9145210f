package event

import (
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
)

// resolveExpiry stamps msg's expiry relative to the tick GameState is
// currently at. The parser has no notion of "current tick" (§4.8 scopes
// its cross-frame state to view position and known creatures only), so
// messages carry a lifetime rather than an absolute expiry until the
// moment they're actually applied.
func resolveExpiry(s *gamestate.State, msg model.Message, lifetime uint32) model.Message {
	if lifetime == 0 {
		lifetime = model.DefaultMessageLifetimeTicks
	}
	msg.ExpireTick = s.CurrentTick + lifetime
	return msg
}

// CreatureSpokeOnMap is a speak event anchored to a map position (say,
// whisper, yell).
type CreatureSpokeOnMap struct {
	Message  model.Message
	Lifetime uint32
}

func (e CreatureSpokeOnMap) Apply(s *gamestate.State) {
	s.AppendMessage(resolveExpiry(s, e.Message, e.Lifetime))
}

// CreatureSpoke is a speak event with no map anchor (e.g. private
// messages).
type CreatureSpoke struct {
	Message  model.Message
	Lifetime uint32
}

func (e CreatureSpoke) Apply(s *gamestate.State) {
	s.AppendMessage(resolveExpiry(s, e.Message, e.Lifetime))
}

// CreatureSpokeInChannel is a speak event anchored to a channel id.
type CreatureSpokeInChannel struct {
	Message  model.Message
	Lifetime uint32
}

func (e CreatureSpokeInChannel) Apply(s *gamestate.State) {
	s.AppendMessage(resolveExpiry(s, e.Message, e.Lifetime))
}

// StatusMessageReceived is a plain status-bar line (0xB4, no channel, no
// position).
type StatusMessageReceived struct {
	Message  model.Message
	Lifetime uint32
}

func (e StatusMessageReceived) Apply(s *gamestate.State) {
	s.AppendMessage(resolveExpiry(s, e.Message, e.Lifetime))
}

// StatusMessageReceivedInChannel is a 0xB4 status line directed at a
// channel.
type StatusMessageReceivedInChannel struct {
	Message  model.Message
	Lifetime uint32
}

func (e StatusMessageReceivedInChannel) Apply(s *gamestate.State) {
	s.AppendMessage(resolveExpiry(s, e.Message, e.Lifetime))
}

// ChannelListUpdated replaces the client's known channel list; kept as
// an opaque id/name pair list since the core treats channel membership
// as a pass-through to the renderer.
type ChannelListUpdated struct {
	Channels []ChannelDescriptor
}

// ChannelDescriptor names one entry in a channel list.
type ChannelDescriptor struct {
	ID   uint16
	Name string
}

func (e ChannelListUpdated) Apply(s *gamestate.State) {
	s.Channels = make(map[uint16]string, len(e.Channels))
	for _, c := range e.Channels {
		s.Channels[c.ID] = c.Name
	}
}

// ChannelOpened marks a channel as joined.
type ChannelOpened struct {
	ID   uint16
	Name string
}

func (e ChannelOpened) Apply(s *gamestate.State) { s.Channels[e.ID] = e.Name }

// ChannelClosed marks a channel as left.
type ChannelClosed struct {
	ID uint16
}

func (e ChannelClosed) Apply(s *gamestate.State) { delete(s.Channels, e.ID) }

// PrivateConversationOpened marks a private conversation as opened; kept
// as a transient status message since the core has no separate private-
// conversation registry.
type PrivateConversationOpened struct {
	Name string
}

func (e PrivateConversationOpened) Apply(s *gamestate.State) {
	s.AppendMessage(model.Message{Text: "opened private conversation with " + e.Name})
}
