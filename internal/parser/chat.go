package parser

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// onMapMode reports the speak/status modes that carry an embedded position
// (say, whisper, yell, their monster counterparts, and the damage,
// healing and experience modes).
func onMapMode(m version.MessageMode) bool {
	switch m {
	case version.ModeSay, version.ModeWhisper, version.ModeYell,
		version.ModeMonsterSay, version.ModeMonsterYell,
		version.ModeDamageDealt, version.ModeDamageReceived,
		version.ModeHealing, version.ModeExperience,
		version.ModeDamageReceivedOthers, version.ModeHealingOthers,
		version.ModeExperienceOthers:
		return true
	}
	return false
}

// channelMode are the modes directed at a named channel.
func channelMode(m version.MessageMode) bool {
	switch m {
	case version.ModeChannelWhite, version.ModeChannelRed,
		version.ModeChannelYellow, version.ModeChannelOrange,
		version.ModeChannelAnonymousRed, version.ModeGuild,
		version.ModeParty, version.ModePartyWhite:
		return true
	}
	return false
}

func (p *Parser) parseCreatureSpeak(r *ioreader.Reader) error {
	name, err := r.ReadString()
	if err != nil {
		return rerr.Invalid("parser.Parser.parseCreatureSpeak", "speaker name: %v", err)
	}

	var level uint16
	if p.Profile.Protocol.SpeakerLevel {
		level, err = ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureSpeak", "speaker level: %v", err)
		}
	}

	modeByte, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseCreatureSpeak", "mode: %v", err)
	}
	mode, err := p.Profile.TranslateSpeakMode(modeByte)
	if err != nil {
		return err
	}

	msg := model.Message{Mode: mode, AuthorName: name, AuthorLevel: level}

	switch {
	case onMapMode(mode):
		pos, err := readPosition(r)
		if err != nil {
			return err
		}
		msg.Position = &pos
		text, err := r.ReadString()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureSpeak", "text: %v", err)
		}
		msg.Text = text
		p.emit(event.CreatureSpokeOnMap{Message: msg})
	case channelMode(mode):
		channelID, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureSpeak", "channel id: %v", err)
		}
		msg.ChannelID = channelID
		text, err := r.ReadString()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureSpeak", "text: %v", err)
		}
		msg.Text = text
		p.emit(event.CreatureSpokeInChannel{Message: msg})
	default:
		text, err := r.ReadString()
		if err != nil {
			return rerr.Invalid("parser.Parser.parseCreatureSpeak", "text: %v", err)
		}
		msg.Text = text
		p.emit(event.CreatureSpoke{Message: msg})
	}
	return nil
}

func (p *Parser) parseTextMessage(r *ioreader.Reader) error {
	modeByte, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return rerr.Invalid("parser.Parser.parseTextMessage", "mode: %v", err)
	}
	mode, err := p.Profile.TranslateMessageMode(modeByte)
	if err != nil {
		return err
	}

	msg := model.Message{Mode: mode}

	if onMapMode(mode) {
		pos, err := readPosition(r)
		if err != nil {
			return err
		}
		msg.Position = &pos
	}

	switch mode {
	case version.ModeDamageDealt, version.ModeDamageReceived,
		version.ModeHealing, version.ModeDamageReceivedOthers, version.ModeHealingOthers:
		value, err := ioreader.ReadUint[uint32](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseTextMessage", "value: %v", err)
		}
		color, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return rerr.Invalid("parser.Parser.parseTextMessage", "color: %v", err)
		}
		if msg.Position != nil {
			p.emit(event.NumberEffectPopped{Position: *msg.Position, Value: int32(value), Color: color})
		}
	}

	text, err := r.ReadString()
	if err != nil {
		return rerr.Invalid("parser.Parser.parseTextMessage", "text: %v", err)
	}
	msg.Text = text

	if channelMode(mode) {
		p.emit(event.StatusMessageReceivedInChannel{Message: msg})
	} else {
		p.emit(event.StatusMessageReceived{Message: msg})
	}
	return nil
}
