package version

import (
	"go.uber.org/zap"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// Profile is the immutable, fully-resolved set of capability flags and
// translation tables for one client version triplet. Parser and
// GameState share one Profile by reference; it is never mutated after
// New returns.
type Profile struct {
	Triplet  Triplet
	Protocol Protocol
	Features Features

	typeProperties *table[TypeProperty]
	speakModes     *table[MessageMode]
	messageModes   *table[MessageMode]
}

// AtLeast reports whether the profile's triplet is at or past the given
// major.minor[.preview].
func (p *Profile) AtLeast(major, minor int, preview ...int) bool {
	return p.Triplet.AtLeast(major, minor, preview...)
}

// New resolves a full Profile for triplet. log may be nil; when non-nil
// it receives a warning on every call whose triplet falls in the
// 8.55-9.32 range, whose exact per-flag thresholds the upstream source marks as
// guesses (see DESIGN.md "Open Question decisions").
func New(triplet Triplet, log *zap.Logger) *Profile {
	p := &Profile{Triplet: triplet}

	p.initTypeProperties()
	p.initMessageTypes()
	p.initSpeakTypes()
	p.initFeatures()
	p.initProtocol()

	if log != nil && triplet.AtLeast(8, 55) && triplet.Less(Triplet{9, 32, 0}) {
		log.Warn("version profile falls in a guessed threshold range; "+
			"several Protocol flags for 8.55-9.32 are not precisely dated upstream",
			zap.String("version", triplet.String()))
	}

	return p
}

// TranslateTypeProperty maps a wire byte from the entity-type property
// loop to its symbolic kind. 0xFF is special-cased to EntryEndMarker
// rather than stored in the table.
func (p *Profile) TranslateTypeProperty(index uint8) (TypeProperty, error) {
	if index == 0xFF {
		return TypeEntryEndMarker, nil
	}
	v, err := p.typeProperties.Get(int(index))
	if err != nil {
		return 0, rerr.Invalid("version.Profile.TranslateTypeProperty", "wire byte %d: %v", index, err)
	}
	return v, nil
}

// TranslateSpeakMode maps a 0xAA creature-speak mode byte.
func (p *Profile) TranslateSpeakMode(index uint8) (MessageMode, error) {
	v, err := p.speakModes.Get(int(index))
	if err != nil {
		return 0, rerr.Invalid("version.Profile.TranslateSpeakMode", "wire byte %d: %v", index, err)
	}
	return v, nil
}

// TranslateMessageMode maps a 0xB4 text-message mode byte.
func (p *Profile) TranslateMessageMode(index uint8) (MessageMode, error) {
	v, err := p.messageModes.Get(int(index))
	if err != nil {
		return 0, rerr.Invalid("version.Profile.TranslateMessageMode", "wire byte %d: %v", index, err)
	}
	return v, nil
}

var fluidUntil1095 = [18]uint8{0, 1, 7, 3, 3, 2, 4, 3, 5, 6, 7, 2, 5, 3, 5, 6, 1, 7}

// TranslateFluidColor maps a wire fluid-container colour byte to one of
// eight semantic colours (0=empty .. 7=purple).
func (p *Profile) TranslateFluidColor(color uint8) (uint8, error) {
	if p.AtLeast(7, 80) {
		if int(color) >= len(fluidUntil1095) {
			return 0, rerr.Invalid("version.Profile.TranslateFluidColor", "color byte %d out of range", color)
		}
		return fluidUntil1095[color], nil
	}
	return color % 8, nil
}
