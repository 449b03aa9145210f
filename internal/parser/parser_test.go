package parser

import (
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/catalogue"
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// fixtureCatalogue builds a minimal in-memory Catalogue covering item id
// 100 (plain, non-stackable) and outfit id 1, enough to satisfy every
// GetItem/GetOutfit lookup these tests exercise.
func fixtureCatalogue() *catalogue.Catalogue {
	return &catalogue.Catalogue{
		Types: &catalogue.TypeFile{
			Items: catalogue.TypeCategory{
				MinID: 100, MaxID: 110,
				Types: make([]catalogue.EntityType, 11),
			},
			Outfits: catalogue.TypeCategory{
				MinID: 1, MaxID: 10,
				Types: make([]catalogue.EntityType, 10),
			},
		},
	}
}

func fixtureProfile(major, minor int) *version.Profile {
	return version.New(version.Triplet{Major: major, Minor: minor}, nil)
}

func newTestParser(major, minor int) *Parser {
	return New(fixtureProfile(major, minor), fixtureCatalogue())
}

func TestReadPositionUnboundedXY(t *testing.T) {
	// x/y well past the tile-buffer window size must still parse; only z
	// is range-checked (ported from original_source's parser_ParsePosition).
	buf := []byte{0x00, 0x10, 0x00, 0x08, 0x07}
	r := ioreader.New(buf)
	pos, err := readPosition(r)
	if err != nil {
		t.Fatalf("readPosition: %v", err)
	}
	if pos.X != 0x1000 || pos.Y != 0x0800 || pos.Z != 7 {
		t.Fatalf("got %+v", pos)
	}
}

func TestReadPositionRejectsZOutOfRange(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x02, 0x00, 16}
	r := ioreader.New(buf)
	if _, err := readPosition(r); !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData for z=16, got %v", err)
	}
}

func TestReadAppearanceItemBranch(t *testing.T) {
	p := newTestParser(8, 60)
	// outfit id u16=0 (OutfitsU16 is set from 7.70), then item id u16=100
	buf := []byte{0x00, 0x00, 0x64, 0x00}
	r := ioreader.New(buf)
	out, err := p.readAppearance(r)
	if err != nil {
		t.Fatalf("readAppearance: %v", err)
	}
	if out.ItemID != 100 {
		t.Fatalf("got %+v", out)
	}
}

func TestReadAppearanceRejectsReservedItemID(t *testing.T) {
	p := newTestParser(8, 60)
	buf := []byte{0x00, 0x00, 0x32, 0x00} // item id 50, below the 100 floor
	r := ioreader.New(buf)
	if _, err := p.readAppearance(r); !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData for reserved item id, got %v", err)
	}
}

func TestReadAppearanceOutfitBranch(t *testing.T) {
	p := newTestParser(8, 60)
	// outfit id 1, four colours, one addons byte (OutfitAddons set from
	// 7.80); Mounts isn't set until 8.70, so no mount id follows.
	buf := []byte{0x01, 0x00, 1, 2, 3, 4, 0}
	r := ioreader.New(buf)
	out, err := p.readAppearance(r)
	if err != nil {
		t.Fatalf("readAppearance: %v", err)
	}
	if out.TypeID != 1 || out.Head != 1 || out.Primary != 2 || out.Secondary != 3 || out.Detail != 4 {
		t.Fatalf("got %+v", out)
	}
}

func TestParseWorldInitPre972(t *testing.T) {
	p := newTestParser(8, 60)
	payload := []byte{opWorldInit, 0x2A, 0x00, 0x00, 0x00, 0x64, 0x00}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestParseWorldInitPost972IsNoopPing(t *testing.T) {
	p := newTestParser(9, 72)
	payload := []byte{opWorldInit}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events for a post-9.72 ping, got %d", len(events))
	}
}

func TestParseUnknownOpcodeIsFatal(t *testing.T) {
	p := newTestParser(8, 60)
	_, err := p.Parse([]byte{0xFE})
	if !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData for unknown opcode, got %v", err)
	}
}

func TestParseTileObjectAddedResolvesCatalogueStackPriority(t *testing.T) {
	c := fixtureCatalogue()
	c.Types.Items.Types[105-c.Types.Items.MinID].Properties.StackPriority = model.PriorityTop
	p := New(fixtureProfile(7, 0), c)

	payload := []byte{
		opTileObjectAdded,
		0x05, 0x00, 0x05, 0x00, 7, // position
		0x69, 0x00, // item id 105; fixture properties aren't stackable, so no extra byte follows
	}

	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	added, ok := events[0].(event.TileObjectAdded)
	if !ok {
		t.Fatalf("expected TileObjectAdded, got %T", events[0])
	}
	if added.Priority != model.PriorityTop {
		t.Fatalf("Priority = %v, want PriorityTop", added.Priority)
	}
	if added.Object.StackPriority != model.PriorityTop {
		t.Fatalf("Object.StackPriority = %v, want PriorityTop", added.Object.StackPriority)
	}
}

func TestParseCreatureMovedSentinelForm(t *testing.T) {
	p := newTestParser(9, 0) // AtLeast(8,53) true
	payload := []byte{
		opCreatureMoved,
		0xFF, 0xFF, // sentinel
		0x01, 0x00, 0x00, 0x00, // creature id 1
		0x0A, 0x00, 0x0A, 0x00, 7, // target position
	}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	moved, ok := events[0].(event.CreatureMoved)
	if !ok {
		t.Fatalf("expected CreatureMoved, got %T", events[0])
	}
	if moved.Legacy || moved.ID != 1 {
		t.Fatalf("expected sentinel form with id 1, got %+v", moved)
	}
	if moved.Target != (model.Position{X: 10, Y: 10, Z: 7}) {
		t.Fatalf("unexpected target %+v", moved.Target)
	}
}

func TestParseCreatureMovedLegacyForm(t *testing.T) {
	p := newTestParser(7, 0) // AtLeast(8,53) false, always legacy form
	payload := []byte{
		opCreatureMoved,
		0x05, 0x00, 0x05, 0x00, 7, 2, // origin position + stack index 2
		0x06, 0x00, 0x06, 0x00, 7, // target position
	}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	moved, ok := events[0].(event.CreatureMoved)
	if !ok {
		t.Fatalf("expected CreatureMoved, got %T", events[0])
	}
	if !moved.Legacy || moved.StackIndex != 2 {
		t.Fatalf("expected legacy form with stack index 2, got %+v", moved)
	}
	if moved.Origin != (model.Position{X: 5, Y: 5, Z: 7}) {
		t.Fatalf("unexpected origin %+v", moved.Origin)
	}
}

func TestParsePlayerTactics(t *testing.T) {
	p := newTestParser(8, 60)
	payload := []byte{opPlayerTactics, 1, 0, 1, 0}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestParseContainerOpenNonPaginated(t *testing.T) {
	p := newTestParser(7, 40) // below ContainerPagination's threshold
	payload := []byte{
		opContainerOpen,
		0,          // slot
		0x64, 0x00, // item id 100
		0, 0, // name (empty string, u16 length prefix)
		20, // slots per page
		0,  // has parent
		0,  // item count
	}
	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestReadPositionForFullMapHeader(t *testing.T) {
	// parseFullMap's own window read needs an 8-floor x 18x14 fixture to
	// exercise end to end; the player-position header it reads first is
	// tested in isolation here, the window walk in
	// TestReadFloorDescriptionSkipRun.
	payload := []byte{0x64, 0x00, 0x32, 0x00, 7}

	r := ioreader.New(payload)
	pos, err := readPosition(r)
	if err != nil {
		t.Fatalf("readPosition: %v", err)
	}
	if pos.X != 0x64 || pos.Y != 0x32 || pos.Z != 7 {
		t.Fatalf("got %+v", pos)
	}
	// Parsing the full map description itself needs a much larger
	// fixture (8 floors x 18x14 tiles); readMapDescription/
	// readFloorDescription's wire-order and offset arithmetic are
	// exercised directly instead, see TestReadFloorDescriptionSkipRun.
}

func TestReadFloorDescriptionSkipRun(t *testing.T) {
	p := newTestParser(7, 0)
	// A 2x2 floor: first tile carries one empty object list (terminator
	// immediately; its low byte is the tile skip, 3, so the remaining
	// three cells are reused).
	payload := []byte{
		0x03, 0xFF, // terminator (no objects), tile skip = 3
	}
	r := ioreader.New(payload)
	skip := 0
	if err := p.readFloorDescription(r, 0, 0, 2, 2, 7, 0, &skip); err != nil {
		t.Fatalf("readFloorDescription: %v", err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected reader fully drained, %d bytes left", r.Remaining())
	}
	if skip != 0 {
		t.Fatalf("expected skip counter exhausted, got %d", skip)
	}
}

func TestOnMapModeChannelModeDisjoint(t *testing.T) {
	if onMapMode(version.ModeSay) != true {
		t.Fatalf("ModeSay should be on-map")
	}
	if channelMode(version.ModeSay) {
		t.Fatalf("ModeSay should not be a channel mode")
	}
	if !channelMode(version.ModeGuild) {
		t.Fatalf("ModeGuild should be a channel mode")
	}
	if onMapMode(version.ModeGuild) {
		t.Fatalf("ModeGuild should not be on-map")
	}
}

func TestParseCreatureSpeakOnMap(t *testing.T) {
	p := newTestParser(8, 60)
	payload := []byte{opCreatureSpeak}
	payload = append(payload, encodeString("Rashid")...)
	payload = append(payload, 0x00, 0x00) // speaker level (SpeakerLevel is set by 8.60)
	payload = append(payload, byte(speakModeByte(t, p, version.ModeSay)))
	payload = append(payload, 0x0A, 0x00, 0x0A, 0x00, 7) // position
	payload = append(payload, encodeString("Hello")...)

	events, err := p.Parse(payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func encodeString(s string) []byte {
	n := len(s)
	return append([]byte{byte(n), byte(n >> 8)}, []byte(s)...)
}

// speakModeByte resolves the wire byte that translates to want under p's
// speak-mode table, by brute-force scanning the 0..255 space — simpler
// and more robust against table reshuffling than hardcoding a literal.
func speakModeByte(t *testing.T, p *Parser, want version.MessageMode) uint8 {
	t.Helper()
	for i := 0; i < 256; i++ {
		if mode, err := p.Profile.TranslateSpeakMode(uint8(i)); err == nil && mode == want {
			return uint8(i)
		}
	}
	t.Fatalf("no wire byte translates to mode %v", want)
	return 0
}
