package catalogue

import (
	"encoding/binary"
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

func u16le(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
func u32le(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }

func TestDecodeSpriteRunLengths(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(2)...) // 2 transparent pixels
	buf = append(buf, u16le(1)...) // 1 opaque pixel
	buf = append(buf, 0xAA, 0xBB, 0xCC)

	sprite, err := decodeSprite(ioreader.New(buf))
	if err != nil {
		t.Fatalf("decodeSprite: %v", err)
	}
	off := 2 * 4
	got := sprite.Pixels[off : off+4]
	want := []byte{0xAA, 0xBB, 0xCC, 0xFF}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel 2 = %v, want %v", got, want)
		}
	}
	if sprite.Pixels[0] != 0 || sprite.Pixels[3] != 0 {
		t.Fatalf("leading transparent pixels not zero: %v", sprite.Pixels[0:8])
	}
}

func TestDecodeSpriteOverrunIsInvalid(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(2000)...) // more than 32*32 transparent pixels
	buf = append(buf, u16le(0)...)

	if _, err := decodeSprite(ioreader.New(buf)); !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData, got %v", err)
	}
}

func TestLoadSpriteFileSingleSprite(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(0x12345678)...) // signature
	buf = append(buf, u16le(1)...)          // sprite count (u16 index)
	// basePosition = 6, indexEnd = 6 + 1*4 = 10; sprite record starts at 10.
	buf = append(buf, u32le(10)...) // offset table: sprite id 1 -> offset 10

	var record []byte
	record = append(record, 0, 0, 0) // colour key
	var rle []byte
	rle = append(rle, u16le(0)...) // transparent
	rle = append(rle, u16le(1)...) // opaque
	rle = append(rle, 0xAA, 0xBB, 0xCC)
	record = append(record, u16le(uint16(len(rle)))...)
	record = append(record, rle...)
	buf = append(buf, record...)

	triplet := version.Triplet{Major: 7, Minor: 40}
	profile := version.New(triplet, nil)

	sf, err := LoadSpriteFile(ioreader.New(buf), profile)
	if err != nil {
		t.Fatalf("LoadSpriteFile: %v", err)
	}
	if len(sf.Sprites) != 2 {
		t.Fatalf("len(Sprites) = %d, want 2", len(sf.Sprites))
	}
	got := sf.Sprites[1].Pixels[0:4]
	want := []byte{0xAA, 0xBB, 0xCC, 0xFF}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sprite 1 pixel 0 = %v, want %v", got, want)
		}
	}
}

func TestReadTypeSingleGroupDuplicatesIntoWalking(t *testing.T) {
	triplet := version.Triplet{Major: 7, Minor: 40}
	profile := version.New(triplet, nil)

	var buf []byte
	buf = append(buf, 0xFF) // empty property loop
	buf = append(buf, 1, 1, 1, 1, 1, 1) // sizeX,sizeY,layerCount,xDiv,yDiv,frameCount = all 1
	buf = append(buf, u16le(0)...)      // single sprite id 0

	entity, err := readType(ioreader.New(buf), profile, false, 1)
	if err != nil {
		t.Fatalf("readType: %v", err)
	}
	idle := entity.FrameGroups[FrameGroupIdle]
	walking := entity.FrameGroups[FrameGroupWalking]
	if !idle.Active || !walking.Active {
		t.Fatalf("expected both slots active, got idle=%v walking=%v", idle.Active, walking.Active)
	}
	if len(idle.SpriteIDs) != 1 || idle.SpriteIDs[0] != 0 {
		t.Fatalf("idle sprite ids = %v", idle.SpriteIDs)
	}
	if len(walking.SpriteIDs) != 1 || walking.SpriteIDs[0] != 0 {
		t.Fatalf("walking sprite ids = %v", walking.SpriteIDs)
	}
}

func TestReadTypePropertiesGroundSetsStackPriorityAndSpeed(t *testing.T) {
	triplet := version.Triplet{Major: 7, Minor: 40}
	profile := version.New(triplet, nil)

	var buf []byte
	buf = append(buf, 0)              // wire byte 0 = ground (7.00-7.30 baseline)
	buf = append(buf, u16le(150)...)  // speed
	buf = append(buf, 0xFF)           // end marker

	props, err := readTypeProperties(ioreader.New(buf), profile)
	if err != nil {
		t.Fatalf("readTypeProperties: %v", err)
	}
	if props.StackPriority != model.PriorityGround {
		t.Fatalf("StackPriority = %v, want PriorityGround", props.StackPriority)
	}
	if props.Speed != 150 {
		t.Fatalf("Speed = %d, want 150", props.Speed)
	}
}

func TestTypeCategoryGetOutOfRange(t *testing.T) {
	cat := TypeCategory{MinID: 100, MaxID: 101, Types: make([]EntityType, 2)}
	if _, err := cat.get("test", 99); !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData for id below MinID, got %v", err)
	}
	if _, err := cat.get("test", 102); !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData for id above MaxID, got %v", err)
	}
	if _, err := cat.get("test", 100); err != nil {
		t.Fatalf("expected success for id == MinID, got %v", err)
	}
}
