package format

import (
	"encoding/binary"
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

func u16le(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
func u32le(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }

func TestTrpTwoFrames(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(0x1337)...) // magic
	buf = append(buf, u16le(740)...)    // tibia version 7.40
	buf = append(buf, u32le(0)...)      // runtime (unused by Read)
	buf = append(buf, u32le(2)...)      // frame count
	buf = append(buf, u32le(500)...)    // first timestamp
	buf = append(buf, u16le(1)...)      // frame 0 length
	buf = append(buf, 0x0F)             // frame 0 payload
	buf = append(buf, u32le(1500)...)   // next timestamp
	buf = append(buf, u16le(1)...)      // frame 1 length
	buf = append(buf, 0x0F)             // frame 1 payload

	container, err := TrpReader{}.Read(ioreader.New(buf))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if container.Runtime != 1500 {
		t.Fatalf("Runtime = %d, want 1500", container.Runtime)
	}
	if len(container.Frames) != 2 {
		t.Fatalf("len(Frames) = %d, want 2", len(container.Frames))
	}
	if container.Frames[0].Timestamp != 500 || container.Frames[1].Timestamp != 1500 {
		t.Fatalf("timestamps = %v", container.Frames)
	}
}

func TestRecZeroFrameCountAfterOffsetIsInvalid(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(515)...) // container version
	buf = append(buf, u32le(57)...)  // frame count, -57 => 0

	_, err := RecReader{}.Read(ioreader.New(buf))
	if !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData, got %v", err)
	}
}

func TestRecQueryVersionNotSupported(t *testing.T) {
	_, err := RecReader{}.QueryVersion(ioreader.New(nil))
	if !rerr.IsNotSupported(err) {
		t.Fatalf("expected NotSupported, got %v", err)
	}
}

func TestYatcQueryVersionNotSupported(t *testing.T) {
	_, err := YatcReader{}.QueryVersion(ioreader.New(nil))
	if !rerr.IsNotSupported(err) {
		t.Fatalf("expected NotSupported, got %v", err)
	}
}

func TestYatcSingleFrameStartsAtZero(t *testing.T) {
	var buf []byte
	buf = append(buf, u32le(999)...) // frame 0's stored ts is ignored
	buf = append(buf, u16le(1)...)
	buf = append(buf, 0x0F)

	container, err := YatcReader{}.Read(ioreader.New(buf))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(container.Frames) != 1 || container.Frames[0].Timestamp != 0 {
		t.Fatalf("got %+v", container.Frames)
	}
}

func TestTtmDelayTags(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(740)...) // tibia version
	buf = append(buf, 0)             // zero-length server name
	buf = append(buf, u32le(0)...)   // runtime
	buf = append(buf, u16le(1)...)   // frame 0 length
	buf = append(buf, 0x0F)
	buf = append(buf, 1) // packet type 1: +1000ms
	buf = append(buf, u16le(1)...)
	buf = append(buf, 0x0F) // frame 1, last

	container, err := TtmReader{}.Read(ioreader.New(buf))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(container.Frames) != 2 || container.Frames[0].Timestamp != 0 || container.Frames[1].Timestamp != 1000 {
		t.Fatalf("got %+v", container.Frames)
	}
}

func TestRegistryHasAllEightKinds(t *testing.T) {
	kinds := []Kind{KindCam, KindRec, KindTibiacast, KindTmv1, KindTmv2, KindTrp, KindTtm, KindYatc}
	for _, k := range kinds {
		if _, ok := For(k); !ok {
			t.Fatalf("missing reader for kind %d", k)
		}
	}
}
