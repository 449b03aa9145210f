package format

import (
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

func TestDetectTmv2Magic(t *testing.T) {
	buf := append(u32le(tmv2Magic), 0, 0, 0, 0)
	kind, err := Detect(buf, "whatever.bin")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if kind != KindTmv2 {
		t.Fatalf("got kind %d, want KindTmv2", kind)
	}
}

func TestDetectTrpLongMagic(t *testing.T) {
	buf := []byte{'T', 'R', 'P', 0, 0, 0}
	kind, err := Detect(buf, "whatever.bin")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if kind != KindTrp {
		t.Fatalf("got kind %d, want KindTrp", kind)
	}
}

func TestDetectTrpShortMagic(t *testing.T) {
	buf := append(u16le(trpMagic), u16le(740)...)
	kind, err := Detect(buf, "session.bin")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if kind != KindTrp {
		t.Fatalf("got kind %d, want KindTrp", kind)
	}
}

func TestDetectFallsBackToExtension(t *testing.T) {
	kind, err := Detect([]byte{0x01, 0x02}, "capture.yatc")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if kind != KindYatc {
		t.Fatalf("got kind %d, want KindYatc", kind)
	}
}

func TestDetectFailsWithNoMagicOrExtension(t *testing.T) {
	_, err := Detect([]byte{0x01, 0x02}, "capture.unknown")
	if !rerr.IsInvalid(err) {
		t.Fatalf("expected InvalidData, got %v", err)
	}
}
