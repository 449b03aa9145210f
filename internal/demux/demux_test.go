package demux

import "testing"

func TestDemuxSinglePacket(t *testing.T) {
	d, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.Submit(100, []byte{3, 0, 'f', 'o', 'o'}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	packets, runtime, err := d.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(packets) != 1 || string(packets[0].Payload) != "foo" || packets[0].Timestamp != 100 {
		t.Fatalf("got %+v", packets)
	}
	if runtime != 100 {
		t.Fatalf("runtime = %d, want 100", runtime)
	}
}

func TestDemuxSplitAcrossSubmits(t *testing.T) {
	d, _ := New(2)
	_ = d.Submit(1, []byte{2, 0})
	_ = d.Submit(2, []byte{'h'})
	_ = d.Submit(3, []byte{'i'})
	packets, _, err := d.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(packets) != 1 || string(packets[0].Payload) != "hi" {
		t.Fatalf("got %+v", packets)
	}
}

func TestDemuxOversizedPayloadRejected(t *testing.T) {
	d, _ := New(4)
	big := make([]byte, 4)
	big[3] = 0xFF // absurdly large length prefix
	if err := d.Submit(0, big); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}

func TestDemuxFinishTruncatedFails(t *testing.T) {
	d, _ := New(2)
	_ = d.Submit(0, []byte{5, 0, 'a'})
	if _, _, err := d.Finish(); err == nil {
		t.Fatal("expected error for truncated frame")
	}
}
