package version

import "testing"

func TestTranslateTypePropertyPre755(t *testing.T) {
	p := New(Triplet{7, 40, 0}, nil)
	got, err := p.TranslateTypeProperty(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TypeDisplacementLegacy {
		t.Fatalf("got %v, want DisplacementLegacy", got)
	}
}

func TestTranslateTypePropertyPost755(t *testing.T) {
	p := New(Triplet{7, 55, 0}, nil)
	got, err := p.TranslateTypeProperty(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TypeRotate {
		t.Fatalf("got %v, want Rotate", got)
	}
}

func TestTranslateMessageMode(t *testing.T) {
	p := New(Triplet{8, 61, 0}, nil)
	got, err := p.TranslateMessageMode(22)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ModeWarning {
		t.Fatalf("got %v, want Warning", got)
	}
}

func TestTranslateTypePropertyEndMarker(t *testing.T) {
	p := New(Triplet{7, 0, 0}, nil)
	got, err := p.TranslateTypeProperty(0xFF)
	if err != nil || got != TypeEntryEndMarker {
		t.Fatalf("got (%v, %v), want (EntryEndMarker, nil)", got, err)
	}
}

func TestFluidColorLegacy(t *testing.T) {
	p := New(Triplet{7, 0, 0}, nil)
	got, err := p.TranslateFluidColor(9)
	if err != nil || got != 1 {
		t.Fatalf("got (%v, %v), want (1, nil)", got, err)
	}
}

func TestFluidColorModern(t *testing.T) {
	p := New(Triplet{8, 0, 0}, nil)
	got, err := p.TranslateFluidColor(2)
	if err != nil || got != 7 {
		t.Fatalf("got (%v, %v), want (7, nil)", got, err)
	}
}

func TestFeaturesCapacityDivisor(t *testing.T) {
	p := New(Triplet{8, 30, 0}, nil)
	if p.Features.CapacityDivisor != 100 {
		t.Fatalf("got %d, want 100", p.Features.CapacityDivisor)
	}
	p = New(Triplet{8, 29, 0}, nil)
	if p.Features.CapacityDivisor != 1 {
		t.Fatalf("got %d, want 1", p.Features.CapacityDivisor)
	}
}

func TestProtocolModernStacking(t *testing.T) {
	p := New(Triplet{8, 53, 0}, nil)
	if !p.Features.ModernStacking {
		t.Fatal("expected ModernStacking at 8.53")
	}
	p = New(Triplet{8, 52, 0}, nil)
	if p.Features.ModernStacking {
		t.Fatal("did not expect ModernStacking before 8.53")
	}
}

func TestUnifiedMessageTableSharedFrom900(t *testing.T) {
	p := New(Triplet{9, 0, 0}, nil)
	speak, err := p.TranslateSpeakMode(21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := p.TranslateMessageMode(21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speak != msg || speak != ModeDamageDealt {
		t.Fatalf("speak=%v msg=%v, want both DamageDealt", speak, msg)
	}
}

func TestOverridesApplyUnknownField(t *testing.T) {
	p := New(Triplet{10, 0, 0}, nil)
	o := &Overrides{Protocol: map[string]bool{"NotARealFlag": true}}
	if err := o.Apply(p); err == nil {
		t.Fatal("expected error for unknown protocol field")
	}
}

func TestOverridesApplyFlipsFlag(t *testing.T) {
	p := New(Triplet{7, 0, 0}, nil)
	if p.Protocol.ExpertMode {
		t.Fatal("precondition: ExpertMode should be false pre-10.58")
	}
	o := &Overrides{Protocol: map[string]bool{"ExpertMode": true}}
	if err := o.Apply(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Protocol.ExpertMode {
		t.Fatal("expected ExpertMode to be flipped on")
	}
}
