package render

import (
	"testing"

	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/model"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

type fakeClock struct{ ms uint32 }

func (c *fakeClock) TellMS() uint32 { return c.ms }

type fakeSink struct {
	calls int
	pts   []uint32
}

func (s *fakeSink) Accept(pixels []byte, stride, w, h int, pts uint32) error {
	s.calls++
	s.pts = append(s.pts, pts)
	return nil
}

func newPlayer(t *testing.T) (*Player, *fakeClock, *fakeSink) {
	t.Helper()
	profile := version.New(version.Triplet{Major: 8, Minor: 60}, nil)
	state := gamestate.New(profile)
	rec := &recording.Recording{
		Runtime: 200,
		Frames: []recording.Frame{
			{Timestamp: 0, Events: event.List{event.PlayerMoved{Position: model.Position{X: 100, Y: 100, Z: 7}}}},
			{Timestamp: 100, Events: event.List{event.CreatureHealthUpdated{ID: 1, Percent: 50}}},
			{Timestamp: 200, Events: event.List{event.CreatureHealthUpdated{ID: 1, Percent: 25}}},
		},
	}
	clock := &fakeClock{}
	sink := &fakeSink{}
	p := &Player{
		Recording:  rec,
		State:      state,
		Clock:      clock,
		Sink:       sink,
		Compositor: &Compositor{},
	}
	return p, clock, sink
}

func TestPlayerAdvancesOnlyUpToClock(t *testing.T) {
	p, clock, sink := newPlayer(t)

	clock.ms = 50
	if err := p.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if p.next != 1 {
		t.Fatalf("expected only frame 0 applied, next=%d", p.next)
	}
	if sink.calls != 1 || sink.pts[0] != 50 {
		t.Fatalf("expected one Accept at pts 50, got %+v", sink.pts)
	}

	clock.ms = 200
	if err := p.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if p.next != 3 {
		t.Fatalf("expected all frames applied, next=%d", p.next)
	}
}

func TestPlayerRewindsOnSeekBackward(t *testing.T) {
	p, clock, _ := newPlayer(t)

	clock.ms = 200
	if err := p.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if p.State.Center.X != 100 {
		t.Fatalf("expected center applied, got %+v", p.State.Center)
	}

	clock.ms = 0
	if err := p.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if p.next != 1 {
		t.Fatalf("expected rewind to reapply only frame 0, next=%d", p.next)
	}
	if p.State.Center.X != 100 {
		t.Fatalf("expected state rebuilt after reset, got %+v", p.State.Center)
	}
}
