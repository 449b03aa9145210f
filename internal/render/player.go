package render

import (
	"github.com/tibiacast/tibiarc-sub000/internal/gamestate"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
)

// Player drives a decoded Recording against a GameState at the pace a
// PlaybackClock reports, composing and pushing one frame per tick to a
// FrameSink. It holds the only mutable cursor in the read path: the
// index of the next undelivered recording frame.
type Player struct {
	Recording  *recording.Recording
	State      *gamestate.State
	Clock      PlaybackClock
	Sink       FrameSink
	Compositor *Compositor

	next int
}

// Tick catches the game state up to the clock's current time, applying
// every frame whose timestamp has been reached, then pushes one
// composed frame to the sink. Seeking backward (the clock reporting a
// time before the timestamp of the last applied frame) rewinds the state to empty and
// replays from frame 0, per §5's "no snapshots" policy.
func (p *Player) Tick() error {
	now := p.Clock.TellMS()

	if p.next > 0 && now < p.Recording.Frames[p.next-1].Timestamp {
		p.State.Reset()
		p.next = 0
	}

	for p.next < len(p.Recording.Frames) {
		frame := p.Recording.Frames[p.next]
		if frame.Timestamp > now {
			break
		}
		p.State.CurrentTick = frame.Timestamp
		for _, e := range frame.Events {
			e.Apply(p.State)
		}
		p.next++
	}

	pixels, stride, w, h := p.Compositor.Compose(p.State)
	return p.Sink.Accept(pixels, stride, w, h, now)
}
