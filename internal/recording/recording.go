// Package recording holds the decoded, seekable index of a replay: a
// strictly timestamp-ordered list of frames, each carrying the events
// its payload parsed into.
package recording

import (
	"github.com/tibiacast/tibiarc-sub000/internal/event"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// Frame is one timestamped batch of events, in parser emission order.
type Frame struct {
	Timestamp uint32
	Events    event.List
}

// Recording is the full decoded replay: total runtime plus an ordered
// frame list. Frames[i].Timestamp >= Frames[i-1].Timestamp always holds.
type Recording struct {
	Runtime uint32
	Frames  []Frame
}

// Validate checks the strictly-nondecreasing timestamp invariant.
func (r *Recording) Validate() error {
	for i := 1; i < len(r.Frames); i++ {
		if r.Frames[i].Timestamp < r.Frames[i-1].Timestamp {
			return rerr.Invalid("recording.Recording.Validate",
				"frame %d timestamp %d precedes frame %d timestamp %d",
				i, r.Frames[i].Timestamp, i-1, r.Frames[i-1].Timestamp)
		}
	}
	return nil
}

// RawFrame is a (timestamp, payload) pair as produced by a format reader
// and demuxer, before parsing.
type RawFrame struct {
	Timestamp uint32
	Payload   []byte
}

// ParseFunc parses one raw payload into an ordered event list.
type ParseFunc func(payload []byte) (event.List, error)

// DecodeAll parses every raw frame in order and reassembles them into a
// Recording, failing the whole recording on the first parse error. Frames
// are not independent: parse carries a parser's view position and
// known-creature set across calls (§4.8), a full-map packet in frame N
// changes how frame N+1's tile updates are interpreted, so decoding must
// stay strictly sequential per §5's scheduling model.
func DecodeAll(raws []RawFrame, parse ParseFunc) (*Recording, error) {
	frames := make([]Frame, len(raws))

	for i, raw := range raws {
		events, err := parse(raw.Payload)
		if err != nil {
			return nil, rerr.Invalid("recording.DecodeAll", "frame %d at ts %d: %v", i, raw.Timestamp, err)
		}
		frames[i] = Frame{Timestamp: raw.Timestamp, Events: events}
	}

	runtime := uint32(0)
	if len(frames) > 0 {
		runtime = frames[len(frames)-1].Timestamp
	}
	rec := &Recording{Runtime: runtime, Frames: frames}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
