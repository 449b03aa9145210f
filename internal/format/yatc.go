package format

import (
	"sort"

	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// YatcReader reads the simplest container: a flat run of
// {u32 timestamp, u16 length, payload} tuples with no header at all.
type YatcReader struct{}

// QueryVersion always fails: YATC captures don't store the Tibia version.
func (YatcReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	return version.Triplet{}, rerr.NotSupportedf("format.YatcReader.QueryVersion",
		"YATC captures don't store the Tibia version")
}

// Read walks the tuple sequence. The first tuple's own timestamp is a
// red herring recorded alongside frame zero but never assigned to it
// (frame zero always starts at tick 0); every later tuple's timestamp
// stamps that same tuple's payload.
func (YatcReader) Read(r *ioreader.Reader) (*Container, error) {
	var frames []recording.RawFrame
	var runtime uint32

	for i := 0; r.Remaining() > 0; i++ {
		ts, err := ioreader.ReadUint[uint32](r)
		if err != nil {
			return nil, rerr.Invalid("format.YatcReader.Read", "tuple %d timestamp: %v", i, err)
		}
		length, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return nil, rerr.Invalid("format.YatcReader.Read", "tuple %d length: %v", i, err)
		}
		payload, err := r.Bytes(int(length))
		if err != nil {
			return nil, rerr.Invalid("format.YatcReader.Read", "tuple %d payload: %v", i, err)
		}

		frameTS := ts
		if i == 0 {
			frameTS = 0
		}
		frames = append(frames, recording.RawFrame{Timestamp: frameTS, Payload: payload})
		runtime = ts
	}

	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Timestamp < frames[j].Timestamp
	})
	return &Container{Runtime: runtime, Frames: frames}, nil
}
