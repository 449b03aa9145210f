package format

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

const trpMagic = 0x1337

// TrpReader reads TibiaReplay captures: a 2- or 4-byte magic, an embedded
// Tibia version, runtime and frame count, then a flat list of
// length-prefixed payloads each trailed by the following frame's
// timestamp.
type TrpReader struct{}

// skipTrpMagic consumes either the 2-byte 0x1337 magic or the longer
// "TRP\0"-style 4-byte form, per the container's own self-description.
func skipTrpMagic(r *ioreader.Reader) error {
	magic, err := ioreader.PeekUint[uint16](r)
	if err != nil {
		return rerr.Invalid("format.skipTrpMagic", "magic: %v", err)
	}
	if magic == trpMagic {
		return r.Skip(2)
	}
	return r.Skip(4)
}

// QueryVersion skips the magic and reads the major*100+minor version
// word that follows it.
func (TrpReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	if err := skipTrpMagic(r); err != nil {
		return version.Triplet{}, err
	}
	tibiaVersion, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.TrpReader.QueryVersion", "tibia version: %v", err)
	}
	return version.Triplet{Major: int(tibiaVersion / 100), Minor: int(tibiaVersion % 100)}, nil
}

// Read skips the header fields and walks the frame list, seeding the
// first frame's timestamp from the header's own timestamp field and
// rejecting any non-monotonic timestamp sequence thereafter.
func (TrpReader) Read(r *ioreader.Reader) (*Container, error) {
	if err := skipTrpMagic(r); err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, rerr.Invalid("format.TrpReader.Read", "tibia version: %v", err)
	}
	if _, err := ioreader.ReadUint[uint32](r); err != nil {
		return nil, rerr.Invalid("format.TrpReader.Read", "runtime: %v", err)
	}
	frameCount, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.TrpReader.Read", "frame count: %v", err)
	}
	timestamp, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.TrpReader.Read", "first timestamp: %v", err)
	}

	frames := make([]recording.RawFrame, 0, frameCount)

	for i := uint32(0); i < frameCount; i++ {
		length, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return nil, rerr.Invalid("format.TrpReader.Read", "frame %d length: %v", i, err)
		}
		payload, err := r.Bytes(int(length))
		if err != nil {
			return nil, rerr.Invalid("format.TrpReader.Read", "frame %d payload: %v", i, err)
		}
		frames = append(frames, recording.RawFrame{Timestamp: timestamp, Payload: payload})

		if i+1 == frameCount {
			break
		}
		next, err := ioreader.ReadUint[uint32](r)
		if err != nil {
			return nil, rerr.Invalid("format.TrpReader.Read", "frame %d next timestamp: %v", i, err)
		}
		if next < timestamp {
			return nil, rerr.Invalid("format.TrpReader.Read", "non-monotonic timestamp %d after %d", next, timestamp)
		}
		timestamp = next
	}

	runtime := uint32(0)
	if len(frames) > 0 {
		runtime = frames[len(frames)-1].Timestamp
	}
	return &Container{Runtime: runtime, Frames: frames}, nil
}
