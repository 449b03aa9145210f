package format

import (
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// TtmReader reads TibiaTimeMachine captures: an embedded Tibia version,
// a server name, a runtime, then a flat run of length-prefixed packets
// each trailed by a delay tag.
type TtmReader struct{}

// QueryVersion reads the leading major*100+minor version word.
func (TtmReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	tibiaVersion, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.TtmReader.QueryVersion", "tibia version: %v", err)
	}
	major := int(tibiaVersion / 100)
	minor := int(tibiaVersion % 100)
	if major < 7 {
		return version.Triplet{}, rerr.Invalid("format.TtmReader.QueryVersion", "major %d below 7", major)
	}
	return version.Triplet{Major: major, Minor: minor}, nil
}

// Read skips the version, server name and runtime field, then walks the
// packet/delay-tag sequence, accumulating an absolute timestamp.
func (TtmReader) Read(r *ioreader.Reader) (*Container, error) {
	if err := r.Skip(2); err != nil {
		return nil, rerr.Invalid("format.TtmReader.Read", "tibia version: %v", err)
	}
	serverLength, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return nil, rerr.Invalid("format.TtmReader.Read", "server name length: %v", err)
	}
	if err := r.Skip(int(serverLength)); err != nil {
		return nil, rerr.Invalid("format.TtmReader.Read", "server name: %v", err)
	}
	if _, err := ioreader.ReadUint[uint32](r); err != nil {
		return nil, rerr.Invalid("format.TtmReader.Read", "runtime: %v", err)
	}

	var frames []recording.RawFrame
	timestamp := uint32(0)

	for {
		length, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return nil, rerr.Invalid("format.TtmReader.Read", "packet length: %v", err)
		}
		payload, err := r.Bytes(int(length))
		if err != nil {
			return nil, rerr.Invalid("format.TtmReader.Read", "packet payload: %v", err)
		}
		frames = append(frames, recording.RawFrame{Timestamp: timestamp, Payload: payload})

		if r.Remaining() == 0 {
			break
		}

		packetType, err := ioreader.ReadUint[uint8](r)
		if err != nil {
			return nil, rerr.Invalid("format.TtmReader.Read", "packet type: %v", err)
		}
		switch packetType {
		case 0:
			delay, err := ioreader.ReadUint[uint16](r)
			if err != nil {
				return nil, rerr.Invalid("format.TtmReader.Read", "packet delay: %v", err)
			}
			timestamp += uint32(delay)
		case 1:
			timestamp += 1000
		default:
			return nil, rerr.Invalid("format.TtmReader.Read", "invalid packet type %d", packetType)
		}
	}

	runtime := uint32(0)
	if len(frames) > 0 {
		runtime = frames[len(frames)-1].Timestamp
	}
	return &Container{Runtime: runtime, Frames: frames}, nil
}
