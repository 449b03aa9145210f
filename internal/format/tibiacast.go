package format

import (
	"bytes"
	"io"
	"sort"

	"github.com/klauspost/compress/flate"

	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

const (
	tibiacastPacketStateCorrection = 6
	tibiacastPacketInitialization  = 7
	tibiacastPacketTibiaData       = 8
	tibiacastPacketOutgoingMessage = 9
)

// TibiacastReader reads Tibiacast's .recording container: a small
// container-version preamble followed by a raw deflate stream of
// length-prefixed, timestamped packets.
type TibiacastReader struct{}

// tibiacastVersionTable maps a (container-major, container-minor) pair to
// the Tibia version it was recorded against, an exact port of the table
// Tibiacast itself shipped across its client releases.
func tibiacastVersionTable(major, minor uint8) (int, int, bool) {
	switch major {
	case 3:
		switch {
		case minor < 5:
			return 8, 55, true
		case minor < 6:
			return 8, 60, true
		case minor < 8:
			return 8, 61, true
		case minor < 11:
			return 8, 62, true
		case minor < 15:
			return 8, 71, true
		case minor < 22:
			return 9, 31, true
		case minor < 26:
			return 9, 40, true
		case minor < 28:
			return 9, 53, true
		}
	case 4:
		switch {
		case minor < 3:
			return 9, 54, true
		case minor < 5:
			return 9, 61, true
		case minor < 6:
			return 9, 71, true
		case minor < 9:
			return 9, 80, true
		case minor < 12:
			// Container minors below 10 are "9.83 old", indistinguishable
			// here from plain 9.83.
			return 9, 83, true
		case minor < 13:
			return 9, 86, true
		case minor < 17:
			return 10, 0, true
		case minor < 20:
			return 10, 34, true
		case minor < 21:
			return 10, 35, true
		case minor < 22:
			return 10, 37, true
		case minor < 24:
			return 10, 51, true
		case minor < 25:
			return 10, 52, true
		case minor < 26:
			return 10, 53, true
		case minor < 27:
			return 10, 54, true
		case minor < 28:
			return 10, 57, true
		case minor < 29:
			return 10, 58, true
		case minor < 30:
			return 10, 64, true
		case minor < 31:
			return 10, 94, true
		}
	}
	return 0, 0, false
}

// QueryVersion reads the container-major.minor pair and resolves it
// through the version table.
func (TibiacastReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	major, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.TibiacastReader.QueryVersion", "container major: %v", err)
	}
	minor, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.TibiacastReader.QueryVersion", "container minor: %v", err)
	}
	tibiaMajor, tibiaMinor, ok := tibiacastVersionTable(major, minor)
	if !ok {
		return version.Triplet{}, rerr.NotSupportedf("format.TibiacastReader.QueryVersion",
			"unrecognised container version %d.%d", major, minor)
	}
	return version.Triplet{Major: tibiaMajor, Minor: tibiaMinor}, nil
}

// Read skips the container preamble, inflates the remainder, and splits
// it into timestamped frames. Packet kinds 6 (state correction), 7
// (initialization) and 9 (outgoing message) carry Tibiacast-proprietary
// bookkeeping rather than core protocol bytes and are not turned into
// frames; only kind-8 sub-packets, the actual Tibia protocol stream, are.
func (TibiacastReader) Read(r *ioreader.Reader) (*Container, error) {
	major, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return nil, rerr.Invalid("format.TibiacastReader.Read", "container major: %v", err)
	}
	minor, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return nil, rerr.Invalid("format.TibiacastReader.Read", "container minor: %v", err)
	}

	if major > 4 || (major == 4 && minor >= 5) {
		if err := r.Skip(4); err != nil {
			return nil, rerr.Invalid("format.TibiacastReader.Read", "runtime: %v", err)
		}
	}
	if major > 4 || (major == 4 && minor >= 6) {
		if err := r.Skip(1); err != nil {
			return nil, rerr.Invalid("format.TibiacastReader.Read", "preview flag: %v", err)
		}
	}

	rest, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, rerr.Invalid("format.TibiacastReader.Read", "raw stream: %v", err)
	}
	inflated, err := tibiacastInflate(rest)
	if err != nil {
		return nil, rerr.Invalid("format.TibiacastReader.Read", "inflate: %v", err)
	}

	return tibiacastSplitFrames(inflated, major)
}

// tibiacastInflate runs the whole remaining file through a raw (headerless)
// deflate decoder; Tibiacast's own streaming tinfl usage is purely a
// memory optimisation the Go port doesn't need to reproduce.
func tibiacastInflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	return io.ReadAll(fr)
}

// tibiacastSplitFrames walks the inflated byte stream, each logical packet
// being a length-prefixed block followed by a 4-byte absolute timestamp.
func tibiacastSplitFrames(data []byte, containerMajor uint8) (*Container, error) {
	r := ioreader.New(data)
	headerIs32 := containerMajor >= 4

	var frames []recording.RawFrame
	var lastTimestamp uint32

	for r.Remaining() > 0 {
		var packetLength uint32
		if headerIs32 {
			v, err := ioreader.ReadUint[uint32](r)
			if err != nil {
				return nil, rerr.Invalid("format.tibiacastSplitFrames", "packet length: %v", err)
			}
			packetLength = v
		} else {
			v, err := ioreader.ReadUint[uint16](r)
			if err != nil {
				return nil, rerr.Invalid("format.tibiacastSplitFrames", "packet length: %v", err)
			}
			packetLength = uint32(v)
		}

		if packetLength == 0 {
			break
		}

		payload, err := r.Bytes(int(packetLength))
		if err != nil {
			return nil, rerr.Invalid("format.tibiacastSplitFrames", "packet payload: %v", err)
		}

		tsBytes, err := r.Bytes(4)
		if err != nil {
			return nil, rerr.Invalid("format.tibiacastSplitFrames", "packet timestamp: %v", err)
		}
		timestamp := uint32(tsBytes[0]) | uint32(tsBytes[1])<<8 | uint32(tsBytes[2])<<16 | uint32(tsBytes[3])<<24
		if timestamp < lastTimestamp {
			return nil, rerr.Invalid("format.tibiacastSplitFrames", "timestamp %d precedes %d", timestamp, lastTimestamp)
		}
		lastTimestamp = timestamp

		subFrames, err := tibiacastHandlePacket(payload, timestamp)
		if err != nil {
			return nil, err
		}
		frames = append(frames, subFrames...)
	}

	sort.SliceStable(frames, func(i, j int) bool { return frames[i].Timestamp < frames[j].Timestamp })

	return &Container{Runtime: lastTimestamp, Frames: frames}, nil
}

// tibiacastHandlePacket dispatches on the packet-type byte, returning the
// kind-8 sub-packets as individual raw frames; other kinds yield none.
func tibiacastHandlePacket(payload []byte, timestamp uint32) ([]recording.RawFrame, error) {
	r := ioreader.New(payload)
	kind, err := ioreader.ReadUint[uint8](r)
	if err != nil {
		return nil, rerr.Invalid("format.tibiacastHandlePacket", "packet type: %v", err)
	}

	switch kind {
	case tibiacastPacketTibiaData:
		count, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return nil, rerr.Invalid("format.tibiacastHandlePacket", "subpacket count: %v", err)
		}
		frames := make([]recording.RawFrame, 0, count)
		for i := uint16(0); i < count; i++ {
			length, err := ioreader.ReadUint[uint16](r)
			if err != nil {
				return nil, rerr.Invalid("format.tibiacastHandlePacket", "subpacket %d length: %v", i, err)
			}
			if length == 0 {
				continue
			}
			sub, err := r.Bytes(int(length))
			if err != nil {
				return nil, rerr.Invalid("format.tibiacastHandlePacket", "subpacket %d data: %v", i, err)
			}
			frames = append(frames, recording.RawFrame{Timestamp: timestamp, Payload: sub})
		}
		return frames, nil
	case tibiacastPacketStateCorrection, tibiacastPacketInitialization, tibiacastPacketOutgoingMessage:
		return nil, nil
	default:
		return nil, rerr.Invalid("format.tibiacastHandlePacket", "unhandled packet type %d", kind)
	}
}
