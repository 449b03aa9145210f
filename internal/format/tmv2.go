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

const tmv2Magic = 0x32564D54 // "TMV2" read as a little-endian u32

// Tmv2Reader reads the second-generation TibiaMovie format: a fixed
// magic/options/version header, an optional raw-deflate body, and a flat
// packet list with an (outer, inner) length cross-check per packet.
type Tmv2Reader struct{}

// QueryVersion skips the ten-byte prologue (magic, options, container
// version) and reads the explicit 3-byte Tibia version that follows it,
// the same three bytes Read skips.
func (Tmv2Reader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	if err := r.Skip(10); err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv2Reader.QueryVersion", "prologue: %v", err)
	}
	raw, err := r.Bytes(3)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv2Reader.QueryVersion", "tibia version: %v", err)
	}
	major := int(raw[0])
	minor := int(raw[1])*10 + int(raw[2])
	if major < 7 || major > 12 || minor < 0 || minor > 99 {
		return version.Triplet{}, rerr.Invalid("format.Tmv2Reader.QueryVersion", "version %d.%d out of range", major, minor)
	}
	return version.Triplet{Major: major, Minor: minor}, nil
}

// Read validates the header, optionally inflates the body, then parses
// the flat packet list, normalises timestamps relative to the smallest
// packet timestamp, and sorts the frames by timestamp.
func (Tmv2Reader) Read(r *ioreader.Reader) (*Container, error) {
	magic, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "magic: %v", err)
	}
	if magic != tmv2Magic {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "unknown file magic %#x", magic)
	}
	options, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "options: %v", err)
	}
	compressed := options&1 != 0

	containerVersion, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "container version: %v", err)
	}
	if containerVersion != 1 {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "unknown container version %d", containerVersion)
	}
	if err := r.Skip(3); err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "tibia version: %v", err)
	}
	if err := r.Skip(4); err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "creation time: %v", err)
	}
	packetCount, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "packet count: %v", err)
	}
	if err := r.Skip(4); err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "broken timestamp: %v", err)
	}
	decompressedSize, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "decompressed size: %v", err)
	}

	rest, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, rerr.Invalid("format.Tmv2Reader.Read", "body: %v", err)
	}

	var body []byte
	if compressed {
		fr := flate.NewReader(bytes.NewReader(rest))
		defer fr.Close()
		body = make([]byte, decompressedSize)
		if _, err := io.ReadFull(fr, body); err != nil {
			return nil, rerr.Invalid("format.Tmv2Reader.Read", "inflate: %v", err)
		}
	} else {
		body = rest
	}

	return tmv2Consolidate(body, packetCount)
}

func tmv2Consolidate(body []byte, packetCount uint32) (*Container, error) {
	br := ioreader.New(body)

	type rawPacket struct {
		timestamp uint32
		payload   []byte
	}
	raws := make([]rawPacket, 0, packetCount)

	minTS, maxTS := ^uint32(0), uint32(0)

	for i := uint32(0); i < packetCount; i++ {
		outerLength, err := ioreader.ReadUint[uint16](br)
		if err != nil {
			return nil, rerr.Invalid("format.tmv2Consolidate", "packet %d outer length: %v", i, err)
		}
		timestamp, err := ioreader.ReadUint[uint32](br)
		if err != nil {
			return nil, rerr.Invalid("format.tmv2Consolidate", "packet %d timestamp: %v", i, err)
		}
		innerLength, err := ioreader.ReadUint[uint16](br)
		if err != nil {
			return nil, rerr.Invalid("format.tmv2Consolidate", "packet %d inner length: %v", i, err)
		}
		if outerLength != innerLength+2 {
			return nil, rerr.Invalid("format.tmv2Consolidate", "packet %d corrupt length (outer %d, inner %d)", i, outerLength, innerLength)
		}
		payload, err := br.Bytes(int(innerLength))
		if err != nil {
			return nil, rerr.Invalid("format.tmv2Consolidate", "packet %d payload: %v", i, err)
		}

		if timestamp < minTS {
			minTS = timestamp
		}
		if timestamp > maxTS {
			maxTS = timestamp
		}
		raws = append(raws, rawPacket{timestamp: timestamp, payload: payload})
	}

	if len(raws) == 0 {
		return &Container{Runtime: 0}, nil
	}

	frames := make([]recording.RawFrame, len(raws))
	for i, p := range raws {
		frames[i] = recording.RawFrame{Timestamp: p.timestamp - minTS, Payload: p.payload}
	}
	sort.SliceStable(frames, func(i, j int) bool {
		return frames[i].Timestamp < frames[j].Timestamp
	})

	return &Container{Runtime: maxTS - minTS, Frames: frames}, nil
}
