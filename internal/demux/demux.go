// Package demux reassembles length-prefixed packet boundaries out of
// arbitrary byte slices fed to it by a format reader, mirroring the
// upstream demuxer's Header/Payload state machine.
package demux

import (
	"encoding/binary"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// MaxPacketSize bounds both the length prefix and the internal buffer;
// a recording that claims a longer payload is rejected.
const MaxPacketSize = 128 * 1024

type state int

const (
	stateHeader state = iota
	statePayload
)

// Packet is one reassembled, timestamped payload.
type Packet struct {
	Timestamp uint32
	Payload   []byte
}

// Demuxer reassembles Submit calls into Packets. HeaderSize must be 2 or
// 4 (u16 or u32 little-endian length prefixes).
type Demuxer struct {
	headerSize int
	st         state
	remaining  int
	buf        []byte
	ts         uint32

	packets []Packet
}

// New constructs a Demuxer reading headerSize-byte length prefixes.
func New(headerSize int) (*Demuxer, error) {
	if headerSize != 2 && headerSize != 4 {
		return nil, rerr.Invalid("demux.New", "header size must be 2 or 4, got %d", headerSize)
	}
	return &Demuxer{headerSize: headerSize, remaining: headerSize}, nil
}

// Submit feeds ts-stamped bytes into the state machine, draining as many
// complete header/payload cycles as the input allows.
func (d *Demuxer) Submit(ts uint32, data []byte) error {
	for len(data) > 0 {
		take := d.remaining
		if take > len(data) {
			take = len(data)
		}
		d.buf = append(d.buf, data[:take]...)
		data = data[take:]
		d.remaining -= take

		if d.remaining != 0 {
			continue
		}

		switch d.st {
		case stateHeader:
			length, err := decodeLength(d.buf, d.headerSize)
			if err != nil {
				return err
			}
			if length > MaxPacketSize {
				return rerr.Invalid("demux.Demuxer.Submit", "payload length %d exceeds %d", length, MaxPacketSize)
			}
			d.buf = d.buf[:0]
			d.remaining = length
			d.ts = ts
			d.st = statePayload
		case statePayload:
			payload := make([]byte, len(d.buf))
			copy(payload, d.buf)
			d.packets = append(d.packets, Packet{Timestamp: d.ts, Payload: payload})
			d.buf = d.buf[:0]
			d.remaining = d.headerSize
			d.st = stateHeader
		}
	}
	return nil
}

// Finish returns the reassembled packets and the recording runtime (the
// last remembered timestamp), failing if the machine is not cleanly back
// at Header with an empty buffer.
func (d *Demuxer) Finish() ([]Packet, uint32, error) {
	if d.st != stateHeader || len(d.buf) != 0 {
		return nil, 0, rerr.Invalid("demux.Demuxer.Finish", "truncated frame: %d bytes pending in state %d", len(d.buf), d.st)
	}
	runtime := uint32(0)
	if len(d.packets) > 0 {
		runtime = d.packets[len(d.packets)-1].Timestamp
	}
	return d.packets, runtime, nil
}

func decodeLength(buf []byte, headerSize int) (int, error) {
	switch headerSize {
	case 2:
		return int(binary.LittleEndian.Uint16(buf)), nil
	case 4:
		return int(binary.LittleEndian.Uint32(buf)), nil
	default:
		return 0, rerr.Invalid("demux.decodeLength", "unsupported header size %d", headerSize)
	}
}
