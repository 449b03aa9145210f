package format

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/tibiacast/tibiarc-sub000/internal/demux"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// Tmv1Reader reads the original TibiaMovie format: a gzip-wrapped body
// holding a container-version marker, an embedded Tibia version, a
// runtime, then a sequence of type-tagged, delay-accumulated frames.
type Tmv1Reader struct{}

// QueryVersion inflates the whole body (TMV1 has no size marker to
// shortcut this) and reads the embedded container/Tibia version pair.
func (Tmv1Reader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	raw, err := r.Bytes(r.Remaining())
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "read body: %v", err)
	}
	body, err := tmv1Inflate(raw)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "inflate: %v", err)
	}

	br := ioreader.New(body)
	containerVersion, err := ioreader.ReadUint[uint16](br)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "container version: %v", err)
	}
	if containerVersion != 2 {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "unsupported container version %d", containerVersion)
	}
	tibiaVersion, err := ioreader.ReadUint[uint16](br)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "tibia version: %v", err)
	}
	major := int(tibiaVersion / 100)
	minor := int(tibiaVersion % 100)
	if major < 7 || major > 12 {
		return version.Triplet{}, rerr.Invalid("format.Tmv1Reader.QueryVersion", "major %d out of range [7,12]", major)
	}
	return version.Triplet{Major: major, Minor: minor}, nil
}

// tmv1Inflate decodes the gzip-wrapped body (zlib's inflateInit2(31) is
// the auto-detecting gzip/zlib window, which for TMV1's own compressor
// always resolves to gzip framing).
func tmv1Inflate(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}

// Read inflates the body and walks its tag-0/tag-1 frame sequence, each
// tag-0 frame advancing an accumulator timestamp by its own delay.
func (Tmv1Reader) Read(r *ioreader.Reader) (*Container, error) {
	raw, err := r.Bytes(r.Remaining())
	if err != nil {
		return nil, rerr.Invalid("format.Tmv1Reader.Read", "read body: %v", err)
	}
	body, err := tmv1Inflate(raw)
	if err != nil {
		return nil, rerr.Invalid("format.Tmv1Reader.Read", "inflate: %v", err)
	}

	br := ioreader.New(body)
	if err := br.Skip(2); err != nil {
		return nil, rerr.Invalid("format.Tmv1Reader.Read", "container version: %v", err)
	}
	if err := br.Skip(2); err != nil {
		return nil, rerr.Invalid("format.Tmv1Reader.Read", "tibia version: %v", err)
	}
	if _, err := ioreader.ReadUint[uint32](br); err != nil {
		return nil, rerr.Invalid("format.Tmv1Reader.Read", "runtime: %v", err)
	}

	dmx, err := demux.New(2)
	if err != nil {
		return nil, err
	}

	timestamp := uint32(0)
	for br.Remaining() > 0 {
		frameType, err := ioreader.ReadUint[uint8](br)
		if err != nil {
			return nil, rerr.Invalid("format.Tmv1Reader.Read", "frame type: %v", err)
		}

		switch frameType {
		case 0:
			delay, err := ioreader.ReadUint[uint32](br)
			if err != nil {
				return nil, rerr.Invalid("format.Tmv1Reader.Read", "frame delay: %v", err)
			}
			size, err := ioreader.ReadUint[uint16](br)
			if err != nil {
				return nil, rerr.Invalid("format.Tmv1Reader.Read", "frame size: %v", err)
			}
			payload, err := br.Bytes(int(size))
			if err != nil {
				return nil, rerr.Invalid("format.Tmv1Reader.Read", "frame data: %v", err)
			}
			if err := dmx.Submit(timestamp, payload); err != nil {
				return nil, rerr.Invalid("format.Tmv1Reader.Read", "demux: %v", err)
			}
			timestamp += delay
		case 1:
			// Empty separator frame, no payload.
		default:
			return nil, rerr.Invalid("format.Tmv1Reader.Read", "invalid frame type %d", frameType)
		}
	}

	return containerFrom(dmx)
}
