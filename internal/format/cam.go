package format

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz/lzma"

	"github.com/tibiacast/tibiarc-sub000/internal/demux"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// camHeaderSize is the fixed, largely unused preamble before the Tibia
// version quad.
const camHeaderSize = 32

// CamReader reads TibiCAM's .cam container: a fixed header, an embedded
// Tibia version, free-form metadata, then an LZMA stream whose plaintext
// is itself a miniature Rec-like frame list.
type CamReader struct{}

// QueryVersion skips the header and reads the major/minor/preview quad
// recorded right after it.
func (CamReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	if err := r.Skip(camHeaderSize); err != nil {
		return version.Triplet{}, rerr.Invalid("format.CamReader.QueryVersion", "header: %v", err)
	}
	raw, err := r.Bytes(4)
	if err != nil {
		return version.Triplet{}, rerr.Invalid("format.CamReader.QueryVersion", "version quad: %v", err)
	}
	major := int(raw[0])
	minor := int(raw[1])*10 + int(raw[2])
	if major < 7 || major > 12 {
		return version.Triplet{}, rerr.Invalid("format.CamReader.QueryVersion", "major %d out of range [7,12]", major)
	}
	return version.Triplet{Major: major, Minor: minor}, nil
}

// Read skips the header and version, consumes the metadata block, then
// LZMA-decompresses and demuxes the frame list within.
func (CamReader) Read(r *ioreader.Reader) (*Container, error) {
	if err := r.Skip(camHeaderSize); err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "header: %v", err)
	}
	if err := r.Skip(4); err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "version quad: %v", err)
	}

	metaLength, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "metadata length: %v", err)
	}
	if err := r.Skip(int(metaLength)); err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "metadata: %v", err)
	}

	compressedSize, err := ioreader.ReadUint[uint32](r)
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "compressed size: %v", err)
	}
	lzmaProperties, err := r.Bytes(5)
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "lzma properties: %v", err)
	}
	decompressedSize, err := ioreader.ReadUint[uint64](r)
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "decompressed size: %v", err)
	}
	compressedData, err := r.Bytes(int(compressedSize))
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "compressed data: %v", err)
	}

	plain, err := camDecompress(lzmaProperties, decompressedSize, compressedData)
	if err != nil {
		return nil, rerr.Invalid("format.CamReader.Read", "lzma: %v", err)
	}

	return camConsolidate(plain)
}

// camDecompress assembles the classic 13-byte .lzma header (5 property
// bytes plus an 8-byte little-endian uncompressed size) that
// ulikunitz/xz/lzma expects, since .cam stores the same fields split
// across its own container instead.
func camDecompress(properties []byte, decompressedSize uint64, compressedData []byte) ([]byte, error) {
	header := make([]byte, 13)
	copy(header[:5], properties)
	binary.LittleEndian.PutUint64(header[5:], decompressedSize)

	stream := io.MultiReader(bytes.NewReader(header), bytes.NewReader(compressedData))
	lr, err := lzma.NewReader(stream)
	if err != nil {
		return nil, err
	}
	out := make([]byte, decompressedSize)
	if _, err := io.ReadFull(lr, out); err != nil {
		return nil, err
	}
	return out, nil
}

// camConsolidate parses the decompressed frame list: a bogus 2-byte
// container version, an i32 frame count biased by -57, then that many
// (length, timestamp, payload, checksum) frames.
func camConsolidate(plain []byte) (*Container, error) {
	r := ioreader.New(plain)

	if err := r.Skip(2); err != nil {
		return nil, rerr.Invalid("format.camConsolidate", "bogus container version: %v", err)
	}
	frameCount, err := ioreader.ReadInt[int32](r)
	if err != nil {
		return nil, rerr.Invalid("format.camConsolidate", "frame count: %v", err)
	}
	if frameCount <= 57 {
		return nil, rerr.Invalid("format.camConsolidate", "invalid frame count %d", frameCount)
	}
	frameCount -= 57

	dmx, err := demux.New(2)
	if err != nil {
		return nil, err
	}

	for i := int32(0); i < frameCount; i++ {
		length, err := ioreader.ReadUint[uint16](r)
		if err != nil {
			return nil, rerr.Invalid("format.camConsolidate", "frame %d length: %v", i, err)
		}
		timestamp, err := ioreader.ReadUint[uint32](r)
		if err != nil {
			return nil, rerr.Invalid("format.camConsolidate", "frame %d timestamp: %v", i, err)
		}
		payload, err := r.Bytes(int(length))
		if err != nil {
			return nil, rerr.Invalid("format.camConsolidate", "frame %d payload: %v", i, err)
		}
		if err := dmx.Submit(timestamp, payload); err != nil {
			return nil, rerr.Invalid("format.camConsolidate", "frame %d demux: %v", i, err)
		}
		if err := r.Skip(4); err != nil {
			return nil, rerr.Invalid("format.camConsolidate", "frame %d checksum: %v", i, err)
		}
	}

	return containerFrom(dmx)
}
