// Package ioreader implements the bounded little-endian cursor every other
// decoder component reads bytes through.
package ioreader

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// Reader is a bounded little-endian cursor over a borrowed byte slice. It
// never copies the backing slice; Slice and Seek return new cursors over
// the same bytes. Every read either succeeds in full or leaves the cursor
// unchanged and returns rerr.InvalidData — there are no partial reads.
type Reader struct {
	data []byte
	pos  int
}

// New wraps data for reading from offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Tell returns the current absolute offset.
func (r *Reader) Tell() int { return r.pos }

// Len returns the total length of the backing slice.
func (r *Reader) Len() int { return len(r.data) }

// Seek returns a new Reader positioned at the given absolute offset into
// the same backing slice.
func (r *Reader) Seek(abs int) (*Reader, error) {
	if abs < 0 || abs > len(r.data) {
		return nil, rerr.Invalid("ioreader.Reader.Seek", "offset %d out of range [0,%d]", abs, len(r.data))
	}
	return &Reader{data: r.data, pos: abs}, nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return rerr.Invalid("ioreader.Reader.Skip", "cannot skip %d bytes, %d remaining", n, r.Remaining())
	}
	r.pos += n
	return nil
}

// Slice returns a new Reader over the next n bytes and advances past them.
func (r *Reader) Slice(n int) (*Reader, error) {
	if n < 0 || n > r.Remaining() {
		return nil, rerr.Invalid("ioreader.Reader.Slice", "cannot slice %d bytes, %d remaining", n, r.Remaining())
	}
	sub := &Reader{data: r.data[r.pos : r.pos+n]}
	r.pos += n
	return sub, nil
}

// Copy reads n bytes into dst (which must have length n) and advances.
func (r *Reader) Copy(n int, dst []byte) error {
	if n < 0 || n > r.Remaining() || len(dst) < n {
		return rerr.Invalid("ioreader.Reader.Copy", "cannot copy %d bytes, %d remaining", n, r.Remaining())
	}
	copy(dst, r.data[r.pos:r.pos+n])
	r.pos += n
	return nil
}

// Bytes reads and returns a copy of the next n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if err := r.Copy(n, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PeekBytes returns the next n bytes without advancing the cursor.
func (r *Reader) PeekBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, rerr.Invalid("ioreader.Reader.PeekBytes", "cannot peek %d bytes, %d remaining", n, r.Remaining())
	}
	return r.data[r.pos : r.pos+n], nil
}

// uint_ is the constraint satisfied by every unsigned wire width.
type uint_ interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type int_ interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// ReadUint reads an unsigned little-endian integer of the given width
// (1/2/4/8 bytes, inferred from T), optionally range-checked against
// [lo, hi] when bounds is non-empty (pass none, or pass {lo, hi}).
func ReadUint[T uint_](r *Reader, bounds ...T) (T, error) {
	width := widthOf[T]()
	raw, err := r.PeekBytes(width)
	if err != nil {
		return 0, rerr.Invalid("ioreader.ReadUint", "short read: %v", err)
	}
	v := T(decodeLE(raw))
	if len(bounds) == 2 {
		lo, hi := bounds[0], bounds[1]
		if v < lo || v > hi {
			return 0, rerr.Invalid("ioreader.ReadUint", "value %d out of range [%d,%d]", v, lo, hi)
		}
	}
	r.pos += width
	return v, nil
}

// PeekUint behaves like ReadUint but does not advance the cursor.
func PeekUint[T uint_](r *Reader) (T, error) {
	width := widthOf[T]()
	raw, err := r.PeekBytes(width)
	if err != nil {
		return 0, err
	}
	return T(decodeLE(raw)), nil
}

// ReadInt reads a signed little-endian integer of the given width,
// optionally range-checked against [lo, hi].
func ReadInt[T int_](r *Reader, bounds ...T) (T, error) {
	width := widthOf[T]()
	raw, err := r.PeekBytes(width)
	if err != nil {
		return 0, rerr.Invalid("ioreader.ReadInt", "short read: %v", err)
	}
	v := T(signExtend(decodeLE(raw), width))
	if len(bounds) == 2 {
		lo, hi := bounds[0], bounds[1]
		if v < lo || v > hi {
			return 0, rerr.Invalid("ioreader.ReadInt", "value %d out of range [%d,%d]", v, lo, hi)
		}
	}
	r.pos += width
	return v, nil
}

func widthOf[T uint_ | int_]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func decodeLE(raw []byte) uint64 {
	switch len(raw) {
	case 1:
		return uint64(raw[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(raw))
	case 4:
		return uint64(binary.LittleEndian.Uint32(raw))
	case 8:
		return binary.LittleEndian.Uint64(raw)
	default:
		return 0
	}
}

func signExtend(v uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	default:
		return int64(v)
	}
}

// Enum is satisfied by wire enums that can assert their own valid range.
type Enum interface {
	~uint8 | ~uint16 | ~uint32
	Bounds() (first, last uint32)
}

// ReadEnum reads a wire-width unsigned integer and validates it against
// zero.Bounds(), per spec: "Enum reads require the enum to expose its
// inclusive [first,last] and error if outside."
func ReadEnum[T Enum](r *Reader) (T, error) {
	var zero T
	width := widthOf[T]()
	raw, err := r.PeekBytes(width)
	if err != nil {
		return 0, rerr.Invalid("ioreader.ReadEnum", "short read: %v", err)
	}
	v := decodeLE(raw)
	first, last := zero.Bounds()
	if uint32(v) < first || uint32(v) > last {
		return 0, rerr.Invalid("ioreader.ReadEnum", "enum value %d out of range [%d,%d]", v, first, last)
	}
	r.pos += width
	return T(v), nil
}

// ReadString reads a u16-length-prefixed run of raw bytes with no NUL
// handling, per spec §4.1.
func (r *Reader) ReadString() (string, error) {
	n, err := ReadUint[uint16](r)
	if err != nil {
		return "", rerr.Invalid("ioreader.Reader.ReadString", "length prefix: %v", err)
	}
	raw, err := r.Bytes(int(n))
	if err != nil {
		return "", rerr.Invalid("ioreader.Reader.ReadString", "body: %v", err)
	}
	return string(raw), nil
}

// ReadFloat reads the 5-byte Tibia custom float encoding: a u8 exponent
// followed by a u32 significand, producing (significand - math.MaxInt32)
// / 10^exponent as a float64.
func (r *Reader) ReadFloat() (float64, error) {
	precision, err := ReadUint[uint8](r)
	if err != nil {
		return 0, rerr.Invalid("ioreader.Reader.ReadFloat", "precision byte: %v", err)
	}
	significand, err := ReadUint[uint32](r)
	if err != nil {
		return 0, rerr.Invalid("ioreader.Reader.ReadFloat", "significand: %v", err)
	}
	divisor := math.Pow(10, float64(precision))
	return (float64(significand) - math.MaxInt32) / divisor, nil
}
