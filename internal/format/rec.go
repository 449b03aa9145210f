package format

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/tibiacast/tibiarc-sub000/internal/demux"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// recMaxFrameSize bounds a single frame; no observed .rec recording has
// ever needed more than this despite the early 32-bit length field.
const recMaxFrameSize = 64 << 10

// recAESKey is TibiCAM's fixed AES-256-ECB key, the same 32 bytes across
// every obfuscated container version.
var recAESKey = [32]byte{
	0x54, 0x68, 0x79, 0x20, 0x6B, 0x65, 0x79, 0x20,
	0x69, 0x73, 0x20, 0x6D, 0x69, 0x6E, 0x65, 0x20,
	0xA9, 0x20, 0x32, 0x30, 0x30, 0x36, 0x20, 0x47,
	0x42, 0x20, 0x4D, 0x6F, 0x6E, 0x61, 0x63, 0x6F,
}

type recObfuscation uint8

const (
	recObfuscationDivisorMask      recObfuscation = 0x0F
	recObfuscationFrameCountOffset recObfuscation = 1 << 4
	recObfuscationU16FrameLengths  recObfuscation = 1 << 5
	recObfuscationChecksum         recObfuscation = 1 << 6
	recObfuscationAESData          recObfuscation = 1 << 7
)

// RecReader reads TibiCAM's native .rec container. It carries no Tibia
// version of its own: callers must supply one out of band, matching the
// upstream reader's explicit refusal to guess.
type RecReader struct{}

// QueryVersion always fails: .rec captures never store the Tibia version
// they were recorded against.
func (RecReader) QueryVersion(r *ioreader.Reader) (version.Triplet, error) {
	return version.Triplet{}, rerr.NotSupportedf("format.RecReader.QueryVersion",
		".rec captures don't store the Tibia version")
}

// recTwirlDivisor maps a container version to its byte-twirl divisor, the
// rest of the obfuscation flags deriving purely from version thresholds.
func recTwirlDivisor(containerVersion uint16) (recObfuscation, error) {
	switch containerVersion {
	case 259:
		return 0, nil
	case 515:
		return 5, nil
	case 516, 517:
		return 8, nil
	case 518:
		return 6, nil
	default:
		return 0, rerr.NotSupportedf("format.recTwirlDivisor",
			"unsupported .rec container version %d", containerVersion)
	}
}

// Read decrypts, deobfuscates and demuxes a .rec container.
func (RecReader) Read(r *ioreader.Reader) (*Container, error) {
	containerVersion, err := ioreader.ReadUint[uint16](r)
	if err != nil {
		return nil, rerr.Invalid("format.RecReader.Read", "container version: %v", err)
	}
	frameCount, err := ioreader.ReadInt[int32](r)
	if err != nil {
		return nil, rerr.Invalid("format.RecReader.Read", "frame count: %v", err)
	}

	divisor, err := recTwirlDivisor(containerVersion)
	if err != nil {
		return nil, err
	}
	obfuscation := divisor

	if containerVersion > 259 {
		obfuscation |= recObfuscationFrameCountOffset
		obfuscation |= recObfuscationU16FrameLengths
		frameCount -= 57
	}
	if containerVersion >= 515 {
		obfuscation |= recObfuscationChecksum
	}
	if containerVersion >= 517 {
		obfuscation |= recObfuscationAESData
	}
	if frameCount <= 0 {
		return nil, rerr.Invalid("format.RecReader.Read", "invalid frame count %d", frameCount)
	}

	var block cipher.Block
	if obfuscation&recObfuscationAESData != 0 {
		block, err = aes.NewCipher(recAESKey[:])
		if err != nil {
			return nil, rerr.Invalid("format.RecReader.Read", "aes key setup: %v", err)
		}
	}

	dmx, err := demux.New(2)
	if err != nil {
		return nil, err
	}

	for i := int32(0); i < frameCount; i++ {
		var length uint32
		if obfuscation&recObfuscationU16FrameLengths != 0 {
			v, err := ioreader.ReadUint[uint16](r)
			if err != nil {
				return nil, rerr.Invalid("format.RecReader.Read", "frame %d length: %v", i, err)
			}
			length = uint32(v)
		} else {
			v, err := ioreader.ReadUint[uint32](r)
			if err != nil {
				return nil, rerr.Invalid("format.RecReader.Read", "frame %d length: %v", i, err)
			}
			length = v
		}
		if length > recMaxFrameSize {
			return nil, rerr.Invalid("format.RecReader.Read", "frame %d length %d out of bounds", i, length)
		}

		timestamp, err := ioreader.ReadUint[uint32](r)
		if err != nil {
			return nil, rerr.Invalid("format.RecReader.Read", "frame %d timestamp: %v", i, err)
		}

		cipherData, err := r.Bytes(int(length))
		if err != nil {
			return nil, rerr.Invalid("format.RecReader.Read", "frame %d data: %v", i, err)
		}

		plain, err := recDeobfuscateFrame(cipherData, timestamp, length, obfuscation, block)
		if err != nil {
			return nil, rerr.Invalid("format.RecReader.Read", "frame %d deobfuscate: %v", i, err)
		}

		if err := dmx.Submit(timestamp, plain); err != nil {
			return nil, rerr.Invalid("format.RecReader.Read", "frame %d demux: %v", i, err)
		}

		if obfuscation&recObfuscationChecksum != 0 {
			if err := r.Skip(4); err != nil {
				return nil, rerr.Invalid("format.RecReader.Read", "frame %d checksum: %v", i, err)
			}
		}
	}

	return containerFrom(dmx)
}

// recTwirl reverses the rolling additive mask applied on top of (optional)
// AES encryption, an exact port of the upstream twirl arithmetic: each byte
// has subtracted from it an offset derived from a key that advances by 33 per position, folded through a
// divisor that is either a power of two (masked) or not (modulo, with an
// odd/even correction matching the C sign-behaviour of alpha>>7).
func recTwirl(data []byte, timestamp, length uint32, divisor recObfuscation) {
	if divisor == 0 {
		return
	}
	d := uint32(divisor)
	key := length + timestamp + 2

	for i := range data {
		alpha := (key + uint32(i)*33) & 0xFF
		var beta uint32
		if d&(d-1) == 0 {
			beta = alpha & (d - 1)
		} else {
			beta = (alpha - (alpha >> 7)) % d
		}
		offset := alpha
		if beta != 0 {
			offset += d - beta
		}
		data[i] -= byte(offset)
	}
}

// recDeobfuscateFrame undoes the twirl mask, then AES-256-ECB decrypts if
// the container version calls for it, returning the plaintext payload.
func recDeobfuscateFrame(cipherData []byte, timestamp, length uint32, obfuscation recObfuscation, block cipher.Block) ([]byte, error) {
	divisor := obfuscation & recObfuscationDivisorMask
	recTwirl(cipherData, timestamp, length, divisor)

	if obfuscation&recObfuscationAESData == 0 {
		return cipherData, nil
	}

	if len(cipherData)%aes.BlockSize != 0 {
		return nil, rerr.Invalid("format.recDeobfuscateFrame", "frame not block-aligned (%d bytes)", len(cipherData))
	}

	plain := make([]byte, len(cipherData))
	for off := 0; off < len(cipherData); off += aes.BlockSize {
		block.Decrypt(plain[off:off+aes.BlockSize], cipherData[off:off+aes.BlockSize])
	}

	plain = recUnpadPKCS7(plain)
	return plain, nil
}

// recUnpadPKCS7 strips PKCS#7 padding, matching EVP's default ECB padding
// behaviour on the final decrypted block. A malformed or absent pad is
// tolerated by returning the buffer unchanged, since the final block may
// coincidentally already look unpadded in obfuscation-only recordings.
func recUnpadPKCS7(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	pad := int(data[len(data)-1])
	if pad <= 0 || pad > aes.BlockSize || pad > len(data) {
		return data
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return data
		}
	}
	return data[:len(data)-pad]
}
