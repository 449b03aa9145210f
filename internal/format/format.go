// Package format implements the eight recording container readers
// (Cam, Rec, Tibiacast, Tmv1, Tmv2, Trp, Ttm, Yatc). Each shares the
// contract: QueryVersion inspects a reader without consuming it for
// parsing purposes, Read decrypts/decompresses and feeds the demuxer to
// produce a normalised, timestamp-sorted Container.
package format

import (
	"sort"

	"github.com/tibiacast/tibiarc-sub000/internal/demux"
	"github.com/tibiacast/tibiarc-sub000/internal/ioreader"
	"github.com/tibiacast/tibiarc-sub000/internal/recording"
	"github.com/tibiacast/tibiarc-sub000/internal/version"
)

// Kind identifies one of the eight supported container formats.
type Kind int

const (
	KindCam Kind = iota
	KindRec
	KindTibiacast
	KindTmv1
	KindTmv2
	KindTrp
	KindTtm
	KindYatc
)

// Container is the un-parsed result of reading a container: a
// timestamp-sorted list of raw payloads plus the container's own
// reported runtime. Parsing payloads into events is the parser
// package's job, kept out of format so format stays independent of any
// particular protocol version's opcode grammar.
type Container struct {
	Runtime uint32
	Frames  []recording.RawFrame
}

// Reader is implemented by each of the eight format packages in this
// directory; there is deliberately no runtime polymorphism beyond this
// one small interface, dispatched by callers that already know the
// container kind (from magic bytes or file extension).
type Reader interface {
	QueryVersion(r *ioreader.Reader) (version.Triplet, error)
	Read(r *ioreader.Reader) (*Container, error)
}

// sortFrames orders raw demuxed packets by timestamp, the contract every
// reader's Read must honour before returning.
func sortFrames(packets []demux.Packet) {
	sort.SliceStable(packets, func(i, j int) bool {
		return packets[i].Timestamp < packets[j].Timestamp
	})
}

// rawFramesFrom converts demuxed packets into recording.RawFrame values.
func rawFramesFrom(packets []demux.Packet) []recording.RawFrame {
	out := make([]recording.RawFrame, len(packets))
	for i, p := range packets {
		out[i] = recording.RawFrame{Timestamp: p.Timestamp, Payload: p.Payload}
	}
	return out
}

// containerFrom finishes dmx and wraps its output as a Container,
// re-sorting packets by timestamp first since some containers (Rec,
// Tibiacast) interleave out-of-order corrective frames.
func containerFrom(dmx *demux.Demuxer) (*Container, error) {
	packets, runtime, err := dmx.Finish()
	if err != nil {
		return nil, err
	}
	sortFrames(packets)
	return &Container{Runtime: runtime, Frames: rawFramesFrom(packets)}, nil
}
