package format

import (
	"path/filepath"
	"strings"

	"github.com/tibiacast/tibiarc-sub000/internal/rerr"
)

// extensionKinds maps each recognised file extension to its container
// kind; consulted only once magic-byte sniffing comes up empty.
var extensionKinds = map[string]Kind{
	".cam":       KindCam,
	".rec":       KindRec,
	".recording": KindTibiacast,
	".tmv":       KindTmv1,
	".tmv2":      KindTmv2,
	".trp":       KindTrp,
	".ttm":       KindTtm,
	".yatc":      KindYatc,
}

// Detect picks a container Kind for data/name, magic bytes first, then
// file extension (§6 "the reader picks by magic first then file
// extension"). name may be a bare filename; only its extension is used.
func Detect(data []byte, name string) (Kind, error) {
	if len(data) >= 4 {
		magic32 := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		if magic32 == tmv2Magic {
			return KindTmv2, nil
		}
		if data[0] == 'T' && data[1] == 'R' && data[2] == 'P' && data[3] == 0 {
			return KindTrp, nil
		}
	}
	if len(data) >= 2 {
		magic16 := uint16(data[0]) | uint16(data[1])<<8
		if magic16 == trpMagic {
			return KindTrp, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(name))
	if kind, ok := extensionKinds[ext]; ok {
		return kind, nil
	}
	return 0, rerr.Invalid("format.Detect", "no magic or extension match for %q", name)
}
