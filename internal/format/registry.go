package format

// readers maps each Kind to its Reader. Built once; never mutated after
// init, so it is safe for concurrent use without synchronisation.
var readers = map[Kind]Reader{
	KindCam:       CamReader{},
	KindRec:       RecReader{},
	KindTibiacast: TibiacastReader{},
	KindTmv1:      Tmv1Reader{},
	KindTmv2:      Tmv2Reader{},
	KindTrp:       TrpReader{},
	KindTtm:       TtmReader{},
	KindYatc:      YatcReader{},
}

// For looks up the Reader for kind; callers are expected to already know
// the container kind (from magic bytes or file extension) before calling.
func For(kind Kind) (Reader, bool) {
	r, ok := readers[kind]
	return r, ok
}
