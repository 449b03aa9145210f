package version

// initTypeProperties reproduces VersionBase::InitTypeProperties from the
// upstream source verbatim: a 7.00-7.30 baseline followed by an ordered
// sequence of version-gated edits. Thresholds and expected pre-state
// values are transcribed as given; do not "clean up" the ordering, the
// construction-time panics are the whole point of catching a transcription
// mistake early.
func (p *Profile) initTypeProperties() {
	t := newTable[TypeProperty]()
	p.typeProperties = t

	// 7.00 - 7.30 baseline.
	t.Insert(0, TypeGround)
	t.Insert(1, TypeClip)
	t.Insert(2, TypeBottom)
	t.Insert(3, TypeContainer)
	t.Insert(4, TypeStackable)
	t.Insert(5, TypeUsable)
	t.Insert(6, TypeForceUse)
	t.Insert(7, TypeWrite)
	t.Insert(8, TypeWriteOnce)
	t.Insert(9, TypeLiquidContainer)
	t.Insert(10, TypeLiquidPool)
	t.Insert(11, TypeBlocking)
	t.Insert(12, TypeUnmovable)
	t.Insert(13, TypeBlocking)
	t.Insert(14, TypeUnpathable)
	t.Insert(15, TypeTakeable)
	t.Insert(16, TypeLight)
	t.Insert(17, TypeDontHide)
	t.Insert(18, TypeBlocking)
	t.Insert(19, TypeHeight)
	t.Insert(20, TypeDisplacementLegacy)
	t.Gap(21)
	t.Insert(22, TypeAutomap)
	t.Insert(23, TypeRotate)
	t.Insert(24, TypeCorpse)
	t.Insert(25, TypeHangable)
	t.Insert(26, TypeUnknownU16)
	t.Insert(27, TypeHorizontal)
	t.Insert(28, TypeAnimateIdle)
	t.Insert(29, TypeLenshelp)

	if p.AtLeast(7, 40) {
		t.Replace(26, TypeVertical, int(TypeUnknownU16))
	}

	if p.AtLeast(7, 55) {
		t.Insert(3, TypeTop, int(TypeContainer))

		// ForceUse and Usable swap places.
		t.Replace(6, TypeForceUse, int(TypeUsable))
		t.Replace(7, TypeUsable, int(TypeForceUse))

		t.Replace(17, TypeHangable, int(TypeLight))
		t.Replace(18, TypeVertical, int(TypeDontHide))
		t.Replace(19, TypeHorizontal, int(TypeBlocking))
		t.Replace(20, TypeRotate, int(TypeHeight))
		t.Replace(21, TypeLight, int(TypeDisplacementLegacy))
		t.Replace(22, TypeDontHide)
		t.Replace(23, TypeTranslucent, int(TypeAutomap))
		t.Replace(24, TypeDisplacement, int(TypeRotate))
		t.Replace(25, TypeHeight, int(TypeCorpse))
		t.Replace(26, TypeRedrawNearbyTop, int(TypeHangable))
		t.Replace(27, TypeAnimateIdle, int(TypeVertical))
		t.Replace(28, TypeAutomap, int(TypeHorizontal))
		t.Replace(29, TypeLenshelp, int(TypeAnimateIdle))
		t.Insert(30, TypeWalkable, int(TypeLenshelp))
	}

	if p.AtLeast(7, 80) {
		t.Insert(8, TypeRune, int(TypeWrite))
		t.Insert(32, TypeLookThrough, int(TypeLenshelp))
	}

	if p.AtLeast(8, 60) {
		t.Remove(8, int(TypeRune))
	}

	// Upstream marks these thresholds as guesses; reproduced verbatim.
	if p.AtLeast(9, 80) {
		t.Insert(33, TypeMarketItem)
		t.Insert(34, TypeDefaultAction)
		t.Insert(35, TypeWrappable)
		t.Insert(36, TypeTopEffect)
	}

	if p.AtLeast(10, 10) {
		t.Insert(16, TypeNoMoveAnimation, int(TypeTakeable))
	}
}
