package version

// initFeatures reproduces VersionBase::InitFeatures verbatim.
func (p *Profile) initFeatures() {
	p.Features.CapacityDivisor = 1

	if p.AtLeast(7, 50) {
		p.Features.IconBar = true
	}
	if p.AtLeast(7, 55) {
		p.Features.TypeZDiv = true
	}
	if p.AtLeast(8, 30) {
		p.Features.CapacityDivisor = 100
	}
	if p.AtLeast(8, 53) {
		p.Features.ModernStacking = true
	}
	if p.AtLeast(9, 6) {
		p.Features.SpriteIndexU32 = true
	}
	if p.AtLeast(10, 50) {
		p.Features.AnimationPhases = true
	}
	if p.AtLeast(10, 57) {
		p.Features.FrameGroups = true
	}
}
