package version

// initProtocol reproduces VersionBase::InitProtocol verbatim, including
// the upstream's own "HAZY" annotation: several flags gated on 9.0 are
// catch-alls for capabilities that appeared somewhere in 8.55-9.32 but
// were never precisely dated (see DESIGN.md).
func (p *Profile) initProtocol() {
	pr := &p.Protocol

	if p.AtLeast(7, 20) {
		pr.BugReporting = true
		pr.SkullIcon = true
	}
	if p.AtLeast(7, 24) {
		pr.ShieldIcon = true
	}
	if p.AtLeast(7, 40) {
		pr.MoveDeniedDirection = true
		pr.SkillPercentages = true
	}
	if p.AtLeast(7, 50) {
		pr.SoulPoints = true
	}
	if p.AtLeast(7, 55) {
		pr.RawEffectIds = true
	}
	if p.AtLeast(7, 60) {
		pr.TextEditAuthorName = true
		pr.LevelU16 = true
	}
	if p.AtLeast(7, 70) {
		pr.ReportMessages = true
		pr.OutfitsU16 = true
	}
	if p.AtLeast(7, 80) {
		pr.RuneChargeCount = true
		pr.OutfitAddons = true
		pr.Stamina = true
		pr.SpeakerLevel = true
		pr.IconsU16 = true
	}
	if p.AtLeast(7, 90) {
		pr.TextEditDate = true
		pr.OutfitNames = true
	}
	if p.AtLeast(8, 30) {
		pr.NPCVendorWeight = true
		pr.CapacityU32 = true
	}
	if p.AtLeast(8, 41) {
		pr.AddObjectStackPosition = true
	}
	if p.AtLeast(8, 42) {
		pr.TextEditObject = true
	}
	if p.AtLeast(8, 53) {
		pr.PassableCreatures = true
	}
	if p.AtLeast(8, 54) {
		pr.WarIcon = true
	}
	if p.AtLeast(8, 60) {
		pr.CancelAttackId = true
	}
	if p.AtLeast(8, 70) {
		pr.Mounts = true
	}

	// HAZY: catch-all for properties of unknown versions between 8.55
	// and 9.32, reproduced verbatim from upstream.
	if p.AtLeast(9, 0) {
		pr.CancelAttackId = true
		pr.EnvironmentalEffects = true
		pr.MaxCapacity = true
		pr.ExperienceU64 = true
		pr.PlayerSpeed = true
		pr.PlayerHunger = true
		pr.ItemAnimation = true
		pr.NPCVendorName = true
		pr.MessageEffects = true
		pr.ChannelParticipants = true

		pr.SpeedAdjustment = true
		pr.CreatureTypes = true
		pr.SkillBonuses = true
	}

	if p.AtLeast(9, 32) {
		pr.NPCVendorItemCountU16 = true
	}
	if p.AtLeast(9, 54) {
		pr.OfflineStamina = true
		pr.PassableCreatureUpdate = true
	}
	if p.AtLeast(9, 62) {
		pr.ExtendedVIPData = true
	}
	if p.AtLeast(9, 72) {
		pr.PlayerMoneyU64 = true
		pr.ExtendedDeathDialog = true
	}
	if p.AtLeast(9, 83) {
		pr.ContainerIndexU16 = true
		pr.NullObjects = true
	}
	if p.AtLeast(9, 83, 1) {
		pr.PreviewByte = true
	}
	if p.AtLeast(9, 84) {
		pr.PreviewByte = true
		pr.ContainerPagination = true
	}
	if p.AtLeast(9, 85, 1) {
		pr.CreatureMarks = true
		pr.ItemMarks = true
	}
	if p.AtLeast(10, 36) {
		pr.NPCCategory = true
		pr.SinglePvPHelper = true
		pr.LoyaltyBonus = true
	}
	if p.AtLeast(10, 37) {
		pr.PremiumUntil = true
	}
	if p.AtLeast(10, 52, 1) {
		pr.PvPFraming = true
	}
	if p.AtLeast(10, 53, 1) {
		pr.ExperienceBonus = true
	}
	if p.AtLeast(10, 55) {
		pr.UnfairFightReduction = true
	}
	if p.AtLeast(10, 58) {
		pr.ExpertMode = true
	}
	if p.AtLeast(10, 59) {
		pr.CreatureSpeedPadding = true
	}
	if p.AtLeast(10, 65) {
		pr.GuildPartyChannelId = true
	}
	if p.AtLeast(10, 95) {
		pr.SkillsUnknownPadding = true
		pr.OutfitCountU16 = true
	}
}
