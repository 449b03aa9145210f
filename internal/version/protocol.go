package version

// Protocol is the set of boolean capabilities that gate individual field
// reads in the parser. The parser must never infer a version threshold
// itself; every gate is one of these fields, computed once by New.
type Protocol struct {
	AddObjectStackPosition bool
	BugReporting           bool
	CancelAttackId         bool
	CapacityU32            bool
	ChannelParticipants    bool
	ContainerIndexU16      bool
	ContainerPagination    bool
	CreatureMarks          bool
	CreatureSpeedPadding   bool
	CreatureTypes          bool
	EnvironmentalEffects   bool
	ExperienceBonus        bool
	ExperienceU64          bool
	ExpertMode             bool
	ExtendedDeathDialog    bool
	ExtendedVIPData        bool
	IconsU16               bool
	ItemAnimation          bool
	ItemMarks              bool
	LevelU16               bool
	LoyaltyBonus           bool
	MaxCapacity            bool
	MessageEffects         bool
	Mounts                 bool
	MoveDeniedDirection    bool
	NPCCategory            bool
	NPCVendorItemCountU16  bool
	NPCVendorName          bool
	NPCVendorWeight        bool
	NullObjects            bool
	OfflineStamina         bool
	OutfitAddons           bool
	OutfitCountU16         bool
	OutfitNames            bool
	OutfitsU16             bool
	GuildPartyChannelId    bool
	PassableCreatures      bool
	PassableCreatureUpdate bool
	PlayerHunger           bool
	PlayerMoneyU64         bool
	PlayerSpeed            bool
	PremiumUntil           bool
	PreviewByte            bool
	PvPFraming             bool
	RawEffectIds           bool
	ReportMessages         bool
	RuneChargeCount        bool
	ShieldIcon             bool
	SinglePvPHelper        bool
	SkillBonuses           bool
	SkillPercentages       bool
	// SkillsU16 implies LoyaltyBonus and SkillPercentages.
	SkillsU16                    bool
	SkillsUnknownPadding         bool
	SkullIcon                    bool
	SoulPoints                   bool
	SpeakerLevel                 bool
	SpeedAdjustment              bool
	Stamina                      bool
	TextEditAuthorName           bool
	TextEditDate                 bool
	TextEditObject               bool
	TibiacastBuggedInitialization bool
	UnfairFightReduction         bool
	WarIcon                      bool
}

// Features describes the asset-file grammar (sprites/pictures/entity
// types), distinct from Protocol which describes the wire protocol.
type Features struct {
	CapacityDivisor int

	AnimationPhases bool
	FrameGroups     bool
	IconBar         bool
	ModernStacking  bool
	SpriteIndexU32  bool
	TypeZDiv        bool
}
