package version

// initUnifiedMessageTypes reproduces InitUnifiedMessageTypes, shared by
// speak and message tables from 9.00 onward.
func (p *Profile) initUnifiedMessageTypes(t *table[MessageMode]) {
	t.Insert(1, ModeSay)
	t.Insert(2, ModeWhisper)
	t.Insert(3, ModeYell)
	t.Insert(4, ModePrivateIn)
	t.Insert(5, ModePrivateOut)
	t.Insert(6, ModeChannelWhite)
	t.Insert(7, ModeChannelWhite)
	t.Insert(8, ModeChannelWhite)
	t.Insert(9, ModeSpell)
	t.Insert(10, ModeNPCStart)
	t.Insert(11, ModePlayerToNPC)
	t.Insert(12, ModeBroadcast)
	t.Insert(13, ModeChannelRed)
	t.Insert(14, ModeGMToPlayer)
	t.Insert(15, ModePlayerToGM)
	t.Insert(16, ModeLogin)
	t.Insert(17, ModeWarning)
	t.Insert(18, ModeGame)
	t.Insert(19, ModeFailure)
	t.Insert(20, ModeLook)
	t.Insert(21, ModeDamageDealt)
	t.Insert(22, ModeDamageReceived)
	t.Insert(23, ModeHealing)
	t.Insert(24, ModeExperience)
	t.Insert(25, ModeDamageReceivedOthers)
	t.Insert(26, ModeHealingOthers)
	t.Insert(27, ModeExperienceOthers)
	t.Insert(28, ModeStatus)
	t.Insert(29, ModeLoot)
	t.Insert(30, ModeNPCTrade)
	t.Insert(31, ModeGuild)
	t.Insert(32, ModePartyWhite)
	t.Insert(33, ModeParty)
	t.Insert(34, ModeMonsterSay)
	t.Insert(35, ModeMonsterYell)
	t.Insert(36, ModeReport)
	t.Insert(37, ModeHotkey)
	t.Insert(38, ModeTutorial)
	t.Insert(39, ModeThankYou)
	t.Insert(40, ModeMarket)
	t.Insert(41, ModeMana)

	if p.AtLeast(10, 36) {
		t.Insert(11, ModePlayerToNPC, int(ModeNPCContinued))
	}

	if p.AtLeast(10, 54) {
		t.Insert(29, ModeFailure, int(ModeGame))
	}
}

// initMessageTypes reproduces InitMessageTypes: the 0xB4 text-message
// table. At 9.00+ it is identical to the speak table.
func (p *Profile) initMessageTypes() {
	t := newTable[MessageMode]()
	p.messageModes = t

	if p.AtLeast(9, 0) {
		p.initUnifiedMessageTypes(t)
		return
	}

	// 7.11 baseline.
	t.Insert(14, ModeConsoleOrange)
	t.Insert(15, ModeBroadcast)
	t.Insert(16, ModeGame)
	t.Insert(17, ModeLogin)
	t.Insert(18, ModeStatus)
	t.Insert(19, ModeLook)
	t.Insert(20, ModeFailure)

	if p.AtLeast(7, 20) {
		t.Gap(0)
		t.Insert(17, ModeWarning, int(ModeGame))
	}

	if p.AtLeast(7, 24) {
		t.Gap(0)
	}

	if p.AtLeast(8, 20) {
		t.Insert(17, ModeConsoleRed, int(ModeBroadcast))
		t.Gap(18, int(ModeBroadcast))
	}

	if p.AtLeast(8, 40) {
		t.Insert(20, ModeConsoleOrange, int(ModeWarning))
	}

	if p.AtLeast(8, 61) {
		t.Remove(0)
		t.Remove(0)
		t.Remove(0)
		t.Remove(0)
		t.Remove(0)
		t.Remove(0)
		t.Insert(22, ModeWarning)
	}
}

// initSpeakTypes reproduces InitSpeakTypes: the 0xAA creature-speak
// table. At 9.00+ it is identical to the message table.
func (p *Profile) initSpeakTypes() {
	t := newTable[MessageMode]()
	p.speakModes = t

	if p.AtLeast(9, 0) {
		p.initUnifiedMessageTypes(t)
		return
	}

	// 7.11 baseline.
	t.Insert(1, ModeSay)
	t.Insert(2, ModeWhisper)
	t.Insert(3, ModeYell)
	t.Insert(4, ModePrivateIn)
	t.Insert(5, ModeChannelYellow)
	t.Insert(6, ModeRuleViolationChannel)
	t.Insert(7, ModeRuleViolationAnswer)
	t.Insert(8, ModeRuleViolationContinue)
	t.Insert(9, ModeBroadcast)
	t.Insert(10, ModeChannelRed)
	t.Insert(11, ModeGMToPlayer)
	t.Insert(12, ModeChannelAnonymousRed)
	t.Insert(13, ModeMonsterSay)
	t.Insert(14, ModeMonsterYell)

	if p.AtLeast(7, 20) {
		t.Insert(12, ModeChannelOrange, int(ModeChannelAnonymousRed))
		t.Gap(13, int(ModeChannelAnonymousRed))
	}

	if p.AtLeast(7, 23) {
		t.Gap(15, int(ModeMonsterSay))
	}

	if p.AtLeast(8, 20) {
		t.Insert(4, ModePlayerToNPC, int(ModePrivateIn))
		t.Insert(5, ModeNPCStart, int(ModePrivateIn))
	}

	if p.AtLeast(8, 40) {
		t.Insert(8, ModeChannelWhite, int(ModeRuleViolationChannel))
	}

	if p.AtLeast(8, 61) {
		t.Remove(9, int(ModeRuleViolationChannel))
		t.Remove(9, int(ModeRuleViolationAnswer))
		t.Remove(9, int(ModeRuleViolationContinue))

		t.Remove(13)
		t.Remove(13, int(ModeChannelAnonymousRed))
		t.Remove(13)
	}
}
