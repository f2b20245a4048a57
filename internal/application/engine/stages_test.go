package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

func runThrough(r entities.PatientResponses, stages ...Stage) State {
	return Pipeline(stages).Run(r)
}

func TestCheckSafety_IndependentFlags(t *testing.T) {
	c := CheckSafety(entities.PatientResponses{Eye: true, Drug: true, Assistant: true, Implant: true})

	assert.False(t, c.CanUseFullFace)
	assert.False(t, c.CanUseMagnetic)
	assert.True(t, c.RequiresEasyRemoval)
	require.Len(t, c.SafetyFlags, 3)
	assert.Equal(t, "Full face contraindicated - aspiration risk", c.SafetyFlags[0].Message)
	assert.Equal(t, "MAGNETIC_OR_EASY_REMOVAL", c.SafetyFlags[1].Requirement)
	assert.Equal(t, entities.SeverityModerate, c.SafetyFlags[2].Severity)
}

func TestCheckSafety_NoFlags(t *testing.T) {
	c := CheckSafety(entities.PatientResponses{})

	assert.True(t, c.CanUseFullFace)
	assert.True(t, c.CanUseMagnetic)
	assert.False(t, c.RequiresEasyRemoval)
	assert.Empty(t, c.SafetyFlags)
}

func TestSelectCategory_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		r        entities.PatientResponses
		category entities.MaskCategory
		rate     string
	}{
		{"nose only unknown nasal", entities.PatientResponses{Breathing: entities.BreathingNoseOnly}, entities.CategoryNasalMask, "85-90%"},
		{"nose only with allergies", entities.PatientResponses{Breathing: entities.BreathingNoseOnly, Nasal: entities.NasalSeasonalAllergies}, "", ""},
		{"mouth only", entities.PatientResponses{Breathing: entities.BreathingMouthOnly}, entities.CategoryFullFace, "80-85%"},
		{"mouth only with drug", entities.PatientResponses{Breathing: entities.BreathingMouthOnly, Drug: true}, entities.CategoryNasalMask, "60-70%"},
		{"mixed", entities.PatientResponses{Breathing: entities.BreathingMixed}, entities.CategoryFullFace, "75-85%"},
		{"mixed with eye", entities.PatientResponses{Breathing: entities.BreathingMixed, Eye: true}, entities.CategoryNasalMask, "70-80%"},
		{"severe obstruction overrides", entities.PatientResponses{Breathing: entities.BreathingNoseOnly, Nasal: entities.NasalSevereObstruction}, entities.CategoryFullFace, "80-85%"},
		{"severe obstruction blocked by eye", entities.PatientResponses{Nasal: entities.NasalSevereObstruction, Eye: true}, "", ""},
		{"deviated septum keeps rate", entities.PatientResponses{Breathing: entities.BreathingMixed, Nasal: entities.NasalDeviatedSeptum}, entities.CategoryFullFace, "75-85%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runThrough(tt.r, EvaluateSafety, SelectCategory)
			assert.Equal(t, tt.category, s.Mask.Category)
			assert.Equal(t, tt.rate, s.Mask.SuccessRate)
		})
	}
}

func TestSelectCategory_MildObstructionNoteOnlyForNasalMask(t *testing.T) {
	s := runThrough(entities.PatientResponses{Breathing: entities.BreathingMouthOnly, Eye: true, Nasal: entities.NasalMildObstruction}, EvaluateSafety, SelectCategory)
	assert.Contains(t, s.Mask.Notes, "Mild obstruction - consider dual approach or full face")

	s = runThrough(entities.PatientResponses{Breathing: entities.BreathingMixed, Nasal: entities.NasalMildObstruction}, EvaluateSafety, SelectCategory)
	assert.NotContains(t, s.Mask.Notes, "Mild obstruction - consider dual approach or full face")
}

func TestStages_DoNotMutateInput(t *testing.T) {
	r := entities.PatientResponses{Breathing: entities.BreathingNoseOnly, Claustrophobic: true, SkinSensitivity: true}
	before := runThrough(r, EvaluateSafety, SelectCategory)
	snapshot := before.clone()

	after := ApplyStrongModifiers(before, r)
	after = ApplyModerateModifiers(after, r)

	assert.Equal(t, snapshot, before)
	assert.Equal(t, entities.CategoryNasalPillows, after.Mask.Category)
}

func TestApplyStrongModifiers_LastWriteWins(t *testing.T) {
	r := entities.PatientResponses{
		Breathing:      entities.BreathingNoseOnly,
		Claustrophobic: true,
		FacialHair:     true,
		SleepPosition:  entities.SleepStomach,
	}
	s := runThrough(r, EvaluateSafety, SelectCategory, ApplyStrongModifiers)

	assert.Equal(t, entities.CategoryNasalPillows, s.Mask.Category)
	assert.Equal(t, menu(entities.CategoryNasalPillows, MenuTubeUp), s.Mask.SpecificModels)
	require.Len(t, s.ModificationNotes, 2)
	assert.Equal(t, "Claustrophobic", s.ModificationNotes[0].Factor)
	assert.Equal(t, "Sleep Position", s.ModificationNotes[1].Factor)
	assert.Equal(t, "stomach sleepers benefit from top-of-head tubing (pillow-friendly)", s.ModificationNotes[1].Rationale)
}

func TestApplyStrongModifiers_ClaustrophobicFullFace(t *testing.T) {
	s := runThrough(entities.PatientResponses{Breathing: entities.BreathingMouthOnly, Claustrophobic: true}, EvaluateSafety, SelectCategory, ApplyStrongModifiers)

	assert.Equal(t, entities.CategoryFullFace, s.Mask.Category)
	assert.Equal(t, menu(entities.CategoryFullFace, MenuClaustrophobic), s.Mask.SpecificModels)
	require.Len(t, s.ModificationNotes, 1)
	assert.NotEmpty(t, s.ModificationNotes[0].Warning)
}

func TestApplyStrongModifiers_SittingWarning(t *testing.T) {
	s := runThrough(entities.PatientResponses{SleepPosition: entities.SleepSitting}, EvaluateSafety, SelectCategory, ApplyStrongModifiers)

	require.Len(t, s.ModificationNotes, 1)
	assert.Equal(t, "Consider evaluation for underlying sleep disorder (CHF, COPD)", s.ModificationNotes[0].Warning)
}

func TestApplyModerateModifiers_MovementAlternative(t *testing.T) {
	s := runThrough(entities.PatientResponses{Breathing: entities.BreathingNoseOnly, SleepMovement: entities.MovementAllTheTime}, DefaultPipeline()[:4]...)

	assert.Equal(t, entities.CategoryNasalMask, s.Mask.Category)
	assert.Equal(t, entities.CategoryNasalPillows, s.Mask.AlternativeCategory)
	assert.Equal(t, []string{"ResMed AirFit P10", "ResMed AirFit P30i"}, s.Mask.AlternativeModels)
	assert.Equal(t, AttachmentEnhancedHeadgear, s.Mask.AttachmentRequirement)
	assert.Len(t, s.RefinementNotes, 2)
}

func TestApplyModerateModifiers_SkinSensitivityRequiresCategory(t *testing.T) {
	s := runThrough(entities.PatientResponses{SkinSensitivity: true}, DefaultPipeline()[:4]...)
	assert.Empty(t, s.Mask.RequiredAccessories)
	assert.Empty(t, s.RefinementNotes)

	s = runThrough(entities.PatientResponses{Breathing: entities.BreathingMixed, SkinSensitivity: true}, DefaultPipeline()[:4]...)
	assert.Equal(t, menu(entities.CategoryFullFace, MenuSkinFriendly), s.Mask.SpecificModels)
	assert.Equal(t, skinFriendlyAccessories, s.Mask.RequiredAccessories)
}

func TestApplyModerateModifiers_AdjustmentAndAssistantInteraction(t *testing.T) {
	s := runThrough(entities.PatientResponses{Adjustment: true, Assistant: true}, DefaultPipeline()[:4]...)

	assert.Equal(t, AttachmentAutoAdjusting, s.Mask.AttachmentPreference)
	assert.Equal(t, DesignSimplified, s.Mask.DesignPreference)
	require.Len(t, s.RefinementNotes, 2)
	assert.True(t, s.RefinementNotes[1].Interaction)
	assert.Equal(t, "CRITICAL", s.RefinementNotes[1].Priority)

	s = runThrough(entities.PatientResponses{Adjustment: true}, DefaultPipeline()[:4]...)
	assert.Len(t, s.RefinementNotes, 1)
}

func TestRankAttachments_Scores(t *testing.T) {
	tests := []struct {
		name     string
		r        entities.PatientResponses
		kind     string
		score    int
		category entities.MaskCategory
	}{
		{"assistant magnetic", entities.PatientResponses{Assistant: true}, AttachmentMagneticQuickRelease, 100, ""},
		{"adjustment magnetic", entities.PatientResponses{Adjustment: true}, AttachmentMagneticQuickRelease, 90, ""},
		{"default magnetic", entities.PatientResponses{}, AttachmentMagneticQuickRelease, 70, ""},
		{"implant magnetic", entities.PatientResponses{Adjustment: true, Implant: true}, AttachmentMagneticQuickRelease, 0, ""},
		{"adjustment auto", entities.PatientResponses{Adjustment: true}, AttachmentAutoAdjustingHeadgear, 90, ""},
		{"high movement", entities.PatientResponses{SleepMovement: entities.MovementAllTheTime}, AttachmentEnhanced4Point, 85, ""},
		{"some movement", entities.PatientResponses{SleepMovement: entities.MovementSome}, AttachmentEnhanced4Point, 70, ""},
		{"side sleeper", entities.PatientResponses{SleepPosition: entities.SleepSide}, AttachmentOverTheHead, 75, ""},
		{"facial hair", entities.PatientResponses{FacialHair: true}, AttachmentHaloStyle, 80, ""},
		{"full face standard", entities.PatientResponses{}, AttachmentStandard4Point, 60, entities.CategoryFullFace},
		{"nasal standard", entities.PatientResponses{}, AttachmentStandardElastic, 60, entities.CategoryNasalPillows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := RankAttachments(tt.category, tt.r)
			require.Len(t, options, AttachmentCandidateCount)
			option, ok := findAttachment(options, tt.kind)
			require.True(t, ok)
			assert.Equal(t, tt.score, option.Score)
		})
	}
}

func TestRankAttachments_TiesKeepDeclarationOrder(t *testing.T) {
	options := RankAttachments(entities.CategoryNasalMask, entities.PatientResponses{})

	types := make([]string, 0, len(options))
	for _, o := range options {
		types = append(types, o.Type)
	}
	assert.Equal(t, []string{
		AttachmentMagneticQuickRelease,
		AttachmentAutoAdjustingHeadgear,
		AttachmentStandardElastic,
		AttachmentEnhanced4Point,
		AttachmentOverTheHead,
		AttachmentHaloStyle,
	}, types)
}

func TestSelectAccessories_Humidifier(t *testing.T) {
	s := SelectAccessories(State{}, entities.PatientResponses{Nasal: entities.NasalSeasonalAllergies})
	require.Len(t, s.Accessories, 1)
	assert.Equal(t, "Reduces nasal congestion", s.Accessories[0].Justification)

	s = SelectAccessories(State{}, entities.PatientResponses{Breathing: entities.BreathingMouthOnly, Nasal: entities.NasalSeasonalAllergies})
	require.Len(t, s.Accessories, 1)
	assert.Equal(t, "Mouth breathing causes severe dryness", s.Accessories[0].Justification)
	assert.Equal(t, entities.PriorityEssential, s.Accessories[0].Priority)
}

func TestSelectAccessories_FabricCoverGuard(t *testing.T) {
	s := SelectAccessories(State{}, entities.PatientResponses{FacialHair: true})
	require.Len(t, s.Accessories, 1)
	assert.Equal(t, 85, s.Accessories[0].Weight)

	s = SelectAccessories(State{}, entities.PatientResponses{FacialHair: true, SkinSensitivity: true})
	require.Len(t, s.Accessories, 3)
	assert.Equal(t, "Fabric Cushion Covers", s.Accessories[2].Item)
	assert.Equal(t, 80, s.Accessories[2].Weight)
}

func TestSelectAccessories_MouthTapeCarriesSafetyNote(t *testing.T) {
	s := SelectAccessories(State{}, entities.PatientResponses{Breathing: entities.BreathingMixed})
	require.Len(t, s.Accessories, 2)
	assert.Equal(t, AccessoryMouthTape, s.Accessories[1].Item)
	assert.NotEmpty(t, s.Accessories[1].SafetyNote)

	s = SelectAccessories(State{}, entities.PatientResponses{Breathing: entities.BreathingMixed, Drug: true})
	assert.Len(t, s.Accessories, 1)
}

func TestMergeAccessories_RequiredWinsAndDedupes(t *testing.T) {
	selected := []entities.AccessoryRecommendation{
		{Item: AccessoryHumidifier, Priority: entities.PriorityEssential, Weight: 100},
		{Item: "Fabric Cushion Covers", Priority: entities.PriorityRecommended, Weight: 80},
	}
	merged := MergeAccessories([]string{"Fabric Cushion Covers", "Fabric Cushion Covers"}, selected)

	require.Len(t, merged, 2)
	assert.Equal(t, AccessoryHumidifier, merged[0].Item)
	assert.Equal(t, entities.PriorityRequired, merged[1].Priority)
	assert.Equal(t, 95, merged[1].Weight)
}

func TestModels_ReturnsCopies(t *testing.T) {
	models, ok := Models(entities.CategoryNasalPillows, MenuClaustrophobic)
	require.True(t, ok)
	models[0] = "changed"

	again, _ := Models(entities.CategoryNasalPillows, MenuClaustrophobic)
	assert.Equal(t, "ResMed AirFit P10", again[0])

	_, ok = Models(entities.CategoryNasalPillows, MenuChinStrap)
	assert.False(t, ok)
}
