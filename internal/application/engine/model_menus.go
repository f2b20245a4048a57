package engine

import (
	"slices"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

// MenuModifier names the rule that selects a model menu
type MenuModifier string

const (
	MenuBaseline            MenuModifier = "baseline"
	MenuChinStrap           MenuModifier = "chin_strap"
	MenuClaustrophobic      MenuModifier = "claustrophobic"
	MenuFacialHair          MenuModifier = "facial_hair"
	MenuTubeUp              MenuModifier = "tube_up"
	MenuSkinFriendly        MenuModifier = "skin_friendly"
	MenuMovementAlternative MenuModifier = "movement_alternative"
)

type menuKey struct {
	category entities.MaskCategory
	modifier MenuModifier
}

var pillowModels = []string{
	"ResMed AirFit P10",
	"ResMed AirFit P30i",
	"Philips DreamWear Silicone Pillows",
}

var nasalTubeUpModels = []string{
	"ResMed AirFit P30i (tube-up)",
	"ResMed AirFit N30i (tube-up)",
	"Philips DreamWear Nasal (tube-up)",
	"Philips DreamWear Silicone Pillows (tube-up)",
}

var modelMenu = map[menuKey][]string{
	{entities.CategoryNasalMask, MenuBaseline}: {
		"ResMed AirFit N20",
		"ResMed AirFit N30i",
		"Philips DreamWear Nasal",
	},
	{entities.CategoryNasalMask, MenuChinStrap}: {
		"ResMed AirFit N20 + Chin Strap",
		"ResMed AirFit N30i + Chin Strap",
	},
	{entities.CategoryFullFace, MenuBaseline}: {
		"ResMed AirFit F20",
		"ResMed AirFit F30",
		"Philips DreamWear Full Face",
	},
	{entities.CategoryNasalPillows, MenuClaustrophobic}: pillowModels,
	{entities.CategoryFullFace, MenuClaustrophobic}: {
		"ResMed AirFit F40 (smallest)",
		"ResMed AirFit F30 (under-nose)",
		"Philips Amara View (open field of vision)",
	},
	{entities.CategoryNasalPillows, MenuFacialHair}: pillowModels,
	{entities.CategoryFullFace, MenuFacialHair}: {
		"Philips FitLife Total Face (best for facial hair)",
		"ResMed AirFit F20 + Fabric Liners",
		"Philips DreamWear Full Face + Liners",
	},
	{entities.CategoryNasalPillows, MenuTubeUp}: nasalTubeUpModels,
	{entities.CategoryNasalMask, MenuTubeUp}:    nasalTubeUpModels,
	{entities.CategoryFullFace, MenuTubeUp}: {
		"ResMed AirFit F30i (tube-up)",
		"Philips DreamWear Full Face (tube-up)",
	},
	{entities.CategoryNasalPillows, MenuSkinFriendly}: {
		"Philips DreamWear Silicone Pillows (soft silicone)",
		"ResMed AirFit P30i (soft pillows)",
	},
	{entities.CategoryNasalMask, MenuSkinFriendly}: {
		"ResMed AirTouch N30i (fabric-wrapped - BEST for sensitive skin)",
		"Philips DreamWear Gel Nasal (gel cushion)",
		"ResMed AirFit N30i (soft cradle design)",
	},
	{entities.CategoryFullFace, MenuSkinFriendly}: {
		"ResMed AirTouch F20 (memory foam cushion - BEST)",
		"Philips Amara Gel (gel cushion)",
		"ResMed AirFit F20 + Gel/Fabric liners",
	},
	{entities.CategoryNasalPillows, MenuMovementAlternative}: {
		"ResMed AirFit P10",
		"ResMed AirFit P30i",
	},
}

// Models returns a copy of the model menu for a category and modifier.
// The second result is false when no menu exists for the pair.
func Models(category entities.MaskCategory, modifier MenuModifier) ([]string, bool) {
	models, ok := modelMenu[menuKey{category: category, modifier: modifier}]
	if !ok {
		return nil, false
	}
	return slices.Clone(models), true
}

func menu(category entities.MaskCategory, modifier MenuModifier) []string {
	models, _ := Models(category, modifier)
	return models
}
