package engine

import (
	"sort"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
)

const (
	AttachmentMagneticQuickRelease  = "Magnetic Quick-Release"
	AttachmentAutoAdjustingHeadgear = "Auto-Adjusting Headgear"
	AttachmentEnhanced4Point        = "Enhanced 4-Point Headgear"
	AttachmentOverTheHead           = "Over-the-Head Headgear"
	AttachmentHaloStyle             = "Halo-Style Headgear"
	AttachmentStandard4Point        = "Standard 4-Point Headgear"
	AttachmentStandardElastic       = "Standard Elastic Headgear"

	// AttachmentCandidateCount is the size of the fixed candidate menu
	AttachmentCandidateCount = 6
)

// RankAttachments scores every candidate and sorts them by score descending.
// Equal scores keep declaration order.
func RankAttachments(category entities.MaskCategory, r entities.PatientResponses) []entities.AttachmentOption {
	options := []entities.AttachmentOption{
		scoreMagnetic(r),
		scoreAutoAdjusting(r),
		scoreEnhanced(r),
		scoreOverTheHead(r),
		scoreHalo(r),
		standardHeadgear(category),
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})
	return options
}

// ScoreAttachments is stage 5
func ScoreAttachments(s State, r entities.PatientResponses) State {
	next := s.clone()
	next.Attachments = RankAttachments(next.Mask.Category, r)

	if r.FacialHair {
		next.influence(entities.BucketAttachment, "facialHair", "true", "Halo-style headgear helps the seal over facial hair")
	}
	if r.SleepPosition.IsSideOrStomach() {
		next.influence(entities.BucketAttachment, "sleepPosition", string(r.SleepPosition), "Over-the-head headgear suits side/stomach sleepers")
	}
	if r.SleepMovement == entities.MovementSome {
		next.influence(entities.BucketAttachment, "sleepMovement", string(r.SleepMovement), "Some movement raises the enhanced 4-point headgear score")
	}
	return next
}

func scoreMagnetic(r entities.PatientResponses) entities.AttachmentOption {
	option := entities.AttachmentOption{Type: AttachmentMagneticQuickRelease}

	switch {
	case r.Assistant && !r.Implant:
		option.Score = 100
	case r.Adjustment && !r.Implant:
		option.Score = 90
	case r.Implant:
		option.Score = 0
	default:
		option.Score = 70
	}

	switch {
	case r.Implant:
		option.Justification = "CONTRAINDICATED (implants)"
	case r.Assistant:
		option.Justification = "REQUIRED for easy removal"
	case r.Adjustment:
		option.Justification = "Ideal for adjustment issues"
	default:
		option.Justification = "Optional"
	}
	return option
}

func scoreAutoAdjusting(r entities.PatientResponses) entities.AttachmentOption {
	if r.Adjustment {
		return entities.AttachmentOption{Type: AttachmentAutoAdjustingHeadgear, Score: 90, Justification: "HIGHLY RECOMMENDED for dexterity issues"}
	}
	return entities.AttachmentOption{Type: AttachmentAutoAdjustingHeadgear, Score: 60, Justification: "Beneficial"}
}

func scoreEnhanced(r entities.PatientResponses) entities.AttachmentOption {
	switch r.SleepMovement {
	case entities.MovementAllTheTime:
		return entities.AttachmentOption{Type: AttachmentEnhanced4Point, Score: 85, Justification: "REQUIRED for seal stability"}
	case entities.MovementSome:
		return entities.AttachmentOption{Type: AttachmentEnhanced4Point, Score: 70, Justification: "Helps seal stability with some movement"}
	}
	return entities.AttachmentOption{Type: AttachmentEnhanced4Point, Score: 50, Justification: "Optional"}
}

func scoreOverTheHead(r entities.PatientResponses) entities.AttachmentOption {
	if r.SleepPosition.IsSideOrStomach() {
		return entities.AttachmentOption{Type: AttachmentOverTheHead, Score: 75, Justification: "RECOMMENDED for side/stomach sleepers"}
	}
	return entities.AttachmentOption{Type: AttachmentOverTheHead, Score: 50, Justification: "Optional"}
}

func scoreHalo(r entities.PatientResponses) entities.AttachmentOption {
	if r.FacialHair {
		return entities.AttachmentOption{Type: AttachmentHaloStyle, Score: 80, Justification: "RECOMMENDED for facial hair seal"}
	}
	return entities.AttachmentOption{Type: AttachmentHaloStyle, Score: 50, Justification: "Optional"}
}

func standardHeadgear(category entities.MaskCategory) entities.AttachmentOption {
	if category == entities.CategoryFullFace {
		return entities.AttachmentOption{Type: AttachmentStandard4Point, Score: 60, Justification: "Default for full face"}
	}
	return entities.AttachmentOption{Type: AttachmentStandardElastic, Score: 60, Justification: "Default for nasal masks"}
}
