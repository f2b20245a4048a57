package entities

import "strings"

// MaskCategory is the top-level interface type
type MaskCategory string

const (
	CategoryNasalMask    MaskCategory = "NASAL_MASK"
	CategoryNasalPillows MaskCategory = "NASAL_PILLOWS"
	CategoryFullFace     MaskCategory = "FULL_FACE"
)

// Label returns the human-readable category name
func (c MaskCategory) Label() string {
	switch c {
	case CategoryNasalMask:
		return "Nasal Mask"
	case CategoryNasalPillows:
		return "Nasal Pillows"
	case CategoryFullFace:
		return "Full Face Mask"
	case "":
		return "Undetermined"
	}
	return string(c)
}

// IsValid checks if the category is one of the defined constants
func (c MaskCategory) IsValid() bool {
	switch c {
	case CategoryNasalMask, CategoryNasalPillows, CategoryFullFace:
		return true
	}
	return false
}

// Severity of a safety flag
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityModerate Severity = "MODERATE"
)

// SafetyFlag is a hard safety finding derived from the responses
type SafetyFlag struct {
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Restriction string   `json:"restriction,omitempty"`
	Requirement string   `json:"requirement,omitempty"`
}

// SafetyConstraints are the hard constraints computed before any category decision
type SafetyConstraints struct {
	CanUseFullFace      bool         `json:"canUseFullFace"`
	CanUseMagnetic      bool         `json:"canUseMagnetic"`
	RequiresEasyRemoval bool         `json:"requiresEasyRemoval"`
	SafetyFlags         []SafetyFlag `json:"safetyFlags"`
}

// MaskRecommendation is the mask decision as it evolves through the stages
type MaskRecommendation struct {
	Category              MaskCategory `json:"category"`
	SuccessRate           string       `json:"successRate"`
	SpecificModels        []string     `json:"specificModels"`
	AlternativeCategory   MaskCategory `json:"alternativeCategory,omitempty"`
	AlternativeModels     []string     `json:"alternativeModels"`
	RequiredAccessories   []string     `json:"requiredAccessories,omitempty"`
	Notes                 []string     `json:"notes"`
	AttachmentRequirement string       `json:"attachmentRequirement,omitempty"`
	AttachmentPreference  string       `json:"attachmentPreference,omitempty"`
	DesignPreference      string       `json:"designPreference,omitempty"`
}

// ModificationNote records a modifier that fired and what it changed
type ModificationNote struct {
	Factor           string `json:"factor"`
	Weight           int    `json:"weight,omitempty"`
	Change           string `json:"change,omitempty"`
	Suggestion       string `json:"suggestion,omitempty"`
	Rationale        string `json:"rationale,omitempty"`
	Implementation   string `json:"implementation,omitempty"`
	Warning          string `json:"warning,omitempty"`
	Contraindication string `json:"contraindication,omitempty"`
	Priority         string `json:"priority,omitempty"`
	Interaction      bool   `json:"interaction,omitempty"`
}

// AttachmentOption is one scored headgear/retention mechanism
type AttachmentOption struct {
	Type          string `json:"type"`
	Score         int    `json:"score"`
	Justification string `json:"reason"`
}

// AccessoryPriority ranks how strongly an accessory is recommended
type AccessoryPriority string

const (
	PriorityRequired          AccessoryPriority = "REQUIRED"
	PriorityEssential         AccessoryPriority = "ESSENTIAL"
	PriorityHighlyRecommended AccessoryPriority = "HIGHLY_RECOMMENDED"
	PriorityRecommended       AccessoryPriority = "RECOMMENDED"
)

// AccessoryRecommendation is one suggested accessory
type AccessoryRecommendation struct {
	Item          string            `json:"item"`
	Priority      AccessoryPriority `json:"priority"`
	Justification string            `json:"reason,omitempty"`
	SafetyNote    string            `json:"safetyNote,omitempty"`
	Weight        int               `json:"weight"`
}

// InfluenceBucket names the output dimension a factor influenced
type InfluenceBucket string

const (
	BucketMaskType    InfluenceBucket = "maskType"
	BucketAttachment  InfluenceBucket = "attachment"
	BucketAccessories InfluenceBucket = "accessories"
)

// FactorInfluenceDetail explains one factor's effect on an output dimension
type FactorInfluenceDetail struct {
	Factor string `json:"factor"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// FactorInfluenceCounts counts distinct factors per bucket
type FactorInfluenceCounts struct {
	MaskType    int `json:"maskType"`
	Attachment  int `json:"attachment"`
	Accessories int `json:"accessories"`
}

// FactorInfluence is the explanatory summary of which answers shaped the result
type FactorInfluence struct {
	Counts  FactorInfluenceCounts    `json:"counts"`
	Details FactorInfluenceBreakdown `json:"details"`
}

// FactorInfluenceBreakdown holds the per-bucket detail records
type FactorInfluenceBreakdown struct {
	MaskType    []FactorInfluenceDetail `json:"maskType"`
	Attachment  []FactorInfluenceDetail `json:"attachment"`
	Accessories []FactorInfluenceDetail `json:"accessories"`
}

// MaskExample is a concrete catalog product attached to a recommendation
type MaskExample struct {
	Brand                string       `json:"brand"`
	Model                string       `json:"model"`
	Category             MaskCategory `json:"category"`
	Description          string       `json:"description,omitempty"`
	KeyFeatures          []string     `json:"keyFeatures,omitempty"`
	BestFor              []string     `json:"bestFor,omitempty"`
	ImageRef             string       `json:"imagePath,omitempty"`
	ExternalLink         string       `json:"address,omitempty"`
	Score                int          `json:"score"`
	SelectionReasons     []string     `json:"selectionReasons"`
	SelectionExplanation string       `json:"selectionExplanation"`
}

// MaskGroup is a brand-named group of examples
type MaskGroup struct {
	Brand string        `json:"brand"`
	Masks []MaskExample `json:"masks"`
}

// Recommendation is the full result returned for one set of responses
type Recommendation struct {
	MaskType               MaskCategory              `json:"maskType"`
	MaskTypeLabel          string                    `json:"maskTypeLabel"`
	SuccessRate            string                    `json:"successRate"`
	SpecificModels         []string                  `json:"specificModels"`
	AlternativeCategory    MaskCategory              `json:"alternativeCategory,omitempty"`
	AlternativeModels      []string                  `json:"alternativeModels"`
	MaskExamples           []MaskGroup               `json:"maskExamples"`
	Attachment             AttachmentOption          `json:"attachment"`
	AttachmentAlternatives []AttachmentOption        `json:"attachmentAlternatives"`
	AttachmentOptions      []AttachmentOption        `json:"attachmentOptions"`
	AttachmentRequirement  string                    `json:"attachmentRequirement,omitempty"`
	AttachmentPreference   string                    `json:"attachmentPreference,omitempty"`
	DesignPreference       string                    `json:"designPreference,omitempty"`
	Accessories            []AccessoryRecommendation `json:"accessories"`
	SafetyFlags            []SafetyFlag              `json:"safetyFlags"`
	Notes                  []string                  `json:"notes"`
	ModificationNotes      []ModificationNote        `json:"modificationNotes"`
	FactorInfluence        FactorInfluence           `json:"factorInfluence"`
	Constraints            SafetyConstraints         `json:"constraints"`
}

// ParseMaskCategory normalizes category spellings such as "Nasal Pillows",
// "nasal-mask", "full face" or "FULL_FACE". Unknown input returns "".
func ParseMaskCategory(value string) MaskCategory {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch normalized {
	case "NASAL_MASK", "NASAL":
		return CategoryNasalMask
	case "NASAL_PILLOWS", "NASAL_PILLOW", "PILLOWS", "PILLOW":
		return CategoryNasalPillows
	case "FULL_FACE", "FULL_FACE_MASK", "FULLFACE", "TOTAL_FACE":
		return CategoryFullFace
	}
	return ""
}
