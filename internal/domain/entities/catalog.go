package entities

import (
	"fmt"
	"strings"
)

// CushionMaterial is the material touching the patient's face
type CushionMaterial string

const (
	CushionSilicone   CushionMaterial = "silicone"
	CushionMemoryFoam CushionMaterial = "memory_foam"
	CushionGel        CushionMaterial = "gel"
	CushionFabric     CushionMaterial = "fabric"
)

// IsSoft reports whether the material is gentler than plain silicone
func (m CushionMaterial) IsSoft() bool {
	switch m {
	case CushionMemoryFoam, CushionGel, CushionFabric:
		return true
	}
	return false
}

// CatalogEntry is one mask product in the read-only catalog
type CatalogEntry struct {
	Brand                string          `json:"brand" db:"brand"`
	Model                string          `json:"model" db:"model"`
	Category             MaskCategory    `json:"category" db:"category"`
	TubeUp               bool            `json:"tubeUp" db:"tube_up"`
	CushionMaterial      CushionMaterial `json:"cushionMaterial" db:"cushion_material"`
	FacialHairCompatible bool            `json:"facialHairCompatible" db:"facial_hair_compatible"`
	SkinFriendly         bool            `json:"skinFriendly" db:"skin_friendly"`
	MagneticClips        bool            `json:"magneticClips" db:"magnetic_clips"`
	MatchHints           string          `json:"matchHints,omitempty" db:"match_hints"`
	Description          string          `json:"description,omitempty" db:"description"`
	KeyFeatures          []string        `json:"keyFeatures" db:"-"`
	BestFor              []string        `json:"bestFor" db:"-"`
	AvoidIf              []string        `json:"avoidIf,omitempty" db:"-"`
	ImageRef             string          `json:"imagePath,omitempty" db:"image_ref"`
	ExternalLink         string          `json:"address,omitempty" db:"external_link"`
}

// Name returns the display name, brand prefixed unless the model already carries it
func (e CatalogEntry) Name() string {
	if e.Brand == "" || strings.HasPrefix(e.Model, e.Brand) {
		return e.Model
	}
	return e.Brand + " " + e.Model
}

// Validate rejects entries the catalog query cannot reason about
func (e CatalogEntry) Validate() error {
	if strings.TrimSpace(e.Model) == "" {
		return fmt.Errorf("catalog entry has no model")
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("catalog entry %q: invalid category %q", e.Model, e.Category)
	}
	return nil
}

// CatalogCriteria is the bag of patient attributes used to filter and score entries
type CatalogCriteria struct {
	// TubeUp nil means no preference; true/false are hard filters
	TubeUp               *bool
	SkinFriendly         bool
	FacialHairCompatible bool
	NonMagnetic          bool

	SleepPosition   SleepPosition
	Claustrophobic  bool
	SkinSensitivity bool
	FacialHair      bool

	Breathing     BreathingPattern
	Nasal         NasalStatus
	SleepMovement SleepMovement
	Assistant     bool
	Adjustment    bool
	Implant       bool
}

// ScoredEntry is a catalog entry with its accumulated score and reasons
type ScoredEntry struct {
	Entry   CatalogEntry
	Score   int
	Reasons []string
}
