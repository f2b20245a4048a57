package entities

// BreathingPattern is how the patient breathes during sleep
type BreathingPattern string

const (
	BreathingNoseOnly  BreathingPattern = "nose_only"
	BreathingMouthOnly BreathingPattern = "mouth_only"
	BreathingMixed     BreathingPattern = "mixed"
)

// NasalStatus describes nasal obstruction or related issues
type NasalStatus string

const (
	NasalNoObstruction     NasalStatus = "no_obstruction"
	NasalMildObstruction   NasalStatus = "mild_obstruction"
	NasalSevereObstruction NasalStatus = "severe_obstruction"
	NasalDeviatedSeptum    NasalStatus = "deviated_septum"
	NasalSeasonalAllergies NasalStatus = "seasonal_allergies"
)

// SleepPosition is the patient's primary sleep position
type SleepPosition string

const (
	SleepBack    SleepPosition = "back"
	SleepSide    SleepPosition = "side"
	SleepStomach SleepPosition = "stomach"
	SleepSitting SleepPosition = "sitting"
)

// IsSideOrStomach reports whether the position presses the mask into a pillow
func (p SleepPosition) IsSideOrStomach() bool {
	return p == SleepSide || p == SleepStomach
}

// SleepMovement is how much the patient moves during sleep
type SleepMovement string

const (
	MovementNone       SleepMovement = "none"
	MovementSome       SleepMovement = "some"
	MovementAllTheTime SleepMovement = "all_the_time"
)

// PatientResponses holds the questionnaire answers. Every field is optional:
// an empty string or false means "unknown/no", and values outside the
// documented domains simply match no rule.
type PatientResponses struct {
	Breathing       BreathingPattern `json:"breathing,omitempty"`
	Nasal           NasalStatus      `json:"nasal,omitempty"`
	SleepPosition   SleepPosition    `json:"sleepPosition,omitempty"`
	SleepMovement   SleepMovement    `json:"sleepMovement,omitempty"`
	Claustrophobic  bool             `json:"claustrophobic,omitempty"`
	FacialHair      bool             `json:"facialHair,omitempty"`
	Adjustment      bool             `json:"adjustment,omitempty"`
	Implant         bool             `json:"implant,omitempty"`
	Eye             bool             `json:"eye,omitempty"`
	Drug            bool             `json:"drug,omitempty"`
	Assistant       bool             `json:"assistant,omitempty"`
	SkinSensitivity bool             `json:"skinSensitivity,omitempty"`
}

// MouthTapeSafe reports whether mouth tape may be suggested. Any aspiration
// risk or reliance on an assistant for removal rules it out.
func (r PatientResponses) MouthTapeSafe() bool {
	return !r.Eye && !r.Drug && !r.Assistant
}
