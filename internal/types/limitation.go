package types

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LimitationModel is a claimant hypothetical: the functional limits a job
// must fit within. Nil pointers and empty maps mean "no limit stated".
type LimitationModel struct {
	Exertional    *ExertionalLimits    `json:"exertional,omitempty"`
	Postural      map[string]Frequency `json:"postural,omitempty"`
	Manipulative  map[string]Frequency `json:"manipulative,omitempty"`
	Visual        map[string]Frequency `json:"visual,omitempty"`
	Sensory       map[string]Frequency `json:"sensory,omitempty"`
	Environmental map[string]Frequency `json:"environmental,omitempty"`
	NoiseCap      *int                 `json:"noise_cap,omitempty" validate:"omitempty,min=1,max=5"`
	Mental        *MentalLimits        `json:"mental,omitempty"`
}

// ExertionalLimits are the lifting and positional limits in pounds and hours.
type ExertionalLimits struct {
	LiftOccasionalLbs *float64 `json:"lift_occasional_lbs,omitempty" validate:"omitempty,gte=0"`
	LiftFrequentLbs   *float64 `json:"lift_frequent_lbs,omitempty" validate:"omitempty,gte=0"`
	StandWalkHours    *float64 `json:"stand_walk_hours,omitempty" validate:"omitempty,gte=0,lte=8"`
	SitHours          *float64 `json:"sit_hours,omitempty" validate:"omitempty,gte=0,lte=8"`
	SitStandOption    bool     `json:"sit_stand_option,omitempty"`
}

// MentalLimits are the cognitive and social limits of a hypothetical.
type MentalLimits struct {
	MaxSVP                *int                  `json:"max_svp,omitempty" validate:"omitempty,min=1,max=9"`
	MaxGEDReasoning       *int                  `json:"max_ged_reasoning,omitempty" validate:"omitempty,min=1,max=6"`
	MaxGEDMath            *int                  `json:"max_ged_math,omitempty" validate:"omitempty,min=1,max=6"`
	MaxGEDLanguage        *int                  `json:"max_ged_language,omitempty" validate:"omitempty,min=1,max=6"`
	InstructionComplexity InstructionComplexity `json:"instruction_complexity,omitempty" validate:"omitempty,oneof=Simple Detailed Complex"`
	Pace                  string                `json:"pace,omitempty"`
	Stress                string                `json:"stress,omitempty"`
	Concentration         string                `json:"concentration,omitempty"`
	PublicContact         *Frequency            `json:"public_contact,omitempty"`
	CoworkerContact       *Frequency            `json:"coworker_contact,omitempty"`
	SupervisorContact     string                `json:"supervisor_contact,omitempty"`
}

// Validate validates the LimitationModel using the validator.
func (l *LimitationModel) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}

// IsEmpty reports whether the model states no limit at all.
func (l *LimitationModel) IsEmpty() bool {
	if l == nil {
		return true
	}
	if l.NoiseCap != nil {
		return false
	}
	if len(l.Postural)+len(l.Manipulative)+len(l.Visual)+len(l.Sensory)+len(l.Environmental) > 0 {
		return false
	}
	if e := l.Exertional; e != nil {
		if e.LiftOccasionalLbs != nil || e.LiftFrequentLbs != nil || e.StandWalkHours != nil || e.SitHours != nil || e.SitStandOption {
			return false
		}
	}
	if m := l.Mental; m != nil {
		if m.MaxSVP != nil || m.MaxGEDReasoning != nil || m.MaxGEDMath != nil || m.MaxGEDLanguage != nil {
			return false
		}
		if m.InstructionComplexity != InstructionsUnspecified || m.Pace != "" || m.Stress != "" || m.Concentration != "" {
			return false
		}
		if m.PublicContact != nil || m.CoworkerContact != nil || m.SupervisorContact != "" {
			return false
		}
	}
	return true
}

// FrequencyCap is one labelled frequency limit.
type FrequencyCap struct {
	Label string
	Cap   Frequency
}

// PhysicalCaps merges the postural, manipulative, visual and sensory caps
// in that group order, each group sorted by label.
func (l *LimitationModel) PhysicalCaps() []FrequencyCap {
	var caps []FrequencyCap
	for _, group := range []map[string]Frequency{l.Postural, l.Manipulative, l.Visual, l.Sensory} {
		caps = append(caps, sortedCaps(group)...)
	}
	return caps
}

// EnvironmentalCaps returns the environmental caps sorted by label.
func (l *LimitationModel) EnvironmentalCaps() []FrequencyCap {
	return sortedCaps(l.Environmental)
}

// sortedCaps folds labels that differ only in case into one cap, keeping
// the most restrictive known frequency under the first label in sort order.
func sortedCaps(m map[string]Frequency) []FrequencyCap {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	caps := make([]FrequencyCap, 0, len(labels))
	index := make(map[string]int, len(labels))
	for _, label := range labels {
		key := strings.ToLower(strings.TrimSpace(label))
		if i, ok := index[key]; ok {
			if f := m[label]; f.Known() && (!caps[i].Cap.Known() || f < caps[i].Cap) {
				caps[i].Cap = m[label]
			}
			continue
		}
		index[key] = len(caps)
		caps = append(caps, FrequencyCap{Label: label, Cap: m[label]})
	}
	return caps
}
