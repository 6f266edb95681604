package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Exertion is the DOT strength rating on the 5-point scale.
// ExertionUnknown is never treated as any specific level.
type Exertion int

// Exertion levels. Numeric values match the DOT StrengthNum column.
const (
	ExertionUnknown Exertion = iota
	ExertionSedentary
	ExertionLight
	ExertionMedium
	ExertionHeavy
	ExertionVeryHeavy
)

var exertionNames = map[Exertion]string{
	ExertionSedentary: "Sedentary",
	ExertionLight:     "Light",
	ExertionMedium:    "Medium",
	ExertionHeavy:     "Heavy",
	ExertionVeryHeavy: "Very Heavy",
}

var exertionCodes = map[Exertion]string{
	ExertionSedentary: "S",
	ExertionLight:     "L",
	ExertionMedium:    "M",
	ExertionHeavy:     "H",
	ExertionVeryHeavy: "V",
}

// Known reports whether e is one of the five defined levels.
func (e Exertion) Known() bool {
	return e >= ExertionSedentary && e <= ExertionVeryHeavy
}

// String returns the display name, or "Unknown".
func (e Exertion) String() string {
	if name, ok := exertionNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Code returns the single-letter DOT strength code (S, L, M, H, V) or "".
func (e Exertion) Code() string {
	return exertionCodes[e]
}

// ExertionFromNum maps a DOT StrengthNum (1-5) to a level.
func ExertionFromNum(n int) Exertion {
	e := Exertion(n)
	if e.Known() {
		return e
	}
	return ExertionUnknown
}

// ParseExertion accepts names ("Light", "VERY HEAVY", "very_heavy") or
// letter codes ("L"). Anything else is ExertionUnknown.
func ParseExertion(s string) Exertion {
	norm := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
	switch norm {
	case "s", "sedentary":
		return ExertionSedentary
	case "l", "light":
		return ExertionLight
	case "m", "medium":
		return ExertionMedium
	case "h", "heavy":
		return ExertionHeavy
	case "v", "very heavy", "veryheavy":
		return ExertionVeryHeavy
	default:
		return ExertionUnknown
	}
}

// MarshalJSON encodes the level by name.
func (e Exertion) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON decodes a level name or letter code.
func (e *Exertion) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("exertion must be a string: %w", err)
	}
	*e = ParseExertion(s)
	return nil
}

// Frequency is the DOT frequency rating for a physical demand or
// environmental condition. Values match the DOT numeric codes (1-4).
// FrequencyUnknown marks a missing or out-of-domain code and is distinct
// from FrequencyNotPresent.
type Frequency int

// Frequency levels in their total order.
const (
	FrequencyUnknown Frequency = iota
	FrequencyNotPresent
	FrequencyOccasionally
	FrequencyFrequently
	FrequencyConstantly
)

var frequencyCodes = map[Frequency]string{
	FrequencyNotPresent:   "N",
	FrequencyOccasionally: "O",
	FrequencyFrequently:   "F",
	FrequencyConstantly:   "C",
}

var frequencyNames = map[Frequency]string{
	FrequencyNotPresent:   "Not Present",
	FrequencyOccasionally: "Occasionally",
	FrequencyFrequently:   "Frequently",
	FrequencyConstantly:   "Constantly",
}

// Known reports whether f is a valid level (N, O, F or C).
func (f Frequency) Known() bool {
	return f >= FrequencyNotPresent && f <= FrequencyConstantly
}

// Code returns N, O, F or C, or "?" for unknown.
func (f Frequency) Code() string {
	if c, ok := frequencyCodes[f]; ok {
		return c
	}
	return "?"
}

// String returns the short name, e.g. "Occasionally".
func (f Frequency) String() string {
	if n, ok := frequencyNames[f]; ok {
		return n
	}
	return "Unknown"
}

// Label formats the frequency as "O (Occasionally)".
func (f Frequency) Label() string {
	return fmt.Sprintf("%s (%s)", f.Code(), f.String())
}

// Exceeds reports whether f is strictly more demanding than limit.
// Both values must be known; callers handle unknown values explicitly.
func (f Frequency) Exceeds(limit Frequency) bool {
	return f > limit
}

// FrequencyFromNum maps a DOT frequency number (1-4) to a level.
func FrequencyFromNum(n int) Frequency {
	f := Frequency(n)
	if f.Known() {
		return f
	}
	return FrequencyUnknown
}

// ParseFrequency accepts letter codes (N, O, F, C) and names
// ("never", "occasionally", ...). Anything else is FrequencyUnknown.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "not present", "never", "none":
		return FrequencyNotPresent
	case "o", "occasionally", "occasional":
		return FrequencyOccasionally
	case "f", "frequently", "frequent":
		return FrequencyFrequently
	case "c", "constantly", "constant":
		return FrequencyConstantly
	default:
		return FrequencyUnknown
	}
}

// MarshalJSON encodes the frequency as its letter code.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Code())
}

// UnmarshalJSON decodes a letter code or name. Unrecognized values decode
// to FrequencyUnknown rather than failing, so the checker can flag them.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int
		if numErr := json.Unmarshal(data, &n); numErr != nil {
			return fmt.Errorf("frequency must be a code string or number: %w", err)
		}
		*f = FrequencyFromNum(n)
		return nil
	}
	*f = ParseFrequency(s)
	return nil
}

// SkillCategory is the SSA skill classification of work.
type SkillCategory string

// Skill categories.
const (
	SkillUnknown     SkillCategory = "Unknown"
	SkillNone        SkillCategory = "None"
	SkillUnskilled   SkillCategory = "Unskilled"
	SkillSemiskilled SkillCategory = "Semiskilled"
	SkillSkilled     SkillCategory = "Skilled"
)

// SkillCategoryFromSVP maps SVP 1-2 to Unskilled, 3-4 to Semiskilled and
// 5-9 to Skilled. Out-of-range values are SkillUnknown.
func SkillCategoryFromSVP(svp int) SkillCategory {
	switch {
	case svp >= 1 && svp <= 2:
		return SkillUnskilled
	case svp >= 3 && svp <= 4:
		return SkillSemiskilled
	case svp >= 5 && svp <= 9:
		return SkillSkilled
	default:
		return SkillUnknown
	}
}

// ParseSkillCategory normalizes free text such as "semi-skilled".
func ParseSkillCategory(s string) SkillCategory {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, " ", "")
	switch norm {
	case "none":
		return SkillNone
	case "unskilled":
		return SkillUnskilled
	case "semiskilled":
		return SkillSemiskilled
	case "skilled":
		return SkillSkilled
	default:
		return SkillUnknown
	}
}

// InstructionComplexity is the hypothetical's limit on instruction complexity.
type InstructionComplexity string

// Instruction complexity labels.
const (
	InstructionsUnspecified InstructionComplexity = ""
	InstructionsSimple      InstructionComplexity = "Simple"
	InstructionsDetailed    InstructionComplexity = "Detailed"
	InstructionsComplex     InstructionComplexity = "Complex"
)
