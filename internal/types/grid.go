package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AgeCategory is a claimant age category under the Medical-Vocational Guidelines.
type AgeCategory string

// Age categories. AgeYounger is used when the 45-49 / 18-44 split is not known.
const (
	AgeUnknown                      AgeCategory = ""
	AgeYounger18to44                AgeCategory = "younger_18_44"
	AgeYounger45to49                AgeCategory = "younger_45_49"
	AgeYounger                      AgeCategory = "younger"
	AgeCloselyApproachingAdvanced   AgeCategory = "closely_approaching_advanced"
	AgeAdvanced                     AgeCategory = "advanced"
	AgeCloselyApproachingRetirement AgeCategory = "closely_approaching_retirement"
)

// ParseAgeCategory accepts enum values and the regulation wording
// ("Advanced age", "Younger individual age 45-49"). Unrecognized text is AgeUnknown.
func ParseAgeCategory(s string) AgeCategory {
	norm := normalizeLabel(s)
	switch norm {
	case string(AgeYounger18to44), "younger individual age 18-44", "younger 18-44", "18-44":
		return AgeYounger18to44
	case string(AgeYounger45to49), "younger individual age 45-49", "younger 45-49", "45-49":
		return AgeYounger45to49
	case string(AgeYounger), "younger individual", "younger person":
		return AgeYounger
	case string(AgeCloselyApproachingAdvanced), "closely approaching advanced age", "50-54":
		return AgeCloselyApproachingAdvanced
	case string(AgeAdvanced), "advanced age", "55+", "55 and over":
		return AgeAdvanced
	case string(AgeCloselyApproachingRetirement), "closely approaching retirement age", "60+", "60-64":
		return AgeCloselyApproachingRetirement
	default:
		return AgeUnknown
	}
}

// AgeCategoryFromYears maps an age in years to a category.
func AgeCategoryFromYears(years int) AgeCategory {
	switch {
	case years < 18:
		return AgeUnknown
	case years <= 44:
		return AgeYounger18to44
	case years <= 49:
		return AgeYounger45to49
	case years <= 54:
		return AgeCloselyApproachingAdvanced
	case years <= 59:
		return AgeAdvanced
	default:
		return AgeCloselyApproachingRetirement
	}
}

// UnmarshalJSON decodes either a category name or an age in years.
func (a *AgeCategory) UnmarshalJSON(data []byte) error {
	var years int
	if err := json.Unmarshal(data, &years); err == nil {
		*a = AgeCategoryFromYears(years)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("age must be a category or number of years: %w", err)
	}
	*a = ParseAgeCategory(s)
	return nil
}

// EducationCategory is a claimant education category.
type EducationCategory string

// Education categories. EducationHighSchool is used when it is not known
// whether the education provides for direct entry into skilled work.
const (
	EducationUnknown               EducationCategory = ""
	EducationIlliterate            EducationCategory = "illiterate"
	EducationMarginal              EducationCategory = "marginal"
	EducationLimited               EducationCategory = "limited"
	EducationHighSchool            EducationCategory = "high_school"
	EducationHighSchoolNoDirect    EducationCategory = "high_school_no_direct_entry"
	EducationHighSchoolDirectEntry EducationCategory = "high_school_direct_entry"
)

// ParseEducationCategory accepts enum values and common wording
// ("Limited or less", "High school graduate or more"). Unrecognized text is
// EducationUnknown.
func ParseEducationCategory(s string) EducationCategory {
	norm := normalizeLabel(s)
	switch norm {
	case string(EducationIlliterate), "illiterate or unable to communicate in english":
		return EducationIlliterate
	case string(EducationMarginal), "marginal or none", "marginal education":
		return EducationMarginal
	case string(EducationLimited), "limited or less", "limited education":
		return EducationLimited
	case string(EducationHighSchool), "high school", "high school graduate or more", "high school graduate", "hs grad or more":
		return EducationHighSchool
	case string(EducationHighSchoolNoDirect), "high school graduate or more-does not provide for direct entry into skilled work":
		return EducationHighSchoolNoDirect
	case string(EducationHighSchoolDirectEntry), "high school graduate or more-provides for direct entry into skilled work":
		return EducationHighSchoolDirectEntry
	default:
		return EducationUnknown
	}
}

// UnmarshalJSON decodes a category name or wording.
func (e *EducationCategory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("education must be a string: %w", err)
	}
	*e = ParseEducationCategory(s)
	return nil
}

// normalizeLabel lowercases, trims and folds dash variants to '-'.
func normalizeLabel(s string) string {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("—", "-", "–", "-", " - ", "-").Replace(norm)
	return strings.Join(strings.Fields(norm), " ")
}

// Grid decisions.
const (
	DecisionNotDisabled   = "Not disabled"
	DecisionDisabled      = "Disabled"
	DecisionNotApplicable = "Not applicable"
)

// GridRule is one row of a Medical-Vocational Guidelines table.
type GridRule struct {
	RuleID                 string `json:"rule_id"`
	Age                    string `json:"age"`
	Education              string `json:"education"`
	PreviousWorkExperience string `json:"previous_work_experience"`
	Decision               string `json:"decision"`
}

// GridTable holds the rows of one table.
type GridTable struct {
	Rules []GridRule `json:"rules"`
}

// GridSection is one numbered section of the guidelines, e.g. 201.00.
type GridSection struct {
	SectionNumber string    `json:"section_number"`
	Title         string    `json:"title"`
	Table         GridTable `json:"table"`
}

// GridReference is the full guidelines reference document.
type GridReference struct {
	Sections []GridSection `json:"sections"`
}

// GridQuery holds the five inputs of a grid rule lookup.
type GridQuery struct {
	RFC          Exertion          `json:"rfc"`
	Age          AgeCategory       `json:"age"`
	Education    EducationCategory `json:"education"`
	PRWSkill     SkillCategory     `json:"prw_skill"`
	Transferable bool              `json:"transferable"`
}

// GridRuleResult is the outcome of a grid rule lookup. Matched is false for
// every non-directed outcome, including unmapped vocabulary.
type GridRuleResult struct {
	Table                  string   `json:"table,omitempty"`
	Matched                bool     `json:"matched"`
	RuleID                 string   `json:"rule_id,omitempty"`
	Decision               string   `json:"decision"`
	Age                    string   `json:"age,omitempty"`
	Education              string   `json:"education,omitempty"`
	PreviousWorkExperience string   `json:"previous_work_experience,omitempty"`
	AlsoMatched            []string `json:"also_matched,omitempty"`
	Reasoning              string   `json:"reasoning"`
}
