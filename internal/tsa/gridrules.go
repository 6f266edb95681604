package tsa

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/types"
)

// ErrGridUnavailable is returned when no grid reference is loaded. Grid
// resolution and TSA are disabled in that case.
var ErrGridUnavailable = errors.New("grid rules reference not loaded")

// Grid sections.
const (
	SectionSedentary = "201.00"
	SectionLight     = "202.00"
	SectionMedium    = "203.00"
	SectionHeavy     = "204.00"
)

// HeavyPrincipleRuleID identifies the 204.00 principle applied to Heavy and
// Very Heavy RFCs.
const HeavyPrincipleRuleID = "204.00 (Principle)"

// Previous work experience labels.
const (
	PRWUnskilledOrNone       = "Unskilled or none"
	PRWUnskilled             = "Unskilled"
	PRWNone                  = "None"
	PRWSkillsTransferable    = "Skilled or semiskilled—skills transferable"
	PRWSkillsNotTransferable = "Skilled or semiskilled—skills not transferable"
)

// Row vocabulary.
const (
	ageYounger18to44      = "Younger individual age 18-44"
	ageYounger45to49      = "Younger individual age 45-49"
	ageYounger            = "Younger individual"
	ageClosely            = "Closely approaching advanced age"
	ageAdvanced           = "Advanced age"
	ageRetirement         = "Closely approaching retirement age"
	eduIlliterate         = "Illiterate"
	eduMarginalOrNone     = "Marginal or none"
	eduLimitedOrLess      = "Limited or less"
	eduLimitedLiterate    = "Limited or less—at least literate"
	eduLimited            = "Limited"
	eduHighSchool         = "High school graduate or more"
	eduHighSchoolNoDirect = "High school graduate or more—does not provide for direct entry into skilled work"
	eduHighSchoolDirect   = "High school graduate or more—provides for direct entry into skilled work"
)

var tableNames = map[string]string{
	SectionSedentary: "Table No. 1",
	SectionLight:     "Table No. 2",
	SectionMedium:    "Table No. 3",
}

// ageLabels maps each age category to its row label per section. A category
// absent from a section's map has no row in that table.
var ageLabels = map[string]map[types.AgeCategory]string{
	SectionSedentary: {
		types.AgeYounger18to44:                ageYounger18to44,
		types.AgeYounger45to49:                ageYounger45to49,
		types.AgeCloselyApproachingAdvanced:   ageClosely,
		types.AgeAdvanced:                     ageAdvanced,
		types.AgeCloselyApproachingRetirement: ageAdvanced,
	},
	SectionLight: {
		types.AgeYounger18to44:                ageYounger,
		types.AgeYounger45to49:                ageYounger,
		types.AgeYounger:                      ageYounger,
		types.AgeCloselyApproachingAdvanced:   ageClosely,
		types.AgeAdvanced:                     ageAdvanced,
		types.AgeCloselyApproachingRetirement: ageAdvanced,
	},
	SectionMedium: {
		types.AgeYounger18to44:                ageYounger,
		types.AgeYounger45to49:                ageYounger,
		types.AgeYounger:                      ageYounger,
		types.AgeCloselyApproachingAdvanced:   ageClosely,
		types.AgeAdvanced:                     ageAdvanced,
		types.AgeCloselyApproachingRetirement: ageRetirement,
	},
}

// educationLabels lists the row labels each education category satisfies.
// High school without a known direct-entry status only matches rows that do
// not distinguish direct entry.
var educationLabels = map[types.EducationCategory][]string{
	types.EducationIlliterate:            {eduIlliterate, eduLimitedOrLess, eduMarginalOrNone},
	types.EducationMarginal:              {eduLimitedLiterate, eduLimitedOrLess, eduMarginalOrNone},
	types.EducationLimited:               {eduLimitedLiterate, eduLimitedOrLess, eduLimited},
	types.EducationHighSchool:            {eduHighSchool},
	types.EducationHighSchoolNoDirect:    {eduHighSchool, eduHighSchoolNoDirect},
	types.EducationHighSchoolDirectEntry: {eduHighSchool, eduHighSchoolDirect},
}

// NormalizeAge maps an age category to the row label used in section. The
// second return value is false when the table has no row for the category.
func NormalizeAge(section string, age types.AgeCategory) (string, bool) {
	label, ok := ageLabels[section][age]
	return label, ok
}

// NormalizeEducation returns the row labels an education category matches.
func NormalizeEducation(education types.EducationCategory) ([]string, bool) {
	labels, ok := educationLabels[education]
	return labels, ok
}

// FormatPreviousWorkExperience returns the row labels matching the PRW skill
// level. Transferability is ignored for unskilled or absent work.
func FormatPreviousWorkExperience(skill types.SkillCategory, transferable bool) ([]string, bool) {
	switch skill {
	case types.SkillUnskilled:
		return []string{PRWUnskilledOrNone, PRWUnskilled}, true
	case types.SkillNone:
		return []string{PRWUnskilledOrNone, PRWNone}, true
	case types.SkillSemiskilled, types.SkillSkilled:
		if transferable {
			return []string{PRWSkillsTransferable}, true
		}
		return []string{PRWSkillsNotTransferable}, true
	default:
		return nil, false
	}
}

// SectionForRFC maps an RFC exertion level to its grid section.
func SectionForRFC(rfc types.Exertion) (string, bool) {
	switch rfc {
	case types.ExertionSedentary:
		return SectionSedentary, true
	case types.ExertionLight:
		return SectionLight, true
	case types.ExertionMedium:
		return SectionMedium, true
	case types.ExertionHeavy, types.ExertionVeryHeavy:
		return SectionHeavy, true
	default:
		return "", false
	}
}

// Resolver looks up Medical-Vocational Guidelines rules.
type Resolver struct {
	grid   *types.GridReference
	logger *zap.Logger
}

// NewResolver creates a Resolver over grid. A nil grid is an error.
func NewResolver(grid *types.GridReference, logger *zap.Logger) (*Resolver, error) {
	if grid == nil || len(grid.Sections) == 0 {
		return nil, ErrGridUnavailable
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{grid: grid, logger: logger}, nil
}

// Resolve finds the single rule row matching the query. Every unmapped
// input and every missing or ambiguous match is an explicit no-match with
// decision "Not applicable"; no nearest row is ever substituted. Resolve
// depends only on its inputs and the loaded grid.
func (r *Resolver) Resolve(q types.GridQuery) types.GridRuleResult {
	section, ok := SectionForRFC(q.RFC)
	if !ok {
		return noMatch("", fmt.Sprintf("RFC '%s' does not map to a standard Grid table.", q.RFC))
	}
	if section == SectionHeavy {
		r.logger.Info("RFC allows heavy work, applying 204.00 principle", zap.String("rfc", q.RFC.String()))
		return types.GridRuleResult{
			Table:     SectionHeavy,
			Matched:   true,
			RuleID:    HeavyPrincipleRuleID,
			Decision:  types.DecisionNotDisabled,
			Reasoning: "RFC allows Heavy or Very Heavy work (per 204.00 principle).",
		}
	}

	rules, ok := r.rules(section)
	if !ok {
		return noMatch(section, fmt.Sprintf("Grid reference has no rules for section %s.", section))
	}

	age, ok := NormalizeAge(section, q.Age)
	if !ok {
		r.logger.Warn("age category has no row in table", zap.String("section", section), zap.String("age", string(q.Age)))
		return noMatch(section, fmt.Sprintf("Unknown age category %q for %s (%s).", q.Age, tableNames[section], section))
	}
	education, ok := NormalizeEducation(q.Education)
	if !ok {
		r.logger.Warn("education category not mapped", zap.String("education", string(q.Education)))
		return noMatch(section, fmt.Sprintf("Unknown education category %q.", q.Education))
	}
	prw, ok := FormatPreviousWorkExperience(q.PRWSkill, q.Transferable)
	if !ok {
		r.logger.Warn("previous work skill level not mapped", zap.String("prw_skill", string(q.PRWSkill)))
		return noMatch(section, fmt.Sprintf("Unknown previous work skill level %q.", q.PRWSkill))
	}

	var matches []types.GridRule
	for _, rule := range rules {
		if rule.Age == age && slices.Contains(education, rule.Education) && slices.Contains(prw, rule.PreviousWorkExperience) {
			matches = append(matches, rule)
		}
	}

	if len(matches) == 0 {
		r.logger.Warn("no exact grid rule match",
			zap.String("section", section),
			zap.String("age", age),
			zap.Strings("education", education),
			zap.Strings("prw", prw))
		result := noMatch(section, "No exact match found for the provided vocational profile.")
		result.Age = age
		return result
	}

	first := matches[0]
	var also []string
	for _, m := range matches[1:] {
		if m.Decision != first.Decision {
			ids := make([]string, 0, len(matches))
			for _, mm := range matches {
				ids = append(ids, mm.RuleID)
			}
			r.logger.Warn("ambiguous grid rule match", zap.Strings("rules", ids))
			result := noMatch(section, fmt.Sprintf("Ambiguous: rules %s match with different decisions.", strings.Join(ids, ", ")))
			result.Age = age
			return result
		}
		also = append(also, m.RuleID)
	}

	r.logger.Info("matched grid rule", zap.String("rule_id", first.RuleID), zap.String("decision", first.Decision))
	return types.GridRuleResult{
		Table:                  section,
		Matched:                true,
		RuleID:                 first.RuleID,
		Decision:               first.Decision,
		Age:                    first.Age,
		Education:              first.Education,
		PreviousWorkExperience: first.PreviousWorkExperience,
		AlsoMatched:            also,
		Reasoning: fmt.Sprintf("Rule %s of %s: %s; %s; %s directs '%s'.",
			first.RuleID, tableNames[section], first.Age, first.Education, first.PreviousWorkExperience, first.Decision),
	}
}

func (r *Resolver) rules(section string) ([]types.GridRule, bool) {
	for _, s := range r.grid.Sections {
		if s.SectionNumber == section {
			return s.Table.Rules, len(s.Table.Rules) > 0
		}
	}
	return nil, false
}

func noMatch(section, reason string) types.GridRuleResult {
	return types.GridRuleResult{
		Table:     section,
		Decision:  types.DecisionNotApplicable,
		Reasoning: reason,
	}
}
