package consistency

import (
	"fmt"
	"strings"

	"github.com/jonathan/ve-auditor/internal/types"
)

// instructionReasoningCap approximates the highest GED reasoning level each
// instruction complexity tolerates.
var instructionReasoningCap = map[types.InstructionComplexity]int{
	types.InstructionsSimple:   2,
	types.InstructionsDetailed: 3,
	types.InstructionsComplex:  6,
}

func mentalArea(sub string) types.ConflictArea {
	return types.ConflictArea{Domain: types.DomainMental, SubArea: sub}
}

func checkSkill(m *types.MentalLimits, p *types.JobProfile) findings {
	var f findings
	if m == nil || m.MaxSVP == nil {
		return f
	}
	if p.Skill.SVP == nil {
		f.note(fmt.Sprintf("Skill: job SVP is unknown; SVP limit of %d was not compared.", *m.MaxSVP))
		return f
	}
	if svp := *p.Skill.SVP; svp > *m.MaxSVP {
		f.conflict(types.ConflictArea{Domain: types.DomainSkill, SubArea: "SVP"},
			fmt.Sprintf("<= SVP %d", *m.MaxSVP),
			fmt.Sprintf("SVP %d", svp),
			fmt.Sprintf("Job requires SVP %d, but hypothetical limits to SVP %d or less.", svp, *m.MaxSVP))
	}
	return f
}

func (c *Checker) checkGED(m *types.MentalLimits, p *types.JobProfile) findings {
	var f findings
	if m == nil {
		return f
	}

	axes := []struct {
		name  string
		limit *int
		job   types.Rating
	}{
		{"Reasoning", m.MaxGEDReasoning, p.GED.Reasoning},
		{"Math", m.MaxGEDMath, p.GED.Math},
		{"Language", m.MaxGEDLanguage, p.GED.Language},
	}
	for _, axis := range axes {
		if axis.limit == nil {
			continue
		}
		if !axis.job.Known() {
			f.note(fmt.Sprintf("Mental: job GED %s level is unknown; limit of %d was not compared.", axis.name, *axis.limit))
			continue
		}
		if level := *axis.job.Level; level > *axis.limit {
			f.conflict(mentalArea("GED "+axis.name),
				fmt.Sprintf("<= GED %s %d", axis.name, *axis.limit),
				fmt.Sprintf("GED %s Level %d", axis.name, level),
				fmt.Sprintf("Job requires GED %s Level %d, exceeding hypothetical limit of %d.", axis.name, level, *axis.limit))
		}
	}

	if m.InstructionComplexity == types.InstructionsUnspecified {
		return f
	}
	maxReasoning, ok := instructionReasoningCap[m.InstructionComplexity]
	if !ok {
		f.note(fmt.Sprintf("Mental: instruction limit %q is not recognized and was not compared.", m.InstructionComplexity))
		return f
	}
	if !p.GED.Reasoning.Known() {
		f.note(fmt.Sprintf("Mental: job GED Reasoning level is unknown; %s instruction limit was not compared.", m.InstructionComplexity))
		return f
	}
	if level := *p.GED.Reasoning.Level; level > maxReasoning {
		f.conflict(mentalArea("Instruction Complexity"),
			fmt.Sprintf("%s instructions (Approx GED-R <= %d)", m.InstructionComplexity, maxReasoning),
			fmt.Sprintf("Job GED-R Level %d", level),
			fmt.Sprintf("Job requires GED Reasoning Level %d, potentially conflicting with hypothetical limit to %s instructions.%s",
				level, m.InstructionComplexity, c.reasoningNote(maxReasoning)))
	}
	return f
}

func (c *Checker) reasoningNote(level int) string {
	notes, ok := c.tables.ReasoningNotes(level)
	if !ok || len(notes.PotentiallyIncompatibleWith) == 0 {
		return ""
	}
	return fmt.Sprintf(" (Note: Level %d reasoning is potentially incompatible with: %s.)",
		level, strings.Join(notes.PotentiallyIncompatibleWith, ", "))
}

// checkPaceStress matches free-text pace, stress and precision limits
// against the Variety, Stress and Tolerances temperaments.
func checkPaceStress(m *types.MentalLimits, p *types.JobProfile) findings {
	var f findings
	if m == nil {
		return f
	}

	pace := strings.ToLower(strings.TrimSpace(m.Pace))
	if containsAny(pace, "no fast pace", "slow") && p.HasTemperament("V") {
		f.conflict(mentalArea("Pace/Variety"),
			"Pace: "+pace,
			"Temperament: V (Variety)",
			"Hypothetical limitation on pace/change potentially conflicts with job temperament requiring variety.")
	}

	stress := strings.ToLower(strings.TrimSpace(m.Stress))
	if containsAny(stress, "low", "no high stress", "no stress") && p.HasTemperament("S") {
		f.conflict(mentalArea("Stress"),
			"Stress: "+stress,
			"Temperament: S (Stress)",
			"Hypothetical limitation on stress tolerance conflicts with job temperament requiring performance under stress.")
	}

	conc := strings.ToLower(strings.TrimSpace(m.Concentration))
	if containsAny(conc, "no high precision", "limited precision") && p.HasTemperament("T") {
		f.conflict(mentalArea("Concentration/Precision"),
			"Concentration/Precision: "+conc,
			"Temperament: T (Tolerances)",
			"Hypothetical limitation on precision potentially conflicts with job temperament requiring attaining precise tolerances.")
	}

	if (pace != "" || stress != "" || conc != "") && len(p.Temperaments) == 0 {
		f.note("Mental: job lists no temperaments; pace, stress and precision limits could only be compared against an empty set.")
	}
	return f
}

// checkSocial compares contact limits with the People temperament, the
// People worker function and the Alone temperament.
func checkSocial(m *types.MentalLimits, p *types.JobProfile) findings {
	var f findings
	if m == nil {
		return f
	}

	if limit := m.PublicContact; limit != nil {
		switch {
		case !limit.Known():
			f.note("Mental: public contact limit is not a recognized frequency and was not compared.")
		case *limit <= types.FrequencyOccasionally:
			people := p.WorkerFunctions.People
			significantPeople := people.Known() && *people.Level < 8
			if p.HasTemperament("P") || significantPeople {
				f.conflict(mentalArea("Social - Public"),
					"Public Contact: "+limit.Code(),
					"Temperament P or People WF Level "+ratingText(people),
					"Hypothetical limitation on public contact potentially conflicts with job requirements involving dealing with people.")
			} else if !people.Known() && len(p.Temperaments) == 0 {
				f.note("Mental: job People function and temperaments are unknown; public contact limit could not be fully compared.")
			}
		}
	}

	if limit := m.CoworkerContact; limit != nil {
		switch {
		case !limit.Known():
			f.note("Mental: coworker contact limit is not a recognized frequency and was not compared.")
		case *limit <= types.FrequencyOccasionally && !p.HasTemperament("A"):
			f.conflict(mentalArea("Social - Coworkers"),
				"Coworker Contact: "+limit.Code(),
				"Job not performed in isolation (Temperament A not present)",
				"Hypothetical limitation on coworker contact potentially conflicts with typical workplace interaction unless the job is performed in isolation.")
		}
	}

	supervisor := strings.ToLower(strings.TrimSpace(m.SupervisorContact))
	if containsAny(supervisor, "superficial", "none", "brief") {
		f.conflict(mentalArea("Social - Supervisors"),
			"Supervisor Contact: "+supervisor,
			"Typical Supervision",
			"Hypothetical limitation on supervisor contact likely conflicts with standard work requirements.")
	}
	return f
}

func ratingText(r types.Rating) string {
	if !r.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%d", *r.Level)
}

func containsAny(s string, subs ...string) bool {
	if s == "" {
		return false
	}
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
