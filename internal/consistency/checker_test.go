package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ve-auditor/internal/reference"
	"github.com/jonathan/ve-auditor/internal/types"
)

func intPtr(v int) *int                          { return &v }
func floatPtr(v float64) *float64                { return &v }
func freqPtr(f types.Frequency) *types.Frequency { return &f }

func newTestChecker() *Checker {
	return NewChecker(reference.New(nil, nil), nil)
}

func level(n int) types.Rating { return types.Rating{Level: intPtr(n)} }

// lightJob is a Light, SVP 2 job with frequent stooping.
func lightJob() *types.JobProfile {
	return &types.JobProfile{
		Title:    "SMALL PRODUCTS ASSEMBLER",
		Code:     "706.684-022",
		Exertion: types.ExertionProfile{Level: types.ExertionLight},
		Skill:    types.SkillProfile{SVP: intPtr(2), Category: types.SkillUnskilled},
		GED: types.GEDProfile{
			Reasoning: level(2),
			Math:      level(1),
			Language:  level(1),
		},
		WorkerFunctions: types.WorkerFunctions{Data: level(8), People: level(8), Things: level(4)},
		PhysicalDemands: map[string]types.Demand{
			"Stooping": {Frequency: types.FrequencyFrequently},
			"Handling": {Frequency: types.FrequencyConstantly},
			"Climbing": {Frequency: types.FrequencyNotPresent},
		},
		EnvironmentalConditions: map[string]types.Demand{
			"Moving Mechanical Parts": {Frequency: types.FrequencyOccasionally},
		},
		Noise:        &types.NoiseLevel{Level: 3, Name: "Moderate"},
		Temperaments: []types.Temperament{{Code: "R"}},
	}
}

func TestCheck_InvalidInput(t *testing.T) {
	c := newTestChecker()
	limits := &types.LimitationModel{NoiseCap: intPtr(3)}

	tests := []struct {
		name    string
		limits  *types.LimitationModel
		profile *types.JobProfile
	}{
		{"nil limits", nil, lightJob()},
		{"empty limits", &types.LimitationModel{Mental: &types.MentalLimits{}}, lightJob()},
		{"nil profile", limits, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Check(tt.limits, tt.profile)
			assert.Equal(t, types.StatusInvalidInput, result.Status)
			assert.False(t, result.Evaluated())
			assert.Empty(t, result.Conflicts)
			assert.Equal(t, InvalidInputMessage, result.Message)
		})
	}
}

func TestCheck_LiftingBelowLightThreshold(t *testing.T) {
	limits := &types.LimitationModel{
		Exertional: &types.ExertionalLimits{LiftOccasionalLbs: floatPtr(10)},
	}

	result := newTestChecker().Check(limits, lightJob())
	require.True(t, result.Evaluated())
	require.Len(t, result.Conflicts, 1)

	got := result.Conflicts[0]
	assert.Equal(t, "Exertional (Lift/Carry Occasional)", got.Area.String())
	assert.Equal(t, "<= 10 lbs", got.HypotheticalLimit)
	assert.Equal(t, "Light requires lifting up to 20 lbs", got.JobRequirement)
	assert.Contains(t, got.Description, "10 lbs")
	assert.Contains(t, got.Description, "20 lbs")
}

func TestCheck_Exertional(t *testing.T) {
	tests := []struct {
		name     string
		level    types.Exertion
		limits   types.ExertionalLimits
		wantArea []string
	}{
		{
			name:   "sedentary limits fit sedentary job",
			level:  types.ExertionSedentary,
			limits: types.ExertionalLimits{LiftOccasionalLbs: floatPtr(10), LiftFrequentLbs: floatPtr(0), StandWalkHours: floatPtr(2), SitHours: floatPtr(6)},
		},
		{
			name:     "sedentary job needs six hours sitting",
			level:    types.ExertionSedentary,
			limits:   types.ExertionalLimits{SitHours: floatPtr(4)},
			wantArea: []string{"Exertional (Sit)"},
		},
		{
			name:   "sit hours ignored above sedentary",
			level:  types.ExertionMedium,
			limits: types.ExertionalLimits{SitHours: floatPtr(1)},
		},
		{
			name:     "light job needs six hours on feet",
			level:    types.ExertionLight,
			limits:   types.ExertionalLimits{StandWalkHours: floatPtr(4), LiftFrequentLbs: floatPtr(10)},
			wantArea: []string{"Exertional (Stand/Walk)"},
		},
		{
			name:     "sedentary stand walk below two hours",
			level:    types.ExertionSedentary,
			limits:   types.ExertionalLimits{StandWalkHours: floatPtr(1.5)},
			wantArea: []string{"Exertional (Stand/Walk)"},
		},
		{
			name:     "very heavy exceeds one hundred pounds",
			level:    types.ExertionVeryHeavy,
			limits:   types.ExertionalLimits{LiftOccasionalLbs: floatPtr(100), LiftFrequentLbs: floatPtr(50)},
			wantArea: []string{"Exertional (Lift/Carry Occasional)", "Exertional (Lift/Carry Frequent)"},
		},
		{
			name:     "sit stand option with sedentary",
			level:    types.ExertionSedentary,
			limits:   types.ExertionalLimits{SitStandOption: true},
			wantArea: []string{"Exertional (Sit/Stand Option)"},
		},
		{
			name:     "sit stand option with medium",
			level:    types.ExertionMedium,
			limits:   types.ExertionalLimits{SitStandOption: true},
			wantArea: []string{"Exertional (Sit/Stand Option)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lightJob()
			p.Exertion.Level = tt.level
			limits := tt.limits

			result := newTestChecker().Check(&types.LimitationModel{Exertional: &limits}, p)
			require.True(t, result.Evaluated())
			assert.Equal(t, tt.wantArea, areas(result.Conflicts))
		})
	}
}

func TestCheck_UnknownExertionIsNotAConflict(t *testing.T) {
	p := lightJob()
	p.Exertion.Level = types.ExertionUnknown
	limits := &types.LimitationModel{Exertional: &types.ExertionalLimits{LiftOccasionalLbs: floatPtr(0)}}

	result := newTestChecker().Check(limits, p)
	assert.Empty(t, result.Conflicts)
	require.Len(t, result.Notes, 1)
	assert.Contains(t, result.Notes[0], "exertion level is unknown")
}

func TestCheck_StoopingFrequencies(t *testing.T) {
	limits := &types.LimitationModel{
		Postural: map[string]types.Frequency{"Stooping": types.FrequencyOccasionally},
	}

	tests := []struct {
		job  types.Frequency
		want int
	}{
		{types.FrequencyFrequently, 1},
		{types.FrequencyConstantly, 1},
		{types.FrequencyOccasionally, 0},
		{types.FrequencyNotPresent, 0},
	}

	for _, tt := range tests {
		t.Run(tt.job.String(), func(t *testing.T) {
			p := lightJob()
			p.PhysicalDemands["Stooping"] = types.Demand{Frequency: tt.job}

			result := newTestChecker().Check(limits, p)
			require.Len(t, result.Conflicts, tt.want)
			if tt.want == 1 {
				got := result.Conflicts[0]
				assert.Equal(t, "Physical (Stooping)", got.Area.String())
				assert.Equal(t, "O (Occasionally)", got.HypotheticalLimit)
				assert.Equal(t, tt.job.Label(), got.JobRequirement)
			}
		})
	}
}

func TestCheck_FrequencyMonotonicity(t *testing.T) {
	levels := []types.Frequency{
		types.FrequencyNotPresent,
		types.FrequencyOccasionally,
		types.FrequencyFrequently,
		types.FrequencyConstantly,
	}
	c := newTestChecker()

	for _, job := range levels {
		prev := -1
		for _, limit := range levels {
			p := lightJob()
			p.PhysicalDemands["Reaching"] = types.Demand{Frequency: job}
			limits := &types.LimitationModel{Manipulative: map[string]types.Frequency{"Reaching": limit}}

			n := len(c.Check(limits, p).Conflicts)
			assert.Equal(t, job > limit, n == 1, "job %s limit %s", job.Code(), limit.Code())
			if prev >= 0 {
				assert.LessOrEqual(t, n, prev, "loosening the limit must never add conflicts")
			}
			prev = n
		}
	}
}

func TestCheck_FrequencyCoverageNotes(t *testing.T) {
	p := lightJob()
	p.PhysicalDemands["Balancing"] = types.Demand{Frequency: types.FrequencyUnknown}
	limits := &types.LimitationModel{
		Postural: map[string]types.Frequency{
			"Balancing": types.FrequencyNotPresent,
			"Crawling":  types.FrequencyNotPresent,
			"stooping":  types.FrequencyUnknown,
		},
	}

	result := newTestChecker().Check(limits, p)
	assert.Empty(t, result.Conflicts)
	assert.Len(t, result.Notes, 3)
}

func TestCheck_LabelMatchIgnoresCase(t *testing.T) {
	limits := &types.LimitationModel{
		Manipulative: map[string]types.Frequency{"handling": types.FrequencyFrequently},
	}

	result := newTestChecker().Check(limits, lightJob())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "Physical (Handling)", result.Conflicts[0].Area.String())
}

func TestCheck_LabelsDifferingInCaseGiveOneConflict(t *testing.T) {
	limits := &types.LimitationModel{
		Postural: map[string]types.Frequency{
			"Stooping": types.FrequencyOccasionally,
			"stooping": types.FrequencyNotPresent,
		},
	}

	result := newTestChecker().Check(limits, lightJob())
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "Physical (Stooping)", result.Conflicts[0].Area.String())
	assert.Equal(t, "N (Not Present)", result.Conflicts[0].HypotheticalLimit)
}

func TestCheck_Environmental(t *testing.T) {
	limits := &types.LimitationModel{
		Environmental: map[string]types.Frequency{"Moving Mechanical Parts": types.FrequencyNotPresent},
		NoiseCap:      intPtr(2),
	}

	result := newTestChecker().Check(limits, lightJob())
	assert.Equal(t, []string{"Environmental (Moving Mechanical Parts)", "Environmental (Noise Level)"}, areas(result.Conflicts))
	assert.Equal(t, "<= Level 2 (Quiet)", result.Conflicts[1].HypotheticalLimit)
	assert.Equal(t, "Level 3 (Moderate)", result.Conflicts[1].JobRequirement)

	p := lightJob()
	p.Noise = nil
	result = newTestChecker().Check(&types.LimitationModel{NoiseCap: intPtr(1)}, p)
	assert.Empty(t, result.Conflicts)
	assert.Len(t, result.Notes, 1)
}

func TestCheck_SkillAndGED(t *testing.T) {
	p := lightJob()
	p.Skill.SVP = intPtr(4)
	p.GED.Reasoning = level(3)

	limits := &types.LimitationModel{Mental: &types.MentalLimits{
		MaxSVP:                intPtr(2),
		MaxGEDReasoning:       intPtr(2),
		MaxGEDMath:            intPtr(1),
		InstructionComplexity: types.InstructionsSimple,
	}}

	result := newTestChecker().Check(limits, p)
	assert.Equal(t, []string{"Skill (SVP)", "Mental (GED Reasoning)", "Mental (Instruction Complexity)"}, areas(result.Conflicts))

	instr := result.Conflicts[2]
	assert.Equal(t, "Simple instructions (Approx GED-R <= 2)", instr.HypotheticalLimit)
	assert.Contains(t, instr.Description, "potentially incompatible with: complex instructions")
}

func TestCheck_UnknownSVPIsNoted(t *testing.T) {
	p := lightJob()
	p.Skill = types.SkillProfile{Category: types.SkillUnknown}

	result := newTestChecker().Check(&types.LimitationModel{Mental: &types.MentalLimits{MaxSVP: intPtr(1)}}, p)
	assert.Empty(t, result.Conflicts)
	assert.Len(t, result.Notes, 1)
}

func TestCheck_PaceStressTemperaments(t *testing.T) {
	p := lightJob()
	p.Temperaments = []types.Temperament{{Code: "V"}, {Code: "S"}, {Code: "T"}}

	limits := &types.LimitationModel{Mental: &types.MentalLimits{
		Pace:          "No fast pace production",
		Stress:        "Low stress",
		Concentration: "No high precision work",
	}}

	result := newTestChecker().Check(limits, p)
	assert.Equal(t, []string{"Mental (Pace/Variety)", "Mental (Stress)", "Mental (Concentration/Precision)"}, areas(result.Conflicts))

	p.Temperaments = []types.Temperament{{Code: "R"}}
	assert.Empty(t, newTestChecker().Check(limits, p).Conflicts)
}

func TestCheck_Social(t *testing.T) {
	tests := []struct {
		name   string
		mental types.MentalLimits
		people types.Rating
		temps  []types.Temperament
		want   []string
	}{
		{
			name:   "public occasional with people temperament",
			mental: types.MentalLimits{PublicContact: freqPtr(types.FrequencyOccasionally)},
			people: level(8),
			temps:  []types.Temperament{{Code: "P"}},
			want:   []string{"Mental (Social - Public)"},
		},
		{
			name:   "public none with serving people function",
			mental: types.MentalLimits{PublicContact: freqPtr(types.FrequencyNotPresent)},
			people: level(7),
			want:   []string{"Mental (Social - Public)"},
		},
		{
			name:   "public frequent is not limiting",
			mental: types.MentalLimits{PublicContact: freqPtr(types.FrequencyFrequently)},
			people: level(6),
		},
		{
			name:   "public limited on job without people",
			mental: types.MentalLimits{PublicContact: freqPtr(types.FrequencyOccasionally)},
			people: level(8),
		},
		{
			name:   "coworker limited on job not alone",
			mental: types.MentalLimits{CoworkerContact: freqPtr(types.FrequencyOccasionally)},
			people: level(8),
			want:   []string{"Mental (Social - Coworkers)"},
		},
		{
			name:   "coworker limited on job performed alone",
			mental: types.MentalLimits{CoworkerContact: freqPtr(types.FrequencyOccasionally)},
			people: level(8),
			temps:  []types.Temperament{{Code: "A"}},
		},
		{
			name:   "superficial supervisor contact",
			mental: types.MentalLimits{SupervisorContact: "Superficial only"},
			people: level(8),
			want:   []string{"Mental (Social - Supervisors)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lightJob()
			p.WorkerFunctions.People = tt.people
			p.Temperaments = tt.temps
			mental := tt.mental

			result := newTestChecker().Check(&types.LimitationModel{Mental: &mental}, p)
			assert.Equal(t, tt.want, areas(result.Conflicts))
		})
	}
}

func TestCheck_ConflictOrder(t *testing.T) {
	p := lightJob()
	p.Skill.SVP = intPtr(3)
	p.Temperaments = []types.Temperament{{Code: "S"}}

	limits := &types.LimitationModel{
		Exertional:    &types.ExertionalLimits{LiftOccasionalLbs: floatPtr(10)},
		Postural:      map[string]types.Frequency{"Stooping": types.FrequencyOccasionally},
		Environmental: map[string]types.Frequency{"Moving Mechanical Parts": types.FrequencyNotPresent},
		Mental: &types.MentalLimits{
			MaxSVP:          intPtr(2),
			Stress:          "low",
			CoworkerContact: freqPtr(types.FrequencyNotPresent),
		},
	}

	result := newTestChecker().Check(limits, p)
	assert.Equal(t, []string{
		"Exertional (Lift/Carry Occasional)",
		"Skill (SVP)",
		"Mental (Stress)",
		"Mental (Social - Coworkers)",
		"Physical (Stooping)",
		"Environmental (Moving Mechanical Parts)",
	}, areas(result.Conflicts))
	assert.Equal(t, p.Code, result.JobCode)
}

func areas(conflicts []types.Conflict) []string {
	var out []string
	for _, c := range conflicts {
		out = append(out, c.Area.String())
	}
	return out
}
