package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitationModel_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"exertional": {"lift_occasional_lbs": 10, "stand_walk_hours": 2, "sit_stand_option": true},
		"postural": {"Stooping": "O", "Climbing": "N"},
		"manipulative": {"Handling": "F"},
		"environmental": {"Extreme Cold": "N"},
		"noise_cap": 3,
		"mental": {
			"max_svp": 2,
			"instruction_complexity": "Simple",
			"public_contact": "O",
			"supervisor_contact": "superficial"
		}
	}`

	var limits LimitationModel
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &limits))
	require.NotNil(t, limits.Exertional)
	require.NotNil(t, limits.Exertional.LiftOccasionalLbs)
	assert.Equal(t, 10.0, *limits.Exertional.LiftOccasionalLbs)
	assert.Nil(t, limits.Exertional.LiftFrequentLbs)
	assert.True(t, limits.Exertional.SitStandOption)
	assert.Equal(t, FrequencyOccasionally, limits.Postural["Stooping"])
	require.NotNil(t, limits.Mental.PublicContact)
	assert.Equal(t, FrequencyOccasionally, *limits.Mental.PublicContact)
	assert.Nil(t, limits.Mental.CoworkerContact)
	assert.Equal(t, InstructionsSimple, limits.Mental.InstructionComplexity)
	assert.NoError(t, limits.Validate())
	assert.False(t, limits.IsEmpty())
}

func TestLimitationModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limits  LimitationModel
		wantErr bool
	}{
		{
			name:   "empty model is structurally valid",
			limits: LimitationModel{},
		},
		{
			name:    "noise cap out of range",
			limits:  LimitationModel{NoiseCap: intPtr(6)},
			wantErr: true,
		},
		{
			name:    "negative lift",
			limits:  LimitationModel{Exertional: &ExertionalLimits{LiftOccasionalLbs: floatPtr(-1)}},
			wantErr: true,
		},
		{
			name:    "stand walk beyond a workday",
			limits:  LimitationModel{Exertional: &ExertionalLimits{StandWalkHours: floatPtr(9)}},
			wantErr: true,
		},
		{
			name:    "svp cap out of range",
			limits:  LimitationModel{Mental: &MentalLimits{MaxSVP: intPtr(10)}},
			wantErr: true,
		},
		{
			name:    "unknown instruction complexity",
			limits:  LimitationModel{Mental: &MentalLimits{InstructionComplexity: "Moderate"}},
			wantErr: true,
		},
		{
			name:   "ged caps in range",
			limits: LimitationModel{Mental: &MentalLimits{MaxGEDReasoning: intPtr(2), MaxGEDMath: intPtr(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLimitationModel_IsEmpty(t *testing.T) {
	var nilModel *LimitationModel
	assert.True(t, nilModel.IsEmpty())
	assert.True(t, (&LimitationModel{}).IsEmpty())
	assert.True(t, (&LimitationModel{Exertional: &ExertionalLimits{}, Mental: &MentalLimits{}}).IsEmpty())
	assert.False(t, (&LimitationModel{Mental: &MentalLimits{Pace: "no fast pace"}}).IsEmpty())
	assert.False(t, (&LimitationModel{Visual: map[string]Frequency{"Near Acuity": FrequencyOccasionally}}).IsEmpty())
}

func TestLimitationModel_PhysicalCapsOrder(t *testing.T) {
	limits := LimitationModel{
		Postural:     map[string]Frequency{"Stooping": FrequencyOccasionally, "Climbing": FrequencyNotPresent},
		Manipulative: map[string]Frequency{"Reaching": FrequencyFrequently},
		Sensory:      map[string]Frequency{"Hearing": FrequencyFrequently},
	}

	caps := limits.PhysicalCaps()
	require.Len(t, caps, 4)
	assert.Equal(t, "Climbing", caps[0].Label)
	assert.Equal(t, "Stooping", caps[1].Label)
	assert.Equal(t, "Reaching", caps[2].Label)
	assert.Equal(t, "Hearing", caps[3].Label)
}

func TestLimitationModel_CapsFoldLabelCase(t *testing.T) {
	limits := LimitationModel{
		Postural: map[string]Frequency{
			"Stooping": FrequencyFrequently,
			"stooping": FrequencyOccasionally,
			"STOOPING": FrequencyUnknown,
		},
		Environmental: map[string]Frequency{"Wet": FrequencyOccasionally, "wet ": FrequencyNotPresent},
	}

	caps := limits.PhysicalCaps()
	require.Len(t, caps, 1)
	assert.Equal(t, "STOOPING", caps[0].Label)
	assert.Equal(t, FrequencyOccasionally, caps[0].Cap)

	env := limits.EnvironmentalCaps()
	require.Len(t, env, 1)
	assert.Equal(t, FrequencyNotPresent, env[0].Cap)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
