package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LimitationModel(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name:     "valid hypothetical",
			document: `{"exertional":{"lift_occasional_lbs":20,"lift_frequent_lbs":10},"postural":{"Stooping":"O"},"mental":{"max_svp":2}}`,
		},
		{
			name:     "empty object",
			document: `{}`,
		},
		{
			name:      "unknown top-level field",
			document:  `{"lifting":20}`,
			wantError: true,
		},
		{
			name:      "noise cap out of range",
			document:  `{"noise_cap":9}`,
			wantError: true,
		},
		{
			name:      "instruction complexity outside vocabulary",
			document:  `{"mental":{"instruction_complexity":"Easy"}}`,
			wantError: true,
		},
		{
			name:      "negative lift",
			document:  `{"exertional":{"lift_occasional_lbs":-5}}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(LimitationModel, []byte(tt.document))
			if tt.wantError {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok, "error should be ValidationError type, got %T", err)
				assert.Greater(t, len(validationErr.Errors), 0)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_GridRules(t *testing.T) {
	valid := `{"sections":[{"section_number":"201.00","title":"Table 1","table":{"rules":[
		{"rule_id":"201.01","age":"Advanced age","education":"Limited or less","previous_work_experience":"Unskilled or none","decision":"Disabled"}
	]}}]}`
	assert.NoError(t, Validate(GridRules, []byte(valid)))

	badDecision := `{"sections":[{"section_number":"201.00","table":{"rules":[
		{"rule_id":"201.01","age":"Advanced age","education":"Limited or less","previous_work_experience":"Unskilled or none","decision":"Maybe"}
	]}}]}`
	err := Validate(GridRules, []byte(badDecision))
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)

	missingSections := `{}`
	assert.Error(t, Validate(GridRules, []byte(missingSections)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent.schema.json", []byte(`{}`))
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(LimitationModel, []byte("{ invalid json }"))
	require.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "limits.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"noise_cap":3}`), 0644))

	assert.NoError(t, ValidateFile(LimitationModel, path))

	err := ValidateFile(LimitationModel, filepath.Join(tmpDir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read JSON file")
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "mental.max_svp", Message: "Must be less than or equal to 9"},
			{Field: "noise_cap", Message: "Invalid type"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "mental.max_svp")
	assert.Contains(t, errorMsg, "noise_cap")
}
