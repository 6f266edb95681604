// Package types provides type definitions for structured data used throughout the ve-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// JobProfile is the structured view of one DOT occupation record.
type JobProfile struct {
	Title                   string            `json:"title"`
	Code                    string            `json:"code"`
	Ncode                   string            `json:"ncode,omitempty"`
	Definition              string            `json:"definition,omitempty"`
	ApplicableSSR           string            `json:"applicable_ssr"`
	Exertion                ExertionProfile   `json:"exertion"`
	Skill                   SkillProfile      `json:"skill"`
	GED                     GEDProfile        `json:"ged"`
	WorkerFunctions         WorkerFunctions   `json:"worker_functions"`
	PhysicalDemands         map[string]Demand `json:"physical_demands"`
	EnvironmentalConditions map[string]Demand `json:"environmental_conditions"`
	Noise                   *NoiseLevel       `json:"noise,omitempty"`
	Aptitudes               map[string]Rating `json:"aptitudes,omitempty"`
	Temperaments            []Temperament     `json:"temperaments,omitempty"`
	WorkFields              []string          `json:"work_fields,omitempty"`
	MPSMS                   []string          `json:"mpsms,omitempty"`
	Unknowns                []UnknownCode     `json:"unknowns,omitempty"`
	Obsolescence            *ObsolescenceRef  `json:"obsolescence,omitempty"`
}

// ExertionProfile holds the strength rating of an occupation.
type ExertionProfile struct {
	Level       Exertion `json:"level"`
	Num         *int     `json:"num,omitempty"`
	Code        string   `json:"code,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SkillProfile holds the SVP rating and the derived skill category.
type SkillProfile struct {
	SVP         *int          `json:"svp,omitempty"`
	Description string        `json:"description,omitempty"`
	Category    SkillCategory `json:"category"`
}

// Rating is an optional numeric level with its reference description.
type Rating struct {
	Level       *int   `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
}

// Known reports whether the rating carries a valid level.
func (r Rating) Known() bool {
	return r.Level != nil
}

// GEDProfile holds the three General Educational Development axes.
type GEDProfile struct {
	Reasoning Rating `json:"reasoning"`
	Math      Rating `json:"math"`
	Language  Rating `json:"language"`
}

// WorkerFunctions holds the Data, People and Things ratings (0-8).
type WorkerFunctions struct {
	Data   Rating `json:"data"`
	People Rating `json:"people"`
	Things Rating `json:"things"`
}

// Demand is the frequency of one physical activity or environmental condition.
type Demand struct {
	Frequency   Frequency `json:"frequency"`
	Description string    `json:"description,omitempty"`
}

// NoiseLevel is the DOT noise intensity level (1-5).
type NoiseLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Temperament is a DOT temperament code with its reference text.
type Temperament struct {
	Code           string `json:"code"`
	Description    string `json:"description,omitempty"`
	Considerations string `json:"considerations,omitempty"`
}

// UnknownCode records a record field whose value was outside its domain.
type UnknownCode struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ObsolescenceRef marks an occupation listed in an SSA emergency message.
// It is a reference note only and never a determination.
type ObsolescenceRef struct {
	EM      string `json:"em"`
	Comment string `json:"comment,omitempty"`
}

// HasTemperament reports whether the profile carries the given code.
func (p *JobProfile) HasTemperament(code string) bool {
	for _, t := range p.Temperaments {
		if strings.EqualFold(t.Code, code) {
			return true
		}
	}
	return false
}

// DemandFor looks up a physical demand or environmental condition by label,
// ignoring case. The second return value is false when the label is absent.
func DemandFor(demands map[string]Demand, label string) (string, Demand, bool) {
	if d, ok := demands[label]; ok {
		return label, d, true
	}
	for k, d := range demands {
		if strings.EqualFold(k, label) {
			return k, d, true
		}
	}
	return "", Demand{}, false
}
