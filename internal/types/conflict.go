package types

import "fmt"

// Conflict domains.
const (
	DomainExertional    = "Exertional"
	DomainSkill         = "Skill"
	DomainMental        = "Mental"
	DomainPhysical      = "Physical"
	DomainEnvironmental = "Environmental"
)

// ConflictArea identifies where a conflict was found, e.g. Physical/Stooping.
type ConflictArea struct {
	Domain  string `json:"domain"`
	SubArea string `json:"sub_area"`
}

// String formats the area as "Domain (SubArea)".
func (a ConflictArea) String() string {
	if a.SubArea == "" {
		return a.Domain
	}
	return fmt.Sprintf("%s (%s)", a.Domain, a.SubArea)
}

// Conflict is one incompatibility between a stated limit and a job requirement.
type Conflict struct {
	Area              ConflictArea `json:"area"`
	HypotheticalLimit string       `json:"hypothetical_limit"`
	JobRequirement    string       `json:"job_requirement"`
	Description       string       `json:"description"`
}

// ConsistencyStatus values.
const (
	StatusEvaluated    = "evaluated"
	StatusInvalidInput = "invalid_input"
)

// ConsistencyResult is the checker's output for one hypothetical and one job.
// An invalid_input result carries no conflicts and must not be read as
// "no conflicts found".
type ConsistencyResult struct {
	Status    string     `json:"status"`
	JobCode   string     `json:"job_code,omitempty"`
	JobTitle  string     `json:"job_title,omitempty"`
	Conflicts []Conflict `json:"conflicts"`
	Notes     []string   `json:"notes,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// Evaluated reports whether the comparison actually ran.
func (r ConsistencyResult) Evaluated() bool {
	return r.Status == StatusEvaluated
}
