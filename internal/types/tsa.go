package types

// SkillFingerprint is the comparable skill signature of an occupation.
// Nil fields could not be derived and must fail transferability closed.
type SkillFingerprint struct {
	Code       string   `json:"code,omitempty"`
	Title      string   `json:"title,omitempty"`
	SVP        *int     `json:"svp,omitempty"`
	Data       *int     `json:"wf_data,omitempty"`
	People     *int     `json:"wf_people,omitempty"`
	Things     *int     `json:"wf_things,omitempty"`
	WorkFields []string `json:"work_fields,omitempty"`
	MPSMS      []string `json:"mpsms,omitempty"`
	Exertion   Exertion `json:"exertion"`
}

// HasEssentials reports whether SVP and all three worker functions are known.
func (f SkillFingerprint) HasEssentials() bool {
	return f.SVP != nil && f.Data != nil && f.People != nil && f.Things != nil
}

// Transferability check keys.
const (
	CheckExertionMet          = "exertion_met"
	CheckSVPCompatible        = "svp_compatible"
	CheckWorkerFunctionsMatch = "worker_functions_match"
	CheckWFldMPSMSOverlap     = "wfld_mpsms_overlap"
)

// CheckOrder lists the check keys in evaluation order.
var CheckOrder = []string{
	CheckExertionMet,
	CheckSVPCompatible,
	CheckWorkerFunctionsMatch,
	CheckWFldMPSMSOverlap,
}

// Transferability status values.
const (
	TransferEvaluated         = "evaluated"
	TransferInsufficientData  = "insufficient_data"
	TransferTargetUnavailable = "target_unavailable"
)

// TransferabilityResult is the outcome of comparing a source fingerprint
// against one target occupation.
type TransferabilityResult struct {
	TargetCode        string            `json:"target_code"`
	TargetTitle       string            `json:"target_title,omitempty"`
	Status            string            `json:"status"`
	Transferable      bool              `json:"transferable"`
	Checks            map[string]bool   `json:"checks"`
	Reason            string            `json:"reason"`
	SharedWorkFields  []string          `json:"shared_work_fields,omitempty"`
	SharedMPSMS       []string          `json:"shared_mpsms,omitempty"`
	TargetFingerprint *SkillFingerprint `json:"target_fingerprint,omitempty"`
}

// TSA status values.
const (
	TSAComplete      = "complete"
	TSANotApplicable = "not_applicable"
)

// ClaimantFactors are the vocational factors a TSA was run against.
type ClaimantFactors struct {
	RFC       Exertion          `json:"rfc"`
	Age       AgeCategory       `json:"age"`
	Education EducationCategory `json:"education"`
}

// TSAResult is a complete transferable skills analysis.
type TSAResult struct {
	Status                   string                  `json:"status"`
	PRWCode                  string                  `json:"prw_code"`
	PRWTitle                 string                  `json:"prw_title,omitempty"`
	PRWSVP                   *int                    `json:"prw_svp,omitempty"`
	PRWSkill                 SkillCategory           `json:"prw_skill"`
	Claimant                 ClaimantFactors         `json:"claimant"`
	SourceFingerprint        *SkillFingerprint       `json:"source_fingerprint,omitempty"`
	Targets                  []TransferabilityResult `json:"targets"`
	TargetsAssessed          bool                    `json:"targets_assessed"`
	Transferable             bool                    `json:"transferable"`
	TransferabilityReasoning string                  `json:"transferability_reasoning"`
	Grid                     *GridRuleResult         `json:"grid,omitempty"`
	Conclusion               string                  `json:"conclusion"`
}
