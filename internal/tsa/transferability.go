package tsa

import (
	"fmt"
	"strings"

	"github.com/jonathan/ve-auditor/internal/types"
)

// maxSVPReduction is the largest SVP drop from source to target that still
// allows skills to transfer.
const maxSVPReduction = 2

// ReasonTransferable is the reason given when every check passes.
const ReasonTransferable = "Skills transferable based on criteria."

// EvaluateTransferability compares a source fingerprint with one target
// profile under the claimant's RFC. All four checks must pass. Missing SVP
// or worker function data on either side yields insufficient_data with
// every check false.
func EvaluateTransferability(source types.SkillFingerprint, target *types.JobProfile, rfc types.Exertion) types.TransferabilityResult {
	result := types.TransferabilityResult{
		Status: types.TransferEvaluated,
		Checks: make(map[string]bool, len(types.CheckOrder)),
	}
	for _, key := range types.CheckOrder {
		result.Checks[key] = false
	}
	if target == nil {
		result.Status = types.TransferTargetUnavailable
		result.Reason = "Target occupation data unavailable."
		return result
	}

	fp := ExtractFingerprint(target)
	result.TargetCode = target.Code
	result.TargetTitle = target.Title
	result.TargetFingerprint = &fp

	var missing []string
	if source.SVP == nil || fp.SVP == nil {
		missing = append(missing, "SVP missing in source or target")
	}
	if !hasWorkerFunctions(source) || !hasWorkerFunctions(fp) {
		missing = append(missing, "Worker Function ratings missing or incomplete in source or target")
	}
	if len(missing) > 0 {
		result.Status = types.TransferInsufficientData
		result.Reason = "Essential data missing for comparison: " + strings.Join(missing, "; ") + "."
		return result
	}

	var failed []string

	// Exertion: the target must not exceed the RFC. Unknown on either side fails.
	if rfc.Known() && fp.Exertion.Known() && fp.Exertion <= rfc {
		result.Checks[types.CheckExertionMet] = true
	} else {
		failed = append(failed, fmt.Sprintf("Target exertion (%s) exceeds or cannot be compared with RFC (%s)", fp.Exertion, rfc))
	}

	src, tgt := *source.SVP, *fp.SVP
	if tgt <= src && src-tgt <= maxSVPReduction {
		result.Checks[types.CheckSVPCompatible] = true
	} else {
		failed = append(failed, fmt.Sprintf("Target SVP (%d) not compatible with Source SVP (%d) (max %d level reduction)", tgt, src, maxSVPReduction))
	}

	if *source.Data == *fp.Data && *source.People == *fp.People && *source.Things == *fp.Things {
		result.Checks[types.CheckWorkerFunctionsMatch] = true
	} else {
		failed = append(failed, fmt.Sprintf("Worker Functions (DPT) do not match (%d%d%d vs %d%d%d)",
			*source.Data, *source.People, *source.Things, *fp.Data, *fp.People, *fp.Things))
	}

	result.SharedWorkFields = intersect(source.WorkFields, fp.WorkFields)
	result.SharedMPSMS = intersect(source.MPSMS, fp.MPSMS)
	if len(result.SharedWorkFields) > 0 || len(result.SharedMPSMS) > 0 {
		result.Checks[types.CheckWFldMPSMSOverlap] = true
	} else {
		failed = append(failed, "No overlap found in Work Fields or MPSMS")
	}

	if len(failed) == 0 {
		result.Transferable = true
		result.Reason = ReasonTransferable
		return result
	}
	result.Reason = "Skills not transferable to this specific job: " + strings.Join(failed, "; ") + "."
	return result
}

func hasWorkerFunctions(fp types.SkillFingerprint) bool {
	return fp.Data != nil && fp.People != nil && fp.Things != nil
}

// intersect returns the codes of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, code := range b {
		set[code] = true
	}
	var out []string
	for _, code := range a {
		if set[code] {
			out = append(out, code)
			delete(set, code)
		}
	}
	return out
}
