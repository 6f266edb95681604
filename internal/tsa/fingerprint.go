// Package tsa implements transferable skills analysis: skill fingerprints,
// per-target transferability, grid rule resolution and the orchestration
// that ties them together.
package tsa

import "github.com/jonathan/ve-auditor/internal/types"

// ExtractFingerprint derives the skill signature of a profile. Values that
// are unknown in the profile stay nil so that comparisons fail closed.
func ExtractFingerprint(p *types.JobProfile) types.SkillFingerprint {
	if p == nil {
		return types.SkillFingerprint{}
	}
	return types.SkillFingerprint{
		Code:       p.Code,
		Title:      p.Title,
		SVP:        copyInt(p.Skill.SVP),
		Data:       copyInt(p.WorkerFunctions.Data.Level),
		People:     copyInt(p.WorkerFunctions.People.Level),
		Things:     copyInt(p.WorkerFunctions.Things.Level),
		WorkFields: nonEmpty(p.WorkFields),
		MPSMS:      nonEmpty(p.MPSMS),
		Exertion:   p.Exertion.Level,
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func nonEmpty(codes []string) []string {
	var out []string
	for _, c := range codes {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
