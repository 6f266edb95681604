package consistency

import (
	"fmt"
	"strings"

	"github.com/jonathan/ve-auditor/internal/types"
)

func (c *Checker) checkPhysical(caps []types.FrequencyCap, p *types.JobProfile) findings {
	var f findings
	for _, limit := range caps {
		compareFrequency(&f, types.DomainPhysical, "", limit, p.PhysicalDemands)
	}
	return f
}

func (c *Checker) checkEnvironmental(caps []types.FrequencyCap, noiseCap *int, p *types.JobProfile) findings {
	var f findings
	for _, limit := range caps {
		if strings.EqualFold(limit.Label, "Noise") {
			f.note("Environmental: noise is limited with noise_cap (level 1-5); the frequency entry for Noise was not compared.")
			continue
		}
		compareFrequency(&f, types.DomainEnvironmental, "exposure to ", limit, p.EnvironmentalConditions)
	}
	if noiseCap != nil {
		c.compareNoise(&f, *noiseCap, p.Noise)
	}
	return f
}

// compareFrequency reports a conflict when the job's frequency for the
// label is strictly above the cap. Unknown values on either side and labels
// the job does not list only produce coverage notes.
func compareFrequency(f *findings, domain, verb string, limit types.FrequencyCap, demands map[string]types.Demand) {
	if !limit.Cap.Known() {
		f.note(fmt.Sprintf("%s: limit for %s is not a recognized frequency and was not compared.", domain, limit.Label))
		return
	}
	label, demand, ok := types.DemandFor(demands, limit.Label)
	if !ok {
		f.note(fmt.Sprintf("%s: job lists no %s requirement (treated as Not Present); limit %s was not compared.",
			domain, limit.Label, limit.Cap.Label()))
		return
	}
	if !demand.Frequency.Known() {
		f.note(fmt.Sprintf("%s: job frequency for %s is unknown; limit %s was not compared.",
			domain, label, limit.Cap.Label()))
		return
	}
	if demand.Frequency.Exceeds(limit.Cap) {
		f.conflict(types.ConflictArea{Domain: domain, SubArea: label},
			limit.Cap.Label(),
			demand.Frequency.Label(),
			fmt.Sprintf("Job requires %s%s %s, but hypothetical limits to %s.",
				verb, label, demand.Frequency.Label(), limit.Cap.Label()))
	}
}

func (c *Checker) compareNoise(f *findings, limit int, noise *types.NoiseLevel) {
	limitInfo, ok := c.tables.Noise(limit)
	if !ok {
		f.note(fmt.Sprintf("Environmental: noise limit %d is outside levels 1-5 and was not compared.", limit))
		return
	}
	if noise == nil {
		f.note(fmt.Sprintf("Environmental: job noise level is unknown; noise limit Level %d was not compared.", limit))
		return
	}
	if noise.Level > limit {
		f.conflict(types.ConflictArea{Domain: types.DomainEnvironmental, SubArea: "Noise Level"},
			fmt.Sprintf("<= Level %d (%s)", limit, limitInfo.Name),
			fmt.Sprintf("Level %d (%s)", noise.Level, noise.Name),
			fmt.Sprintf("Job requires Noise Level %d (%s), but hypothetical limits to Level %d (%s) or less.",
				noise.Level, noise.Name, limit, limitInfo.Name))
	}
}
