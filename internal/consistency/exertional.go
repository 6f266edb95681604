package consistency

import (
	"fmt"
	"strconv"

	"github.com/jonathan/ve-auditor/internal/types"
)

func exertionalArea(sub string) types.ConflictArea {
	return types.ConflictArea{Domain: types.DomainExertional, SubArea: sub}
}

// checkExertional compares lifting and positional limits with the
// definitional thresholds of the job's exertion level. A limit only
// conflicts when it allows less than the level requires.
func (c *Checker) checkExertional(limits *types.ExertionalLimits, p *types.JobProfile) findings {
	var f findings
	if limits == nil {
		return f
	}
	s, ok := c.tables.Strength(p.Exertion.Level)
	if !ok {
		f.note("Exertional: job exertion level is unknown; lifting and positional limits were not compared.")
		return f
	}
	level := s.Name

	if v := limits.LiftOccasionalLbs; v != nil && *v < s.LiftOccasionalLbs {
		f.conflict(exertionalArea("Lift/Carry Occasional"),
			fmt.Sprintf("<= %s lbs", num(*v)),
			fmt.Sprintf("%s requires lifting up to %s lbs", level, num(s.LiftOccasionalLbs)),
			fmt.Sprintf("Hypothetical allows lifting only %s lbs occasionally, but %s work requires lifting up to %s lbs.",
				num(*v), level, num(s.LiftOccasionalLbs)))
	}

	if v := limits.LiftFrequentLbs; v != nil && *v < s.LiftFrequentLbs {
		f.conflict(exertionalArea("Lift/Carry Frequent"),
			fmt.Sprintf("<= %s lbs", num(*v)),
			fmt.Sprintf("%s requires lifting up to %s lbs frequently", level, num(s.LiftFrequentLbs)),
			fmt.Sprintf("Hypothetical allows lifting only %s lbs frequently, but %s work requires lifting up to %s lbs frequently.",
				num(*v), level, num(s.LiftFrequentLbs)))
	}

	if v := limits.StandWalkHours; v != nil && *v < s.StandWalkHours {
		f.conflict(exertionalArea("Stand/Walk"),
			fmt.Sprintf("<= %s hours", num(*v)),
			fmt.Sprintf("%s requires standing/walking about %s hours", level, num(s.StandWalkHours)),
			fmt.Sprintf("Hypothetical limits standing/walking to %s hours, but %s work requires about %s hours.",
				num(*v), level, num(s.StandWalkHours)))
	}

	// Only sedentary work is defined by prolonged sitting.
	sedentary := p.Exertion.Level == types.ExertionSedentary
	if v := limits.SitHours; v != nil && sedentary && *v < s.SitHours {
		f.conflict(exertionalArea("Sit"),
			fmt.Sprintf("<= %s hours", num(*v)),
			fmt.Sprintf("%s requires sitting about %s hours", level, num(s.SitHours)),
			fmt.Sprintf("Hypothetical limits sitting to %s hours, but %s work requires about %s hours.",
				num(*v), level, num(s.SitHours)))
	}

	if limits.SitStandOption {
		if sedentary {
			f.conflict(exertionalArea("Sit/Stand Option"),
				"Needs sit/stand option at will",
				fmt.Sprintf("%s requires prolonged sitting (~%s hours)", level, num(s.SitHours)),
				"Hypothetical requires sit/stand option at will, conflicting with prolonged sitting needed for Sedentary work unless the job specifically allows alternation.")
		} else {
			f.conflict(exertionalArea("Sit/Stand Option"),
				"Needs sit/stand option at will",
				fmt.Sprintf("%s requires prolonged standing/walking (~%s hours)", level, num(s.StandWalkHours)),
				fmt.Sprintf("Hypothetical requires sit/stand option at will, conflicting with prolonged standing/walking needed for %s work unless the job specifically allows alternation.", level))
		}
	}

	return f
}

// num renders a pound or hour value without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
