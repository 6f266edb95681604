// Package consistency compares a claimant hypothetical against a job profile
// and reports every incompatibility it finds.
package consistency

import (
	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/reference"
	"github.com/jonathan/ve-auditor/internal/types"
)

// InvalidInputMessage is the single marker carried by an invalid_input result.
const InvalidInputMessage = "Invalid input for consistency check"

// findings accumulates conflicts and coverage notes from one sub-check.
type findings struct {
	conflicts []types.Conflict
	notes     []string
}

func (f *findings) conflict(area types.ConflictArea, limit, requirement, description string) {
	f.conflicts = append(f.conflicts, types.Conflict{
		Area:              area,
		HypotheticalLimit: limit,
		JobRequirement:    requirement,
		Description:       description,
	})
}

func (f *findings) note(s string) {
	f.notes = append(f.notes, s)
}

func (f *findings) merge(other findings) {
	f.conflicts = append(f.conflicts, other.conflicts...)
	f.notes = append(f.notes, other.notes...)
}

// Checker runs the consistency sub-checks against shared reference tables.
type Checker struct {
	tables *reference.Tables
	logger *zap.Logger
}

// NewChecker creates a Checker. A nil logger disables logging.
func NewChecker(tables *reference.Tables, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{tables: tables, logger: logger}
}

// Check compares limits against profile. Conflicts are reported in a fixed
// order: exertional, skill, mental (GED, pace and stress, social), physical,
// environmental. A nil or empty limitation model or a nil profile yields an
// invalid_input result that carries no conflicts.
func (c *Checker) Check(limits *types.LimitationModel, profile *types.JobProfile) types.ConsistencyResult {
	if limits.IsEmpty() || profile == nil {
		c.logger.Warn("consistency check received invalid input",
			zap.Bool("limits_empty", limits.IsEmpty()),
			zap.Bool("profile_nil", profile == nil))
		return types.ConsistencyResult{
			Status:    types.StatusInvalidInput,
			Conflicts: []types.Conflict{},
			Message:   InvalidInputMessage,
		}
	}

	var all findings
	all.merge(c.checkExertional(limits.Exertional, profile))
	all.merge(checkSkill(limits.Mental, profile))
	all.merge(c.checkGED(limits.Mental, profile))
	all.merge(checkPaceStress(limits.Mental, profile))
	all.merge(checkSocial(limits.Mental, profile))
	all.merge(c.checkPhysical(limits.PhysicalCaps(), profile))
	all.merge(c.checkEnvironmental(limits.EnvironmentalCaps(), limits.NoiseCap, profile))

	if all.conflicts == nil {
		all.conflicts = []types.Conflict{}
	}

	for _, n := range all.notes {
		c.logger.Debug("coverage note", zap.String("code", profile.Code), zap.String("note", n))
	}
	if len(all.conflicts) > 0 {
		c.logger.Info("consistency check found conflicts",
			zap.String("code", profile.Code),
			zap.Int("conflicts", len(all.conflicts)))
	}

	return types.ConsistencyResult{
		Status:    types.StatusEvaluated,
		JobCode:   profile.Code,
		JobTitle:  profile.Title,
		Conflicts: all.conflicts,
		Notes:     all.notes,
	}
}
