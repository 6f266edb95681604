package tsa

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ve-auditor/internal/reference"
	"github.com/jonathan/ve-auditor/internal/types"
)

// DefaultWorkers bounds concurrent target evaluation when no limit is set.
const DefaultWorkers = 4

// ErrNoSource is returned when a request has no PRW profile.
var ErrNoSource = errors.New("source occupation profile is required")

// TargetInput is one candidate occupation. A nil Profile means the target's
// record could not be found or built.
type TargetInput struct {
	Code    string
	Profile *types.JobProfile
}

// Request is a single TSA run.
type Request struct {
	Source    *types.JobProfile
	Targets   []TargetInput
	RFC       types.Exertion
	Age       types.AgeCategory
	Education types.EducationCategory
}

// Engine runs transferable skills analyses.
type Engine struct {
	resolver *Resolver
	logger   *zap.Logger
	workers  int
}

// NewEngine creates an Engine. It fails with ErrGridUnavailable when tables
// carry no grid reference. workers <= 0 selects DefaultWorkers.
func NewEngine(tables *reference.Tables, workers int, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tables == nil {
		return nil, ErrGridUnavailable
	}
	resolver, err := NewResolver(tables.Grid(), logger)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Engine{resolver: resolver, logger: logger, workers: workers}, nil
}

// Resolver returns the engine's grid rule resolver.
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// Analyze runs a TSA. Unskilled PRW short-circuits to not_applicable with no
// evaluation and no grid lookup. Targets are evaluated concurrently and
// reported in request order. The only errors are a missing source and
// context cancellation.
func (e *Engine) Analyze(ctx context.Context, req Request) (*types.TSAResult, error) {
	if req.Source == nil {
		return nil, ErrNoSource
	}
	src := req.Source
	prwSkill := skillCategory(src.Skill)

	result := &types.TSAResult{
		PRWCode:  src.Code,
		PRWTitle: src.Title,
		PRWSVP:   copyInt(src.Skill.SVP),
		PRWSkill: prwSkill,
		Claimant: types.ClaimantFactors{RFC: req.RFC, Age: req.Age, Education: req.Education},
		Targets:  []types.TransferabilityResult{},
	}

	if prwSkill == types.SkillUnskilled {
		e.logger.Info("TSA not applicable, PRW is unskilled", zap.String("prw", src.Code))
		result.Status = types.TSANotApplicable
		result.TransferabilityReasoning = "PRW is unskilled; there are no skills to transfer."
		result.Conclusion = fmt.Sprintf("TSA not applicable: PRW (%s) is Unskilled (SVP %s). No skills to transfer.",
			src.Code, svpText(src.Skill.SVP))
		return result, nil
	}

	fp := ExtractFingerprint(src)
	result.SourceFingerprint = &fp
	if !fp.HasEssentials() {
		e.logger.Warn("source fingerprint incomplete", zap.String("prw", src.Code))
	}

	targets, err := e.evaluateTargets(ctx, fp, req)
	if err != nil {
		return nil, err
	}
	result.Targets = targets
	result.TargetsAssessed = len(req.Targets) > 0

	var firstTransferable string
	for _, t := range targets {
		if t.Transferable {
			result.Transferable = true
			firstTransferable = t.TargetCode
			break
		}
	}
	switch {
	case !result.TargetsAssessed:
		result.TransferabilityReasoning = "Transferability was not assessed against specific targets."
	case result.Transferable:
		result.TransferabilityReasoning = fmt.Sprintf("Skills transferable to at least one target (%s).", firstTransferable)
	default:
		result.TransferabilityReasoning = "Skills not transferable to any of the specified targets based on criteria."
	}

	grid := e.resolver.Resolve(types.GridQuery{
		RFC:          req.RFC,
		Age:          req.Age,
		Education:    req.Education,
		PRWSkill:     prwSkill,
		Transferable: result.Transferable,
	})
	result.Grid = &grid
	result.Conclusion = conclusion(result)
	result.Status = types.TSAComplete

	e.logger.Info("TSA complete",
		zap.String("prw", src.Code),
		zap.Int("targets", len(targets)),
		zap.Bool("transferable", result.Transferable),
		zap.String("rule_id", grid.RuleID),
		zap.String("decision", grid.Decision))
	return result, nil
}

// evaluateTargets fans target evaluation out over a bounded worker pool.
// Each worker writes only its own index, so output order equals input order.
func (e *Engine) evaluateTargets(ctx context.Context, fp types.SkillFingerprint, req Request) ([]types.TransferabilityResult, error) {
	results := make([]types.TransferabilityResult, len(req.Targets))
	if len(req.Targets) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, target := range req.Targets {
		if gctx.Err() != nil {
			break
		}
		i, target := i, target
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluateTarget(fp, target, req.RFC)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to evaluate targets: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to evaluate targets: %w", err)
	}
	return results, nil
}

func (e *Engine) evaluateTarget(fp types.SkillFingerprint, target TargetInput, rfc types.Exertion) types.TransferabilityResult {
	if target.Profile == nil {
		e.logger.Warn("target occupation unavailable", zap.String("target", target.Code))
		r := EvaluateTransferability(fp, nil, rfc)
		r.TargetCode = target.Code
		return r
	}
	r := EvaluateTransferability(fp, target.Profile, rfc)
	if r.TargetCode == "" {
		r.TargetCode = target.Code
	}
	e.logger.Debug("evaluated target",
		zap.String("target", r.TargetCode),
		zap.String("status", r.Status),
		zap.Bool("transferable", r.Transferable))
	return r
}

// conclusion cites the grid rule when one directs a finding. Otherwise it
// reports the transferability outcome without stating a determination.
func conclusion(r *types.TSAResult) string {
	g := r.Grid
	if g != nil && g.Matched {
		return fmt.Sprintf("Grid Rule %s directs a finding of '%s' based on the provided factors and skill transferability status (%t).",
			g.RuleID, g.Decision, r.Transferable)
	}
	reason := "no grid result"
	if g != nil {
		reason = g.Reasoning
	}
	switch {
	case !r.TargetsAssessed:
		return fmt.Sprintf("Grid Rules do not direct a finding (%s). Transferability was not assessed against specific targets.", reason)
	case r.Transferable:
		return fmt.Sprintf("Grid Rules do not direct a finding (%s). Skills were found transferable to at least one target occupation within the RFC.", reason)
	default:
		return fmt.Sprintf("Grid Rules do not direct a finding (%s). Skills were not found transferable to the specified target occupations.", reason)
	}
}

// skillCategory derives the category from the SVP when one is known, so a
// caller-built profile without a category still takes the unskilled exit.
func skillCategory(s types.SkillProfile) types.SkillCategory {
	if s.SVP != nil {
		if c := types.SkillCategoryFromSVP(*s.SVP); c != types.SkillUnknown {
			return c
		}
	}
	return s.Category
}

func svpText(svp *int) string {
	if svp == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *svp)
}
