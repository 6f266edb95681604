// Package profile turns raw DOT occupation records into structured job profiles.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/records"
	"github.com/jonathan/ve-auditor/internal/reference"
	"github.com/jonathan/ve-auditor/internal/types"
)

// ErrNoData is returned for an empty or missing record. No partial profile
// is produced.
var ErrNoData = errors.New("no occupation data")

const missingValue = "(missing)"

// Builder converts records into JobProfiles using the reference tables.
type Builder struct {
	tables *reference.Tables
	logger *zap.Logger
}

// NewBuilder creates a Builder. A nil logger disables logging.
func NewBuilder(tables *reference.Tables, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{tables: tables, logger: logger}
}

// Build converts one record. The hearing date only selects the SSR label.
// Codes outside their valid domain are recorded in JobProfile.Unknowns and
// never replaced by a default level.
func (b *Builder) Build(record records.Record, hearingDate string) (*types.JobProfile, error) {
	if record.IsEmpty() {
		return nil, ErrNoData
	}

	p := &types.JobProfile{
		Title:                   record.String("Title", "jobTitle", "title"),
		Definition:              record.String("Definition", "definition"),
		ApplicableSSR:           ApplicableSSR(hearingDate),
		PhysicalDemands:         make(map[string]types.Demand),
		EnvironmentalConditions: make(map[string]types.Demand),
	}

	b.setCode(p, record)
	b.setExertion(p, record)
	b.setSkill(p, record)
	b.setGED(p, record)
	b.setWorkerFunctions(p, record)
	b.setDemands(p, record)
	b.setAptitudes(p, record)
	b.setTemperaments(p, record)
	p.WorkFields = collectCodes(record, "WField%dShort")
	p.MPSMS = collectCodes(record, "MPSMS%dShort")

	if p.Code != "" {
		if ref, ok := b.tables.Obsolescence(p.Code); ok {
			p.Obsolescence = &ref
		}
	}

	if len(p.Unknowns) > 0 {
		b.logger.Warn("record contains codes outside their valid domain",
			zap.String("code", p.Code),
			zap.Int("unknown_fields", len(p.Unknowns)))
	}
	b.logger.Debug("built job profile",
		zap.String("code", p.Code),
		zap.String("title", p.Title),
		zap.String("exertion", p.Exertion.Level.String()))

	return p, nil
}

func (b *Builder) setCode(p *types.JobProfile, record records.Record) {
	raw := record.String("Code", "dotCode", "dotCodeReal", "code")
	if code, err := dotcode.Clean(raw); err == nil {
		p.Code = code.Formatted
		p.Ncode = code.Digits()
		return
	}
	if code, err := dotcode.Clean(record.String("Ncode", "ncode")); err == nil {
		p.Code = code.Formatted
		p.Ncode = code.Digits()
		return
	}
	p.Code = raw
	value := raw
	if value == "" {
		value = missingValue
	}
	unknown(p, "Code", value)
}

func (b *Builder) setExertion(p *types.JobProfile, record records.Record) {
	level := types.ExertionUnknown
	n, presence := record.Int("StrengthNum")
	switch presence {
	case records.Present:
		level = types.ExertionFromNum(n)
		if !level.Known() {
			unknown(p, "StrengthNum", record.Raw("StrengthNum"))
		}
	case records.Invalid:
		unknown(p, "StrengthNum", record.Raw("StrengthNum"))
	case records.Missing:
		if letter := record.String("Strength"); letter != "" {
			level = types.ParseExertion(letter)
			if !level.Known() {
				unknown(p, "Strength", letter)
			}
		} else {
			unknown(p, "StrengthNum", missingValue)
		}
	}

	p.Exertion = types.ExertionProfile{Level: level}
	if s, ok := b.tables.Strength(level); ok {
		num := int(level)
		p.Exertion.Num = &num
		p.Exertion.Code = s.Code
		p.Exertion.Description = s.Description
	}
}

func (b *Builder) setSkill(p *types.JobProfile, record records.Record) {
	p.Skill.Category = types.SkillUnknown
	n, presence := record.Int("SVPNum", "SVP")
	if presence == records.Missing {
		unknown(p, "SVPNum", missingValue)
		return
	}
	desc, ok := b.tables.SVP(n)
	if presence == records.Invalid || !ok {
		unknown(p, "SVPNum", record.Raw("SVPNum", "SVP"))
		return
	}
	svp := n
	p.Skill = types.SkillProfile{
		SVP:         &svp,
		Description: desc,
		Category:    types.SkillCategoryFromSVP(svp),
	}
}

func (b *Builder) setGED(p *types.JobProfile, record records.Record) {
	p.GED.Reasoning = b.rating(p, record, "GEDR", func(n int) (string, bool) { return b.tables.GED(reference.GEDReasoning, n) })
	p.GED.Math = b.rating(p, record, "GEDM", func(n int) (string, bool) { return b.tables.GED(reference.GEDMath, n) })
	p.GED.Language = b.rating(p, record, "GEDL", func(n int) (string, bool) { return b.tables.GED(reference.GEDLanguage, n) })
}

func (b *Builder) setWorkerFunctions(p *types.JobProfile, record records.Record) {
	p.WorkerFunctions.Data = b.rating(p, record, "WFData", func(n int) (string, bool) { return b.tables.WorkerFunction(reference.WFData, n) })
	p.WorkerFunctions.People = b.rating(p, record, "WFPeople", func(n int) (string, bool) { return b.tables.WorkerFunction(reference.WFPeople, n) })
	p.WorkerFunctions.Things = b.rating(p, record, "WFThings", func(n int) (string, bool) { return b.tables.WorkerFunction(reference.WFThings, n) })
}

// rating reads a bounded level whose domain is defined by describe.
func (b *Builder) rating(p *types.JobProfile, record records.Record, column string, describe func(int) (string, bool)) types.Rating {
	n, presence := record.Int(column)
	if presence == records.Missing {
		unknown(p, column, missingValue)
		return types.Rating{}
	}
	desc, ok := describe(n)
	if presence == records.Invalid || !ok {
		unknown(p, column, record.Raw(column))
		return types.Rating{}
	}
	level := n
	return types.Rating{Level: &level, Description: desc}
}

func (b *Builder) setDemands(p *types.JobProfile, record records.Record) {
	for _, f := range b.tables.PhysicalDemands() {
		if d, ok := demand(p, record, f); ok {
			p.PhysicalDemands[f.Label] = d
		}
	}
	for _, f := range b.tables.EnvironmentalConditions() {
		if d, ok := demand(p, record, f); ok {
			p.EnvironmentalConditions[f.Label] = d
		}
	}

	n, presence := record.Int(reference.NoiseColumn)
	switch presence {
	case records.Missing:
	case records.Present:
		if info, ok := b.tables.Noise(n); ok {
			p.Noise = &types.NoiseLevel{Level: n, Name: info.Name, Description: info.Description}
			return
		}
		fallthrough
	default:
		unknown(p, reference.NoiseColumn, record.Raw(reference.NoiseColumn))
	}
}

// demand reads one frequency column. A missing column yields no entry; an
// out-of-domain value yields FrequencyUnknown so the checker can flag it.
func demand(p *types.JobProfile, record records.Record, f reference.DemandField) (types.Demand, bool) {
	n, presence := record.Int(f.Column)
	if presence == records.Missing {
		return types.Demand{}, false
	}
	freq := types.FrequencyUnknown
	if presence == records.Present {
		freq = types.FrequencyFromNum(n)
	}
	if !freq.Known() {
		unknown(p, f.Column, record.Raw(f.Column))
	}
	return types.Demand{Frequency: freq, Description: f.Description}, true
}

func (b *Builder) setAptitudes(p *types.JobProfile, record records.Record) {
	for _, apt := range b.tables.Aptitudes() {
		n, presence := record.Int(apt.Column)
		if presence == records.Missing {
			continue
		}
		level, ok := b.tables.AptitudeLevel(n)
		if presence == records.Invalid || !ok {
			unknown(p, apt.Column, record.Raw(apt.Column))
			continue
		}
		if p.Aptitudes == nil {
			p.Aptitudes = make(map[string]types.Rating)
		}
		v := n
		p.Aptitudes[apt.Code] = types.Rating{
			Level:       &v,
			Description: fmt.Sprintf("%s: %s (%s)", apt.Name, level.Description, level.Percentile),
		}
	}
}

func (b *Builder) setTemperaments(p *types.JobProfile, record records.Record) {
	seen := make(map[string]bool)
	for i := 1; i <= 5; i++ {
		column := fmt.Sprintf("Temp%d", i)
		code := strings.ToUpper(record.String(column))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		info, ok := b.tables.Temperament(code)
		if !ok {
			unknown(p, column, code)
			continue
		}
		p.Temperaments = append(p.Temperaments, types.Temperament{
			Code:           info.Code,
			Description:    info.Description,
			Considerations: info.Considerations,
		})
	}
}

func collectCodes(record records.Record, pattern string) []string {
	var codes []string
	seen := make(map[string]bool)
	for i := 1; i <= 3; i++ {
		code := record.String(fmt.Sprintf(pattern, i))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

func unknown(p *types.JobProfile, field, value string) {
	p.Unknowns = append(p.Unknowns, types.UnknownCode{Field: field, Value: value})
}
