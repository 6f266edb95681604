// Package reference holds the immutable lookup data the auditor compares
// against: DOT vocabularies, exertional thresholds, the Medical-Vocational
// Guidelines tables and the optional obsolescence reference list.
//
// Tables are loaded once at startup and are safe for concurrent reads.
package reference

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/ve-auditor/internal/dotcode"
	"github.com/jonathan/ve-auditor/internal/schemas"
	"github.com/jonathan/ve-auditor/internal/types"
)

//go:embed data/medical_vocational_guidelines.json
var defaultGrid []byte

// LoadError reports a reference file that could not be read or parsed.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load reference data %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load reference data %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Options controls where reference data is read from.
type Options struct {
	// GridPath overrides the embedded Medical-Vocational Guidelines file.
	GridPath string
	// ObsolescencePath is an optional JSON list of DOT codes named in SSA
	// emergency messages.
	ObsolescencePath string
	Logger           *zap.Logger
}

// Tables is the loaded reference data.
type Tables struct {
	grid         *types.GridReference
	sections     map[string]*types.GridSection
	obsolescence map[int]types.ObsolescenceRef
}

// New builds Tables from already-parsed data. A nil grid yields Tables
// without TSA support.
func New(grid *types.GridReference, obsolescence map[int]types.ObsolescenceRef) *Tables {
	t := &Tables{
		grid:         grid,
		sections:     make(map[string]*types.GridSection),
		obsolescence: obsolescence,
	}
	if grid != nil {
		for i := range grid.Sections {
			t.sections[grid.Sections[i].SectionNumber] = &grid.Sections[i]
		}
	}
	if t.obsolescence == nil {
		t.obsolescence = make(map[int]types.ObsolescenceRef)
	}
	return t
}

// Load reads the grid (embedded unless overridden) and the optional
// obsolescence list. Any failure is returned; Tables are never partially empty.
func Load(opts Options) (*Tables, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	source := "embedded grid"
	data := defaultGrid
	if opts.GridPath != "" {
		source = opts.GridPath
		var err error
		data, err = os.ReadFile(opts.GridPath)
		if err != nil {
			return nil, &LoadError{Source: source, Message: "failed to read grid file", Cause: err}
		}
	}

	grid, err := parseGrid(source, data)
	if err != nil {
		return nil, err
	}

	var obsolescence map[int]types.ObsolescenceRef
	if opts.ObsolescencePath != "" {
		f, err := os.Open(opts.ObsolescencePath)
		if err != nil {
			return nil, &LoadError{Source: opts.ObsolescencePath, Message: "failed to open obsolescence file", Cause: err}
		}
		defer func() { _ = f.Close() }()
		obsolescence, err = LoadObsolescence(f)
		if err != nil {
			return nil, err
		}
	}

	t := New(grid, obsolescence)
	logger.Info("reference tables loaded",
		zap.String("grid_source", source),
		zap.Int("grid_sections", len(grid.Sections)),
		zap.Int("obsolescence_entries", len(t.obsolescence)))
	return t, nil
}

// LoadGrid parses and schema-validates a guidelines reference document.
func LoadGrid(r io.Reader) (*types.GridReference, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Source: "grid", Message: "failed to read grid data", Cause: err}
	}
	return parseGrid("grid", data)
}

func parseGrid(source string, data []byte) (*types.GridReference, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &LoadError{Source: source, Message: "grid data is empty"}
	}
	if err := schemas.Validate(schemas.GridRules, data); err != nil {
		return nil, &LoadError{Source: source, Message: "grid data failed schema validation", Cause: err}
	}
	var grid types.GridReference
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to parse grid JSON", Cause: err}
	}
	return &grid, nil
}

type obsolescenceEntry struct {
	DOTCode string `json:"DOT Code"`
	EM      string `json:"EM"`
	Comment string `json:"Comment"`
}

// LoadObsolescence parses a JSON list of {"DOT Code", "EM", "Comment"}
// entries keyed by numeric DOT code. Entries with unparsable codes are skipped.
func LoadObsolescence(r io.Reader) (map[int]types.ObsolescenceRef, error) {
	var entries []obsolescenceEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, &LoadError{Source: "obsolescence", Message: "failed to parse obsolescence JSON", Cause: err}
	}
	refs := make(map[int]types.ObsolescenceRef, len(entries))
	for _, e := range entries {
		code, err := dotcode.Clean(e.DOTCode)
		if err != nil {
			continue
		}
		refs[code.Ncode] = types.ObsolescenceRef{EM: e.EM, Comment: e.Comment}
	}
	return refs, nil
}

// Grid returns the guidelines reference, or nil when none was loaded.
func (t *Tables) Grid() *types.GridReference {
	return t.grid
}

// GridSection returns the table for a section number such as "201.00".
func (t *Tables) GridSection(number string) (*types.GridSection, bool) {
	s, ok := t.sections[number]
	return s, ok
}

// Obsolescence looks up a DOT code in any accepted format.
func (t *Tables) Obsolescence(code string) (types.ObsolescenceRef, bool) {
	c, err := dotcode.Clean(code)
	if err != nil {
		return types.ObsolescenceRef{}, false
	}
	ref, ok := t.obsolescence[c.Ncode]
	return ref, ok
}

// Strength returns the definition and thresholds of a known exertion level.
func (t *Tables) Strength(e types.Exertion) (Strength, bool) {
	s, ok := strengths[e]
	return s, ok
}

// Frequency describes a known frequency level.
func (t *Tables) Frequency(f types.Frequency) (FrequencyInfo, bool) {
	info, ok := frequencies[f]
	return info, ok
}

// SVP returns the training-time description of an SVP level (1-9).
func (t *Tables) SVP(level int) (string, bool) {
	d, ok := svpDescriptions[level]
	return d, ok
}

// GED returns the description of a GED level (1-6) on an axis.
func (t *Tables) GED(axis GEDAxis, level int) (string, bool) {
	d, ok := gedDescriptions[axis][level]
	return d, ok
}

// ReasoningNotes returns the mental limitation notes for a GED reasoning level.
func (t *Tables) ReasoningNotes(level int) (ReasoningNotes, bool) {
	n, ok := reasoningNotes[level]
	return n, ok
}

// WorkerFunction returns the description of a worker function level (0-8).
func (t *Tables) WorkerFunction(axis WorkerFunctionAxis, level int) (string, bool) {
	d, ok := workerFunctions[axis][level]
	return d, ok
}

// Temperament looks up a temperament code, ignoring case.
func (t *Tables) Temperament(code string) (TemperamentInfo, bool) {
	info, ok := temperaments[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// Aptitudes returns the aptitude columns in G, V, N ... C order.
func (t *Tables) Aptitudes() []Aptitude {
	return aptitudes
}

// AptitudeLevel describes an aptitude level (1-5).
func (t *Tables) AptitudeLevel(level int) (AptitudeLevel, bool) {
	a, ok := aptitudeLevels[level]
	return a, ok
}

// Noise describes a noise intensity level (1-5).
func (t *Tables) Noise(level int) (NoiseInfo, bool) {
	n, ok := noiseLevels[level]
	return n, ok
}

// PhysicalDemands lists the physical demand columns in report order.
func (t *Tables) PhysicalDemands() []DemandField {
	return physicalDemands
}

// EnvironmentalConditions lists the environmental columns in report order,
// excluding noise.
func (t *Tables) EnvironmentalConditions() []DemandField {
	return environmentalConditions
}
