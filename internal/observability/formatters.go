// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/ve-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of an occupation profile.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", profile.Title))
	sb.WriteString(fmt.Sprintf("DOT code:  %s\n", profile.Code))
	sb.WriteString(fmt.Sprintf("Exertion:  %s\n", profile.Exertion.Level))
	sb.WriteString(fmt.Sprintf("SVP:       %s (%s)\n", level(profile.Skill.SVP), profile.Skill.Category))
	sb.WriteString(fmt.Sprintf("GED R/M/L: %s/%s/%s\n",
		level(profile.GED.Reasoning.Level), level(profile.GED.Math.Level), level(profile.GED.Language.Level)))
	sb.WriteString(fmt.Sprintf("DPT:       %s%s%s\n",
		level(profile.WorkerFunctions.Data.Level), level(profile.WorkerFunctions.People.Level), level(profile.WorkerFunctions.Things.Level)))
	sb.WriteString(fmt.Sprintf("SSR:       %s\n", profile.ApplicableSSR))

	demands := make([]string, 0, len(profile.PhysicalDemands))
	for label, d := range profile.PhysicalDemands {
		if d.Frequency.Known() && d.Frequency != types.FrequencyNotPresent {
			demands = append(demands, fmt.Sprintf("%s %s", label, d.Frequency))
		}
	}
	if len(demands) > 0 {
		sort.Strings(demands)
		sb.WriteString("\nPhysical demands:\n")
		writeList(&sb, demands)
	}

	if len(profile.Unknowns) > 0 {
		sb.WriteString(fmt.Sprintf("\nUnknown codes: %d field(s)\n", len(profile.Unknowns)))
	}
	if profile.Obsolescence != nil {
		sb.WriteString(fmt.Sprintf("\nListed in %s (reference only)\n", profile.Obsolescence.EM))
	}

	p.printBox("OCCUPATION PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConsistency outputs the conflicts found between a hypothetical and a job.
func (p *Printer) PrintConsistency(result *types.ConsistencyResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if !result.Evaluated() {
		sb.WriteString(fmt.Sprintf("Not evaluated: %s\n", result.Message))
		p.printBox("CONSISTENCY CHECK", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString(fmt.Sprintf("Job:       %s %s\n", result.JobCode, result.JobTitle))
	sb.WriteString(fmt.Sprintf("Conflicts: %d\n", len(result.Conflicts)))
	if len(result.Conflicts) > 0 {
		sb.WriteString("\n")
		items := make([]string, 0, len(result.Conflicts))
		for _, c := range result.Conflicts {
			items = append(items, fmt.Sprintf("%s: %s vs %s", c.Area, c.HypotheticalLimit, c.JobRequirement))
		}
		writeList(&sb, items)
	}
	if len(result.Notes) > 0 {
		sb.WriteString(fmt.Sprintf("\nNotes: %d\n", len(result.Notes)))
	}

	p.printBox("CONSISTENCY CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGridResult outputs a grid rule lookup.
func (p *Printer) PrintGridResult(result *types.GridRuleResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if result.Matched {
		sb.WriteString(fmt.Sprintf("Rule:      %s\n", result.RuleID))
		sb.WriteString(fmt.Sprintf("Decision:  %s\n", result.Decision))
		if len(result.AlsoMatched) > 0 {
			sb.WriteString(fmt.Sprintf("Also:      %s\n", strings.Join(result.AlsoMatched, ", ")))
		}
	} else {
		sb.WriteString("No rule directs a finding\n")
	}
	sb.WriteString("\n")
	sb.WriteString(wrap(result.Reasoning, boxWidth-4))

	p.printBox("GRID RULE", sb.String())
}

// PrintTSAResult outputs a transferable skills analysis summary.
func (p *Printer) PrintTSAResult(result *types.TSAResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PRW:       %s %s\n", result.PRWCode, result.PRWTitle))
	sb.WriteString(fmt.Sprintf("Skill:     %s (SVP %s)\n", result.PRWSkill, level(result.PRWSVP)))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", result.Status))

	if len(result.Targets) > 0 {
		transferable := 0
		items := make([]string, 0, len(result.Targets))
		for _, t := range result.Targets {
			mark := "✗"
			if t.Transferable {
				mark = "✓"
				transferable++
			}
			items = append(items, fmt.Sprintf("%s %s (%s)", mark, t.TargetCode, t.Status))
		}
		sb.WriteString(fmt.Sprintf("\nTargets: %d of %d transferable\n", transferable, len(result.Targets)))
		writeList(&sb, items)
	}
	if result.Grid != nil && result.Grid.Matched {
		sb.WriteString(fmt.Sprintf("\nGrid:      %s (%s)\n", result.Grid.RuleID, result.Grid.Decision))
	}
	sb.WriteString("\n")
	sb.WriteString(wrap(result.Conclusion, boxWidth-4))

	p.printBox("TRANSFERABLE SKILLS ANALYSIS", sb.String())
}

func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func level(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

// wrap breaks text on spaces so each line fits in width runes.
func wrap(text string, width int) string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
