package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

// ColorWriter is the part of Output a BuildReport renders through.
type ColorWriter interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type Issue struct {
	Entry   string
	Message string
	Details []string
}

// BuildReport collects timed steps, warnings and errors of a config run and
// renders them once at the end.
type BuildReport struct {
	out         ColorWriter
	steps       []BuildStep
	warnings    []Issue
	errors      []Issue
	startTime   time.Time
	entryCount  int
	outputPath  string
	hasFailures bool
}

func NewBuildReport(out ColorWriter, outputPath string) *BuildReport {
	return &BuildReport{
		out:        out,
		steps:      make([]BuildStep, 0),
		warnings:   make([]Issue, 0),
		errors:     make([]Issue, 0),
		startTime:  time.Now(),
		outputPath: outputPath,
	}
}

func (r *BuildReport) SetEntryCount(count int) {
	r.entryCount = count
}

// StartStep returns the index of the new step for EndStep.
func (r *BuildReport) StartStep(name string) int {
	r.steps = append(r.steps, BuildStep{
		Name:      name,
		StartTime: time.Now(),
	})
	return len(r.steps) - 1
}

func (r *BuildReport) EndStep(idx int, success bool, err string) {
	step := &r.steps[idx]
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(entry string, message string, details []string) {
	r.warnings = append(r.warnings, Issue{
		Entry:   entry,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(entry string, message string, details []string) {
	r.errors = append(r.errors, Issue{
		Entry:   entry,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) Steps() []BuildStep {
	return r.steps
}

func (r *BuildReport) Warnings() []Issue {
	return r.warnings
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	w := r.out.Writer()
	fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"%d entry points found\n", r.entryCount)

	failed := make([]string, 0, len(r.steps))
	for _, step := range r.steps {
		if !step.Success {
			failed = append(failed, "  "+r.out.Red("✗ ")+step.Name)
		}
	}

	if len(failed) == 0 {
		fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"Config generated in %s\n", formatDuration(duration))
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed steps:")
		for _, line := range failed {
			fmt.Fprintln(w, line)
		}
	}

	r.renderOutputPath()
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	w := r.out.Writer()
	fmt.Fprintf(w, "  %d entry points found\n", r.entryCount)

	fmt.Fprintln(w)
	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Fprintf(w, "  %s %s\n", status, step.Name)
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(r.out.ErrWriter(), "  "+r.out.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(r.out.ErrWriter(), r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  "+r.out.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(w, r.warnings)
	}

	fmt.Fprintln(w)
	if len(r.errors) > 0 {
		fmt.Fprintf(r.out.ErrWriter(), "  %s\n", r.out.Red(fmt.Sprintf("Config generation failed after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(w, "  "+r.out.Green("✓ ")+"Config generated in %s\n", formatDuration(duration))
	}

	r.renderOutputPath()
}

func (r *BuildReport) renderOutputPath() {
	if r.outputPath != "" {
		fmt.Fprintf(r.out.Writer(), "\n  %s\n", r.out.Gray("Output: "+r.outputPath))
	}
}

func (r *BuildReport) renderIssues(w io.Writer, issues []Issue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), issue.Entry)
		fmt.Fprintf(w, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// deduplicateStrings keeps first-seen order and annotates repeats.
func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if counts[item] > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, counts[item]))
		} else {
			result = append(result, item)
		}
	}

	return result
}
