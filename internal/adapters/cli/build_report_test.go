package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBuildReportMinimal(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewWriterOutput(&out, &errOut), "webpack.config.json")
	report.SetEntryCount(2)

	step := report.StartStep("Assembling entry points")
	report.EndStep(step, true, "")
	report.Render()

	got := out.String()
	if !strings.Contains(got, "✓ 2 entry points found") {
		t.Errorf("Expected entry count line, got:\n%s", got)
	}
	if !strings.Contains(got, "Config generated in") {
		t.Errorf("Expected completion line, got:\n%s", got)
	}
	if !strings.Contains(got, "Output: webpack.config.json") {
		t.Errorf("Expected output path, got:\n%s", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected empty stderr, got:\n%s", errOut.String())
	}
	if report.HasFailures() {
		t.Error("Expected no failures")
	}
}

func TestBuildReportWarnings(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewWriterOutput(&out, &errOut), "")
	report.SetEntryCount(2)
	report.AddWarning("index", "Duplicate entry name", []string{"last one wins", "last one wins"})
	report.Render()

	got := out.String()
	if !strings.Contains(got, "⚠ Warnings (1):") {
		t.Errorf("Expected warnings header, got:\n%s", got)
	}
	if !strings.Contains(got, "last one wins (2 occurrences)") {
		t.Errorf("Expected deduplicated detail, got:\n%s", got)
	}
	if report.HasFailures() {
		t.Error("Warnings must not mark the report failed")
	}
}

func TestBuildReportErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewWriterOutput(&out, &errOut), "")

	step := report.StartStep("Writing config")
	report.EndStep(step, false, "disk full")
	report.AddError("config", "Failed to write config", []string{"disk full"})
	report.Render()

	if !report.HasFailures() {
		t.Error("Expected failures")
	}
	if !strings.Contains(out.String(), "✗ Writing config") {
		t.Errorf("Expected failed step line, got:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), "Errors (1):") || !strings.Contains(errOut.String(), "Config generation failed") {
		t.Errorf("Expected errors on stderr, got:\n%s", errOut.String())
	}
	if steps := report.Steps(); steps[0].EndTime.IsZero() || steps[0].Error != "disk full" {
		t.Errorf("Expected ended step with error, got %+v", steps[0])
	}
}

func TestDeduplicateStringsKeepsOrder(t *testing.T) {
	got := deduplicateStrings([]string{"b", "a", "b", "c"})
	want := []string{"b (2 occurrences)", "a", "c"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("deduplicateStrings() = %v, want %v", got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(250 * time.Millisecond); got != "250ms" {
		t.Errorf("formatDuration(250ms) = %q", got)
	}
	if got := formatDuration(1500 * time.Millisecond); got != "1.5s" {
		t.Errorf("formatDuration(1.5s) = %q", got)
	}
}

func TestOutputWithoutColors(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewWriterOutput(&out, &errOut)

	o.PrintHeader("Greetsite Config")
	o.PrintSuccess("wrote %s", "a.json")
	o.PrintError("failed: %v", "boom")

	if out.String() != "Greetsite Config\n\n  ✓ wrote a.json\n" {
		t.Errorf("Unexpected stdout: %q", out.String())
	}
	if errOut.String() != "  ✗ failed: boom\n" {
		t.Errorf("Unexpected stderr: %q", errOut.String())
	}
	if o.Green("x") != "x" {
		t.Error("Expected no color codes")
	}
}
