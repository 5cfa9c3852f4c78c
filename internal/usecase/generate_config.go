package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/3-lines-studio/greetsite/internal/adapters/cli"
	"github.com/3-lines-studio/greetsite/internal/core"
	"github.com/3-lines-studio/greetsite/internal/log"
)

type GenerateInput struct {
	RootDir     string
	OutputDir   string
	EntryPoints []core.EntryPoint
	// OutFile receives the config; empty writes it to the service's stdout.
	OutFile string
}

type GenerateOutput struct {
	Config  core.BundlerConfig
	Success bool
	Error   error
}

type ConfigService struct {
	fs     FileSystem
	cli    ReportOutput
	stdout io.Writer
	logger zerolog.Logger
	abs    func(string) (string, error)
}

func NewConfigService(fs FileSystem, cli ReportOutput, stdout io.Writer, logger zerolog.Logger) *ConfigService {
	return &ConfigService{
		fs:     fs,
		cli:    cli,
		stdout: stdout,
		logger: logger,
		abs:    filepath.Abs,
	}
}

func (s *ConfigService) Generate(ctx context.Context, input GenerateInput) GenerateOutput {
	s.cli.PrintHeader("Greetsite Config")

	target := input.OutFile
	if target == "" {
		target = "stdout"
	}
	report := cli.NewBuildReport(s.cli, target)
	report.SetEntryCount(len(input.EntryPoints))

	stepValidate := report.StartStep("Validating entry points")
	for _, ep := range input.EntryPoints {
		if err := core.ValidateEntryPoint(ep); err != nil {
			report.EndStep(stepValidate, false, err.Error())
			report.AddError(ep.Name, "Invalid entry point", []string{err.Error()})
			report.Render()
			return GenerateOutput{Success: false, Error: fmt.Errorf("invalid entry point: %w", err)}
		}
	}
	for _, name := range core.DuplicateNames(input.EntryPoints) {
		report.AddWarning(name, "Duplicate entry name", []string{"the last source listed for this name is used"})
	}
	report.EndStep(stepValidate, true, "")

	stepAssemble := report.StartStep("Assembling bundler config")
	rootDir, err := s.abs(input.RootDir)
	if err != nil {
		err = fmt.Errorf("failed to resolve root dir: %w", err)
		return s.fail(report, stepAssemble, "root_dir", "Failed to resolve root dir", err, core.BundlerConfig{})
	}
	config := core.BuildBundlerConfig(rootDir, input.OutputDir, input.EntryPoints)
	s.logger.Debug().
		Interface(log.FieldEntry, config.Entry).
		Interface(log.FieldBindings, config.HTMLBindings()).
		Msg("assembled entry points")
	report.EndStep(stepAssemble, true, "")

	stepWrite := report.StartStep("Writing config")
	if err := ctx.Err(); err != nil {
		return s.fail(report, stepWrite, "config", "Config generation canceled", err, config)
	}
	data, err := encodeConfig(config)
	if err != nil {
		err = fmt.Errorf("failed to marshal config: %w", err)
		return s.fail(report, stepWrite, "config", "Failed to encode config", err, config)
	}
	if err := s.write(input.OutFile, data); err != nil {
		return s.fail(report, stepWrite, "config", "Failed to write config", err, config)
	}
	report.EndStep(stepWrite, true, "")

	report.Render()

	return GenerateOutput{Config: config, Success: !report.HasFailures()}
}

// fail closes the running step, records err and renders the report.
func (s *ConfigService) fail(report *cli.BuildReport, step int, entry, msg string, err error, config core.BundlerConfig) GenerateOutput {
	report.EndStep(step, false, err.Error())
	report.AddError(entry, msg, []string{err.Error()})
	report.Render()
	return GenerateOutput{Config: config, Success: false, Error: err}
}

func (s *ConfigService) write(outFile string, data []byte) error {
	if outFile == "" {
		if _, err := s.stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write config to stdout: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(outFile); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	if err := s.fs.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return nil
}

// encodeConfig keeps regular expression sources readable by not escaping
// HTML characters.
func encodeConfig(config core.BundlerConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(config); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
