package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/greetsite/internal/core"
)

// Loader handles configuration loading with precedence.
type Loader struct {
	configPath string
	optional   bool
	lookupEnv  func(string) (string, bool)
}

// NewLoader creates a loader for configPath. When optional is set a missing
// file falls back to defaults instead of failing.
func NewLoader(configPath string, optional bool) *Loader {
	return &Loader{
		configPath: configPath,
		optional:   optional,
		lookupEnv:  os.LookupEnv,
	}
}

// Load loads configuration with precedence: ENV > File > Defaults.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		switch {
		case err == nil:
			if err := mergeFileConfig(&cfg, fileCfg); err != nil {
				return cfg, fmt.Errorf("merge file config: %w", err)
			}
		case l.optional && errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnvConfig(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParseFileConfig(data)
}

// ParseFileConfig decodes a YAML document strictly: unknown keys and
// trailing documents are rejected.
func ParseFileConfig(data []byte) (*FileConfig, error) {
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if err == io.EOF {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(cfg *AppConfig, fileCfg *FileConfig) error {
	if fileCfg.RootDir != "" {
		cfg.RootDir = fileCfg.RootDir
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}

	if fileCfg.EntryPoints != nil {
		if len(fileCfg.EntryPoints) == 0 {
			return ErrNoEntryPoints
		}
		cfg.EntryPoints = normalizeEntryPoints(fileCfg.EntryPoints)
	}

	if fileCfg.Server.Listen != "" {
		cfg.Server.Listen = fileCfg.Server.Listen
	}
	if fileCfg.Server.SiteDir != "" {
		cfg.Server.SiteDir = fileCfg.Server.SiteDir
	}
	if fileCfg.Server.GreetingName != "" {
		cfg.Server.GreetingName = fileCfg.Server.GreetingName
	}
	if fileCfg.Server.RateLimitRPS != 0 {
		cfg.Server.RateLimitRPS = fileCfg.Server.RateLimitRPS
	}

	if fileCfg.Log.Level != "" {
		cfg.Log.Level = fileCfg.Log.Level
	}

	return nil
}

// normalizeEntryPoints fills the name and template from the html output name
// when the file leaves them out.
func normalizeEntryPoints(in []core.EntryPoint) []core.EntryPoint {
	out := make([]core.EntryPoint, len(in))
	for i, ep := range in {
		if ep.Name == "" && ep.HTML != "" {
			ep.Name = core.EntryNameForHTML(ep.HTML)
		}
		if ep.Template == "" && ep.HTML != "" {
			ep.Template = core.TemplatePathForHTML(ep.HTML)
		}
		out[i] = ep
	}
	return out
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	if v, ok := l.lookupEnv(EnvListen); ok && v != "" {
		cfg.Server.Listen = v
	}
	if v, ok := l.lookupEnv(EnvSiteDir); ok && v != "" {
		cfg.Server.SiteDir = v
	}
	if v, ok := l.lookupEnv(EnvRootDir); ok && v != "" {
		cfg.RootDir = v
	}
	if v, ok := l.lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks every entry point. Duplicate names are allowed here; the
// assembler keeps the last one.
func Validate(cfg AppConfig) error {
	for i, ep := range cfg.EntryPoints {
		if err := core.ValidateEntryPoint(ep); err != nil {
			return fmt.Errorf("%w: entry_points[%d]: %v", ErrInvalidEntryPoint, i, err)
		}
	}

	if cfg.Server.RateLimitRPS < 0 {
		return fmt.Errorf("server.rate_limit_rps must not be negative")
	}

	return nil
}
