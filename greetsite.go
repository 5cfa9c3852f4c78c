// Package greetsite exposes the greeting site's bundler config assembly and
// its HTTP surface for embedding in other Go programs.
package greetsite

import (
	iofs "io/fs"
	"net/http"

	"github.com/rs/zerolog"

	httpadapter "github.com/3-lines-studio/greetsite/internal/adapters/http"
	"github.com/3-lines-studio/greetsite/internal/core"
	"github.com/3-lines-studio/greetsite/internal/usecase"
)

type EntryPoint = core.EntryPoint

type EntryMap = core.EntryMap

type TemplateBinding = core.TemplateBinding

type BundlerConfig = core.BundlerConfig

// Assemble maps entry points to the bundler entry map and template bindings.
func Assemble(entryPoints []EntryPoint) (EntryMap, []TemplateBinding) {
	return core.Assemble(entryPoints)
}

// NewBundlerConfig returns the full production bundler config for the entry
// points. An empty outputDir uses the default relative to rootDir.
func NewBundlerConfig(rootDir, outputDir string, entryPoints []EntryPoint) BundlerConfig {
	return core.BuildBundlerConfig(rootDir, outputDir, entryPoints)
}

func DefaultEntryPoints() []EntryPoint {
	return core.DefaultEntryPoints()
}

type appConfig struct {
	greetingName string
	rateLimitRPS int
	logger       zerolog.Logger
}

type Option func(*appConfig)

func WithGreetingName(name string) Option {
	return func(c *appConfig) {
		c.greetingName = name
	}
}

func WithRateLimit(rps int) Option {
	return func(c *appConfig) {
		c.rateLimitRPS = rps
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

type App struct {
	handler http.Handler
}

// New serves site (the bundler output) plus GET /api/greet.
func New(site iofs.FS, opts ...Option) *App {
	cfg := appConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if site == nil {
		panic("greetsite: nil site filesystem passed to New")
	}

	return &App{
		handler: httpadapter.NewRouter(httpadapter.RouterConfig{
			Greet:        httpadapter.NewGreetHandler(usecase.NewGreetService(cfg.greetingName)),
			Site:         httpadapter.NewSiteHandler(site),
			Logger:       cfg.logger,
			RateLimitRPS: cfg.rateLimitRPS,
		}),
	}
}

func (a *App) Handler() http.Handler {
	return a.handler
}
