// Package config loads greetsite settings with precedence ENV > file > defaults.
package config

import (
	"github.com/3-lines-studio/greetsite/internal/core"
)

const (
	DefaultConfigFile   = "greetsite.yaml"
	DefaultRootDir      = "site"
	DefaultListen       = ":8080"
	DefaultSiteDir      = "target/classes/site"
	DefaultGreetingName = "World"
	DefaultLogLevel     = "info"
)

// Environment overrides.
const (
	EnvListen   = "GREETSITE_LISTEN"
	EnvSiteDir  = "GREETSITE_SITE_DIR"
	EnvRootDir  = "GREETSITE_ROOT_DIR"
	EnvLogLevel = "LOG_LEVEL"
)

type AppConfig struct {
	RootDir     string
	OutputDir   string
	EntryPoints []core.EntryPoint
	Server      ServerConfig
	Log         LogConfig
}

type ServerConfig struct {
	Listen       string
	SiteDir      string
	GreetingName string
	RateLimitRPS int
}

type LogConfig struct {
	Level string
}

// FileConfig mirrors the YAML file. Pointer-free zero values mean "unset".
type FileConfig struct {
	RootDir     string            `yaml:"root_dir"`
	OutputDir   string            `yaml:"output_dir"`
	EntryPoints []core.EntryPoint `yaml:"entry_points"`
	Server      FileServerConfig  `yaml:"server"`
	Log         FileLogConfig     `yaml:"log"`
}

type FileServerConfig struct {
	Listen       string `yaml:"listen"`
	SiteDir      string `yaml:"site_dir"`
	GreetingName string `yaml:"greeting_name"`
	RateLimitRPS int    `yaml:"rate_limit_rps"`
}

type FileLogConfig struct {
	Level string `yaml:"level"`
}

func Defaults() AppConfig {
	return AppConfig{
		RootDir:     DefaultRootDir,
		OutputDir:   core.DefaultOutputDir,
		EntryPoints: core.DefaultEntryPoints(),
		Server: ServerConfig{
			Listen:       DefaultListen,
			SiteDir:      DefaultSiteDir,
			GreetingName: DefaultGreetingName,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}
