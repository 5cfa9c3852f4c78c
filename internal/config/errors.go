package config

import "errors"

var (
	// ErrUnknownConfigField classifies strict YAML parse failures caused by unknown keys.
	ErrUnknownConfigField = errors.New("unknown config field")
	// ErrNoEntryPoints is returned when the file lists an empty entry_points block.
	ErrNoEntryPoints = errors.New("no entry points configured")
	// ErrInvalidEntryPoint wraps validation failures of a single entry point.
	ErrInvalidEntryPoint = errors.New("invalid entry point")
)
