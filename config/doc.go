// Package config loads logging pipeline configuration from YAML with
// environment variable overrides, and assembles the configured sinks
// into a ready-to-install backend.
//
// Precedence is defaults, then the YAML document, then environment
// variables. Load applies all three and validates the result:
//
//	cfg, err := config.Load("logging.yaml")
//	if err != nil { ... }
//	b, closeFn, err := cfg.Build()
//	if err != nil { ... }
//	defer closeFn()
//	backend.SetDefault(b)
package config
