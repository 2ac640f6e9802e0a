// Package config loads, normalizes, and validates prevgen configuration.
//
// It supplies repository defaults matching the stock P5 proxy script,
// expands user paths (including tilde shortcuts), and reads TOML files.
// The Config type centralizes every knob the generator needs: output
// toggles, quality profiles, the workflow path mapping rule, transcoder
// selection, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and validated tokens.
package config
