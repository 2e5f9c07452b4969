// Package config loads pipeline configuration from an optional YAML file,
// STATFLOW_* environment overrides and built-in defaults, in that order.
package config
