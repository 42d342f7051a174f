// Package config loads and validates application configuration.
//
// Configuration is resolved in precedence order: built-in defaults, an
// optional YAML file (scorecli.yaml, overridable via SCORE_CONFIG_FILE),
// then environment variables with the SCORE_ prefix. The resulting
// Config is validated before use; an invalid grading scale or malformed
// server settings fail startup rather than producing surprising runs.
package config
