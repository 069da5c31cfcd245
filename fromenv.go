package chainfmt

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/chainfmt/ansi"
)

// EnvOption customizes FromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by FromEnv.
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds FromEnv with explicit Options values.
func WithEnvOptions(opts Options) EnvOption {
	return func(cfg *envConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds FromEnv with a default output writer.
func WithEnvWriter(w io.Writer) EnvOption {
	return func(cfg *envConfig) {
		cfg.writer = w
	}
}

// FromEnv builds a Formatter from environment variables, allowing optional
// seeded options and writers. Environment values override supplied options.
//
// Recognised variables (default prefix CHAINFMT_) are: COLOR_LEVEL, NO_COLOR,
// FORCE_COLOR, TIMESTAMP (none|time|date|datetime), TIME_FORMAT, DATE_FORMAT,
// DATETIME_FORMAT, UTC, LINE_CHAR, LINE_LENGTH and OUTPUT. OUTPUT accepts
// stdout, stderr, default, a file path, or stdout+/stderr+/default+<path> to
// tee. Outputs opened here are released by Formatter.Close.
func FromEnv(opts ...EnvOption) *Formatter {
	cfg := envConfig{prefix: "CHAINFMT_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	if resolved.ErrOutput == nil && cfg.writer == nil {
		resolved.ErrOutput = os.Stderr
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "COLOR_LEVEL"); ok {
		if level, ok := ansi.ParseLevel(value); ok {
			resolved.ColorLevel = &level
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "TIMESTAMP"); ok {
		if mode, ok := ParseTimestampMode(value); ok {
			resolved.Timestamp = mode
		}
	}
	if value, ok := lookupEnv(prefix, "TIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.TimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "DATE_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.DateFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "DATETIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolved.DateTimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolved.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "LINE_CHAR"); ok && value != "" {
		resolved.LineChar = value
	}
	if value, ok := lookupEnv(prefix, "LINE_LENGTH"); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && parsed > 0 {
			resolved.LineLength = parsed
		}
	}
	outputValue, hasOutput := lookupEnv(prefix, "OUTPUT")
	writer := baseWriter
	var outputErr error
	if hasOutput {
		if w, err := writerFromEnvOutput(outputValue, baseWriter); err != nil {
			outputErr = err
		} else {
			writer = w
		}
	}
	f := NewWithOptions(writer, resolved)
	if outputErr != nil {
		_ = f.Error().Text().Red().Colon().Print("chainfmt.output.open.failed", outputErr)
	}
	return f
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	if base == nil {
		base = io.Discard
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	const (
		stdoutPrefix  = "stdout+"
		stderrPrefix  = "stderr+"
		defaultPrefix = "default+"
	)
	var (
		primary io.Writer
		path    string
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		primary, path = os.Stdout, trimmed[len(stdoutPrefix):]
	case strings.HasPrefix(lowered, stderrPrefix):
		primary, path = os.Stderr, trimmed[len(stderrPrefix):]
	case strings.HasPrefix(lowered, defaultPrefix):
		primary, path = base, trimmed[len(defaultPrefix):]
	default:
		fileWriter, err := openOutputFile(trimmed)
		if err != nil {
			return base, err
		}
		return newOwnedOutput(fileWriter, fileWriter, trimmed), nil
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return primary, nil
	}
	fileWriter, err := openOutputFile(path)
	if err != nil {
		return base, err
	}
	return newOwnedOutput(newTeeWriter(primary, fileWriter), fileWriter, path), nil
}

func openOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open chainfmt output %q: %w", path, err)
	}
	return file, nil
}
