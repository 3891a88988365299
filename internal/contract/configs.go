// Package contract holds the validated runtime configuration and small
// shared helpers used across the posecoach CLI.
package contract

import (
	"fmt"
	"time"

	"github.com/huangsam/posecoach/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	DefaultResultLimit = 25
	MaxResultLimit     = 1000

	// DefaultInterval is the detection cadence for watch mode. The warm-up
	// delay gives the camera pipeline time to settle before the first call.
	DefaultInterval = 100 * time.Millisecond
	DefaultWarmup   = 2 * time.Second
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for scoring and analysis.
// This struct remains the "final, validated" config.
type Config struct {
	CapturePath string
	TemplateID  schema.TemplateID
	Mode        schema.AnalysisMode

	MinConfidence float64
	ResultLimit   int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	Width         int // Terminal width override (0 = auto-detect)

	Interval time.Duration
	Warmup   time.Duration

	// WeightOverrides is a mapping of [BodyPart] = Weight merged over the
	// static table at scoring time.
	WeightOverrides map[schema.BodyPart]float64

	UseColors bool // Enable colored labels in table output
}

// Clone returns a shallow copy of the config with its own override map, so
// per-request mutation (MCP handlers) never touches the base config.
func (c *Config) Clone() *Config {
	dup := *c
	if c.WeightOverrides != nil {
		dup.WeightOverrides = make(map[schema.BodyPart]float64, len(c.WeightOverrides))
		for part, w := range c.WeightOverrides {
			dup.WeightOverrides[part] = w
		}
	}
	return &dup
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	CapturePathStr string

	Template      string             `mapstructure:"template"`
	Mode          string             `mapstructure:"mode"`
	MinConfidence float64            `mapstructure:"min-confidence"`
	Limit         int                `mapstructure:"limit"`
	Precision     int                `mapstructure:"precision"`
	Output        string             `mapstructure:"output"`
	OutputFile    string             `mapstructure:"output-file"`
	Width         int                `mapstructure:"width"`
	Interval      string             `mapstructure:"interval"`
	Warmup        string             `mapstructure:"warmup"`
	Color         string             `mapstructure:"color"`
	Weights       map[string]float64 `mapstructure:"weights"`
}

// ProcessAndValidate turns raw input into a validated Config. It fails fast
// on the first invalid value so the CLI can surface one clear error.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.CapturePath = input.CapturePathStr

	if input.Template != "" {
		id := schema.TemplateID(input.Template)
		if _, ok := schema.TemplateByID(id); !ok {
			return fmt.Errorf("unknown template %q (valid: %v)", input.Template, schema.AllTemplateIDs())
		}
		cfg.TemplateID = id
	}

	mode := schema.AnalysisMode(input.Mode)
	if _, ok := schema.ValidAnalysisModes[mode]; !ok {
		return fmt.Errorf("invalid analysis mode %q (valid: fitness, photography)", input.Mode)
	}
	cfg.Mode = mode

	if input.MinConfidence < 0 || input.MinConfidence >= 1 {
		return fmt.Errorf("min-confidence must be in [0,1), got %v", input.MinConfidence)
	}
	cfg.MinConfidence = input.MinConfidence

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be in [1,%d], got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 0 || input.Precision > 6 {
		return fmt.Errorf("precision must be in [0,6], got %d", input.Precision)
	}
	cfg.Precision = input.Precision

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (valid: text, csv, json, parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	interval, err := parsePositiveDuration("interval", input.Interval, DefaultInterval)
	if err != nil {
		return err
	}
	cfg.Interval = interval

	warmup, err := parseNonNegativeDuration("warmup", input.Warmup, DefaultWarmup)
	if err != nil {
		return err
	}
	cfg.Warmup = warmup

	overrides, err := processWeightOverrides(input.Weights)
	if err != nil {
		return err
	}
	cfg.WeightOverrides = overrides

	cfg.UseColors = ParseBoolish(input.Color, true)
	return nil
}

// processWeightOverrides validates user-supplied per-part weights against
// the closed body-part enumeration.
func processWeightOverrides(raw map[string]float64) (map[schema.BodyPart]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[schema.BodyPart]float64, len(raw))
	for name, w := range raw {
		part := schema.BodyPart(name)
		if _, ok := schema.ValidBodyParts[part]; !ok {
			return nil, fmt.Errorf("unknown body part %q in weights", name)
		}
		if w < 0 {
			return nil, fmt.Errorf("weight for %q must be non-negative, got %v", name, w)
		}
		overrides[part] = w
	}
	return overrides, nil
}

func parsePositiveDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return d, nil
}

func parseNonNegativeDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %v", name, d)
	}
	return d, nil
}

// ParseBoolish interprets the yes/no style toggles used by CLI flags.
func ParseBoolish(raw string, fallback bool) bool {
	switch raw {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
