// Package config holds configuration for the summarization pipeline:
// the length-tier table, chunking parameters, and upload limits.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	pkgconfig "docsum/pkg/config"
)

// Tier identifies one of the supported summary granularities.
type Tier string

const (
	// TierShort produces the tightest summary.
	TierShort Tier = "short"
	// TierMedium is the default granularity.
	TierMedium Tier = "medium"
	// TierLong produces the most detailed summary.
	TierLong Tier = "long"
)

// TierParams holds the target summary size bounds for one tier,
// both expressed in characters (runes).
type TierParams struct {
	MaxLength int `yaml:"max_length"`
	MinLength int `yaml:"min_length"`
}

// defaultTiers is the built-in tier table.
func defaultTiers() map[Tier]TierParams {
	return map[Tier]TierParams{
		TierShort:  {MaxLength: 80, MinLength: 30},
		TierMedium: {MaxLength: 180, MinLength: 60},
		TierLong:   {MaxLength: 300, MinLength: 120},
	}
}

// Tiers maps tier names to their summary length bounds.
type Tiers struct {
	table map[Tier]TierParams
}

// Params returns the parameters for the given tier name.
// Unrecognized tier names resolve to medium; the resolved tier is returned
// alongside the parameters so callers can echo it back to clients.
func (t *Tiers) Params(name string) (Tier, TierParams) {
	tier := Tier(name)
	if params, ok := t.table[tier]; ok {
		return tier, params
	}
	return TierMedium, t.table[TierMedium]
}

// tierFile is the YAML shape of an optional tier override file.
type tierFile struct {
	Tiers map[string]TierParams `yaml:"tiers"`
}

// LoadTiers returns the tier table, optionally overridden by a YAML file
// named in the SUMMARY_TIERS_PATH environment variable.
//
// The file must define all three tiers with positive bounds and
// min_length < max_length; otherwise the override is rejected and the
// built-in defaults are used with a warning log.
func LoadTiers() *Tiers {
	tiers := &Tiers{table: defaultTiers()}

	path := os.Getenv("SUMMARY_TIERS_PATH")
	if path == "" {
		return tiers
	}

	overridden, err := loadTierFile(path)
	if err != nil {
		slog.Warn("invalid tier configuration file, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return tiers
	}

	slog.Info("loaded tier configuration",
		slog.String("path", path))
	tiers.table = overridden
	return tiers
}

// loadTierFile reads and validates a tier override file.
func loadTierFile(path string) (map[Tier]TierParams, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read tier file: %w", err)
	}

	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tier file: %w", err)
	}

	table := make(map[Tier]TierParams, len(f.Tiers))
	for _, tier := range []Tier{TierShort, TierMedium, TierLong} {
		params, ok := f.Tiers[string(tier)]
		if !ok {
			return nil, fmt.Errorf("tier %q missing from file", tier)
		}
		if params.MinLength <= 0 || params.MaxLength <= 0 {
			return nil, fmt.Errorf("tier %q has non-positive bounds", tier)
		}
		if params.MinLength >= params.MaxLength {
			return nil, fmt.Errorf("tier %q min_length must be below max_length", tier)
		}
		table[tier] = params
	}

	return table, nil
}

// Pipeline holds the runtime parameters of the summarization pipeline.
type Pipeline struct {
	// ChunkBudget is the target chunk size in characters for long documents.
	ChunkBudget int

	// HighlightCount is the number of highlight sentences to return.
	HighlightCount int

	// MaxUploadBytes caps the size of an uploaded document.
	MaxUploadBytes int64
}

// LoadPipeline loads pipeline parameters from environment variables.
//
// Environment variables:
//   - SUMMARY_CHUNK_BUDGET: target chunk size in characters (default: 1200)
//   - HIGHLIGHT_COUNT: highlight sentences per document (default: 5)
//   - MAX_UPLOAD_BYTES: upload size cap in bytes (default: 100MB)
//
// Non-positive values fall back to the defaults with a warning log.
func LoadPipeline() Pipeline {
	const (
		defaultChunkBudget    = 1200
		defaultHighlightCount = 5
		defaultMaxUpload      = 100 << 20
	)

	p := Pipeline{
		ChunkBudget:    pkgconfig.GetEnvInt("SUMMARY_CHUNK_BUDGET", defaultChunkBudget),
		HighlightCount: pkgconfig.GetEnvInt("HIGHLIGHT_COUNT", defaultHighlightCount),
		MaxUploadBytes: pkgconfig.GetEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUpload),
	}

	if p.ChunkBudget <= 0 {
		slog.Warn("non-positive chunk budget, using default",
			slog.Int("value", p.ChunkBudget),
			slog.Int("default", defaultChunkBudget))
		p.ChunkBudget = defaultChunkBudget
	}
	if p.HighlightCount <= 0 {
		slog.Warn("non-positive highlight count, using default",
			slog.Int("value", p.HighlightCount),
			slog.Int("default", defaultHighlightCount))
		p.HighlightCount = defaultHighlightCount
	}
	if p.MaxUploadBytes <= 0 {
		slog.Warn("non-positive upload cap, using default",
			slog.Int64("value", p.MaxUploadBytes),
			slog.Int64("default", defaultMaxUpload))
		p.MaxUploadBytes = defaultMaxUpload
	}

	return p
}
