package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTiers_Params_KnownTiers(t *testing.T) {
	tiers := LoadTiers()

	tests := []struct {
		name    string
		tier    string
		wantMax int
		wantMin int
	}{
		{"short tier", "short", 80, 30},
		{"medium tier", "medium", 180, 60},
		{"long tier", "long", 300, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, params := tiers.Params(tt.tier)
			if string(resolved) != tt.tier {
				t.Errorf("resolved tier = %q, want %q", resolved, tt.tier)
			}
			if params.MaxLength != tt.wantMax || params.MinLength != tt.wantMin {
				t.Errorf("params = (%d,%d), want (%d,%d)",
					params.MaxLength, params.MinLength, tt.wantMax, tt.wantMin)
			}
		})
	}
}

func TestTiers_Params_UnknownDefaultsToMedium(t *testing.T) {
	tiers := LoadTiers()

	for _, name := range []string{"", "tiny", "LONG", "xlarge"} {
		resolved, params := tiers.Params(name)
		if resolved != TierMedium {
			t.Errorf("Params(%q) resolved = %q, want medium", name, resolved)
		}
		if params.MaxLength != 180 || params.MinLength != 60 {
			t.Errorf("Params(%q) = (%d,%d), want medium (180,60)",
				name, params.MaxLength, params.MinLength)
		}
	}
}

func TestLoadTiers_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.yaml")
	content := []byte(`tiers:
  short:
    max_length: 100
    min_length: 40
  medium:
    max_length: 200
    min_length: 80
  long:
    max_length: 400
    min_length: 150
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SUMMARY_TIERS_PATH", path)

	tiers := LoadTiers()
	_, params := tiers.Params("short")
	if params.MaxLength != 100 || params.MinLength != 40 {
		t.Errorf("short params = (%d,%d), want (100,40)", params.MaxLength, params.MinLength)
	}
}

func TestLoadTiers_InvalidFileFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "tiers: [not a map"},
		{"missing tier", "tiers:\n  short: {max_length: 80, min_length: 30}\n"},
		{"inverted bounds", `tiers:
  short: {max_length: 30, min_length: 80}
  medium: {max_length: 180, min_length: 60}
  long: {max_length: 300, min_length: 120}
`},
		{"non-positive bounds", `tiers:
  short: {max_length: 0, min_length: 0}
  medium: {max_length: 180, min_length: 60}
  long: {max_length: 300, min_length: 120}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tiers.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			t.Setenv("SUMMARY_TIERS_PATH", path)

			tiers := LoadTiers()
			_, params := tiers.Params("medium")
			if params.MaxLength != 180 || params.MinLength != 60 {
				t.Errorf("expected built-in defaults, got (%d,%d)",
					params.MaxLength, params.MinLength)
			}
		})
	}
}

func TestLoadPipeline_Defaults(t *testing.T) {
	p := LoadPipeline()
	if p.ChunkBudget != 1200 {
		t.Errorf("ChunkBudget = %d, want 1200", p.ChunkBudget)
	}
	if p.HighlightCount != 5 {
		t.Errorf("HighlightCount = %d, want 5", p.HighlightCount)
	}
	if p.MaxUploadBytes != 100<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", p.MaxUploadBytes, 100<<20)
	}
}

func TestLoadPipeline_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUMMARY_CHUNK_BUDGET", "-5")
	t.Setenv("HIGHLIGHT_COUNT", "0")

	p := LoadPipeline()
	if p.ChunkBudget != 1200 {
		t.Errorf("ChunkBudget = %d, want fallback 1200", p.ChunkBudget)
	}
	if p.HighlightCount != 5 {
		t.Errorf("HighlightCount = %d, want fallback 5", p.HighlightCount)
	}
}
