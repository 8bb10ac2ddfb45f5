package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/analysis"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/errors"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/modeling"
	"github.com/ZanzyTHEbar/divergence-profiler/internal/translation"
)

// Artifact filenames written by WriteArtifacts.
const (
	FilteredArtifact   = "filtered.json"
	TranslatedArtifact = "translated.json"
	PredictiveArtifact = "predictive.json"
)

// Result bundles the three artifacts produced from one dump.
type Result struct {
	Filtered   analysis.FilteredProfile      `json:"filtered"`
	Translated translation.TranslatedProfile `json:"translated"`
	Predictive modeling.PredictiveProfile    `json:"predictive"`
}

// Run executes the full chain on a raw dump: parse, per-repository analysis,
// profile filtering, translation, predictive modeling. Everything except the
// analysis timestamp is deterministic in the dump text.
func Run(dump string) Result {
	return RunAt(dump, time.Now())
}

// RunAt is Run with an injected clock for the analysis timestamp.
func RunAt(dump string, now time.Time) Result {
	filtered := analysis.AnalyzeDump(dump)
	translated := translation.TranslateAt(filtered, now)
	predictive := modeling.BuildPredictiveProfile(translated)

	return Result{
		Filtered:   filtered,
		Translated: translated,
		Predictive: predictive,
	}
}

// WriteArtifacts persists the three stage outputs as indented JSON files
// under dir, creating it if needed. The first failure aborts the write.
func (r Result) WriteArtifacts(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewIOError("Failed to create artifact directory", err)
	}

	artifacts := []struct {
		name string
		data interface{}
	}{
		{FilteredArtifact, r.Filtered},
		{TranslatedArtifact, r.Translated},
		{PredictiveArtifact, r.Predictive},
	}

	for _, a := range artifacts {
		payload, err := json.MarshalIndent(a.data, "", "  ")
		if err != nil {
			return errors.NewInternalError("Failed to encode "+a.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, a.name), payload, 0o644); err != nil {
			return errors.NewIOError("Failed to write "+a.name, err)
		}
	}

	return nil
}

// LoadTranslated reads a previously written translated profile. Missing or
// malformed files surface as I/O and data-shape errors respectively.
func LoadTranslated(path string) (translation.TranslatedProfile, error) {
	var tp translation.TranslatedProfile

	payload, err := os.ReadFile(path)
	if err != nil {
		return tp, errors.NewIOError("Failed to read translated profile", err)
	}
	if err := json.Unmarshal(payload, &tp); err != nil {
		return tp, errors.NewDataShapeError("translated_profile", err)
	}

	return tp, nil
}
