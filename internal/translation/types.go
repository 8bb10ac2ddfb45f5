package translation

import "github.com/ZanzyTHEbar/divergence-profiler/internal/analysis"

// Habits summarizes commit cadence across the whole filtered profile.
type Habits struct {
	Frequency       float64 `json:"frequency"`
	Consistency     float64 `json:"consistency"`
	AvgCommitSizeKB float64 `json:"avg_commit_size_kb"`
	CommitPattern   string  `json:"commit_pattern"`
}

// TechnicalDepth grades repository scale into a coarse experience level.
type TechnicalDepth struct {
	DepthScore  float64 `json:"depth_score"`
	AvgRepoSize float64 `json:"avg_repo_size"`
	MaxRepoSize float64 `json:"max_repo_size"`
	Level       string  `json:"level"`
}

// Composition splits file-type usage into frontend/backend/data fractions.
// The buckets overlap, so the fractions sum to at most 1.
type Composition struct {
	Frontend float64 `json:"frontend"`
	Backend  float64 `json:"backend"`
	Data     float64 `json:"data"`
}

// Quality estimates testing discipline from the per-repository coverage
// estimates.
type Quality struct {
	AvgTestCoverage float64 `json:"avg_test_coverage"`
	QualityScore    float64 `json:"quality_score"`
	Rating          string  `json:"rating"`
}

// Metadata carries run bookkeeping. AnalysisTimestamp is the only
// non-deterministic field in the pipeline and is excluded from equality
// checks.
type Metadata struct {
	TotalRepositories int    `json:"total_repositories"`
	TotalCommits      int    `json:"total_commits"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
}

// TranslatedProfile is the normalized, percentage/ratio-based developer
// summary derived deterministically from a FilteredProfile.
type TranslatedProfile struct {
	Languages      map[string]float64    `json:"languages"`
	Libraries      analysis.RankedCounts `json:"libraries"`
	Frameworks     analysis.RankedCounts `json:"frameworks"`
	Habits         Habits                `json:"habits"`
	TechnicalDepth TechnicalDepth        `json:"technical_depth"`
	Composition    Composition           `json:"composition"`
	Skills         map[string]float64    `json:"skills"`
	Quality        Quality               `json:"quality"`
	Metadata       Metadata              `json:"metadata"`
}
