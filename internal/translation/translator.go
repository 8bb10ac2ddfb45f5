package translation

import (
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ZanzyTHEbar/divergence-profiler/internal/analysis"
)

const (
	secondsPerDay  = 86400.0
	secondsPerWeek = 604800.0
)

// Commit-pattern thresholds in commits per week. Boundaries are exclusive:
// a frequency of exactly 5 classifies as "regular", not "daily".
const (
	dailyFrequencyThreshold   = 5.0
	regularFrequencyThreshold = 2.0
	weeklyFrequencyThreshold  = 0.5
)

// depthScoreDivisorKB normalizes mean repository size into [0,1].
const depthScoreDivisorKB = 500.0

const (
	advancedDepthThreshold     = 0.7
	intermediateDepthThreshold = 0.4
)

// Quality rating thresholds over average test coverage, exclusive.
const (
	excellentCoverageThreshold = 70.0
	goodCoverageThreshold      = 40.0
	fairCoverageThreshold      = 20.0
)

// minSkillScore drops indicator scores too weak to report.
const minSkillScore = 0.05

// Composition bucket membership. The sets overlap (js/ts/json appear in more
// than one bucket), so bucket fractions sum to at most 1 after normalization.
var (
	frontendFileTypes = stringSet("html", "css", "scss", "sass", "jsx", "tsx", "vue", "md")
	backendFileTypes  = stringSet("py", "sh", "js", "ts", "json", "yml", "yaml")
	dataFileTypes     = stringSet("json", "csv", "xml")
)

// skillIndicators are the coarse skill areas scored by indicator-set overlap
// against the developer's combined library and framework names.
var skillIndicators = []struct {
	Name       string
	Indicators map[string]struct{}
}{
	{"devtools_automation", stringSet("pytest", "git", "github", "docker", "validation", "scaffold")},
	{"ai_ml", stringSet("ollama", "claude", "llm", "ai", "ml")},
	{"plugin_development", stringSet("plugin", "marketplace", "cli", "tools")},
}

// Translate aggregates a filtered profile into the normalized developer
// summary. Every aggregation over an empty collection yields its documented
// zero value; nothing in here can fail.
func Translate(fp analysis.FilteredProfile) TranslatedProfile {
	return TranslateAt(fp, time.Now())
}

// TranslateAt is Translate with an injected clock; the timestamp is the only
// part of the output not determined by the input.
func TranslateAt(fp analysis.FilteredProfile, now time.Time) TranslatedProfile {
	return TranslatedProfile{
		Languages:      aggregateLanguages(fp),
		Libraries:      aggregateLibraries(fp),
		Frameworks:     aggregateFrameworks(fp),
		Habits:         analyzeHabits(fp),
		TechnicalDepth: analyzeTechnicalDepth(fp),
		Composition:    analyzeComposition(fp),
		Skills:         analyzeSkills(fp),
		Quality:        analyzeQuality(fp),
		Metadata: Metadata{
			TotalRepositories: len(fp.Repositories),
			TotalCommits:      fp.TotalCommits,
			AnalysisTimestamp: now.Format(time.RFC3339),
		},
	}
}

// aggregateLanguages sums language counts across repositories and converts
// them to percentages of the grand total. A zero total yields an empty map.
func aggregateLanguages(fp analysis.FilteredProfile) map[string]float64 {
	counts := analysis.NewCounter()
	for _, repo := range fp.Repositories {
		for lang, count := range repo.Languages {
			counts.Add(lang, count)
		}
	}
	total := counts.Total()
	languages := make(map[string]float64)
	if total == 0 {
		return languages
	}
	for _, e := range counts.Ranked(0) {
		languages[e.Name] = round2(float64(e.Count) / float64(total) * 100)
	}
	return languages
}

func aggregateLibraries(fp analysis.FilteredProfile) analysis.RankedCounts {
	counts := analysis.NewCounter()
	for _, repo := range fp.Repositories {
		for _, e := range repo.Libraries {
			counts.Add(e.Name, e.Count)
		}
	}
	return counts.Ranked(0)
}

// aggregateFrameworks counts one occurrence per repository per framework.
func aggregateFrameworks(fp analysis.FilteredProfile) analysis.RankedCounts {
	counts := analysis.NewCounter()
	for _, repo := range fp.Repositories {
		for _, fw := range repo.Frameworks {
			counts.Add(fw, 1)
		}
	}
	return counts.Ranked(0)
}

func analyzeHabits(fp analysis.FilteredProfile) Habits {
	timestamps := []float64{}
	commitSizes := []float64{}
	commitWeights := []float64{}
	for _, repo := range fp.Repositories {
		for _, c := range repo.Commits {
			timestamps = append(timestamps, c.Timestamp)
		}
		if n := len(repo.Commits); n > 0 {
			commitSizes = append(commitSizes, repo.SizeKB/float64(n))
			commitWeights = append(commitWeights, float64(n))
		}
	}

	frequency := 0.0
	if len(timestamps) > 1 {
		minTS, maxTS := timestamps[0], timestamps[0]
		for _, ts := range timestamps[1:] {
			minTS = math.Min(minTS, ts)
			maxTS = math.Max(maxTS, ts)
		}
		spanDays := (maxTS - minTS) / secondsPerDay
		if spanDays > 0 {
			frequency = float64(len(timestamps)) / math.Max(spanDays/7, 1)
		}
	}

	consistency := 0.0
	if len(timestamps) > 2 {
		sort.Float64s(timestamps)
		intervals := make([]float64, len(timestamps)-1)
		for i := 1; i < len(timestamps); i++ {
			intervals[i-1] = timestamps[i] - timestamps[i-1]
		}
		stdevDays := stat.StdDev(intervals, nil) / secondsPerDay
		consistency = 1 / (1 + stdevDays)
	}

	avgCommitSize := 0.0
	if len(commitSizes) > 0 {
		avgCommitSize = stat.Mean(commitSizes, commitWeights)
	}

	return Habits{
		Frequency:       round2(frequency),
		Consistency:     round3(consistency),
		AvgCommitSizeKB: round2(avgCommitSize),
		CommitPattern:   classifyCommitPattern(frequency),
	}
}

func classifyCommitPattern(frequency float64) string {
	switch {
	case frequency > dailyFrequencyThreshold:
		return "daily"
	case frequency > regularFrequencyThreshold:
		return "regular"
	case frequency > weeklyFrequencyThreshold:
		return "weekly"
	default:
		return "sporadic"
	}
}

func analyzeTechnicalDepth(fp analysis.FilteredProfile) TechnicalDepth {
	if len(fp.Repositories) == 0 {
		return TechnicalDepth{Level: "beginner"}
	}
	sizes := make([]float64, len(fp.Repositories))
	maxSize := 0.0
	for i, repo := range fp.Repositories {
		sizes[i] = repo.SizeKB
		maxSize = math.Max(maxSize, repo.SizeKB)
	}
	avgSize := stat.Mean(sizes, nil)
	depthScore := math.Min(avgSize/depthScoreDivisorKB, 1)

	level := "beginner"
	switch {
	case depthScore > advancedDepthThreshold:
		level = "advanced"
	case depthScore > intermediateDepthThreshold:
		level = "intermediate"
	}

	return TechnicalDepth{
		DepthScore:  round3(depthScore),
		AvgRepoSize: round2(avgSize),
		MaxRepoSize: round2(maxSize),
		Level:       level,
	}
}

func analyzeComposition(fp analysis.FilteredProfile) Composition {
	frontend, backend, data := 0, 0, 0
	for _, repo := range fp.Repositories {
		for _, e := range repo.FileTypes {
			if _, ok := frontendFileTypes[e.Name]; ok {
				frontend += e.Count
			}
			if _, ok := backendFileTypes[e.Name]; ok {
				backend += e.Count
			}
			if _, ok := dataFileTypes[e.Name]; ok {
				data += e.Count
			}
		}
	}
	total := frontend + backend + data
	if total == 0 {
		return Composition{}
	}
	return Composition{
		Frontend: round3(float64(frontend) / float64(total)),
		Backend:  round3(float64(backend) / float64(total)),
		Data:     round3(float64(data) / float64(total)),
	}
}

// analyzeSkills scores each coarse skill area by the overlap between the
// developer's case-folded library and framework names and the area's
// indicator set. Scores at or below minSkillScore are dropped.
func analyzeSkills(fp analysis.FilteredProfile) map[string]float64 {
	combined := make(map[string]struct{})
	for _, repo := range fp.Repositories {
		for _, e := range repo.Libraries {
			combined[strings.ToLower(e.Name)] = struct{}{}
		}
		for _, fw := range repo.Frameworks {
			combined[strings.ToLower(fw)] = struct{}{}
		}
	}

	skills := make(map[string]float64)
	for _, si := range skillIndicators {
		hits := 0
		for name := range si.Indicators {
			if _, ok := combined[name]; ok {
				hits++
			}
		}
		score := float64(hits) / float64(len(si.Indicators))
		if score > minSkillScore {
			skills[si.Name] = round3(score)
		}
	}
	return skills
}

func analyzeQuality(fp analysis.FilteredProfile) Quality {
	avgCoverage := 0.0
	if len(fp.Repositories) > 0 {
		coverages := make([]float64, len(fp.Repositories))
		for i, repo := range fp.Repositories {
			coverages[i] = repo.TestCoverage
		}
		avgCoverage = stat.Mean(coverages, nil)
	}

	rating := "needs_improvement"
	switch {
	case avgCoverage > excellentCoverageThreshold:
		rating = "excellent"
	case avgCoverage > goodCoverageThreshold:
		rating = "good"
	case avgCoverage > fairCoverageThreshold:
		rating = "fair"
	}

	return Quality{
		AvgTestCoverage: round2(avgCoverage),
		QualityScore:    round3(math.Min(avgCoverage/100, 1)),
		Rating:          rating,
	}
}

func stringSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
