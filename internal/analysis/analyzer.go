package analysis

import (
	"math"
	"sort"
	"strings"
	"time"
)

const bytesPerKB = 1024.0

// AnalyzeRepository extracts every per-repository signal from a single
// record. It is deterministic, side-effect-free, and performs no I/O.
func AnalyzeRepository(rec RepositoryRecord) RepositoryAnalysis {
	return RepositoryAnalysis{
		Name:         rec.Name,
		Languages:    detectLanguages(rec.Content),
		Libraries:    detectLibraries(rec.Content),
		Frameworks:   detectFrameworks(rec.Content),
		Commits:      extractCommits(rec.Content),
		SizeKB:       round2(float64(len(rec.Content)) / bytesPerKB),
		FileTypes:    histogramFileTypes(rec.Content),
		TestCoverage: estimateTestCoverage(rec.Content),
	}
}

// detectLanguages counts extension-pattern occurrences per language.
// Languages with zero matches are omitted.
func detectLanguages(content string) map[string]int {
	languages := make(map[string]int)
	for _, lp := range languagePatterns {
		if n := len(lp.Pattern.FindAllStringIndex(content, -1)); n > 0 {
			languages[lp.Name] = n
		}
	}
	return languages
}

// detectLibraries feeds two independent signal extractors into one frequency
// counter: import-style statements (first path segment only) and dependency
// manifest pins. Trivial tokens are discarded before ranking.
func detectLibraries(content string) RankedCounts {
	c := NewCounter()
	for _, m := range importStmtPattern.FindAllStringSubmatch(content, -1) {
		base, _, _ := strings.Cut(m[1], ".")
		c.Add(base, 1)
	}
	for _, m := range manifestDepPattern.FindAllStringSubmatch(content, -1) {
		c.Add(m[1], 1)
	}
	for _, m := range requirementsPinPattern.FindAllStringSubmatch(content, -1) {
		c.Add(m[1], 1)
	}
	c.Drop(func(name string) bool {
		if len(name) < minLibraryNameLen {
			return true
		}
		_, stopped := libraryStoplist[name]
		return stopped
	})
	return c.Ranked(MaxLibraries)
}

// detectFrameworks returns the alphabetically sorted set of frameworks whose
// signature matches anywhere in the content.
func detectFrameworks(content string) []string {
	frameworks := []string{}
	for _, fs := range frameworkSignatures {
		if fs.Pattern.MatchString(content) {
			frameworks = append(frameworks, fs.Name)
		}
	}
	sort.Strings(frameworks)
	return frameworks
}

// extractCommits scans for ISO-8601 date-time substrings, capped at
// MaxCommitTimestamps. Substrings that fail timestamp conversion are skipped
// individually, never fatal.
func extractCommits(content string) []Commit {
	matches := commitTimestampPattern.FindAllString(content, MaxCommitTimestamps)
	commits := make([]Commit, 0, len(matches))
	for _, raw := range matches {
		ts, err := time.Parse("2006-01-02T15:04:05", raw)
		if err != nil {
			continue
		}
		commits = append(commits, Commit{Date: raw, Timestamp: float64(ts.Unix())})
	}
	return commits
}

// histogramFileTypes counts dotted alphanumeric suffixes, lower-cased,
// keeping the top MaxFileTypes.
func histogramFileTypes(content string) RankedCounts {
	c := NewCounter()
	for _, m := range fileExtensionPattern.FindAllStringSubmatch(content, -1) {
		c.Add(strings.ToLower(m[1]), 1)
	}
	return c.Ranked(MaxFileTypes)
}

// estimateTestCoverage scales the ratio of test-indicator matches to
// recognized code files into [0,100]. Zero code files yields 0 -- the
// degenerate case is expected, not an error.
func estimateTestCoverage(content string) float64 {
	codeFiles := len(codeFilePattern.FindAllStringIndex(content, -1))
	if codeFiles == 0 {
		return 0
	}
	testMatches := 0
	for _, p := range testIndicatorPatterns {
		testMatches += len(p.FindAllStringIndex(content, -1))
	}
	coverage := float64(testMatches) / float64(codeFiles) * 100
	if coverage > 100 {
		coverage = 100
	}
	return round2(coverage)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
