package analysis

import "sort"

// BuildFilteredProfile concatenates per-repository analyses in input order,
// merges every repository's commit dates into one ascending list, and counts
// commits across all repositories. Empty input yields an empty profile.
func BuildFilteredProfile(analyses []RepositoryAnalysis) FilteredProfile {
	repositories := make([]RepositoryAnalysis, 0, len(analyses))
	dates := []string{}
	total := 0
	for _, ra := range analyses {
		repositories = append(repositories, ra)
		for _, c := range ra.Commits {
			total++
			if c.Date != "" {
				dates = append(dates, c.Date)
			}
		}
	}
	sort.Strings(dates)
	return FilteredProfile{
		Repositories: repositories,
		TotalCommits: total,
		CommitDates:  dates,
	}
}

// AnalyzeDump runs the parse-analyze-aggregate stages on a raw dump.
func AnalyzeDump(text string) FilteredProfile {
	records := ParseDump(text)
	analyses := make([]RepositoryAnalysis, 0, len(records))
	for _, rec := range records {
		analyses = append(analyses, AnalyzeRepository(rec))
	}
	return BuildFilteredProfile(analyses)
}
