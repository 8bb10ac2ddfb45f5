package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFilteredProfile(t *testing.T) {
	t.Run("empty input yields empty profile", func(t *testing.T) {
		fp := BuildFilteredProfile(nil)
		assert.Empty(t, fp.Repositories)
		assert.Zero(t, fp.TotalCommits)
		assert.Empty(t, fp.CommitDates)
	})

	t.Run("merges commit dates ascending across repositories", func(t *testing.T) {
		analyses := []RepositoryAnalysis{
			{
				Name: "beta",
				Commits: []Commit{
					{Date: "2024-03-15T10:00:00", Timestamp: 1},
					{Date: "2024-01-01T09:00:00", Timestamp: 2},
				},
			},
			{
				Name: "alpha",
				Commits: []Commit{
					{Date: "2024-02-10T08:00:00", Timestamp: 3},
				},
			},
		}

		fp := BuildFilteredProfile(analyses)

		assert.Equal(t, 3, fp.TotalCommits)
		assert.Equal(t, []string{
			"2024-01-01T09:00:00",
			"2024-02-10T08:00:00",
			"2024-03-15T10:00:00",
		}, fp.CommitDates)
		// Repository order follows input order, not commit order.
		assert.Equal(t, "beta", fp.Repositories[0].Name)
		assert.Equal(t, "alpha", fp.Repositories[1].Name)
	})
}

func TestAnalyzeDump(t *testing.T) {
	dump := repoSection("service", "FILE: app.py\nimport flask\ncommit 2024-03-15T10:30:00\n") +
		repoSection("scripts", "FILE: run.sh\ncommit 2024-03-16T11:00:00\n")

	fp := AnalyzeDump(dump)

	require.Len(t, fp.Repositories, 2)
	assert.Equal(t, "service", fp.Repositories[0].Name)
	assert.Equal(t, "scripts", fp.Repositories[1].Name)
	assert.Equal(t, 2, fp.TotalCommits)
	assert.Len(t, fp.CommitDates, 2)
}

func TestAnalyzeDumpDeterminism(t *testing.T) {
	dump := repoSection("alpha", "import flask\nimport requests\nimport flask\na.py b.js\n2024-01-02T03:04:05\n")

	first, err := json.Marshal(AnalyzeDump(dump))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := json.Marshal(AnalyzeDump(dump))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}

func TestRankedCountsJSONRoundTrip(t *testing.T) {
	rc := RankedCounts{{"flask", 3}, {"requests", 2}, {"numpy", 2}}

	payload, err := json.Marshal(rc)
	require.NoError(t, err)
	// Object keys appear in rank order.
	assert.Equal(t, `{"flask":3,"requests":2,"numpy":2}`, string(payload))

	var decoded RankedCounts
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, rc, decoded)
}

func TestCounterStableTieBreak(t *testing.T) {
	c := NewCounter()
	c.Add("first", 1)
	c.Add("second", 1)
	c.Add("third", 2)

	ranked := c.Ranked(0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "third", ranked[0].Name)
	// Equal counts keep first-encounter order.
	assert.Equal(t, "first", ranked[1].Name)
	assert.Equal(t, "second", ranked[2].Name)
}
