package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruler() string {
	return strings.Repeat("=", 80)
}

func repoSection(name, content string) string {
	return ruler() + "\nREPOSITORY: " + name + "\n" + ruler() + "\n" + content
}

func TestParseDump(t *testing.T) {
	tests := []struct {
		name     string
		dump     string
		expected []string
	}{
		{
			name:     "empty input yields no records",
			dump:     "",
			expected: []string{},
		},
		{
			name:     "plain text without markers yields no records",
			dump:     "just some text\nwith lines\n",
			expected: []string{},
		},
		{
			name:     "single repository",
			dump:     repoSection("alpha", "content here\n"),
			expected: []string{"alpha"},
		},
		{
			name: "multiple repositories in dump order",
			dump: repoSection("alpha", "first\n") +
				repoSection("beta", "second\n") +
				repoSection("gamma", "third\n"),
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "leading header fragment is dropped",
			dump:     "GITHUB EXPORT 2024-01-01\ntotal repos: 1\n\n" + repoSection("alpha", "content\n"),
			expected: []string{"alpha"},
		},
		{
			name:     "repository name is trimmed",
			dump:     ruler() + "\nREPOSITORY:   padded-name  \n" + ruler() + "\ncontent\n",
			expected: []string{"padded-name"},
		},
		{
			name:     "short ruler is not a marker",
			dump:     strings.Repeat("=", 79) + "\nREPOSITORY: alpha\n" + strings.Repeat("=", 79) + "\ncontent\n",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := ParseDump(tt.dump)
			names := make([]string, 0, len(records))
			for _, rec := range records {
				names = append(names, rec.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestParseDumpContentBoundaries(t *testing.T) {
	dump := repoSection("alpha", "alpha content\nwith two lines\n") +
		repoSection("beta", "beta content\n")

	records := ParseDump(dump)
	require.Len(t, records, 2)

	assert.Contains(t, records[0].Content, "alpha content")
	assert.NotContains(t, records[0].Content, "beta content")
	assert.Contains(t, records[1].Content, "beta content")
}

func TestParseDumpEmptySection(t *testing.T) {
	dump := repoSection("empty-repo", "") + repoSection("full-repo", "stuff\n")

	records := ParseDump(dump)
	require.Len(t, records, 2)

	assert.Equal(t, "empty-repo", records[0].Name)
	// An empty section is a valid record, not an error.
	assert.NotContains(t, records[0].Content, "stuff")
}

func TestParseDumpFileMarkersStayInContent(t *testing.T) {
	content := ruler() + "\nFILE: src/main.py\n" + ruler() + "\nimport flask\n"
	dump := repoSection("alpha", content)

	records := ParseDump(dump)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Content, "FILE: src/main.py")
}
