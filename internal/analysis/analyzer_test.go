package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRepositoryFlaskService(t *testing.T) {
	content := `FILE: app.py
import flask
from flask import request

FILE: requirements.txt
flask==2.0.0
`
	analysis := AnalyzeRepository(RepositoryRecord{Name: "flask-service", Content: content})

	assert.Equal(t, "flask-service", analysis.Name)
	assert.GreaterOrEqual(t, analysis.Languages["Python"], 1)
	// flask shows up from both import statements and the requirements pin.
	assert.GreaterOrEqual(t, analysis.Libraries.Get("flask"), 2)
	assert.Empty(t, analysis.Frameworks)
}

func TestDetectLanguages(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]int
	}{
		{
			name:     "empty content",
			content:  "",
			expected: map[string]int{},
		},
		{
			name:    "counts each extension occurrence",
			content: "main.py util.py app.js README.md",
			expected: map[string]int{
				"Python":     2,
				"JavaScript": 1,
				"Markdown":   1,
			},
		},
		{
			name:    "case insensitive",
			content: "MAIN.PY script.Sh",
			expected: map[string]int{
				"Python": 1,
				"Shell":  1,
			},
		},
		{
			name:    "yaml matches both spellings",
			content: "config.yml other.yaml",
			expected: map[string]int{
				"YAML": 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectLanguages(tt.content))
		})
	}
}

func TestDetectLibraries(t *testing.T) {
	t.Run("import statements keep first path segment", func(t *testing.T) {
		libs := detectLibraries("import pandas.core.frame\nfrom numpy import array\n")
		assert.True(t, libs.Has("pandas"))
		assert.True(t, libs.Has("numpy"))
		assert.False(t, libs.Has("core"))
	})

	t.Run("stoplist and short names dropped", func(t *testing.T) {
		libs := detectLibraries("import os\nimport sys\nimport re\nimport io\nimport requests\n")
		assert.True(t, libs.Has("requests"))
		assert.False(t, libs.Has("os"))
		assert.False(t, libs.Has("sys"))
		assert.False(t, libs.Has("re"))
	})

	t.Run("manifest pins counted", func(t *testing.T) {
		content := `"react": "18.2.0", "lodash": "4.17.21"`
		libs := detectLibraries(content)
		assert.True(t, libs.Has("react"))
		assert.True(t, libs.Has("lodash"))
	})

	t.Run("requirements pins counted", func(t *testing.T) {
		libs := detectLibraries("flask==2.0.0\ndjango==4.2\n")
		assert.True(t, libs.Has("flask"))
		assert.True(t, libs.Has("django"))
	})

	t.Run("ranked by descending count", func(t *testing.T) {
		libs := detectLibraries("import requests\nimport requests\nimport flask\n")
		require.Len(t, libs, 2)
		assert.Equal(t, "requests", libs[0].Name)
		assert.Equal(t, 2, libs[0].Count)
		assert.Equal(t, "flask", libs[1].Name)
	})

	t.Run("capped at maximum entries", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 50; i++ {
			fmt.Fprintf(&sb, "import library%02d\n", i)
		}
		libs := detectLibraries(sb.String())
		assert.LessOrEqual(t, len(libs), MaxLibraries)
	})
}

func TestDetectFrameworks(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "none",
			content:  "plain content",
			expected: []string{},
		},
		{
			name:     "sorted alphabetically",
			content:  "uses pytest and docker with .github/workflows ci",
			expected: []string{"Docker", "GitHub Actions", "pytest"},
		},
		{
			name:     "single signature match suffices",
			content:  "ollama",
			expected: []string{"Ollama"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFrameworks(tt.content))
		})
	}
}

func TestExtractCommits(t *testing.T) {
	t.Run("parses iso timestamps", func(t *testing.T) {
		commits := extractCommits("commit at 2024-03-15T10:30:00 and 2024-03-16T11:00:00")
		require.Len(t, commits, 2)
		assert.Equal(t, "2024-03-15T10:30:00", commits[0].Date)
		assert.Greater(t, commits[1].Timestamp, commits[0].Timestamp)
	})

	t.Run("invalid calendar values skipped", func(t *testing.T) {
		// Matches the scan pattern but fails conversion.
		commits := extractCommits("2024-13-45T99:99:99")
		assert.Empty(t, commits)
	})

	t.Run("capped at maximum", func(t *testing.T) {
		content := ""
		for i := 0; i < MaxCommitTimestamps+20; i++ {
			content += "2024-01-01T00:00:00 "
		}
		commits := extractCommits(content)
		assert.Len(t, commits, MaxCommitTimestamps)
	})
}

func TestHistogramFileTypes(t *testing.T) {
	types := histogramFileTypes("a.py b.py c.js D.PY")
	assert.Equal(t, 3, types.Get("py"))
	assert.Equal(t, 1, types.Get("js"))
	assert.Equal(t, "py", types[0].Name)
}

func TestEstimateTestCoverage(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected float64
	}{
		{
			name:     "no code files yields zero",
			content:  "README.md only",
			expected: 0,
		},
		{
			name:     "no test indicators yields zero",
			content:  "main.py util.py",
			expected: 0,
		},
		{
			name:     "ratio scaled to percent",
			content:  "main.py util.py test_main.py test_util.py",
			expected: 50, // 2 indicator matches over 4 code files
		},
		{
			name:     "capped at one hundred",
			content:  "main.py pytest pytest pytest assert assert",
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateTestCoverage(tt.content))
		})
	}
}

func TestAnalyzeRepositorySizeKB(t *testing.T) {
	content := make([]byte, 2048)
	for i := range content {
		content[i] = 'x'
	}
	analysis := AnalyzeRepository(RepositoryRecord{Name: "sized", Content: string(content)})
	assert.Equal(t, 2.0, analysis.SizeKB)
}

func TestAnalyzeRepositoryEmptyContent(t *testing.T) {
	analysis := AnalyzeRepository(RepositoryRecord{Name: "empty"})

	assert.Equal(t, "empty", analysis.Name)
	assert.Empty(t, analysis.Languages)
	assert.Empty(t, analysis.Libraries)
	assert.Empty(t, analysis.Frameworks)
	assert.Empty(t, analysis.Commits)
	assert.Zero(t, analysis.SizeKB)
	assert.Zero(t, analysis.TestCoverage)
}
