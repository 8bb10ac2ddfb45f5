package analysis

import "regexp"

// Structural caps bounding the analyzer. The pipeline has no time limits;
// these caps are the only bounding mechanism.
const (
	// MaxCommitTimestamps caps the timestamp scan per repository.
	MaxCommitTimestamps = 100
	// MaxLibraries caps the ranked library mapping per repository.
	MaxLibraries = 30
	// MaxFileTypes caps the ranked file-type histogram per repository.
	MaxFileTypes = 20
)

// minLibraryNameLen drops tokens too short to identify a library.
const minLibraryNameLen = 3

// languagePatterns maps a display language to the file-extension pattern
// counted case-insensitively across a repository's content.
var languagePatterns = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"Python", regexp.MustCompile(`(?i)\.py\b`)},
	{"JavaScript", regexp.MustCompile(`(?i)\.js\b`)},
	{"TypeScript", regexp.MustCompile(`(?i)\.ts\b`)},
	{"Shell", regexp.MustCompile(`(?i)\.sh\b`)},
	{"JSON", regexp.MustCompile(`(?i)\.json\b`)},
	{"Markdown", regexp.MustCompile(`(?i)\.md\b`)},
	{"YAML", regexp.MustCompile(`(?i)\.yml\b|\.yaml\b`)},
	{"HTML", regexp.MustCompile(`(?i)\.html\b`)},
	{"CSS", regexp.MustCompile(`(?i)\.css\b`)},
}

// frameworkSignatures lists frameworks detected by a single signature match
// anywhere in the content.
var frameworkSignatures = []struct {
	Name    string
	Pattern *regexp.Regexp
}{
	{"pytest", regexp.MustCompile(`(?i)\bpytest\b`)},
	{"GitHub Actions", regexp.MustCompile(`(?i)\.github/workflows`)},
	{"Git", regexp.MustCompile(`(?i)\bgit\b`)},
	{"Docker", regexp.MustCompile(`(?i)\bdocker\b`)},
	{"Claude Code", regexp.MustCompile(`(?i)\bclaude.code\b|claude-plugin`)},
	{"Ollama", regexp.MustCompile(`(?i)\bollama\b`)},
	{"MCP", regexp.MustCompile(`(?i)\bmcp\b`)},
}

// Library signal extractors. Import statements keep only the first path
// segment; manifest entries cover both quoted package.json-style pins and
// requirements-style == pins.
var (
	importStmtPattern      = regexp.MustCompile(`(?:import|from)\s+([a-zA-Z0-9_.-]+)`)
	manifestDepPattern     = regexp.MustCompile(`"([a-zA-Z0-9_-]+)":\s*"\d+\.\d+\.\d+"`)
	requirementsPinPattern = regexp.MustCompile(`([a-zA-Z0-9_-]+)==\d+\.\d+(?:\.\d+)?`)
)

// libraryStoplist drops ubiquitous runtime modules that say nothing about a
// developer's stack.
var libraryStoplist = map[string]struct{}{
	"sys": {},
	"os":  {},
	"io":  {},
	"re":  {},
}

// testIndicatorPatterns feed the test-coverage estimate; matches are summed
// across all patterns.
var testIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btest[_-]`),
	regexp.MustCompile(`(?i)[_-]test\.`),
	regexp.MustCompile(`(?i)\.test\.`),
	regexp.MustCompile(`(?i)\bspec/`),
	regexp.MustCompile(`(?i)\btest/`),
	regexp.MustCompile(`(?i)\btesting\b`),
	regexp.MustCompile(`(?i)\bassert\b`),
	regexp.MustCompile(`(?i)\bpytest\b`),
}

var (
	codeFilePattern        = regexp.MustCompile(`(?i)\.(py|js|ts|sh)\b`)
	fileExtensionPattern   = regexp.MustCompile(`\.([a-zA-Z0-9]+)\b`)
	commitTimestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
)
