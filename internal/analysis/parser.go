package analysis

import (
	"regexp"
	"strings"
)

// Dump section markers, as written by the repository-fetching collaborator:
// an 80-char ruler, a "REPOSITORY: <name>" line, and a closing ruler. File
// entries inside a section use the same ruler with "FILE: <path>".
var repoHeaderPattern = regexp.MustCompile(`={80}\nREPOSITORY:[ \t]*(.+)\n={80}`)

// ParseDump splits a raw dump into ordered repository records. Text before
// the first repository marker is a header fragment and is dropped; so is any
// trailing unpaired fragment. Content is never validated here -- malformed or
// empty sections still produce records.
func ParseDump(text string) []RepositoryRecord {
	matches := repoHeaderPattern.FindAllStringSubmatchIndex(text, -1)
	records := make([]RepositoryRecord, 0, len(matches))
	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		records = append(records, RepositoryRecord{
			Name:    name,
			Content: text[start:end],
		})
	}
	return records
}
