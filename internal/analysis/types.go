package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// RepositoryRecord is one repository section split out of a raw dump.
// Content is carried verbatim; malformed or empty content is a valid record.
type RepositoryRecord struct {
	Name    string
	Content string
}

// Commit is a single detected commit timestamp.
type Commit struct {
	Date      string  `json:"date"`
	Timestamp float64 `json:"timestamp"`
}

// RepositoryAnalysis holds every signal extracted from one repository.
// All fields are populated at construction; absent signals are empty
// collections, never nil checks at read sites.
type RepositoryAnalysis struct {
	Name         string         `json:"name"`
	Languages    map[string]int `json:"languages"`
	Libraries    RankedCounts   `json:"libraries"`
	Frameworks   []string       `json:"frameworks"`
	Commits      []Commit       `json:"commits"`
	SizeKB       float64        `json:"size_kb"`
	FileTypes    RankedCounts   `json:"file_types"`
	TestCoverage float64        `json:"test_coverage"`
}

// FilteredProfile aggregates all repository analyses for one pipeline run.
type FilteredProfile struct {
	Repositories []RepositoryAnalysis `json:"repositories"`
	TotalCommits int                  `json:"total_commits"`
	CommitDates  []string             `json:"commit_dates"`
}

// CountEntry is one name/count pair in a RankedCounts mapping.
type CountEntry struct {
	Name  string
	Count int
}

// RankedCounts is a mapping ordered by descending count with a stable
// tie-break (first-encountered order). It marshals as a JSON object so the
// rank order survives serialization; a plain Go map would not.
type RankedCounts []CountEntry

// Get returns the count for name, or 0 when absent.
func (rc RankedCounts) Get(name string) int {
	for _, e := range rc {
		if e.Name == name {
			return e.Count
		}
	}
	return 0
}

// Has reports whether name is present in the mapping.
func (rc RankedCounts) Has(name string) bool {
	for _, e := range rc {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Names returns the entry names in rank order.
func (rc RankedCounts) Names() []string {
	names := make([]string, len(rc))
	for i, e := range rc {
		names[i] = e.Name
	}
	return names
}

// MarshalJSON encodes the mapping as a JSON object in rank order.
func (rc RankedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range rc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (rc *RankedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ranked counts: expected JSON object, got %v", tok)
	}
	out := RankedCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ranked counts: expected string key, got %v", keyTok)
		}
		var count float64
		if err := dec.Decode(&count); err != nil {
			return err
		}
		out = append(out, CountEntry{Name: name, Count: int(count)})
	}
	*rc = out
	return nil
}

// Counter accumulates named counts while remembering first-encounter order,
// which is the stable tie-break for every ranked mapping in the pipeline.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increases the count for name by n.
func (c *Counter) Add(name string, n int) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
}

// Drop removes every entry for which pred returns true.
func (c *Counter) Drop(pred func(name string) bool) {
	kept := c.order[:0]
	for _, name := range c.order {
		if pred(name) {
			delete(c.counts, name)
			continue
		}
		kept = append(kept, name)
	}
	c.order = kept
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, v := range c.counts {
		total += v
	}
	return total
}

// Ranked returns the entries sorted by descending count with the stable
// first-encounter tie-break, truncated to limit when limit > 0.
func (c *Counter) Ranked(limit int) RankedCounts {
	ranked := make(RankedCounts, 0, len(c.order))
	for _, name := range c.order {
		ranked = append(ranked, CountEntry{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
