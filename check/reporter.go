package check

import (
	"sort"
	"sync"
)

// Reporter receives issues
type Reporter interface {
	Report(issue Issue)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(issue Issue)

// Report calls f
func (f ReporterFunc) Report(issue Issue) {
	f(issue)
}

// Collector accumulates issues; safe for concurrent use
type Collector struct {
	mux    sync.Mutex
	issues []Issue
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends issue
func (c *Collector) Report(issue Issue) {
	c.mux.Lock()
	c.issues = append(c.issues, issue)
	c.mux.Unlock()
}

// Len returns the number of collected issues
func (c *Collector) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return len(c.issues)
}

// Issues returns a copy of collected issues ordered by path, offset and rule
func (c *Collector) Issues() []Issue {
	c.mux.Lock()
	result := make([]Issue, len(c.issues))
	copy(result, c.issues)
	c.mux.Unlock()
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Path != result[j].Path {
			return result[i].Path < result[j].Path
		}
		if result[i].Offset != result[j].Offset {
			return result[i].Offset < result[j].Offset
		}
		return result[i].RuleKey < result[j].RuleKey
	})
	return result
}
