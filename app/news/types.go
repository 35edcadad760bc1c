package news

import (
	"time"

	"github.com/mdolezal/newsdesk/app/feed"
)

// SourceError records one source's failure within an aggregation cycle.
type SourceError struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// CategoryResult is the merged view of one category. Built once per
// aggregation cycle and never mutated afterwards; a refresh installs a
// brand-new result.
type CategoryResult struct {
	Key          string         `json:"key"`
	Name         string         `json:"name"`
	Icon         string         `json:"icon"`
	Articles     []feed.Article `json:"articles"`
	SourceErrors []SourceError  `json:"errors"`
	FetchedAt    time.Time      `json:"fetched_at"`
}
