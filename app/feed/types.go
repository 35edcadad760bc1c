package feed

import (
	"time"
)

// Article is one normalized feed entry. Immutable once created; shared
// read-only by every caller holding the category result it belongs to.
type Article struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published"`
	SortKey   int64      `json:"published_ts"`
	Summary   string     `json:"summary"`
	Source    string     `json:"source"`
}
