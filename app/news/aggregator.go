package news

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/mdolezal/newsdesk/app/config"
	"github.com/mdolezal/newsdesk/app/feed"
)

// Aggregator fans one category's sources out over a fixed worker pool and
// merges whatever comes back. A failing or slow source contributes an error
// entry instead of failing the category.
type Aggregator struct {
	fetcher     SourceFetcher
	workerCount int
}

func NewAggregator(fetcher SourceFetcher, workerCount int) *Aggregator {
	return &Aggregator{
		fetcher:     fetcher,
		workerCount: workerCount,
	}
}

type fetchResult struct {
	source   string
	articles []feed.Article
	err      error
}

func (a *Aggregator) Run(ctx context.Context, category config.Category) *CategoryResult {
	jobs := make(chan config.Source)
	results := make(chan fetchResult, len(category.Sources))

	// Fixed pool size independent of source count; sources beyond the pool
	// queue on the jobs channel.
	var wg sync.WaitGroup
	for i := 0; i < a.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for source := range jobs {
				articles, err := a.fetcher.Run(ctx, source)
				results <- fetchResult{source: source.Name, articles: articles, err: err}
			}
		}()
	}

	go func() {
		for _, source := range category.Sources {
			jobs <- source
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	result := &CategoryResult{
		Key:          category.Key,
		Name:         category.Name,
		Icon:         category.Icon,
		Articles:     []feed.Article{},
		SourceErrors: []SourceError{},
	}

	// Completion order; the sort below makes the output independent of it.
	for r := range results {
		if r.err != nil {
			slog.Warn("Source fetch failed", "category", category.Key, "source", r.source, "error", r.err)
			result.SourceErrors = append(result.SourceErrors, SourceError{Source: r.source, Error: r.err.Error()})
			continue
		}
		result.Articles = append(result.Articles, r.articles...)
	}

	sort.SliceStable(result.Articles, func(i, j int) bool {
		return result.Articles[i].SortKey > result.Articles[j].SortKey
	})

	result.FetchedAt = time.Now().UTC()

	slog.Debug("Category aggregated", "category", category.Key,
		"articles", len(result.Articles), "errors", len(result.SourceErrors))

	return result
}
