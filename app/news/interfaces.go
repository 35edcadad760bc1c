package news

import (
	"context"

	"github.com/mdolezal/newsdesk/app/config"
	"github.com/mdolezal/newsdesk/app/feed"
)

type SourceFetcher interface {
	Run(ctx context.Context, source config.Source) ([]feed.Article, error)
}

var _ SourceFetcher = (*feed.Fetcher)(nil)

type CategoryAggregator interface {
	Run(ctx context.Context, category config.Category) *CategoryResult
}

var _ CategoryAggregator = (*Aggregator)(nil)
