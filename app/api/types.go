package api

import (
	"context"

	"github.com/mdolezal/newsdesk/app/config"
	"github.com/mdolezal/newsdesk/app/news"
)

type ServiceInterface interface {
	Category(ctx context.Context, key string) (*news.CategoryResult, error)
	AllCategories(ctx context.Context) map[string]*news.CategoryResult
	Group(ctx context.Context, name string) (map[string]*news.CategoryResult, error)
}

var _ ServiceInterface = (*news.Service)(nil)

type Handler struct {
	service ServiceInterface
	config  *config.Config
	cache   *news.Cache
}
