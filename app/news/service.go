package news

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mdolezal/newsdesk/app/config"
)

// ErrUnknownCategory is returned when a caller asks for a key that is not
// configured as a category or a group.
var ErrUnknownCategory = errors.New("unknown category")

// Service is the caller-facing facade over the cache-backed aggregation
// pipeline. Source-level failures travel as data inside the results; the
// only error a caller can see is ErrUnknownCategory.
type Service struct {
	config *config.Config
	cache  *Cache
}

func NewService(config *config.Config, cache *Cache) *Service {
	return &Service{
		config: config,
		cache:  cache,
	}
}

// Category returns the merged view of one category.
func (s *Service) Category(ctx context.Context, key string) (*CategoryResult, error) {
	category := s.config.CategoryByKey(key)
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, key)
	}
	return s.cache.GetOrRefresh(ctx, *category), nil
}

// AllCategories refreshes every configured category concurrently, one
// goroutine per category, all going through the same cache.
func (s *Service) AllCategories(ctx context.Context) map[string]*CategoryResult {
	results := make(map[string]*CategoryResult, len(s.config.Categories))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, category := range s.config.Categories {
		wg.Add(1)
		go func(category config.Category) {
			defer wg.Done()
			result := s.cache.GetOrRefresh(ctx, category)
			mu.Lock()
			results[category.Key] = result
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	return results
}

// Group resolves a group alias and returns the results of its member
// categories.
func (s *Service) Group(ctx context.Context, name string) (map[string]*CategoryResult, error) {
	keys, ok := s.config.GroupKeys(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}

	results := make(map[string]*CategoryResult, len(keys))
	for _, key := range keys {
		// Group members are validated against category keys at load time.
		result, err := s.Category(ctx, key)
		if err != nil {
			return nil, err
		}
		results[key] = result
	}

	return results, nil
}
