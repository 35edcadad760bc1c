package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mdolezal/newsdesk/app/config"
)

func newTestService() (*Service, *countingAggregator) {
	cfg := &config.Config{
		Categories: []config.Category{
			{Key: "cz-sport", Name: "Český sport", Icon: "trophy",
				Sources: []config.Source{{Name: "A", URL: "http://a"}}},
			{Key: "svet-sport", Name: "Světový sport", Icon: "globe-trophy",
				Sources: []config.Source{{Name: "B", URL: "http://b"}}},
			{Key: "ai", Name: "IT & AI", Icon: "cpu",
				Sources: []config.Source{{Name: "C", URL: "http://c"}}},
		},
		Groups: map[string][]string{
			"sport": {"cz-sport", "svet-sport"},
		},
	}

	aggregator := &countingAggregator{}
	return NewService(cfg, NewCache(aggregator, 300*time.Second)), aggregator
}

func TestCategory(t *testing.T) {
	service, _ := newTestService()

	result, err := service.Category(context.Background(), "cz-sport")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Key != "cz-sport" {
		t.Errorf("Expected key 'cz-sport', got: %s", result.Key)
	}
	if result.Name != "Český sport" {
		t.Errorf("Expected name 'Český sport', got: %s", result.Name)
	}
}

func TestCategoryUnknown(t *testing.T) {
	service, aggregator := newTestService()

	result, err := service.Category(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Expected ErrUnknownCategory, got: %v", err)
	}
	if result != nil {
		t.Error("Expected no result for unknown category")
	}
	if aggregator.runs.Load() != 0 {
		t.Error("Expected no aggregation for unknown category")
	}
}

func TestAllCategories(t *testing.T) {
	service, aggregator := newTestService()

	results := service.AllCategories(context.Background())
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got: %d", len(results))
	}
	for _, key := range []string{"cz-sport", "svet-sport", "ai"} {
		result, ok := results[key]
		if !ok {
			t.Errorf("Expected result for key '%s'", key)
			continue
		}
		if result.Key != key {
			t.Errorf("Expected result key '%s', got: %s", key, result.Key)
		}
	}
	if aggregator.runs.Load() != 3 {
		t.Errorf("Expected 3 aggregations, got: %d", aggregator.runs.Load())
	}
}

func TestAllCategoriesUsesCache(t *testing.T) {
	service, aggregator := newTestService()

	service.AllCategories(context.Background())
	service.AllCategories(context.Background())

	if aggregator.runs.Load() != 3 {
		t.Errorf("Expected the second pass to be served from cache, got %d runs", aggregator.runs.Load())
	}
}

func TestGroup(t *testing.T) {
	service, _ := newTestService()

	results, err := service.Group(context.Background(), "sport")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got: %d", len(results))
	}
	if _, ok := results["cz-sport"]; !ok {
		t.Error("Expected result for 'cz-sport'")
	}
	if _, ok := results["svet-sport"]; !ok {
		t.Error("Expected result for 'svet-sport'")
	}
}

func TestGroupUnknown(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.Group(context.Background(), "nope"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Expected ErrUnknownCategory, got: %v", err)
	}
}

func TestGroupSharesCacheWithCategory(t *testing.T) {
	service, aggregator := newTestService()

	if _, err := service.Category(context.Background(), "cz-sport"); err != nil {
		t.Fatal(err)
	}
	if _, err := service.Group(context.Background(), "sport"); err != nil {
		t.Fatal(err)
	}

	// cz-sport came from cache, only svet-sport was aggregated
	if aggregator.runs.Load() != 2 {
		t.Errorf("Expected 2 aggregations, got: %d", aggregator.runs.Load())
	}
}
