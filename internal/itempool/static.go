package itempool

import (
	"context"

	"wordbingo/internal/models"
)

// StaticSource serves the built-in dataset without any network access. It
// ignores the requested tier.
type StaticSource struct{}

// NewStatic creates a source backed by the built-in dataset
func NewStatic() *StaticSource {
	return &StaticSource{}
}

// FetchItemPool returns up to count items from the built-in dataset
func (s *StaticSource) FetchItemPool(ctx context.Context, tier models.Tier, count int) ([]models.Item, error) {
	items := Fallback()
	if count > 0 && count < len(items) {
		items = items[:count]
	}
	return items, nil
}
