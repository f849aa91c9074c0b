// Package itempool supplies the pool of quizzable items for a difficulty
// tier. The engine makes a single attempt per game and substitutes the
// static fallback dataset when the source fails.
package itempool

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go wordbingo/internal/itempool Source

import (
	"context"

	"wordbingo/internal/models"
)

// Source fetches an ordered item pool for a tier
type Source interface {
	// FetchItemPool returns up to count items for the tier. Fallible; the
	// caller decides whether to substitute the fallback dataset.
	FetchItemPool(ctx context.Context, tier models.Tier, count int) ([]models.Item, error)
}
