package record

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go wordbingo/internal/repositories/record Repository

import (
	"context"

	"wordbingo/internal/models"
)

// Repository defines the interface for finished-game record persistence
type Repository interface {
	// SaveRecord persists a finished-game record
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// GetRecord retrieves a record by ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.GameRecord, error)

	// ListRecentRecords retrieves the most recently finished games
	ListRecentRecords(ctx context.Context, input *ListRecentRecordsInput) (*ListRecentRecordsOutput, error)
}
