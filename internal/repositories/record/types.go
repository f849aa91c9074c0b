package record

import "wordbingo/internal/models"

type SaveRecordInput struct {
	Record *models.GameRecord
}

type GetRecordInput struct {
	RecordID string
}

type ListRecentRecordsInput struct {
	// Limit caps the number of records returned; defaults to 10
	Limit int
}

type ListRecentRecordsOutput struct {
	Records []*models.GameRecord
}
