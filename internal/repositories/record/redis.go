package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wordbingo/internal/models"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix  = "record:"
	recentRecordsKey = "recent_records"

	defaultListLimit = 10
)

// ErrRecordNotFound is returned when a record is not found
var ErrRecordNotFound = errors.New("record not found")

// Config holds configuration for the Redis record repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed record repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRecord persists a finished-game record to Redis
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := r.client.Pipeline()

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.Record.ID)
	pipe.Set(ctx, recordKey, recordJSON, 0)

	// Index by finish time for recency listing
	pipe.ZAdd(ctx, recentRecordsKey, redis.Z{
		Score:  float64(input.Record.EndedAt.UnixNano()),
		Member: input.Record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by ID from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.GameRecord, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.RecordID)
	recordJSON, err := r.client.Get(ctx, recordKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var rec models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

// ListRecentRecords retrieves the most recently finished games, newest first
func (r *redisRepository) ListRecentRecords(ctx context.Context, input *ListRecentRecordsInput) (*ListRecentRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	ids, err := r.client.ZRevRange(ctx, recentRecordsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}

	records := make([]*models.GameRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := r.GetRecord(ctx, &GetRecordInput{RecordID: id})
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return &ListRecentRecordsOutput{Records: records}, nil
}
