package record

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"wordbingo/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRecord(id string, endedAt time.Time) *models.GameRecord {
	return &models.GameRecord{
		ID:         id,
		GameID:     "game-" + id,
		WinnerID:   "player-1",
		WinnerName: "Test Player",
		Settings: models.GameSettings{
			Tier:        models.TierGrade1,
			PlayerCount: 2,
			WinLines:    1,
		},
		Results: []models.PlayerResult{
			{PlayerID: "player-1", PlayerName: "Test Player", Lines: 1, FlippedCells: 7},
			{PlayerID: "player-2", PlayerName: "Aoi", IsAI: true, Lines: 0, FlippedCells: 4},
		},
		Turns:     11,
		StartedAt: endedAt.Add(-10 * time.Minute),
		EndedAt:   endedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRecord() {
	rec := s.testRecord("test-record-id", s.testNow)

	err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{
		Record: rec,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRecord(context.Background(), &GetRecordInput{
		RecordID: "test-record-id",
	})
	s.Require().NoError(err)
	s.Equal(rec.ID, retrieved.ID)
	s.Equal(rec.WinnerID, retrieved.WinnerID)
	s.Equal(rec.Settings, retrieved.Settings)
	s.Equal(rec.Results, retrieved.Results)
	s.Equal(rec.Turns, retrieved.Turns)
	s.True(rec.EndedAt.Equal(retrieved.EndedAt))
}

func (s *RedisRepositoryTestSuite) TestGetRecord_NotFound() {
	_, err := s.repo.GetRecord(context.Background(), &GetRecordInput{
		RecordID: "missing-record-id",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveRecord_NilInput() {
	s.Error(s.repo.SaveRecord(context.Background(), nil))
	s.Error(s.repo.SaveRecord(context.Background(), &SaveRecordInput{}))
}

func (s *RedisRepositoryTestSuite) TestListRecentRecords_NewestFirst() {
	for i := 0; i < 5; i++ {
		rec := s.testRecord(fmt.Sprintf("record-%d", i), s.testNow.Add(time.Duration(i)*time.Minute))
		err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: rec})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListRecentRecords(context.Background(), &ListRecentRecordsInput{
		Limit: 3,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 3)

	s.Equal("record-4", output.Records[0].ID)
	s.Equal("record-3", output.Records[1].ID)
	s.Equal("record-2", output.Records[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListRecentRecords_DefaultLimit() {
	for i := 0; i < 12; i++ {
		rec := s.testRecord(fmt.Sprintf("record-%d", i), s.testNow.Add(time.Duration(i)*time.Minute))
		err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: rec})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListRecentRecords(context.Background(), &ListRecentRecordsInput{})
	s.Require().NoError(err)
	s.Len(output.Records, 10)
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
