package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Sentret/config"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TimeFilter restricts the leaderboard to a trailing window.
type TimeFilter string

const (
	FilterAll     TimeFilter = "all"
	FilterDaily   TimeFilter = "daily"
	FilterWeekly  TimeFilter = "weekly"
	FilterMonthly TimeFilter = "monthly"
)

// ParseTimeFilter maps a query value to a filter. Empty means all time.
func ParseTimeFilter(raw string) (TimeFilter, error) {
	switch TimeFilter(raw) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterDaily, FilterWeekly, FilterMonthly:
		return TimeFilter(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown filter %q", quiz.ErrValidation, raw)
	}
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, filter TimeFilter, userID *uint) (*dto.LeaderboardDTO, error)
	InvalidateCache(ctx context.Context)
}

type leaderboardService struct {
	repo  repository.LeaderboardRepository
	redis *redis.Client
	cfg   *config.Config
	now   func() time.Time
}

func NewLeaderboardService(repo repository.LeaderboardRepository, redisClient *redis.Client, cfg *config.Config) LeaderboardService {
	return &leaderboardService{
		repo:  repo,
		redis: redisClient,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, filter TimeFilter, userID *uint) (*dto.LeaderboardDTO, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	board := &dto.LeaderboardDTO{
		Filter:  string(filter),
		Entries: entries,
	}
	if userID != nil {
		for i, entry := range entries {
			if entry.UserID == *userID {
				rank := i + 1
				board.UserRank = &rank
				break
			}
		}
	}
	return board, nil
}

func (s *leaderboardService) loadEntries(ctx context.Context, filter TimeFilter) ([]dto.LeaderboardEntryDTO, error) {
	cacheKey := fmt.Sprintf("leaderboard:%s", filter)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var entries []dto.LeaderboardEntryDTO
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
			log.Warn().Str("key", cacheKey).Msg("Discarding unreadable leaderboard cache entry")
		} else if err != redis.Nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Leaderboard cache read failed")
		}
	}

	rows, err := s.repo.FindSince(s.windowStart(filter))
	if err != nil {
		log.Error().Err(err).Str("filter", string(filter)).Msg("Failed to load leaderboard")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, dto.LeaderboardEntryDTO{
			ID:             row.ID,
			UserID:         row.UserID,
			Username:       row.Username,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			CompletedAt:    row.CompletedAt,
		})
	}

	if s.redis != nil {
		payload, err := json.Marshal(entries)
		if err == nil {
			ttl := time.Duration(s.cfg.Quiz.LeaderboardCacheTTL) * time.Second
			if err := s.redis.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("Leaderboard cache write failed")
			}
		}
	}
	return entries, nil
}

// windowStart returns the inclusive lower bound for the filter, nil for all
// time. Monthly follows calendar months rather than a fixed 30 days.
func (s *leaderboardService) windowStart(filter TimeFilter) *time.Time {
	now := s.now()
	var since time.Time
	switch filter {
	case FilterDaily:
		since = now.Add(-24 * time.Hour)
	case FilterWeekly:
		since = now.Add(-7 * 24 * time.Hour)
	case FilterMonthly:
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &since
}

func (s *leaderboardService) InvalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	for _, filter := range []TimeFilter{FilterAll, FilterDaily, FilterWeekly, FilterMonthly} {
		key := fmt.Sprintf("leaderboard:%s", filter)
		if err := s.redis.Del(ctx, key).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Leaderboard cache invalidation failed")
		}
	}
}
