package repository

import (
	"time"

	"github.com/lshigami/Sentret/internal/model"
	"gorm.io/gorm"
)

// LeaderboardRow is a leaderboard entry enriched with the submitting user's
// display name.
type LeaderboardRow struct {
	model.LeaderboardEntry
	Username string
}

type LeaderboardRepository interface {
	Create(entry *model.LeaderboardEntry) error
	// FindSince returns entries with completed_at >= since (all entries when
	// since is nil), ordered by score descending. Ties keep insertion order.
	FindSince(since *time.Time) ([]LeaderboardRow, error)
	// FindByUser returns a user's own entries, newest completion first.
	FindByUser(userID uint) ([]model.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Create(entry *model.LeaderboardEntry) error {
	return r.db.Create(entry).Error
}

func (r *leaderboardRepository) FindSince(since *time.Time) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	query := r.db.Model(&model.LeaderboardEntry{}).
		Select("leaderboard_entries.*, users.username AS username").
		Joins("JOIN users ON users.id = leaderboard_entries.user_id AND users.deleted_at IS NULL")
	if since != nil {
		query = query.Where("leaderboard_entries.completed_at >= ?", *since)
	}
	err := query.Order("leaderboard_entries.score DESC, leaderboard_entries.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *leaderboardRepository) FindByUser(userID uint) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&entries).Error
	return entries, err
}
