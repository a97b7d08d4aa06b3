package repository

import (
	"errors"

	"github.com/lshigami/Sentret/internal/model"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	// Create appends a new snapshot row; existing rows are never updated.
	Create(record *model.ProgressRecord) error
	// FindLatestByUser returns the most recent snapshot by timestamp, or nil
	// when the user has none. Older rows are retained but never consulted.
	FindLatestByUser(userID uint) (*model.ProgressRecord, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(record *model.ProgressRecord) error {
	return r.db.Create(record).Error
}

func (r *progressRepository) FindLatestByUser(userID uint) (*model.ProgressRecord, error) {
	var record model.ProgressRecord
	err := r.db.Where("user_id = ?", userID).Order("timestamp DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
