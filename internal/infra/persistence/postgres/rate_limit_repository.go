package postgres

import (
	"context"
	"time"

	"showroom/internal/domain/entity"
	"showroom/internal/domain/repository"
	"showroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rateLimitRepository implements the repository.RateLimitRepository interface.
type rateLimitRepository struct {
	db *gorm.DB
}

// NewRateLimitRepository is the constructor for rateLimitRepository.
func NewRateLimitRepository(db *gorm.DB) repository.RateLimitRepository {
	return &rateLimitRepository{
		db: db,
	}
}

// Find returns the counter row for a key.
func (repo *rateLimitRepository) Find(ctx context.Context, key string) (*entity.RateLimitCounter, error) {
	var counterM model.RateLimitModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&counterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCounterNotFound
		}

		return nil, errors.Wrap(err, "failed to find rate limit counter")
	}

	return toRateLimitDomain(&counterM), nil
}

// Upsert inserts or replaces the counter row for counter.Key.
func (repo *rateLimitRepository) Upsert(ctx context.Context, counter *entity.RateLimitCounter) error {
	counterM := fromRateLimitDomain(counter)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "window_end"}),
		}).
		Create(counterM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert rate limit counter")
	}

	return nil
}

// DeleteExpired removes counters whose window closed before now. Nothing in
// the service schedules this; it exists for operator-driven cleanup.
func (repo *rateLimitRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("window_end < ?", now).
		Delete(&model.RateLimitModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired rate limit counters")
	}

	return nil
}

// --- Mapper Functions ---

func toRateLimitDomain(data *model.RateLimitModel) *entity.RateLimitCounter {
	if data == nil {
		return nil
	}

	return &entity.RateLimitCounter{
		Key:       data.Key,
		Count:     data.Count,
		WindowEnd: data.WindowEnd,
	}
}

func fromRateLimitDomain(data *entity.RateLimitCounter) *model.RateLimitModel {
	if data == nil {
		return nil
	}

	return &model.RateLimitModel{
		Key:       data.Key,
		Count:     data.Count,
		WindowEnd: data.WindowEnd,
	}
}
