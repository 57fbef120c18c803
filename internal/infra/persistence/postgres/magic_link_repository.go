package postgres

import (
	"context"
	"time"

	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// magicLinkRepository implements the repository.MagicLinkRepository interface.
type magicLinkRepository struct {
	db *gorm.DB
}

// NewMagicLinkRepository is the constructor for magicLinkRepository.
func NewMagicLinkRepository(db *gorm.DB) repository.MagicLinkRepository {
	return &magicLinkRepository{
		db: db,
	}
}

// Create persists a new magic-link token row.
func (repo *magicLinkRepository) Create(ctx context.Context, token *entity.MagicLinkToken) error {
	tokenM := fromMagicLinkDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create magic link token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Consume looks up an unexpired token and deletes it in the same logical
// step. Unknown, expired, and already-consumed tokens are indistinguishable
// to the caller: all return repository.ErrTokenNotFound.
func (repo *magicLinkRepository) Consume(ctx context.Context, token string, now time.Time) (*entity.MagicLinkToken, error) {
	var tokenM model.MagicLinkModel

	if err := repo.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find magic link token")
	}

	// Delete before reporting success so a replayed token can never be
	// honored twice, even if the caller's later steps fail.
	result := repo.db.WithContext(ctx).Delete(&model.MagicLinkModel{}, tokenM.ID)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume magic link token")
	}
	if result.RowsAffected == 0 {
		// A concurrent request consumed it first.
		return nil, repository.ErrTokenNotFound
	}

	return toMagicLinkDomain(&tokenM), nil
}

// DeleteExpired removes tokens past their expiry.
func (repo *magicLinkRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.MagicLinkModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired magic link tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toMagicLinkDomain converts a GORM MagicLinkModel to a domain MagicLinkToken entity.
func toMagicLinkDomain(data *model.MagicLinkModel) *entity.MagicLinkToken {
	if data == nil {
		return nil
	}

	return &entity.MagicLinkToken{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		Intent:    entity.Intent(data.Intent),
		SessionID: data.SessionID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromMagicLinkDomain converts a domain MagicLinkToken entity to a GORM MagicLinkModel.
func fromMagicLinkDomain(data *entity.MagicLinkToken) *model.MagicLinkModel {
	if data == nil {
		return nil
	}

	return &model.MagicLinkModel{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		Intent:    string(data.Intent),
		SessionID: data.SessionID,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
