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

// chatSessionRepository implements the repository.ChatSessionRepository interface.
type chatSessionRepository struct {
	db *gorm.DB
}

// NewChatSessionRepository is the constructor for chatSessionRepository.
func NewChatSessionRepository(db *gorm.DB) repository.ChatSessionRepository {
	return &chatSessionRepository{
		db: db,
	}
}

// Create persists a new chat session.
func (repo *chatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	sessionM := fromChatSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindBySessionID returns a session by its client-visible identifier.
func (repo *chatSessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*entity.ChatSession, error) {
	var sessionM model.ChatSessionModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat session")
	}

	return toChatSessionDomain(&sessionM), nil
}

// Touch bumps the session's updated-at timestamp.
func (repo *chatSessionRepository) Touch(ctx context.Context, sessionID string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatSessionModel{}).
		Where("session_id = ?", sessionID).
		Update("updated_at", now)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch chat session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// UpdateEmail sets the session's owner email.
func (repo *chatSessionRepository) UpdateEmail(ctx context.Context, sessionID, email string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatSessionModel{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]any{"email": email, "updated_at": now})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update chat session email")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// ListByEmail returns sessions owned by an email, most recently active first.
func (repo *chatSessionRepository) ListByEmail(ctx context.Context, email string) ([]*entity.ChatSession, error) {
	var sessionModels []*model.ChatSessionModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("updated_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions by email")
	}

	sessions := make([]*entity.ChatSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toChatSessionDomain(sessionM))
	}

	return sessions, nil
}

// ListAll returns every session, most recently active first.
func (repo *chatSessionRepository) ListAll(ctx context.Context) ([]*entity.ChatSession, error) {
	var sessionModels []*model.ChatSessionModel

	if err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat sessions")
	}

	sessions := make([]*entity.ChatSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toChatSessionDomain(sessionM))
	}

	return sessions, nil
}

// --- Mapper Functions ---

func toChatSessionDomain(data *model.ChatSessionModel) *entity.ChatSession {
	if data == nil {
		return nil
	}

	return &entity.ChatSession{
		ID:        data.ID,
		SessionID: data.SessionID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromChatSessionDomain(data *entity.ChatSession) *model.ChatSessionModel {
	if data == nil {
		return nil
	}

	return &model.ChatSessionModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
