package postgres

import (
	"context"
	"slices"

	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatMessageRepository implements the repository.ChatMessageRepository interface.
type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository is the constructor for chatMessageRepository.
func NewChatMessageRepository(db *gorm.DB) repository.ChatMessageRepository {
	return &chatMessageRepository{
		db: db,
	}
}

// Append persists messages in order.
func (repo *chatMessageRepository) Append(ctx context.Context, messages ...*entity.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	messageModels := make([]*model.ChatMessageModel, 0, len(messages))
	for _, message := range messages {
		messageModels = append(messageModels, fromChatMessageDomain(message))
	}

	if err := repo.db.WithContext(ctx).Create(&messageModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append chat messages")
	}

	for i, messageM := range messageModels {
		messages[i].ID = messageM.ID
		messages[i].CreatedAt = messageM.CreatedAt
	}

	return nil
}

// ListRecent returns the last limit messages of a session in chronological order.
func (repo *chatMessageRepository) ListRecent(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent chat messages")
	}

	// Query is newest-first for the LIMIT; callers want oldest-first.
	slices.Reverse(messageModels)

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// ListBySession returns the full transcript in chronological order.
func (repo *chatMessageRepository) ListBySession(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	var messageModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toChatMessageDomain(messageM))
	}

	return messages, nil
}

// CountBySessions returns message counts keyed by session ID.
func (repo *chatMessageRepository) CountBySessions(ctx context.Context, sessionIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	type sessionCount struct {
		SessionID string
		Count     int64
	}

	var rows []sessionCount
	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Select("session_id, COUNT(*) AS count").
		Where("session_id IN ?", sessionIDs).
		Group("session_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count chat messages")
	}

	for _, row := range rows {
		counts[row.SessionID] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toChatMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:        data.ID,
		SessionID: data.SessionID,
		Role:      entity.ChatRole(data.Role),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

func fromChatMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		Role:      string(data.Role),
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
