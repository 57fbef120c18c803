package postgres

import (
	"context"

	"showroom/internal/domain/entity"
	domainerrors "showroom/internal/domain/errors"
	"showroom/internal/domain/repository"
	"showroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

// Create persists a quote submission.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required lead information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt

	return nil
}

// FindByID returns a single lead.
func (repo *leadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		First(&leadM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	return toLeadDomain(&leadM), nil
}

// ListAll returns every lead, newest first.
func (repo *leadRepository) ListAll(ctx context.Context) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

// ListLinkedSessionIDs returns the distinct chat session IDs that already
// have a lead attached.
func (repo *leadRepository) ListLinkedSessionIDs(ctx context.Context) ([]string, error) {
	var sessionIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("chat_session_id IS NOT NULL").
		Distinct().
		Pluck("chat_session_id", &sessionIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list linked session ids")
	}

	return sessionIDs, nil
}

// --- Mapper Functions ---

func toLeadDomain(data *model.LeadModel) *entity.Lead {
	if data == nil {
		return nil
	}

	return &entity.Lead{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		Message:          data.Message,
		ProductInterest:  data.ProductInterest,
		ProductSlug:      data.ProductSlug,
		SeriesSlug:       data.SeriesSlug,
		ChatSessionID:    data.ChatSessionID,
		Source:           entity.LeadSource(data.Source),
		VisualizerImage:  data.VisualizerImage,
		VisualizerConfig: data.VisualizerConfig,
		CreatedAt:        data.CreatedAt,
	}
}

func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	if data == nil {
		return nil
	}

	return &model.LeadModel{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		Message:          data.Message,
		ProductInterest:  data.ProductInterest,
		ProductSlug:      data.ProductSlug,
		SeriesSlug:       data.SeriesSlug,
		ChatSessionID:    data.ChatSessionID,
		Source:           string(data.Source),
		VisualizerImage:  data.VisualizerImage,
		VisualizerConfig: data.VisualizerConfig,
		CreatedAt:        data.CreatedAt,
	}
}
