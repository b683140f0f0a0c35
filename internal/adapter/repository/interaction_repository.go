package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/callsight/callsight/internal/domain/entities"
)

// InteractionRepository handles analyzed interaction data operations
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Create persists a new analyzed interaction
func (r *InteractionRepository) Create(ctx context.Context, interaction *entities.Interaction) error {
	if interaction == nil {
		return errors.New("interaction cannot be nil")
	}
	return r.db.WithContext(ctx).Create(interaction).Error
}

// FindByID retrieves an interaction by ID
func (r *InteractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Interaction, error) {
	var interaction entities.Interaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&interaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interaction, nil
}

// ListRecent retrieves the most recently analyzed interactions
func (r *InteractionRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Interaction, error) {
	var interactions []*entities.Interaction
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
