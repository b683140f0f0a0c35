package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/callsight/callsight/internal/domain/entities"
)

// InteractionRepository defines the interface for analyzed interaction storage
type InteractionRepository interface {
	// Create persists a new analyzed interaction
	Create(ctx context.Context, interaction *entities.Interaction) error

	// FindByID retrieves an interaction by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Interaction, error)

	// ListRecent retrieves the most recently analyzed interactions
	ListRecent(ctx context.Context, limit int) ([]*entities.Interaction, error)
}
