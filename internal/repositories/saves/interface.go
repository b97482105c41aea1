package saves

import (
	"context"
	"time"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

// Repository stores trip saves
type Repository interface {
	// Save creates or overwrites a save and stamps SavedAt
	Save(ctx context.Context, game *save.Game) error

	// Get retrieves a save by ID, NotFound if it does not exist
	Get(ctx context.Context, id string) (*save.Game, error)

	// Delete removes a save, NotFound if it does not exist
	Delete(ctx context.Context, id string) error

	// ListByPlayer returns a player's saves, newest first
	ListByPlayer(ctx context.Context, playerID string) ([]*save.Game, error)
}

// TimeProvider supplies the save timestamp
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
