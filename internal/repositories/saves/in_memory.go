package saves

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

// InMemoryRepository implements Repository in process memory. Stored games
// are encoded so callers never share pointers with the store.
type InMemoryRepository struct {
	mu           sync.RWMutex
	saves        map[string][]byte
	byPlayer     map[string]map[string]bool
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory save repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(RealTimeProvider{})
}

// NewInMemoryRepositoryWithClock creates an in-memory repository with a custom clock
func NewInMemoryRepositoryWithClock(timeProvider TimeProvider) *InMemoryRepository {
	return &InMemoryRepository{
		saves:        make(map[string][]byte),
		byPlayer:     make(map[string]map[string]bool),
		timeProvider: timeProvider,
	}
}

// Save stores the game
func (r *InMemoryRepository) Save(_ context.Context, game *save.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game.SavedAt = r.timeProvider.Now()
	data, err := json.Marshal(game)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal save %s", game.ID)
	}

	r.saves[game.ID] = data
	if r.byPlayer[game.PlayerID] == nil {
		r.byPlayer[game.PlayerID] = make(map[string]bool)
	}
	r.byPlayer[game.PlayerID][game.ID] = true
	return nil
}

// Get retrieves a save by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*save.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(id)
}

func (r *InMemoryRepository) getLocked(id string) (*save.Game, error) {
	data, ok := r.saves[id]
	if !ok {
		return nil, apperr.NotFoundf("save %s not found", id)
	}

	var game save.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to decode save "+id)
	}
	return &game, nil
}

// Delete removes a save
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, err := r.getLocked(id)
	if err != nil {
		return err
	}
	delete(r.saves, id)
	delete(r.byPlayer[game.PlayerID], id)
	return nil
}

// ListByPlayer returns a player's saves, newest first
func (r *InMemoryRepository) ListByPlayer(_ context.Context, playerID string) ([]*save.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byPlayer[playerID]))
	for id := range r.byPlayer[playerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	games := make([]*save.Game, 0, len(ids))
	for _, id := range ids {
		game, err := r.getLocked(id)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	sortNewestFirst(games)
	return games, nil
}

var _ Repository = (*InMemoryRepository)(nil)
