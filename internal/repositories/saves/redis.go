package saves

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix         = "save:"
	playerIndexPrefix = "player:"
	playerIndexSuffix = ":saves"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	// TTL of 0 keeps saves forever
	TTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          cfg.TTL,
	}
}

func saveKey(id string) string {
	return keyPrefix + id
}

func playerIndexKey(playerID string) string {
	return playerIndexPrefix + playerID + playerIndexSuffix
}

// Save stores the game and indexes it under the player
func (r *redisRepository) Save(ctx context.Context, game *save.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}

	game.SavedAt = r.timeProvider.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return apperr.Wrapf(err, "failed to marshal save %s", game.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, saveKey(game.ID), string(data), r.ttl)
	pipe.SAdd(ctx, playerIndexKey(game.PlayerID), game.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to store save %s", game.ID)
	}

	return nil
}

// Get retrieves a save by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*save.Game, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("save id is required")
	}

	data, err := r.client.Get(ctx, saveKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFoundf("save %s not found", id)
		}
		return nil, apperr.Wrapf(err, "failed to load save %s", id)
	}

	var game save.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to decode save "+id)
	}

	return &game, nil
}

// Delete removes a save and its index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	game, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.SRem(ctx, playerIndexKey(game.PlayerID), id)
	pipe.Del(ctx, saveKey(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrapf(err, "failed to delete save %s", id)
	}

	return nil
}

// ListByPlayer loads every indexed save. Entries whose key has expired are
// dropped from the index.
func (r *redisRepository) ListByPlayer(ctx context.Context, playerID string) ([]*save.Game, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player id is required")
	}

	indexKey := playerIndexKey(playerID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list saves for %s", playerID)
	}
	sort.Strings(ids)

	games := make([]*save.Game, 0, len(ids))
	for _, id := range ids {
		game, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				log.Printf("SaveRepository: Dropping expired save %s from %s", id, indexKey)
				if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
					return nil, apperr.Wrapf(err, "failed to unindex save %s", id)
				}
				continue
			}
			return nil, err
		}
		games = append(games, game)
	}

	sortNewestFirst(games)
	return games, nil
}

func sortNewestFirst(games []*save.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].SavedAt.After(games[j].SavedAt)
	})
}
