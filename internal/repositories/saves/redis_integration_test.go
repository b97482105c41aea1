//go:build integration
// +build integration

package saves_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/save"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
	"github.com/KirkDiggler/roadtrip-engine/internal/repositories/saves"
	"github.com/KirkDiggler/roadtrip-engine/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisContainer(t)
	repo := saves.NewRedis(client, time.Hour)
	ctx := context.Background()

	party := player.NewParty(3)
	party.Recruit("maya")
	game := &save.Game{
		ID:          "save-1",
		PlayerID:    "player-1",
		Resources:   player.Resources{Fuel: 35, Energy: 80, Money: 90, Vehicle: 60, Mood: 55},
		Unlocked:    []string{"power_nap"},
		SkillPoints: 2,
		Charges:     map[string]int{"power_nap": 2},
		Party:       party,
		Inventory:   player.NewInventory(),
	}

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, game))

		got, err := repo.Get(ctx, "save-1")
		require.NoError(t, err)
		assert.Equal(t, game.Resources, got.Resources)
		assert.Equal(t, game.Charges, got.Charges)
		assert.True(t, got.Party.Has("maya"))

		ttl, err := client.TTL(ctx, "save:save-1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("list and delete", func(t *testing.T) {
		games, err := repo.ListByPlayer(ctx, "player-1")
		require.NoError(t, err)
		require.Len(t, games, 1)

		require.NoError(t, repo.Delete(ctx, "save-1"))
		_, err = repo.Get(ctx, "save-1")
		assert.True(t, apperr.IsNotFound(err))
	})
}
