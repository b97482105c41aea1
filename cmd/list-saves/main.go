package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roadtrip-engine/internal/repositories/saves"
)

func main() {
	playerID := flag.String("player", "", "only list saves for this player")
	flag.Parse()

	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := saves.NewRedis(client, 0)

	if *playerID != "" {
		games, listErr := repo.ListByPlayer(ctx, *playerID)
		if listErr != nil {
			log.Fatalf("Failed to list saves: %v", listErr)
		}
		fmt.Printf("Found %d saves for %s:\n", len(games), *playerID)
		for _, g := range games {
			fmt.Printf("  %s: level %d at %s, saved %s\n", g.ID, g.Level, g.Location, g.SavedAt.Format(time.RFC3339))
		}
		return
	}

	// Find all save keys
	saveKeys, err := client.Keys(ctx, "save:*").Result()
	if err != nil {
		log.Fatalf("Failed to get save keys: %v", err)
	}

	fmt.Printf("Found %d saves:\n", len(saveKeys))
	for _, key := range saveKeys {
		g, getErr := repo.Get(ctx, key[len("save:"):])
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}
		fmt.Printf("  %s: %s (%s), level %d\n", g.ID, g.PlayerName, g.PlayerID, g.Level)
	}
}
