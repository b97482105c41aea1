package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Catalog CatalogConfig
	Game    GameConfig
}

// RedisConfig holds Redis-specific configuration.
// URL wins over Addr when both are set.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
	SaveTTL  time.Duration
}

// CatalogConfig points at catalog files. Empty paths use the embedded data.
type CatalogConfig struct {
	AbilitiesFile string
	EventsFile    string
}

// GameConfig holds the starting rules of a new trip
type GameConfig struct {
	PlayerName       string
	Seed             int64
	StartSkillPoints int
	PartyCapacity    int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", ""),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			SaveTTL:  getEnvAsDurationOrDefault("ROADTRIP_SAVE_TTL", 0),
		},
		Catalog: CatalogConfig{
			AbilitiesFile: os.Getenv("ROADTRIP_ABILITIES_FILE"),
			EventsFile:    os.Getenv("ROADTRIP_EVENTS_FILE"),
		},
		Game: GameConfig{
			PlayerName:       getEnvOrDefault("ROADTRIP_PLAYER_NAME", "Driver"),
			Seed:             int64(getEnvAsIntOrDefault("ROADTRIP_SEED", 0)),
			StartSkillPoints: getEnvAsIntOrDefault("ROADTRIP_START_SKILL_POINTS", 1),
			PartyCapacity:    getEnvAsIntOrDefault("ROADTRIP_PARTY_CAPACITY", 4),
		},
	}

	if cfg.Game.StartSkillPoints < 0 {
		return nil, fmt.Errorf("ROADTRIP_START_SKILL_POINTS must be >= 0, got %d", cfg.Game.StartSkillPoints)
	}
	if cfg.Game.PartyCapacity < 1 {
		return nil, fmt.Errorf("ROADTRIP_PARTY_CAPACITY must be >= 1, got %d", cfg.Game.PartyCapacity)
	}
	if cfg.Redis.SaveTTL < 0 {
		return nil, fmt.Errorf("ROADTRIP_SAVE_TTL must not be negative")
	}

	return cfg, nil
}

// UseRedis reports whether any redis endpoint is configured
func (c *Config) UseRedis() bool {
	return c.Redis.URL != "" || c.Redis.Addr != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
