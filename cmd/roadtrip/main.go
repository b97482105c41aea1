package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roadtrip-engine/internal/catalog"
	"github.com/KirkDiggler/roadtrip-engine/internal/chance"
	"github.com/KirkDiggler/roadtrip-engine/internal/config"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/player"
	"github.com/KirkDiggler/roadtrip-engine/internal/quest"
	"github.com/KirkDiggler/roadtrip-engine/internal/repositories/saves"
	"github.com/KirkDiggler/roadtrip-engine/internal/services"
	"github.com/KirkDiggler/roadtrip-engine/internal/services/trip"
	"github.com/KirkDiggler/roadtrip-engine/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	set, err := catalog.Load(ctx, cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to load catalogs: %v", err)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	var saveRepo saves.Repository

	if cfg.UseRedis() {
		redisClient = connectRedis(ctx, cfg.Redis)
	} else {
		log.Println("No REDIS_URL or REDIS_ADDR found, using in-memory saves")
	}
	if redisClient != nil {
		saveRepo = saves.NewRedis(redisClient, cfg.Redis.SaveTTL)
		log.Println("Using Redis for saves")
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed: %d", seed)

	ids := uuid.NewGoogleUUIDGenerator()
	journal := quest.NewJournal()
	provider, err := services.NewProvider(&services.ProviderConfig{
		Catalog:          set.Abilities,
		Events:           set.Events,
		Source:           chance.NewRandomSource(seed),
		Player:           player.New(ids.New(), cfg.Game.PlayerName, cfg.Game.PartyCapacity),
		StartSkillPoints: cfg.Game.StartSkillPoints,
		Tracker:          journal,
		SaveRepository:   saveRepo,
		IDs:              ids,
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	fmt.Println("Road trip started. Type 'help' for commands.")
	runLoop(ctx, provider.TripService, journal, os.Stdin)

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	var opts *redis.Options
	if cfg.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.URL)
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory saves")
			return nil
		}
		opts = parsed
	} else {
		log.Printf("Connecting to Redis at: %s", cfg.Addr)
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}

	client := redis.NewClient(opts)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory saves")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

func runLoop(ctx context.Context, svc trip.Service, journal *quest.Journal, in io.Reader) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handleCommand(ctx, svc, journal, strings.Fields(line)); quit {
				return
			}
		}
	}
}

func handleCommand(ctx context.Context, svc trip.Service, journal *quest.Journal, args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "help":
		fmt.Println("tick | choose <n> | rest | arrive <node> <location> <road> | status")
		fmt.Println("levelup | tree | unlock <id> | save | saves | load <id> | journal | reset | quit")
	case "quit", "exit":
		return true
	case "tick":
		p, err := svc.Tick(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		if p == nil {
			fmt.Println("The road stretches on. Nothing happens.")
			return false
		}
		printPresentation(p)
	case "choose":
		if len(args) < 2 {
			fmt.Println("Usage: choose <n>")
			return false
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Choice must be a number")
			return false
		}
		out, err := svc.Choose(ctx, n-1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		if !out.Result.Applied {
			fmt.Printf("Can't do that: %s\n", out.Result.Reason)
			return false
		}
		if out.Result.Outcome != "" {
			fmt.Println(out.Result.Outcome)
		}
		printResources(out.Result.After)
		if out.Next != nil {
			printPresentation(out.Next)
		}
	case "rest":
		if err := svc.Rest(ctx); err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Println("You rest. Energy and perk charges restored.")
	case "arrive":
		if len(args) < 4 {
			fmt.Println("Usage: arrive <node> <location> <road>")
			return false
		}
		if err := svc.Arrive(ctx, args[1], args[2], args[3]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Printf("Arrived at %s via %s.\n", args[2], args[3])
	case "status":
		p := svc.Player()
		fmt.Printf("%s, level %d at %s (%s)\n", p.Name, p.Level, p.Location, p.RoadType)
		printResources(p.Resources)
		fmt.Printf("Party: %v  Items: %v\n", p.Party.SortedMembers(), p.Inventory.IDs())
	case "levelup":
		fmt.Printf("Reached level %d.\n", svc.LevelUp())
	case "tree":
		for _, entry := range svc.SkillTree() {
			mark := " "
			switch {
			case entry.Unlocked:
				mark = "*"
			case entry.Unlockable:
				mark = "+"
			}
			fmt.Printf("[%s] %-16s %-22s %s\n", mark, entry.Definition.ID, entry.Definition.Name, entry.Reason)
		}
	case "unlock":
		if len(args) < 2 {
			fmt.Println("Usage: unlock <id>")
			return false
		}
		res := svc.Unlock(args[1])
		if !res.Success {
			fmt.Printf("Can't unlock: %s\n", res.Reason)
			return false
		}
		fmt.Printf("Unlocked %s.\n", args[1])
	case "save":
		game, err := svc.Save(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Printf("Saved as %s.\n", game.ID)
	case "saves":
		list, err := svc.Saves(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		for _, g := range list {
			fmt.Printf("%s  level %d at %s  %s\n", g.ID, g.Level, g.Location, g.SavedAt.Format(time.RFC3339))
		}
	case "load":
		if len(args) < 2 {
			fmt.Println("Usage: load <id>")
			return false
		}
		if err := svc.Load(ctx, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Println("Loaded.")
	case "journal":
		s := journal.Summary()
		fmt.Printf("Visited: %v\nCollected: %v\nDelivered: %v\nMet: %v\nEvents completed: %d, money earned: $%d\n",
			s.Visited, s.Collected, s.Delivered, s.NPCs, s.EventsCompleted, s.MoneyEarned)
	case "reset":
		svc.Reset()
		fmt.Println("New trip started.")
	default:
		fmt.Printf("Unknown command %q\n", args[0])
	}
	return false
}

func printPresentation(p *trip.Presentation) {
	if p.Warning {
		fmt.Print("!! ")
	}
	fmt.Printf("%s\n%s\n", p.Event.Title, p.Event.Description)
	for _, c := range p.Choices {
		line := fmt.Sprintf("  %d. %s", c.Index+1, c.Text)
		if c.Disabled {
			line += fmt.Sprintf(" (%s)", c.Reason)
		}
		fmt.Println(line)
	}
}

func printResources(r player.Resources) {
	fmt.Printf("Fuel %d  Energy %d  Vehicle %d  Money $%d  Mood %d\n", r.Fuel, r.Energy, r.Vehicle, r.Money, r.Mood)
}
