package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/KirkDiggler/roadtrip-engine/internal/catalog"
	"github.com/KirkDiggler/roadtrip-engine/internal/config"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

func main() {
	abilitiesFile := flag.String("abilities", "", "ability catalog YAML (default: embedded)")
	eventsFile := flag.String("events", "", "event catalog YAML (default: embedded)")
	flag.Parse()

	set, err := catalog.Load(context.Background(), config.CatalogConfig{
		AbilitiesFile: *abilitiesFile,
		EventsFile:    *eventsFile,
	})
	if err != nil {
		if meta := apperr.GetMeta(err); len(meta) > 0 {
			log.Printf("Details: %v", meta)
		}
		log.Fatalf("Catalog is invalid: %v", err)
	}

	fmt.Printf("Abilities: %d\n", set.Abilities.Len())
	for _, def := range set.Abilities.All() {
		fmt.Printf("  %-16s %-8s %-10s level %d, cost %d\n",
			def.ID, def.Kind, def.Category, def.Requirement.MinLevel, def.Requirement.SkillPointCost)
	}

	classes := make(map[string]int)
	for _, ev := range set.Events {
		classes[string(ev.Class)]++
	}
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Events: %d\n", len(set.Events))
	for _, name := range names {
		fmt.Printf("  %-10s %d\n", name, classes[name])
	}
	fmt.Println("OK")
}
