// Package catalog loads the ability and event catalogs a trip runs on.
package catalog

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/roadtrip-engine/internal/config"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/ability"
	"github.com/KirkDiggler/roadtrip-engine/internal/domain/event"
	apperr "github.com/KirkDiggler/roadtrip-engine/internal/errors"
)

// Set is a loaded pair of catalogs
type Set struct {
	Abilities *ability.Catalog
	Events    []*event.Event
}

// Load reads both catalogs concurrently. Empty paths fall back to the
// embedded data.
func Load(ctx context.Context, cfg config.CatalogConfig) (*Set, error) {
	g, ctx := errgroup.WithContext(ctx)
	set := &Set{}

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if cfg.AbilitiesFile != "" {
			log.Printf("Catalog: Loading abilities from %s", cfg.AbilitiesFile)
			set.Abilities, err = ability.LoadCatalogFile(cfg.AbilitiesFile)
		} else {
			set.Abilities, err = ability.DefaultCatalog()
		}
		if err != nil {
			return apperr.Wrap(err, "failed to load abilities")
		}
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if cfg.EventsFile != "" {
			log.Printf("Catalog: Loading events from %s", cfg.EventsFile)
			set.Events, err = event.LoadEventsFile(cfg.EventsFile)
		} else {
			set.Events, err = event.DefaultEvents()
		}
		if err != nil {
			return apperr.Wrap(err, "failed to load events")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Catalog: Loaded %d abilities and %d events", set.Abilities.Len(), len(set.Events))
	return set, nil
}
