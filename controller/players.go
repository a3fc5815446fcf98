package controller

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := time.Now()
	log.Printf("update players starting at %v", start.Format(time.DateTime))

	if _, err := c.loadPlayers(); err != nil {
		return err
	}

	log.Printf("load players finished, took %v", time.Since(start))
	return nil
}

// loadPlayers fetches the full upstream dump and installs it as the
// in-memory table.
func (c *controller) loadPlayers() (model.PlayerTable, error) {
	loaded, err := c.sleeper.LoadPlayers()
	if err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}
	c.mu.Lock()
	c.players = loaded
	c.mu.Unlock()
	return loaded, nil
}

// playerTable returns the in-memory player table, restoring it from the
// cached compact projection or, failing that, the upstream dump. The compact
// projection only covers previously-seen players; callers resolving fresh
// starters check coverage and fall back to loadPlayers for anyone missing.
func (c *controller) playerTable() (model.PlayerTable, error) {
	c.mu.Lock()
	players := c.players
	c.mu.Unlock()
	if len(players) > 0 {
		return players, nil
	}

	cached := make(model.PlayerTable)
	if c.cache.Get(PlayerCacheKey, &cached) && len(cached) > 0 {
		c.mu.Lock()
		c.players = cached
		c.mu.Unlock()
		return cached, nil
	}

	return c.loadPlayers()
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
