package controller

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

func (c *controller) RefreshGames(ctx context.Context) ([]model.Game, error) {
	gen := c.gamesGen.Add(1)

	week, err := c.ResolveEffectiveWeek(ctx)
	if err != nil {
		return nil, err
	}

	sb, err := c.scoreboard.GetScoreboard()
	if err != nil {
		return nil, fmt.Errorf("error fetching scoreboard: %w", err)
	}

	games := sb.GamesForWeek(week)

	// Check the generation under the same lock as the store so a stale
	// refresh can never overwrite a newer publish.
	c.mu.Lock()
	if gen != c.gamesGen.Load() {
		c.mu.Unlock()
		log.Printf("discarding stale games refresh (generation %d)", gen)
		return c.configuredGames(ctx, games)
	}
	c.games = games
	c.mu.Unlock()
	c.cache.Set(keyGames, games)

	return c.configuredGames(ctx, games)
}

func (c *controller) Games(ctx context.Context) ([]model.Game, error) {
	c.mu.Lock()
	games := c.games
	c.mu.Unlock()
	return c.configuredGames(ctx, games)
}

func (c *controller) configuredGames(ctx context.Context, games []model.Game) ([]model.Game, error) {
	configs, err := c.db.ListGameConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing game configs: %w", err)
	}
	return ApplyGameConfig(games, configs), nil
}

// ApplyGameConfig filters and orders the schedule by the user's stored
// preferences. Games without a config stay visible in schedule order. If the
// configuration hides every game the filter is ignored and the full schedule
// comes back in schedule order, so a stale config can never blank the view.
func ApplyGameConfig(games []model.Game, configs []model.GameConfig) []model.Game {
	byID := make(map[string]model.GameConfig, len(configs))
	for _, cfg := range configs {
		byID[cfg.GameID] = cfg
	}

	type ordered struct {
		game  model.Game
		order int
	}

	visible := make([]ordered, 0, len(games))
	for i, g := range games {
		cfg, found := byID[g.ID]
		if !found {
			cfg = model.DefaultGameConfig(g.ID, i)
		}
		if !cfg.Visible {
			continue
		}
		if cfg.CustomLabel != "" {
			g.Name = cfg.CustomLabel
		}
		visible = append(visible, ordered{game: g, order: cfg.CustomOrder})
	}

	if len(visible) == 0 {
		return games
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].order < visible[j].order
	})

	result := make([]model.Game, len(visible))
	for i, o := range visible {
		result[i] = o.game
	}
	return result
}

func (c *controller) SaveGameConfig(ctx context.Context, cfg model.GameConfig) error {
	if cfg.GameID == "" {
		return fmt.Errorf("error game id is required")
	}
	return c.db.SaveGameConfig(ctx, &cfg)
}

func (c *controller) ApplyWindowVisibility(ctx context.Context, window model.GameWindow) error {
	c.mu.Lock()
	games := c.games
	c.mu.Unlock()

	configs, err := c.db.ListGameConfigs(ctx)
	if err != nil {
		return fmt.Errorf("error listing game configs: %w", err)
	}
	byID := make(map[string]model.GameConfig, len(configs))
	for _, cfg := range configs {
		byID[cfg.GameID] = cfg
	}

	for i, g := range games {
		cfg, found := byID[g.ID]
		if !found {
			cfg = model.DefaultGameConfig(g.ID, i)
		}
		cfg.Visible = g.Window() == window

		if err := c.db.SaveGameConfig(ctx, &cfg); err != nil {
			return fmt.Errorf("error saving config for game %s: %w", g.ID, err)
		}
	}
	return nil
}
