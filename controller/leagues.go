package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

const yearOnlyFormat = "2006"

func (c *controller) GetLeaguesFromPlatform(ctx context.Context, username, season string) ([]model.League, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username must be provided")
	}
	if _, err := time.Parse(yearOnlyFormat, season); err != nil {
		return nil, fmt.Errorf("season parameter must be in the YYYY format, got: %s", season)
	}

	userID, err := c.sleeper.GetUserID(username)
	if err != nil {
		return nil, fmt.Errorf("error looking up user %s: %w", username, err)
	}

	return c.sleeper.GetLeaguesForUser(userID, season)
}

// AddLeague registers a league to track. The league name is taken from the
// platform; the user id is resolved from the username when one is given, or
// left empty for later repair via RenameLeague workflows.
func (c *controller) AddLeague(ctx context.Context, sleeperLeagueID, username string) (*model.LeagueConfig, error) {
	sleeperLeagueID = strings.TrimSpace(sleeperLeagueID)
	if sleeperLeagueID == "" {
		return nil, errors.New("league id must be provided")
	}

	l, err := c.sleeper.GetLeague(sleeperLeagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league %s: %w", sleeperLeagueID, err)
	}

	var userID string
	if username = strings.TrimSpace(username); username != "" {
		userID, err = c.sleeper.GetUserID(username)
		if err != nil {
			return nil, fmt.Errorf("error looking up user %s: %w", username, err)
		}
	}

	cfg := &model.LeagueConfig{
		SleeperLeague: sleeperLeagueID,
		SleeperUserID: userID,
		LeagueName:    l.Name,
	}

	if err := c.db.AddLeague(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *controller) RenameLeague(ctx context.Context, id int32, nickname string) (*model.LeagueConfig, error) {
	cfg, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	cfg.CustomNickname = strings.TrimSpace(nickname)
	if err := c.db.UpdateLeague(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *controller) SetLeagueHidden(ctx context.Context, id int32, hidden bool) error {
	cfg, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}

	if cfg.Hidden == hidden {
		return nil
	}
	cfg.Hidden = hidden
	return c.db.UpdateLeague(ctx, cfg)
}

func (c *controller) RemoveLeague(ctx context.Context, id int32) error {
	return c.db.DeleteLeague(ctx, id)
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.LeagueConfig, error) {
	return c.db.ListLeagues(ctx)
}
