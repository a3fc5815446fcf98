package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ResolveEffectiveWeek(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *C) RefreshLineups(ctx context.Context) ([]model.LineupEntry, error) {
	args := c.Called(ctx)

	var res []model.LineupEntry
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LineupEntry)
	}

	return res, args.Error(1)
}

func (c *C) Lineups() []model.LineupEntry {
	args := c.Called()

	var res []model.LineupEntry
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LineupEntry)
	}

	return res
}

func (c *C) RefreshGames(ctx context.Context) ([]model.Game, error) {
	args := c.Called(ctx)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}

func (c *C) Games(ctx context.Context) ([]model.Game, error) {
	args := c.Called(ctx)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GetLeaguesFromPlatform(ctx context.Context, username, season string) ([]model.League, error) {
	args := c.Called(ctx, username, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, sleeperLeagueID, username string) (*model.LeagueConfig, error) {
	args := c.Called(ctx, sleeperLeagueID, username)

	var res *model.LeagueConfig
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LeagueConfig)
	}

	return res, args.Error(1)
}

func (c *C) RenameLeague(ctx context.Context, id int32, nickname string) (*model.LeagueConfig, error) {
	args := c.Called(ctx, id, nickname)

	var res *model.LeagueConfig
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LeagueConfig)
	}

	return res, args.Error(1)
}

func (c *C) SetLeagueHidden(ctx context.Context, id int32, hidden bool) error {
	args := c.Called(ctx, id, hidden)
	return args.Error(0)
}

func (c *C) RemoveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.LeagueConfig, error) {
	args := c.Called(ctx)

	var res []model.LeagueConfig
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LeagueConfig)
	}

	return res, args.Error(1)
}

func (c *C) SaveGameConfig(ctx context.Context, cfg model.GameConfig) error {
	args := c.Called(ctx, cfg)
	return args.Error(0)
}

func (c *C) ApplyWindowVisibility(ctx context.Context, window model.GameWindow) error {
	args := c.Called(ctx, window)
	return args.Error(0)
}

func (c *C) SelectedGame() int {
	args := c.Called()
	return args.Int(0)
}

func (c *C) SetSelectedGame(idx int) {
	c.Called(idx)
}

func (c *C) View() string {
	args := c.Called()
	return args.String(0)
}

func (c *C) SetView(view string) {
	c.Called(view)
}

func (c *C) ClearCache() error {
	args := c.Called()
	return args.Error(0)
}
