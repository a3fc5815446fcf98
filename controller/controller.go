package controller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/cache"
	"github.com/EyalPasha/Redzone-Companion-My-Players/db"
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/EyalPasha/Redzone-Companion-My-Players/scoreboard"
	"github.com/EyalPasha/Redzone-Companion-My-Players/sleeper"
	"github.com/itbasis/go-clock"
)

// Cache keys for the persisted local state. PlayerCacheKey is the designated
// large dataset: the cache layer is allowed to skip it under storage
// pressure, everything else must fit.
const (
	PlayerCacheKey  = "players_compact"
	keyLineups      = "lineups"
	keyGames        = "games"
	keyWeek         = "current_week"
	keySelectedGame = "selected_game"
	keyView         = "current_view"
)

// C encapsulates the business logic without worrying about any web layers.
type C interface {
	// ResolveEffectiveWeek reconciles the two upstream notions of the
	// current NFL week into the single week the rest of the system uses.
	ResolveEffectiveWeek(ctx context.Context) (int, error)

	// RefreshLineups runs the full aggregation pipeline for the effective
	// week and returns the merged cross-league lineup.
	RefreshLineups(ctx context.Context) ([]model.LineupEntry, error)
	// Lineups returns the last published lineup without touching upstreams.
	Lineups() []model.LineupEntry

	// RefreshGames re-fetches the schedule for the effective week.
	RefreshGames(ctx context.Context) ([]model.Game, error)
	// Games returns the last known schedule with the user's visibility and
	// ordering configuration applied.
	Games(ctx context.Context) ([]model.Game, error)

	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	GetLeaguesFromPlatform(ctx context.Context, username, season string) ([]model.League, error)
	AddLeague(ctx context.Context, sleeperLeagueID, username string) (*model.LeagueConfig, error)
	RenameLeague(ctx context.Context, id int32, nickname string) (*model.LeagueConfig, error)
	SetLeagueHidden(ctx context.Context, id int32, hidden bool) error
	RemoveLeague(ctx context.Context, id int32) error
	ListLeagues(ctx context.Context) ([]model.LeagueConfig, error)

	SaveGameConfig(ctx context.Context, cfg model.GameConfig) error
	// ApplyWindowVisibility marks every game in the given Sunday window
	// visible and every other game hidden, in one batch.
	ApplyWindowVisibility(ctx context.Context, window model.GameWindow) error

	SelectedGame() int
	SetSelectedGame(idx int)
	View() string
	SetView(view string)

	// ClearCache drops all persisted local state, including the week memo.
	ClearCache() error
}

type controller struct {
	clock      clock.Clock
	sleeper    sleeper.Client
	scoreboard scoreboard.Client
	db         db.DB
	cache      *cache.Cache

	// refresh generations: a finished refresh only publishes if its
	// generation is still current, so a stale response can never overwrite
	// a newer one.
	lineupGen atomic.Int64
	gamesGen  atomic.Int64

	mu      sync.Mutex
	week    *weekMemo
	players model.PlayerTable
	lineups []model.LineupEntry
	games   []model.Game
}

func New(clock clock.Clock, sleeper sleeper.Client, scoreboard scoreboard.Client, db db.DB, cache *cache.Cache) (C, error) {
	c := &controller{
		clock:      clock,
		sleeper:    sleeper,
		scoreboard: scoreboard,
		db:         db,
		cache:      cache,
	}
	c.restoreSnapshot()
	return c, nil
}

// restoreSnapshot reads through the persisted local state so the last known
// week, lineup and schedule are served until the first refresh completes.
func (c *controller) restoreSnapshot() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var memo weekMemo
	if c.cache.Get(keyWeek, &memo) {
		c.week = &memo
	}

	var lineups []model.LineupEntry
	if c.cache.Get(keyLineups, &lineups) {
		c.lineups = lineups
	}

	var games []model.Game
	if c.cache.Get(keyGames, &games) {
		c.games = games
	}

	var players model.PlayerTable
	if c.cache.Get(PlayerCacheKey, &players) && len(players) > 0 {
		c.players = players
	}
}

func (c *controller) ClearCache() error {
	c.mu.Lock()
	c.week = nil
	c.lineups = nil
	c.games = nil
	c.players = nil
	c.mu.Unlock()

	return c.cache.ClearAll()
}

func (c *controller) SelectedGame() int {
	idx := 0
	c.cache.Get(keySelectedGame, &idx)
	return idx
}

func (c *controller) SetSelectedGame(idx int) {
	c.cache.Set(keySelectedGame, idx)
}

func (c *controller) View() string {
	view := ""
	c.cache.Get(keyView, &view)
	return view
}

func (c *controller) SetView(view string) {
	c.cache.Set(keyView, view)
}
