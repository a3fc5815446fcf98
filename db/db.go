package db

import (
	"context"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

// DB is the league ownership store: the user's league configurations and
// per-game display preferences. It is deliberately small; rosters, matchups
// and players are upstream snapshots and never land here.
type DB interface {
	ListLeagues(ctx context.Context) ([]model.LeagueConfig, error)
	GetLeague(ctx context.Context, id int32) (*model.LeagueConfig, error)
	// AddLeague inserts the config and fills in its assigned ID.
	AddLeague(ctx context.Context, l *model.LeagueConfig) error
	UpdateLeague(ctx context.Context, l *model.LeagueConfig) error
	DeleteLeague(ctx context.Context, id int32) error

	ListGameConfigs(ctx context.Context) ([]model.GameConfig, error)
	SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error
}
