package mockdb

import (
	"context"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.LeagueConfig, error) {
	args := db.Called(ctx)

	var r []model.LeagueConfig
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeagueConfig)
	}
	return r, args.Error(1)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.LeagueConfig, error) {
	args := db.Called(ctx, id)

	var l *model.LeagueConfig
	if args.Get(0) != nil {
		l = args.Get(0).(*model.LeagueConfig)
	}
	return l, args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, l *model.LeagueConfig) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) UpdateLeague(ctx context.Context, l *model.LeagueConfig) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) DeleteLeague(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListGameConfigs(ctx context.Context) ([]model.GameConfig, error) {
	args := db.Called(ctx)

	var r []model.GameConfig
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GameConfig)
	}
	return r, args.Error(1)
}

func (db *DB) SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error {
	args := db.Called(ctx, cfg)
	return args.Error(0)
}
