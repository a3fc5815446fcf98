package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrLeagueNotFound error = errors.New("league not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.LeagueConfig, error) {
	const query = `SELECT id, sleeper_league_id, sleeper_user_id, league_name,
						custom_nickname, hidden
					FROM leagues ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	leagues := make([]model.LeagueConfig, 0, 4)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		leagues = append(leagues, *l)
	}
	return leagues, rows.Err()
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.LeagueConfig, error) {
	const query = `SELECT id, sleeper_league_id, sleeper_user_id, league_name,
						custom_nickname, hidden
					FROM leagues WHERE id=@id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error looking up league %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrLeagueNotFound
	}
	return scanLeague(rows)
}

func (db *postgresDB) AddLeague(ctx context.Context, l *model.LeagueConfig) error {
	const query = `INSERT INTO leagues(
			sleeper_league_id,
			sleeper_user_id,
			league_name,
			custom_nickname,
			hidden,
			created,
			updated
		) VALUES (
			@sleeperLeagueID,
			@sleeperUserID,
			@leagueName,
			@customNickname,
			@hidden,
			@now,
			@now
		) RETURNING id`

	args := namedArgsForLeague(l)
	args["now"] = db.now()

	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&l.ID); err != nil {
		return fmt.Errorf("error inserting league (%s): %w", l.SleeperLeague, err)
	}
	return nil
}

func (db *postgresDB) UpdateLeague(ctx context.Context, l *model.LeagueConfig) error {
	const query = `UPDATE leagues
		SET sleeper_user_id=@sleeperUserID,
			league_name=@leagueName,
			custom_nickname=@customNickname,
			hidden=@hidden,
			updated=@now
		WHERE id=@id`

	args := namedArgsForLeague(l)
	args["id"] = l.ID
	args["now"] = db.now()

	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating league %d: %w", l.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) DeleteLeague(ctx context.Context, id int32) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM leagues WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) ListGameConfigs(ctx context.Context) ([]model.GameConfig, error) {
	const query = `SELECT game_id, visible, custom_order, custom_label
					FROM game_configs ORDER BY custom_order`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing game configs: %w", err)
	}
	defer rows.Close()

	configs := make([]model.GameConfig, 0, 16)
	for rows.Next() {
		var cfg model.GameConfig
		var label sql.NullString
		if err := rows.Scan(&cfg.GameID, &cfg.Visible, &cfg.CustomOrder, &label); err != nil {
			return nil, fmt.Errorf("error scanning game config: %w", err)
		}
		cfg.CustomLabel = valueOrEmpty(label)
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (db *postgresDB) SaveGameConfig(ctx context.Context, cfg *model.GameConfig) error {
	const query = `INSERT INTO game_configs(game_id, visible, custom_order, custom_label, updated)
		VALUES (@gameID, @visible, @customOrder, @customLabel, @now)
		ON CONFLICT (game_id) DO UPDATE
		SET visible=@visible, custom_order=@customOrder, custom_label=@customLabel, updated=@now`

	args := pgx.NamedArgs{
		"gameID":      cfg.GameID,
		"visible":     cfg.Visible,
		"customOrder": cfg.CustomOrder,
		"customLabel": sql.NullString{
			String: cfg.CustomLabel,
			Valid:  cfg.CustomLabel != "",
		},
		"now": db.now(),
	}

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving game config (%s): %w", cfg.GameID, err)
	}
	return nil
}

func scanLeague(rows pgx.Rows) (*model.LeagueConfig, error) {
	var l model.LeagueConfig
	var userID, name, nickname sql.NullString
	if err := rows.Scan(&l.ID, &l.SleeperLeague, &userID, &name, &nickname, &l.Hidden); err != nil {
		return nil, fmt.Errorf("error scanning league: %w", err)
	}
	l.SleeperUserID = valueOrEmpty(userID)
	l.LeagueName = valueOrEmpty(name)
	l.CustomNickname = valueOrEmpty(nickname)
	return &l, nil
}

func namedArgsForLeague(l *model.LeagueConfig) pgx.NamedArgs {
	return pgx.NamedArgs{
		"sleeperLeagueID": l.SleeperLeague,
		"sleeperUserID": sql.NullString{
			String: l.SleeperUserID,
			Valid:  l.SleeperUserID != "",
		},
		"leagueName": sql.NullString{
			String: l.LeagueName,
			Valid:  l.LeagueName != "",
		},
		"customNickname": sql.NullString{
			String: l.CustomNickname,
			Valid:  l.CustomNickname != "",
		},
		"hidden": l.Hidden,
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
