package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"testing"

	"github.com/EyalPasha/Redzone-Companion-My-Players/containers"
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/itbasis/go-clock"
)

// A single container for all of the tests in this package.
var testDB DB

func TestMain(m *testing.M) {
	container := containers.NewDBContainer()
	defer func() {
		if r := recover(); r != nil {
			container.Shutdown()
			fmt.Printf("panic - %v\n", r)
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock.New())
	if err != nil {
		container.Shutdown()
		fmt.Printf("error connecting to test db: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestLeagueLifecycle(t *testing.T) {
	ctx := context.Background()

	l := &model.LeagueConfig{
		SleeperLeague: "924039165950484480",
		SleeperUserID: "12345678",
		LeagueName:    "Footclan & Friends Dynasty",
	}
	if err := testDB.AddLeague(ctx, l); err != nil {
		t.Fatalf("error adding league: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("AddLeague should assign an id")
	}

	got, err := testDB.GetLeague(ctx, l.ID)
	if err != nil {
		t.Fatalf("error getting league: %v", err)
	}
	if !reflect.DeepEqual(got, l) {
		t.Errorf("expected %+v, got %+v", l, got)
	}

	l.CustomNickname = "The Grind"
	l.Hidden = true
	if err := testDB.UpdateLeague(ctx, l); err != nil {
		t.Fatalf("error updating league: %v", err)
	}

	got, err = testDB.GetLeague(ctx, l.ID)
	if err != nil {
		t.Fatalf("error getting updated league: %v", err)
	}
	if got.CustomNickname != "The Grind" || !got.Hidden {
		t.Errorf("update not applied: %+v", got)
	}

	leagues, err := testDB.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("error listing leagues: %v", err)
	}
	found := false
	for _, league := range leagues {
		if league.ID == l.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("added league missing from list: %v", leagues)
	}

	if err := testDB.DeleteLeague(ctx, l.ID); err != nil {
		t.Fatalf("error deleting league: %v", err)
	}
	if _, err := testDB.GetLeague(ctx, l.ID); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound after delete, got %v", err)
	}
}

func TestLeagueNotFound(t *testing.T) {
	ctx := context.Background()

	if _, err := testDB.GetLeague(ctx, 99999); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got %v", err)
	}
	if err := testDB.DeleteLeague(ctx, 99999); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound on delete, got %v", err)
	}
	missing := &model.LeagueConfig{ID: 99999, SleeperLeague: "1"}
	if err := testDB.UpdateLeague(ctx, missing); !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound on update, got %v", err)
	}
}

func TestDegradedLeagueKeepsEmptyUserID(t *testing.T) {
	ctx := context.Background()

	l := &model.LeagueConfig{SleeperLeague: "1005178517580746753"}
	if err := testDB.AddLeague(ctx, l); err != nil {
		t.Fatalf("error adding league without a user id: %v", err)
	}
	defer testDB.DeleteLeague(ctx, l.ID)

	got, err := testDB.GetLeague(ctx, l.ID)
	if err != nil {
		t.Fatalf("error getting league: %v", err)
	}
	if got.SleeperUserID != "" {
		t.Errorf("expected empty user id, got %q", got.SleeperUserID)
	}
}

func TestGameConfigUpsert(t *testing.T) {
	ctx := context.Background()

	cfg := &model.GameConfig{GameID: "401671789", Visible: true, CustomOrder: 3}
	if err := testDB.SaveGameConfig(ctx, cfg); err != nil {
		t.Fatalf("error saving game config: %v", err)
	}

	// Saving again with new values must update, not duplicate.
	cfg.Visible = false
	cfg.CustomOrder = 1
	cfg.CustomLabel = "the late game"
	if err := testDB.SaveGameConfig(ctx, cfg); err != nil {
		t.Fatalf("error upserting game config: %v", err)
	}

	configs, err := testDB.ListGameConfigs(ctx)
	if err != nil {
		t.Fatalf("error listing game configs: %v", err)
	}

	count := 0
	for _, c := range configs {
		if c.GameID == cfg.GameID {
			count++
			if c.Visible || c.CustomOrder != 1 || c.CustomLabel != "the late game" {
				t.Errorf("upsert not applied: %+v", c)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one config for the game, got %d", count)
	}
}
