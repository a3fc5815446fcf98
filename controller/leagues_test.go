package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/EyalPasha/Redzone-Companion-My-Players/sleeper"
	"github.com/EyalPasha/Redzone-Companion-My-Players/testutils"
	"github.com/stretchr/testify/mock"
)

func newLeagueTestController(t *testing.T) (C, *mockedDeps, func()) {
	t.Helper()

	fakeSleeper := testutils.NewFakeSleeperServer()
	ctrl, deps := newMockedController(t)
	ctrl.(*controller).sleeper = sleeper.NewForTest(fakeSleeper.URL())
	return ctrl, deps, fakeSleeper.Close
}

func TestGetLeaguesFromPlatform(t *testing.T) {
	ctrl, _, closeServer := newLeagueTestController(t)
	defer closeServer()

	ctx := context.Background()

	tests := map[string]struct {
		username  string
		season    string
		exErrMsg  string
		exLeagues []model.League
	}{
		"success": {username: "sleeperuser", season: "2024", exLeagues: []model.League{
			{LeagueID: testutils.LeagueAlphaID, Name: "Footclan & Friends Dynasty", Season: "2024", Status: "in_season"},
			{LeagueID: testutils.LeagueBravoID, Name: "The Megalabowl", Season: "2024", Status: "in_season"},
		}},
		"bad season": {username: "sleeperuser", season: "24",
			exErrMsg: "season parameter must be in the YYYY format, got: 24"},
		"empty username": {username: "  ", season: "2024",
			exErrMsg: "username must be provided"},
		"unknown username": {username: "unknown", season: "2024",
			exErrMsg: "error looking up user unknown: user not found"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			leagues, err := ctrl.GetLeaguesFromPlatform(ctx, tc.username, tc.season)
			if tc.exErrMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(tc.exLeagues, leagues) {
					t.Errorf("leagues are not as expected, got: %v", leagues)
				}
			} else {
				if err == nil || err.Error() != tc.exErrMsg {
					t.Errorf("expected error message: %s, got: %v", tc.exErrMsg, err)
				}
			}
		})
	}
}

func TestAddLeague(t *testing.T) {
	ctrl, deps, closeServer := newLeagueTestController(t)
	defer closeServer()

	deps.db.On("AddLeague", mock.Anything, mock.Anything).Return(nil)

	ctx := context.Background()

	t.Run("success with username", func(t *testing.T) {
		cfg, err := ctrl.AddLeague(ctx, testutils.LeagueAlphaID, "sleeperuser")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.LeagueName != "Footclan & Friends Dynasty" {
			t.Errorf("expected the platform name to be adopted, got: %s", cfg.LeagueName)
		}
		if cfg.SleeperUserID != "12345678" {
			t.Errorf("expected the resolved user id, got: %s", cfg.SleeperUserID)
		}
	})

	t.Run("success without username", func(t *testing.T) {
		cfg, err := ctrl.AddLeague(ctx, testutils.LeagueBravoID, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SleeperUserID != "" {
			t.Errorf("expected no user id, got: %s", cfg.SleeperUserID)
		}
	})

	t.Run("unknown league", func(t *testing.T) {
		if _, err := ctrl.AddLeague(ctx, "000", "sleeperuser"); err == nil {
			t.Error("expected an error for an unknown league")
		}
	})

	t.Run("empty league id", func(t *testing.T) {
		_, err := ctrl.AddLeague(ctx, "  ", "sleeperuser")
		if err == nil || err.Error() != "league id must be provided" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestRenameLeague(t *testing.T) {
	ctrl, deps, closeServer := newLeagueTestController(t)
	defer closeServer()

	stored := &model.LeagueConfig{ID: 7, SleeperLeague: testutils.LeagueAlphaID, LeagueName: "Footclan & Friends Dynasty"}
	deps.db.On("GetLeague", mock.Anything, int32(7)).Return(stored, nil)
	deps.db.On("UpdateLeague", mock.Anything, mock.Anything).Return(nil)

	cfg, err := ctrl.RenameLeague(context.Background(), 7, "  Footclan  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CustomNickname != "Footclan" {
		t.Errorf("expected trimmed nickname, got: %q", cfg.CustomNickname)
	}
	if cfg.DisplayName() != "Footclan" {
		t.Errorf("expected the nickname to win, got: %s", cfg.DisplayName())
	}
}

func TestSetLeagueHidden(t *testing.T) {
	ctrl, deps, closeServer := newLeagueTestController(t)
	defer closeServer()

	stored := &model.LeagueConfig{ID: 7, SleeperLeague: testutils.LeagueAlphaID, Hidden: false}
	deps.db.On("GetLeague", mock.Anything, int32(7)).Return(stored, nil)
	deps.db.On("UpdateLeague", mock.Anything, mock.Anything).Return(nil).Once()

	ctx := context.Background()
	if err := ctrl.SetLeagueHidden(ctx, 7, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// hiding an already-hidden league is a no-op, not a second update
	if err := ctrl.SetLeagueHidden(ctx, 7, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deps.db.AssertExpectations(t)
}

func TestRemoveLeague(t *testing.T) {
	ctrl, deps, closeServer := newLeagueTestController(t)
	defer closeServer()

	deps.db.On("DeleteLeague", mock.Anything, int32(9)).Return(nil).Once()
	if err := ctrl.RemoveLeague(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deps.db.On("DeleteLeague", mock.Anything, int32(10)).Return(errors.New("league id 10 not found"))
	if err := ctrl.RemoveLeague(context.Background(), 10); err == nil {
		t.Error("expected the store error to propagate")
	}
	deps.db.AssertExpectations(t)
}
