package controller

import (
	"testing"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/cache"
	"github.com/EyalPasha/Redzone-Companion-My-Players/db/mockdb"
	"github.com/EyalPasha/Redzone-Companion-My-Players/scoreboard/mockscoreboard"
	"github.com/EyalPasha/Redzone-Companion-My-Players/sleeper/mocksleeper"
	"github.com/itbasis/go-clock"
)

// newCacheForTest returns a cache backed by a throwaway directory with a
// quota large enough that the tests never hit eviction.
func newCacheForTest(t *testing.T, clk clock.Clock) *cache.Cache {
	t.Helper()

	medium, err := cache.NewFileMedium(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("error creating file medium: %v", err)
	}
	return cache.New(medium, clk, PlayerCacheKey)
}

type mockedDeps struct {
	clock      *clock.Mock
	sleeper    *mocksleeper.Client
	scoreboard *mockscoreboard.Client
	db         *mockdb.DB
}

// newMockedController wires a controller whose upstreams and store are all
// mocks, for tests that need precise control over failures and call counts.
func newMockedController(t *testing.T) (C, *mockedDeps) {
	t.Helper()

	deps := &mockedDeps{
		clock:      clock.NewMock(),
		sleeper:    new(mocksleeper.Client),
		scoreboard: new(mockscoreboard.Client),
		db:         new(mockdb.DB),
	}

	ctrl, err := New(deps.clock, deps.sleeper, deps.scoreboard, deps.db, newCacheForTest(t, deps.clock))
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	return ctrl, deps
}

func TestViewStateRoundTrip(t *testing.T) {
	ctrl, deps := newMockedController(t)

	ctrl.SetSelectedGame(2)
	ctrl.SetView("lineup")

	// writes are debounced, so nothing is readable until time passes
	deps.clock.Add(time.Second)

	if got := ctrl.SelectedGame(); got != 2 {
		t.Errorf("expected selected game 2, got %d", got)
	}
	if got := ctrl.View(); got != "lineup" {
		t.Errorf("expected view 'lineup', got %q", got)
	}
}

func TestClearCache(t *testing.T) {
	ctrl, deps := newMockedController(t)

	ctrl.SetView("lineup")
	deps.clock.Add(time.Second)

	if err := ctrl.ClearCache(); err != nil {
		t.Fatalf("error clearing cache: %v", err)
	}

	if got := ctrl.View(); got != "" {
		t.Errorf("expected an empty view after clearing, got %q", got)
	}
	if got := ctrl.Lineups(); got != nil {
		t.Errorf("expected no lineup after clearing, got: %+v", got)
	}
}
