package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

// fixture kickoffs around the week 9/10 boundary
var (
	week9Kickoff   = time.Date(2024, 11, 5, 1, 15, 0, 0, time.UTC)
	week10Kickoff  = time.Date(2024, 11, 10, 18, 0, 0, 0, time.UTC)
	sundayMorning  = time.Date(2024, 11, 10, 15, 0, 0, 0, time.UTC)
	week10Schedule = &model.Scoreboard{
		Week: 10,
		Games: []model.Game{
			{ID: "401671789", Week: 10, Date: week10Kickoff},
		},
	}
)

func TestResolveEffectiveWeekMemoized(t *testing.T) {
	ctrl, deps := newMockedController(t)
	deps.clock.Set(sundayMorning)

	deps.sleeper.On("GetNFLState").Return(&model.NFLState{Week: 10, Season: "2024"}, nil).Once()
	deps.scoreboard.On("GetScoreboard").Return(week10Schedule, nil).Once()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		week, err := ctrl.ResolveEffectiveWeek(ctx)
		if err != nil {
			t.Fatalf("error resolving week: %v", err)
		}
		if week != 10 {
			t.Errorf("expected week 10, got %d", week)
		}
	}
	deps.sleeper.AssertExpectations(t)
	deps.scoreboard.AssertExpectations(t)

	// after the memo expires the upstreams are consulted again
	deps.clock.Add(weekMemoTTL + time.Minute)
	deps.sleeper.On("GetNFLState").Return(&model.NFLState{Week: 11, Season: "2024"}, nil).Once()
	deps.scoreboard.On("GetScoreboard").Return(&model.Scoreboard{
		Week:  11,
		Games: []model.Game{{ID: "401671900", Week: 11, Date: deps.clock.Now().Add(48 * time.Hour)}},
	}, nil).Once()

	week, err := ctrl.ResolveEffectiveWeek(ctx)
	if err != nil {
		t.Fatalf("error resolving week after memo expiry: %v", err)
	}
	if week != 11 {
		t.Errorf("expected week 11 after memo expiry, got %d", week)
	}
	deps.sleeper.AssertExpectations(t)
}

func TestResolveEffectiveWeekSkew(t *testing.T) {
	ctrl, deps := newMockedController(t)
	deps.clock.Set(sundayMorning)

	// The platform has already rolled over to week 11, but the schedule
	// provider still declares week 10 and has no week 11 events.
	deps.sleeper.On("GetNFLState").Return(&model.NFLState{Week: 11, Season: "2024"}, nil).Once()
	deps.scoreboard.On("GetScoreboard").Return(week10Schedule, nil).Once()

	week, err := ctrl.ResolveEffectiveWeek(context.Background())
	if err != nil {
		t.Fatalf("error resolving week: %v", err)
	}
	if week != 10 {
		t.Errorf("expected schedule provider's week 10, got %d", week)
	}
}

func TestResolveEffectiveWeekGraceWindow(t *testing.T) {
	schedule := &model.Scoreboard{
		Week: 10,
		Games: []model.Game{
			{ID: "401671750", Week: 9, Date: week9Kickoff},
			{ID: "401671789", Week: 10, Date: week10Kickoff},
		},
	}

	tests := map[string]struct {
		now    time.Time
		exWeek int
	}{
		"inside window":  {now: week9Kickoff.Add(postKickoffGrace - time.Second), exWeek: 9},
		"window elapsed": {now: week9Kickoff.Add(postKickoffGrace), exWeek: 10},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl, deps := newMockedController(t)
			deps.clock.Set(tc.now)
			deps.sleeper.On("GetNFLState").Return(&model.NFLState{Week: 10, Season: "2024"}, nil).Once()
			deps.scoreboard.On("GetScoreboard").Return(schedule, nil).Once()

			week, err := ctrl.ResolveEffectiveWeek(context.Background())
			if err != nil {
				t.Fatalf("error resolving week: %v", err)
			}
			if week != tc.exWeek {
				t.Errorf("expected week %d, got %d", tc.exWeek, week)
			}
		})
	}
}

func TestResolveEffectiveWeekFallback(t *testing.T) {
	ctrl, deps := newMockedController(t)
	deps.clock.Set(sundayMorning)

	// One call inside the joint fetch, one for the fallback re-fetch.
	deps.sleeper.On("GetNFLState").Return(&model.NFLState{Week: 7, Season: "2024"}, nil).Twice()
	deps.scoreboard.On("GetScoreboard").Return(nil, errors.New("upstream down")).Once()

	week, err := ctrl.ResolveEffectiveWeek(context.Background())
	if err != nil {
		t.Fatalf("expected fallback to succeed, got: %v", err)
	}
	if week != 7 {
		t.Errorf("expected platform's declared week 7, got %d", week)
	}
	deps.sleeper.AssertExpectations(t)

	// the fallback result is memoized like any other
	week, err = ctrl.ResolveEffectiveWeek(context.Background())
	if err != nil || week != 7 {
		t.Errorf("expected memoized week 7, got %d (%v)", week, err)
	}
}

func TestResolveEffectiveWeekBothSourcesFail(t *testing.T) {
	ctrl, deps := newMockedController(t)
	deps.clock.Set(sundayMorning)

	deps.sleeper.On("GetNFLState").Return(nil, errors.New("platform down")).Twice()
	deps.scoreboard.On("GetScoreboard").Return(nil, errors.New("upstream down")).Once()

	_, err := ctrl.ResolveEffectiveWeek(context.Background())
	if err == nil {
		t.Fatal("expected an error when both sources fail")
	}
	if !strings.Contains(err.Error(), "error resolving effective week") {
		t.Errorf("unexpected error message: %v", err)
	}
}
