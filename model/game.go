package model

import (
	"time"
)

// Game is one scheduled NFL game from the schedule provider.
type Game struct {
	ID      string
	Name    string
	Date    time.Time
	Week    int
	Home    Competitor
	Away    Competitor
	Venue   string
	Weather string
}

// Competitor is one side of a game.
type Competitor struct {
	Team   *NFLTeam
	Record string
	Logo   string
}

// GameConfig is the user's visibility and ordering preference for one game.
// When no config exists for a game the defaults apply: visible, ordered by
// the game's position in the upstream schedule.
type GameConfig struct {
	GameID      string
	Visible     bool
	CustomOrder int
	CustomLabel string
}

// DefaultGameConfig returns the config used for a game with no stored
// preference. order is the game's index in the unfiltered schedule.
func DefaultGameConfig(gameID string, order int) GameConfig {
	return GameConfig{
		GameID:      gameID,
		Visible:     true,
		CustomOrder: order,
	}
}

// Scoreboard is the schedule provider's full response: the week it believes
// is current plus every scheduled event, which may span multiple weeks
// around a week boundary.
type Scoreboard struct {
	Week  int
	Games []Game
}

// WeeksPresent returns the distinct week numbers among the scheduled games.
func (s *Scoreboard) WeeksPresent() map[int]bool {
	weeks := make(map[int]bool)
	for _, g := range s.Games {
		weeks[g.Week] = true
	}
	return weeks
}

// GamesForWeek returns the games belonging to the given week.
func (s *Scoreboard) GamesForWeek(week int) []Game {
	var games []Game
	for _, g := range s.Games {
		if g.Week == week {
			games = append(games, g)
		}
	}
	return games
}

// GameWindow labels a game by its Sunday kickoff slot. It exists only to
// batch-apply visibility ("show just the early window") and is never
// persisted.
type GameWindow string

const (
	WindowEarly GameWindow = "early"
	WindowLate  GameWindow = "late"
	WindowOther GameWindow = "other"
)

// Kickoff slots are fixed eastern-time constants, not derived from any
// schedule metadata. Early covers the 9:30 international slot and the 1:00
// main slot; late covers the 4:05/4:25 slots.
var (
	eastern = mustLoadEastern()

	earlyKickoffs = [][2]int{{9, 30}, {13, 0}}

	lateWindowStartHour = 16
	lateWindowEndHour   = 18
)

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return loc
}

// Window classifies the game's kickoff into a Sunday window.
func (g *Game) Window() GameWindow {
	kickoff := g.Date.In(eastern)
	if kickoff.Weekday() != time.Sunday {
		return WindowOther
	}

	for _, slot := range earlyKickoffs {
		if kickoff.Hour() == slot[0] && kickoff.Minute() == slot[1] {
			return WindowEarly
		}
	}

	if kickoff.Hour() >= lateWindowStartHour && kickoff.Hour() < lateWindowEndHour {
		return WindowLate
	}

	return WindowOther
}
