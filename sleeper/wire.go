package sleeper

import (
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

// Wire shapes for the platform's JSON. Every field the system consumes is
// declared explicitly rather than read out of an open bag.

type sleeperState struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
}

func (s *sleeperState) toState() *model.NFLState {
	// display_week is what the platform's own UI shows and already accounts
	// for the pre-season; fall back to week when it is absent.
	week := s.DisplayWeek
	if week <= 0 {
		week = s.Week
	}
	return &model.NFLState{
		Week:       week,
		Season:     s.Season,
		SeasonType: s.SeasonType,
	}
}

type sleeperLeague struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Season   string `json:"season"`
	Status   string `json:"status"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		LeagueID: l.LeagueID,
		Name:     l.Name,
		Season:   l.Season,
		Status:   l.Status,
	}
}

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toLeagueUser() *model.LeagueUser {
	teamName := ""
	if u.Metadata != nil {
		teamName = u.Metadata.TeamName
	}
	return &model.LeagueUser{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
		TeamName:    teamName,
	}
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	LeagueID string   `json:"league_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	return &model.Roster{
		RosterID: r.RosterID,
		OwnerID:  r.OwnerID,
		LeagueID: r.LeagueID,
		Players:  r.Players,
		Starters: r.Starters,
	}
}

type sleeperMatchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Points    float64  `json:"points"`
	Starters  []string `json:"starters"`
}

func (m *sleeperMatchup) toMatchup() *model.Matchup {
	return &model.Matchup{
		RosterID:  m.RosterID,
		MatchupID: m.MatchupID,
		Points:    m.Points,
		Starters:  m.Starters,
	}
}

type sleeperPlayer struct {
	ID           string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	JerseyNumber int    `json:"number"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      model.ParseTeam(p.Team),
		Jersey:    p.JerseyNumber,
	}
}
