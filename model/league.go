package model

// LeagueConfig is a user-owned pointer to a league on the fantasy platform.
// SleeperUserID is optional when the league is first added, but aggregation
// needs it to find the user's roster. A config without it is degraded and is
// skipped, not treated as an error.
type LeagueConfig struct {
	ID             int32
	SleeperLeague  string
	SleeperUserID  string
	LeagueName     string
	CustomNickname string
	Hidden         bool
}

// DisplayName returns the name to show for the league. A user-assigned
// nickname wins over the platform-supplied name.
func (l *LeagueConfig) DisplayName() string {
	if l.CustomNickname != "" {
		return l.CustomNickname
	}
	if l.LeagueName != "" {
		return l.LeagueName
	}
	return "League"
}

// NFLState is the fantasy platform's global notion of where the season is.
type NFLState struct {
	Week       int
	Season     string
	SeasonType string
}

// LeagueUser is a member of a league as reported by the fantasy platform.
type LeagueUser struct {
	UserID      string
	DisplayName string
	TeamName    string
}

// Roster is a read-only snapshot of one team's squad in a league. It is
// re-fetched on every aggregation cycle and never cached beyond it.
type Roster struct {
	RosterID int
	OwnerID  string
	LeagueID string
	Players  []string
	Starters []string
}

// Matchup is one roster's entry in a weekly pairing. Two rosters in the same
// league and week share a MatchupID; a roster whose MatchupID has no sibling
// is on a bye.
type Matchup struct {
	RosterID  int
	MatchupID int
	Points    float64
	Starters  []string
}

// League is the platform's metadata for a league, used when adding a league
// or refreshing its display name.
type League struct {
	LeagueID string
	Name     string
	Season   string
	Status   string
}
