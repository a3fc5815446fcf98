package model

import "fmt"

// Player is the compact slice of the platform's bulk player table that the
// lineup views need. The full table is tens of thousands of rows and is
// never persisted wholesale; only players referenced by a current lineup
// are retained.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      *NFLTeam
	Jersey    int
}

func (p *Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// PlayerTable indexes players by their platform id.
type PlayerTable map[string]Player

// Compact returns the subset of the table referenced by ids, preserving only
// the rows that actually exist. Used to derive the cacheable projection of
// the bulk table.
func (t PlayerTable) Compact(ids []string) PlayerTable {
	out := make(PlayerTable, len(ids))
	for _, id := range ids {
		if p, ok := t[id]; ok {
			out[id] = p
		}
	}
	return out
}

// HasAll reports whether every id is present in the table.
func (t PlayerTable) HasAll(ids []string) bool {
	for _, id := range ids {
		if _, ok := t[id]; !ok {
			return false
		}
	}
	return true
}

// LineupEntry is the display-level unit of the aggregator's output: one
// player's appearance as either "mine" or "opponent's", tagged with every
// league in which that relationship holds. Identity is the
// (PlayerID, IsOpponent, Team) triple; the same player rostered by the user
// in two leagues collapses into one entry, while the same player appearing
// as an opponent stays a distinct entry.
type LineupEntry struct {
	PlayerID    string
	Name        string
	Position    Position
	Team        *NFLTeam
	Jersey      int
	LeagueIDs   []string
	LeagueNames []string
	IsOpponent  bool
}

// SameIdentity reports whether two entries collapse into one under the
// merge rule.
func (e *LineupEntry) SameIdentity(o *LineupEntry) bool {
	return e.PlayerID == o.PlayerID &&
		e.IsOpponent == o.IsOpponent &&
		e.Team.Equals(o.Team)
}
