package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"golang.org/x/sync/errgroup"
)

func (c *controller) RefreshLineups(ctx context.Context) ([]model.LineupEntry, error) {
	gen := c.lineupGen.Add(1)

	week, err := c.ResolveEffectiveWeek(ctx)
	if err != nil {
		return nil, err
	}

	leagues, err := c.db.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	players, err := c.playerTable()
	if err != nil {
		return nil, err
	}

	entries, err := c.aggregateLineups(week, leagues, players)
	if err != nil {
		return nil, err
	}

	c.publishLineups(gen, entries)
	return entries, nil
}

func (c *controller) Lineups() []model.LineupEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lineups
}

// aggregateLineups resolves each league's matchup for the week and merges
// the starters into one deduplicated lineup. Leagues are processed in order;
// within a league the three provider calls run concurrently. Data absence
// (no user id, no roster, no matchup) skips the league with a log line; a
// gateway failure aborts the whole aggregation and leaves the published
// lineup untouched.
func (c *controller) aggregateLineups(week int, leagues []model.LeagueConfig, players model.PlayerTable) ([]model.LineupEntry, error) {
	entries := make([]model.LineupEntry, 0, 32)
	reloaded := false

	for _, lc := range leagues {
		if lc.Hidden {
			continue
		}
		if lc.SleeperUserID == "" {
			log.Printf("skipping league %s: no stored user id", lc.DisplayName())
			continue
		}

		var rosters []model.Roster
		var users []model.LeagueUser
		var matchups []model.Matchup

		var g errgroup.Group
		g.Go(func() error {
			var err error
			rosters, err = c.sleeper.GetRosters(lc.SleeperLeague)
			return err
		})
		g.Go(func() error {
			var err error
			users, err = c.sleeper.GetLeagueUsers(lc.SleeperLeague)
			return err
		})
		g.Go(func() error {
			var err error
			matchups, err = c.sleeper.GetMatchups(lc.SleeperLeague, week)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("error aggregating league %s: %w", lc.DisplayName(), err)
		}

		// Roster ownership is the only resolution key; the users list just
		// sharpens the log line when the roster is missing.
		mine := findRosterByOwner(rosters, lc.SleeperUserID)
		if mine == nil {
			if isLeagueMember(users, lc.SleeperUserID) {
				log.Printf("skipping league %s: no roster owned by %s", lc.DisplayName(), lc.SleeperUserID)
			} else {
				log.Printf("skipping league %s: stored user %s is not a member", lc.DisplayName(), lc.SleeperUserID)
			}
			continue
		}

		myMatchup := findMatchupByRoster(matchups, mine.RosterID)

		// Absence of an opponent means a bye, never an error.
		var oppMatchup *model.Matchup
		var oppRoster *model.Roster
		if myMatchup != nil {
			oppMatchup = findOpponentMatchup(matchups, myMatchup)
			if oppMatchup != nil {
				oppRoster = findRosterByID(rosters, oppMatchup.RosterID)
			}
		}

		myIDs := starterIDs(myMatchup, mine)
		var oppIDs []string
		if oppMatchup != nil || oppRoster != nil {
			oppIDs = starterIDs(oppMatchup, oppRoster)
		}

		// The restored compact projection only knows players from the previous
		// lineup; a starter swapped in since then is missing from it, so fetch
		// the full table once rather than drop the player.
		if !reloaded && !(players.HasAll(myIDs) && players.HasAll(oppIDs)) {
			loaded, err := c.loadPlayers()
			if err != nil {
				return nil, err
			}
			players = loaded
			reloaded = true
		}

		for _, id := range myIDs {
			entries = merge(entries, newEntry(id, players, &lc, false))
		}
		for _, id := range oppIDs {
			entries = merge(entries, newEntry(id, players, &lc, true))
		}
	}

	return entries, nil
}

// publishLineups installs the aggregation result and persists it, unless a
// newer refresh has started in the meantime. The generation check happens
// under the same lock as the store so a stale refresh can never overwrite a
// newer publish.
func (c *controller) publishLineups(gen int64, entries []model.LineupEntry) {
	c.mu.Lock()
	if gen != c.lineupGen.Load() {
		c.mu.Unlock()
		log.Printf("discarding stale lineup refresh (generation %d)", gen)
		return
	}
	c.lineups = entries
	players := c.players
	c.mu.Unlock()

	c.cache.Set(keyLineups, entries)

	// Rebuild the compact player projection from what the lineup actually
	// references; the full table is never cached.
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlayerID)
	}
	if err := c.cache.SetImmediate(PlayerCacheKey, players.Compact(ids)); err != nil {
		log.Printf("error caching compact player table: %v", err)
	}
}

func newEntry(playerID string, players model.PlayerTable, lc *model.LeagueConfig, isOpponent bool) *model.LineupEntry {
	p, found := players[playerID]
	if !found {
		return nil
	}
	return &model.LineupEntry{
		PlayerID:    p.ID,
		Name:        p.FullName(),
		Position:    p.Position,
		Team:        p.Team,
		Jersey:      p.Jersey,
		LeagueIDs:   []string{lc.SleeperLeague},
		LeagueNames: []string{lc.DisplayName()},
		IsOpponent:  isOpponent,
	}
}

// merge appends the candidate's league to an existing entry with the same
// (player, side, team) identity, or inserts it as a new entry.
func merge(entries []model.LineupEntry, candidate *model.LineupEntry) []model.LineupEntry {
	if candidate == nil {
		return entries
	}
	for i := range entries {
		if entries[i].SameIdentity(candidate) {
			entries[i].LeagueIDs = append(entries[i].LeagueIDs, candidate.LeagueIDs...)
			entries[i].LeagueNames = append(entries[i].LeagueNames, candidate.LeagueNames...)
			return entries
		}
	}
	return append(entries, *candidate)
}

// starterIDs prefers the matchup's starters over the roster's: the matchup
// reflects the live, current-week lineup while the roster can be stale
// between updates.
func starterIDs(m *model.Matchup, r *model.Roster) []string {
	if m != nil && len(m.Starters) > 0 {
		return m.Starters
	}
	if r != nil {
		return r.Starters
	}
	return nil
}

func isLeagueMember(users []model.LeagueUser, userID string) bool {
	for _, u := range users {
		if u.UserID == userID {
			return true
		}
	}
	return false
}

func findRosterByOwner(rosters []model.Roster, ownerID string) *model.Roster {
	for i := range rosters {
		if rosters[i].OwnerID == ownerID {
			return &rosters[i]
		}
	}
	return nil
}

func findRosterByID(rosters []model.Roster, rosterID int) *model.Roster {
	for i := range rosters {
		if rosters[i].RosterID == rosterID {
			return &rosters[i]
		}
	}
	return nil
}

func findMatchupByRoster(matchups []model.Matchup, rosterID int) *model.Matchup {
	for i := range matchups {
		if matchups[i].RosterID == rosterID {
			return &matchups[i]
		}
	}
	return nil
}

func findOpponentMatchup(matchups []model.Matchup, mine *model.Matchup) *model.Matchup {
	for i := range matchups {
		if matchups[i].MatchupID == mine.MatchupID && matchups[i].RosterID != mine.RosterID {
			return &matchups[i]
		}
	}
	return nil
}
