package model

import "testing"

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		player   Player
		expected string
	}{
		{name: "both", player: Player{FirstName: "Tyler", LastName: "Lockett"}, expected: "Tyler Lockett"},
		{name: "last only", player: Player{LastName: "Seahawks"}, expected: "Seahawks"},
		{name: "first only", player: Player{FirstName: "Tyler"}, expected: "Tyler"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if n := tc.player.FullName(); n != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, n)
			}
		})
	}
}

func TestPlayerTableCompact(t *testing.T) {
	table := PlayerTable{
		"2374": {ID: "2374", FirstName: "Tyler", LastName: "Lockett", Team: TEAM_SEA},
		"6904": {ID: "6904", FirstName: "Jalen", LastName: "Hurts", Team: TEAM_PHI},
		"8155": {ID: "8155", FirstName: "Breece", LastName: "Hall", Team: TEAM_NYJ},
	}

	compact := table.Compact([]string{"2374", "8155", "0000"})
	if len(compact) != 2 {
		t.Fatalf("expected 2 players, got %d", len(compact))
	}
	if _, found := compact["6904"]; found {
		t.Errorf("unreferenced player should not survive compaction")
	}
	if _, found := compact["0000"]; found {
		t.Errorf("unknown id should not appear in the compact table")
	}
}

func TestPlayerTableHasAll(t *testing.T) {
	table := PlayerTable{
		"2374": {ID: "2374", FirstName: "Tyler", LastName: "Lockett", Team: TEAM_SEA},
		"6904": {ID: "6904", FirstName: "Jalen", LastName: "Hurts", Team: TEAM_PHI},
	}

	if !table.HasAll([]string{"2374", "6904"}) {
		t.Error("expected full coverage for known ids")
	}
	if !table.HasAll(nil) {
		t.Error("an empty id list is trivially covered")
	}
	if table.HasAll([]string{"2374", "8155"}) {
		t.Error("an unknown id must report incomplete coverage")
	}
}

func TestLineupEntryIdentity(t *testing.T) {
	mine := &LineupEntry{PlayerID: "2374", Team: TEAM_SEA, IsOpponent: false}

	same := &LineupEntry{PlayerID: "2374", Team: TEAM_SEA, IsOpponent: false}
	if !mine.SameIdentity(same) {
		t.Errorf("same player, side, and team should merge")
	}

	opponent := &LineupEntry{PlayerID: "2374", Team: TEAM_SEA, IsOpponent: true}
	if mine.SameIdentity(opponent) {
		t.Errorf("mine and opponent views of the same player must stay distinct")
	}

	otherTeam := &LineupEntry{PlayerID: "2374", Team: TEAM_PHI, IsOpponent: false}
	if mine.SameIdentity(otherTeam) {
		t.Errorf("different teams must stay distinct")
	}
}
