package model

import (
	"encoding/json"
	"testing"
)

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *NFLTeam
	}{
		{input: "SEA", expected: TEAM_SEA},
		{input: "sea", expected: TEAM_SEA},
		{input: "Seahawks", expected: TEAM_SEA},
		// schedule-provider abbreviations
		{input: "WSH", expected: TEAM_WAS},
		{input: "JAC", expected: TEAM_JAX},
		{input: "GBP", expected: TEAM_GB},
		{input: "OAK", expected: TEAM_LV},
		// fantasy-platform abbreviations
		{input: "WAS", expected: TEAM_WAS},
		{input: "KC", expected: TEAM_KC},
		{input: "NE", expected: TEAM_NE},
		// locations and mascots
		{input: "Green Bay", expected: TEAM_GB},
		{input: "49ers", expected: TEAM_SF},
		// unknowns
		{input: "", expected: TEAM_FA},
		{input: "XYZ", expected: TEAM_FA},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			team := ParseTeam(tc.input)
			if !team.Equals(tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, team)
			}
		})
	}
}

func TestTeamEquals(t *testing.T) {
	if TEAM_SEA.Equals(nil) {
		t.Errorf("Equals(nil) should be false")
	}
	if !TEAM_SEA.Equals(TEAM_SEA) {
		t.Errorf("a team should equal itself")
	}
	if TEAM_SEA.Equals(TEAM_PHI) {
		t.Errorf("SEA should not equal PHI")
	}
	copy := &NFLTeam{code: "SEA", loc: "Seattle", mascot: "Seahawks"}
	if !TEAM_SEA.Equals(copy) {
		t.Errorf("structurally equal teams should be equal")
	}
}

func TestFriendly(t *testing.T) {
	if f := TEAM_GB.Friendly(); f != "Green Bay Packers" {
		t.Errorf("unexpected friendly name: %s", f)
	}
	if f := TEAM_FA.Friendly(); f != "FA" {
		t.Errorf("unexpected friendly name for FA: %s", f)
	}
}

func TestTeamJSONRoundTrip(t *testing.T) {
	p := Player{ID: "2374", FirstName: "Tyler", LastName: "Lockett", Team: TEAM_SEA}

	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("error marshaling player: %v", err)
	}

	var got Player
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("error unmarshaling player: %v", err)
	}

	if !got.Team.Equals(TEAM_SEA) {
		t.Errorf("expected SEA after round trip, got %v", got.Team)
	}
	if got.Team.Friendly() != "Seattle Seahawks" {
		t.Errorf("friendly name lost in round trip: %s", got.Team.Friendly())
	}
}
