package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NFLTeam is the canonical identity for an NFL franchise. The two upstream
// providers do not agree on abbreviations (the schedule provider says WSH
// and the fantasy platform says WAS, for example), so both sets of codes
// resolve to the same canonical value. The lineup merge key and the by-team
// partition both depend on this normalization.
type NFLTeam struct {
	code   string   // canonical abbreviation, matches the fantasy platform
	loc    string
	mascot string
	alt    []string // abbreviations other providers use for the same team
}

func (t *NFLTeam) String() string {
	return t.code
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.code
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

// Teams serialize as their canonical abbreviation, both for the persisted
// local state and for API responses.
func (t *NFLTeam) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.code)
}

func (t *NFLTeam) UnmarshalJSON(b []byte) error {
	var code string
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	*t = *ParseTeam(code)
	return nil
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	if t == o {
		return true
	}
	return t.code == o.code && t.loc == o.loc && t.mascot == o.mascot
}

var (
	// TEAM_FA is used for free agents and anything we cannot resolve.
	TEAM_FA *NFLTeam = &NFLTeam{code: "FA"}

	// NFC
	TEAM_ARI *NFLTeam = &NFLTeam{code: "ARI", loc: "Arizona", mascot: "Cardinals"}
	TEAM_ATL *NFLTeam = &NFLTeam{code: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR *NFLTeam = &NFLTeam{code: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI *NFLTeam = &NFLTeam{code: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL *NFLTeam = &NFLTeam{code: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET *NFLTeam = &NFLTeam{code: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GB  *NFLTeam = &NFLTeam{code: "GB", loc: "Green Bay", mascot: "Packers", alt: []string{"GBP"}}
	TEAM_LAR *NFLTeam = &NFLTeam{code: "LAR", loc: "Los Angeles", mascot: "Rams"}
	TEAM_MIN *NFLTeam = &NFLTeam{code: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NO  *NFLTeam = &NFLTeam{code: "NO", loc: "New Orleans", mascot: "Saints", alt: []string{"NOS"}}
	TEAM_NYG *NFLTeam = &NFLTeam{code: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI *NFLTeam = &NFLTeam{code: "PHI", loc: "Philadelphia", mascot: "Eagles"}
	TEAM_SF  *NFLTeam = &NFLTeam{code: "SF", loc: "San Francisco", mascot: "49ers", alt: []string{"SFO"}}
	TEAM_SEA *NFLTeam = &NFLTeam{code: "SEA", loc: "Seattle", mascot: "Seahawks"}
	TEAM_TB  *NFLTeam = &NFLTeam{code: "TB", loc: "Tampa Bay", mascot: "Buccaneers", alt: []string{"TBB"}}
	TEAM_WAS *NFLTeam = &NFLTeam{code: "WAS", loc: "Washington", mascot: "Commanders", alt: []string{"WSH"}}

	// AFC
	TEAM_BAL *NFLTeam = &NFLTeam{code: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF *NFLTeam = &NFLTeam{code: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN *NFLTeam = &NFLTeam{code: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE *NFLTeam = &NFLTeam{code: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN *NFLTeam = &NFLTeam{code: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU *NFLTeam = &NFLTeam{code: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND *NFLTeam = &NFLTeam{code: "IND", loc: "Indianapolis", mascot: "Colts"}
	TEAM_JAX *NFLTeam = &NFLTeam{code: "JAX", loc: "Jacksonville", mascot: "Jaguars", alt: []string{"JAC"}}
	TEAM_KC  *NFLTeam = &NFLTeam{code: "KC", loc: "Kansas City", mascot: "Chiefs", alt: []string{"KCC"}}
	TEAM_LV  *NFLTeam = &NFLTeam{code: "LV", loc: "Las Vegas", mascot: "Raiders", alt: []string{"LVR", "OAK"}}
	TEAM_LAC *NFLTeam = &NFLTeam{code: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA *NFLTeam = &NFLTeam{code: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NE  *NFLTeam = &NFLTeam{code: "NE", loc: "New England", mascot: "Patriots", alt: []string{"NEP"}}
	TEAM_NYJ *NFLTeam = &NFLTeam{code: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT *NFLTeam = &NFLTeam{code: "PIT", loc: "Pittsburgh", mascot: "Steelers"}
	TEAM_TEN *NFLTeam = &NFLTeam{code: "TEN", loc: "Tennessee", mascot: "Titans"}

	teamMap map[string]*NFLTeam = buildTeamMap()
)

// ParseTeam resolves any provider abbreviation, location or mascot to the
// canonical team. Unknown values resolve to TEAM_FA.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
		// Other
		TEAM_FA,
	}

	teamMap := make(map[string]*NFLTeam)
	for _, t := range teams {
		teamMap[strings.ToLower(t.code)] = t

		if t.loc != "" {
			teamMap[strings.ToLower(t.loc)] = t
		}

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
		}

		for _, a := range t.alt {
			teamMap[strings.ToLower(a)] = t
		}
	}
	return teamMap
}
