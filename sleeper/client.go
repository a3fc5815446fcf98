package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client is the read-only gateway to the fantasy platform. All calls are
// unauthenticated. Rosters and matchups are snapshots valid for a single
// aggregation cycle.
type Client interface {
	GetNFLState() (*model.NFLState, error)
	GetLeague(leagueID string) (*model.League, error)
	GetLeagueUsers(leagueID string) ([]model.LeagueUser, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	GetMatchups(leagueID string, week int) ([]model.Matchup, error)
	GetUserID(username string) (string, error)
	GetLeaguesForUser(userID, season string) ([]model.League, error)
	LoadPlayers() (model.PlayerTable, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) GetNFLState() (*model.NFLState, error) {
	var parsed sleeperState
	if err := c.get("/v1/state/nfl", &parsed); err != nil {
		return nil, err
	}
	return parsed.toState(), nil
}

func (c *client) GetLeague(leagueID string) (*model.League, error) {
	var parsed *sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, err
	}
	// the API returns a 200 with "null" for an unknown league id
	if parsed == nil {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return parsed.toLeague(), nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]model.LeagueUser, error) {
	var parsed []sleeperUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	users := make([]model.LeagueUser, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, *u.toLeagueUser())
	}
	return users, nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		rosters = append(rosters, *r.toRoster())
	}
	return rosters, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.get(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	matchups := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		matchups = append(matchups, *m.toMatchup())
	}
	return matchups, nil
}

func (c *client) GetUserID(username string) (string, error) {
	var parsed *sleeperUser
	if err := c.get(fmt.Sprintf("/v1/user/%s", username), &parsed); err != nil {
		return "", err
	}
	// requesting a user that doesn't exist returns a 200 with "null" as the body
	if parsed == nil || parsed.UserID == "" {
		return "", fmt.Errorf("user not found")
	}
	return parsed.UserID, nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	var parsed []sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", userID, season), &parsed); err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no leagues found")
	}

	leagues := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		leagues = append(leagues, *l.toLeague())
	}
	return leagues, nil
}

func (c *client) LoadPlayers() (model.PlayerTable, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	// Keep only players at fantasy-relevant positions. The raw table has
	// tens of thousands of rows and most are never referenced by a lineup.
	result := make(model.PlayerTable, len(parsed))
	for id, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN || (p.FirstName == "Player" && p.LastName == "Invalid") {
			continue
		}
		result[id] = *p.toPlayer()
	}

	return result, nil
}

func (c *client) get(path string, v any) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sleeper %s: unexpected status code: %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
