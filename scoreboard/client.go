package scoreboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

const ScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"

// Client is the read-only gateway to the schedule provider. A single call
// returns the full current scoreboard: the week the provider believes is
// current plus every scheduled event, which can straddle a week boundary.
type Client interface {
	GetScoreboard() (*model.Scoreboard, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: ScoreboardURL,
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

func (c *client) GetScoreboard() (*model.Scoreboard, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/scoreboard", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard: unexpected status code: %d", resp.StatusCode)
	}

	var parsed scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from scoreboard provider: %w", err)
	}

	return parsed.toScoreboard(), nil
}
