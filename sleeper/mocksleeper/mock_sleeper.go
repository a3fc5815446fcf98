package mocksleeper

import (
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetNFLState() (*model.NFLState, error) {
	args := c.Called()

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]model.LeagueUser, error) {
	args := c.Called(leagueID)

	var res []model.LeagueUser
	if args.Get(0) != nil {
		res = args.Get(0).([]model.LeagueUser)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetUserID(username string) (string, error) {
	args := c.Called(username)
	return args.String(0), args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, season string) ([]model.League, error) {
	args := c.Called(userID, season)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers() (model.PlayerTable, error) {
	args := c.Called()

	var res model.PlayerTable
	if args.Get(0) != nil {
		res = args.Get(0).(model.PlayerTable)
	}

	return res, args.Error(1)
}
