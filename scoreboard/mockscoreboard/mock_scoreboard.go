package mockscoreboard

import (
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetScoreboard() (*model.Scoreboard, error) {
	args := c.Called()

	var res *model.Scoreboard
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Scoreboard)
	}

	return res, args.Error(1)
}
