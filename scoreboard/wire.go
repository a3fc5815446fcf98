package scoreboard

import (
	"log"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

// The provider formats event dates like "2024-11-10T18:00Z".
const eventDateFormat = "2006-01-02T15:04Z"

type scoreboardResponse struct {
	Week   weekRef     `json:"week"`
	Events []wireEvent `json:"events"`
}

type weekRef struct {
	Number int `json:"number"`
}

type wireEvent struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Name         string            `json:"name"`
	Week         weekRef           `json:"week"`
	Competitions []wireCompetition `json:"competitions"`
	Weather      *wireWeather      `json:"weather"`
}

type wireCompetition struct {
	Competitors []wireCompetitor `json:"competitors"`
	Venue       *wireVenue       `json:"venue"`
}

type wireCompetitor struct {
	HomeAway string       `json:"homeAway"`
	Team     wireTeam     `json:"team"`
	Records  []wireRecord `json:"records"`
}

type wireTeam struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Logo         string `json:"logo"`
}

type wireRecord struct {
	Summary string `json:"summary"`
}

type wireVenue struct {
	FullName string `json:"fullName"`
}

type wireWeather struct {
	DisplayValue string `json:"displayValue"`
}

func (r *scoreboardResponse) toScoreboard() *model.Scoreboard {
	games := make([]model.Game, 0, len(r.Events))
	for _, e := range r.Events {
		games = append(games, *e.toGame())
	}
	return &model.Scoreboard{
		Week:  r.Week.Number,
		Games: games,
	}
}

func (e *wireEvent) toGame() *model.Game {
	g := &model.Game{
		ID:   e.ID,
		Name: e.Name,
		Date: parseEventDate(e.Date, e.ID),
		Week: e.Week.Number,
	}
	if e.Weather != nil {
		g.Weather = e.Weather.DisplayValue
	}

	if len(e.Competitions) == 0 {
		return g
	}
	comp := e.Competitions[0]
	if comp.Venue != nil {
		g.Venue = comp.Venue.FullName
	}
	for _, c := range comp.Competitors {
		side := model.Competitor{
			Team: model.ParseTeam(c.Team.Abbreviation),
			Logo: c.Team.Logo,
		}
		if len(c.Records) > 0 {
			side.Record = c.Records[0].Summary
		}
		if c.HomeAway == "home" {
			g.Home = side
		} else {
			g.Away = side
		}
	}
	return g
}

func parseEventDate(d, eventID string) time.Time {
	if d == "" {
		return time.Time{}
	}
	t, err := time.Parse(eventDateFormat, d)
	if err != nil {
		// some feeds carry full RFC3339 timestamps instead
		t, err = time.Parse(time.RFC3339, d)
		if err != nil {
			log.Printf("error parsing date for event %s: %v", eventID, err)
			return time.Time{}
		}
	}
	return t
}
