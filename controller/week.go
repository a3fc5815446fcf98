package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
	"golang.org/x/sync/errgroup"
)

const (
	// weekMemoTTL is how long a resolved week is trusted before the
	// upstreams are consulted again. Much shorter than the general cache
	// TTL so a week rollover is picked up quickly.
	weekMemoTTL = 10 * time.Minute

	// postKickoffGrace keeps the previous week effective for a fixed window
	// after its latest kickoff, so a straggling Monday-night game is not
	// orphaned into "next week" while it is still being played or wrapped
	// up. The offset covers an assumed game duration plus a grace period.
	postKickoffGrace = 9*time.Hour + 30*time.Minute
)

// weekMemo is the persisted shape of the resolver's memo. At is the capture
// time in unix milliseconds; the memo carries its own timestamp because its
// TTL is shorter than the cache layer's.
type weekMemo struct {
	Week int   `json:"week"`
	At   int64 `json:"at"`
}

func (c *controller) ResolveEffectiveWeek(ctx context.Context) (int, error) {
	if week, ok := c.memoizedWeek(); ok {
		return week, nil
	}

	var state *model.NFLState
	var sb *model.Scoreboard

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		state, err = c.sleeper.GetNFLState()
		return err
	})
	g.Go(func() error {
		var err error
		sb, err = c.scoreboard.GetScoreboard()
		return err
	})

	if err := g.Wait(); err != nil {
		return c.fallbackWeek(err)
	}

	week := c.reconcileWeek(state, sb)
	c.memoizeWeek(week)
	return week, nil
}

// reconcileWeek combines the two declared weeks and the grace window into
// the effective week.
func (c *controller) reconcileWeek(state *model.NFLState, sb *model.Scoreboard) int {
	candidate := state.Week

	// The fantasy platform rolls over to the next week before the schedule
	// provider's data catches up. When the platform's week has no scheduled
	// events but the schedule provider's own declared week does, trust the
	// schedule provider.
	scheduled := sb.WeeksPresent()
	if !scheduled[candidate] && scheduled[sb.Week] {
		log.Printf("week skew: platform says %d, schedule says %d with events; using %d", candidate, sb.Week, sb.Week)
		candidate = sb.Week
	}

	// Grace window: while we are within the post-kickoff offset of the
	// previous week's latest game, that week is still the effective one.
	if prev := sb.GamesForWeek(candidate - 1); len(prev) > 0 {
		latest := prev[0].Date
		for _, g := range prev[1:] {
			if g.Date.After(latest) {
				latest = g.Date
			}
		}
		if c.clock.Now().Before(latest.Add(postKickoffGrace)) {
			candidate--
		}
	}

	if candidate < 1 {
		candidate = 1
	}
	return candidate
}

// fallbackWeek re-fetches the platform's raw declared week once after a
// resolution failure. The fallback itself is not retried; a second failure
// propagates.
func (c *controller) fallbackWeek(cause error) (int, error) {
	log.Printf("week resolution failed, falling back to the platform's declared week: %v", cause)

	state, err := c.sleeper.GetNFLState()
	if err != nil {
		return 0, fmt.Errorf("error resolving effective week: %w", err)
	}

	week := state.Week
	if week < 1 {
		week = 1
	}
	c.memoizeWeek(week)
	return week, nil
}

func (c *controller) memoizedWeek() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.week == nil {
		var memo weekMemo
		if !c.cache.Get(keyWeek, &memo) {
			return 0, false
		}
		c.week = &memo
	}

	age := c.clock.Now().Sub(time.UnixMilli(c.week.At))
	if age > weekMemoTTL {
		return 0, false
	}
	return c.week.Week, true
}

func (c *controller) memoizeWeek(week int) {
	memo := &weekMemo{Week: week, At: c.clock.Now().UnixMilli()}

	c.mu.Lock()
	c.week = memo
	c.mu.Unlock()

	if err := c.cache.SetImmediate(keyWeek, memo); err != nil {
		log.Printf("error persisting week memo: %v", err)
	}
}
