package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
)

// FixtureNow is a time in the middle of fixture week 10: Sunday morning
// eastern, well past the week-9 grace window.
var FixtureNow = time.Date(2024, 11, 10, 15, 0, 0, 0, time.UTC)

// TestUpstreams bundles the fake upstream servers and a mock clock set to
// FixtureNow, which is what most controller tests need.
type TestUpstreams struct {
	Clock          *clock.Mock
	fakeSleeper    *FakeSleeperServer
	fakeScoreboard *FakeScoreboardServer
}

func NewTestUpstreams() *TestUpstreams {
	mock := clock.NewMock()
	mock.Set(FixtureNow)

	return &TestUpstreams{
		Clock:          mock,
		fakeSleeper:    NewFakeSleeperServer(),
		fakeScoreboard: NewFakeScoreboardServer(),
	}
}

func (u *TestUpstreams) Close() {
	u.fakeSleeper.Close()
	u.fakeScoreboard.Close()
}

func (u *TestUpstreams) SleeperURL() string {
	return u.fakeSleeper.URL()
}

func (u *TestUpstreams) ScoreboardURL() string {
	return u.fakeScoreboard.URL()
}
