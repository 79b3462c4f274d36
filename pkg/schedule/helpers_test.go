package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	kraken  = "Seattle Kraken"
	canucks = "Vancouver Canucks"
	flames  = "Calgary Flames"
	preds   = "Nashville Predators"
)

func g(status Status, home, away string) Game {
	return Game{Status: status, Home: Side{Team: home}, Away: Side{Team: away}}
}

func mustRange(t *testing.T, begin, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(begin, end)
	require.NoError(t, err)
	return r
}

// fakeSource serves canned data and counts calls.
type fakeSource struct {
	teams         []Team
	games         []Game
	teamCalls     int
	scheduleCalls int
	gotIDs        []int
	gotRange      DateRange
	err           error
}

func (f *fakeSource) FetchTeams(context.Context) ([]Team, error) {
	f.teamCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.teams, nil
}

func (f *fakeSource) FetchSchedule(_ context.Context, r DateRange, ids []int) ([]Game, error) {
	f.scheduleCalls++
	f.gotRange = r
	f.gotIDs = ids
	return f.games, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		teams: []Team{{ID: 55, Name: kraken}, {ID: 23, Name: canucks}, {ID: 20, Name: flames}},
		games: []Game{g(StatusFinal, kraken, canucks)},
	}
}
