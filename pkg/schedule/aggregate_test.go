package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SingleFinalGame(t *testing.T) {
	got := Aggregate([]Game{g(StatusFinal, kraken, canucks)}, AggregateOptions{TrackOpponents: true})

	require.Len(t, got, 2)
	assert.Equal(t, &Summary{Team: kraken, Total: 1, Final: 1, Opponents: []string{canucks}}, got[kraken])
	assert.Equal(t, &Summary{Team: canucks, Total: 1, Final: 1, Opponents: []string{kraken}}, got[canucks])
}

func TestAggregate_FilterSkipsOtherSide(t *testing.T) {
	got := Aggregate([]Game{g(StatusFinal, kraken, canucks)}, AggregateOptions{
		Filter:         NewTeamFilter([]string{kraken}),
		TrackOpponents: true,
	})

	require.Len(t, got, 1)
	assert.NotContains(t, got, canucks)
	assert.Equal(t, []string{canucks}, got[kraken].Opponents)
}

func TestAggregate_NoOpponentsUnlessTracked(t *testing.T) {
	got := Aggregate([]Game{g(StatusFinal, kraken, canucks)}, AggregateOptions{})
	assert.Nil(t, got[kraken].Opponents)
}

func TestAggregate_StatusCounters(t *testing.T) {
	games := []Game{
		g(StatusScheduled, kraken, canucks),
		g(StatusPostponed, flames, kraken),
		g(StatusFinal, kraken, preds),
		g("In Progress", canucks, kraken),
		g(StatusScheduled, flames, canucks),
	}
	got := Aggregate(games, AggregateOptions{TrackOpponents: true})

	k := got[kraken]
	assert.Equal(t, 4, k.Total)
	assert.Equal(t, 1, k.Scheduled)
	assert.Equal(t, 1, k.Postponed)
	assert.Equal(t, 1, k.Final)
	assert.Equal(t, 1, k.Other)
	assert.Equal(t, []string{canucks, flames, preds, canucks}, k.Opponents)

	totals := 0
	for _, s := range got {
		totals += s.Total
		assert.Equal(t, s.Total, s.Scheduled+s.Postponed+s.Final+s.Other, s.Team)
	}
	assert.Equal(t, 2*len(games), totals)
}

func TestAggregate_TotalsWithFilter(t *testing.T) {
	games := []Game{
		g(StatusFinal, kraken, canucks),
		g(StatusFinal, flames, preds),
		g(StatusScheduled, canucks, flames),
	}
	got := Aggregate(games, AggregateOptions{Filter: NewTeamFilter([]string{kraken, canucks})})

	assert.ElementsMatch(t, []string{kraken, canucks}, got.Names())
	assert.Equal(t, 1, got[kraken].Total)
	assert.Equal(t, 2, got[canucks].Total)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, AggregateOptions{}))
}
