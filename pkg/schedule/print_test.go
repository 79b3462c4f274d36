package schedule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummaries(t *testing.T) {
	s := Aggregate([]Game{
		g(StatusFinal, kraken, canucks),
		g(StatusScheduled, flames, kraken),
	}, AggregateOptions{TrackOpponents: true})

	var buf bytes.Buffer
	require.NoError(t, PrintSummaries(&buf, s, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"Team", "Total", "Scheduled", "Postponed", "Final", "Playing", "Against"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], flames))
	assert.True(t, strings.HasPrefix(lines[2], kraken))
	assert.True(t, strings.HasSuffix(lines[2], canucks+", "+flames))
	assert.True(t, strings.HasPrefix(lines[3], canucks))
}

func TestPrintSummaries_NoOpponentsColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummaries(&buf, Summaries{}, false))
	assert.NotContains(t, buf.String(), "Playing Against")
}

func TestPrintTeams_SortedByName(t *testing.T) {
	var buf bytes.Buffer
	teams := []Team{{ID: 55, Name: kraken}, {ID: 20, Name: flames}}
	require.NoError(t, PrintTeams(&buf, teams))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"20", "Calgary", "Flames"}, strings.Fields(lines[1]))
	assert.Equal(t, kraken, teams[0].Name)
}
