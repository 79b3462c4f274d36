package schedule

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_EndBeforeBegin(t *testing.T) {
	_, err := ParseDateRange("2021-10-17", "2021-10-16")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
	assert.Contains(t, err.Error(), "2021-10-16")
}

func TestNewDateRange_TruncatesToDay(t *testing.T) {
	begin := time.Date(2021, 10, 17, 23, 59, 0, 0, time.UTC)
	end := time.Date(2021, 10, 17, 1, 0, 0, 0, time.UTC)
	r, err := NewDateRange(begin, end)
	require.NoError(t, err)
	assert.True(t, r.SingleDay())
	assert.Equal(t, "2021-10-17", r.String())
}

func TestParseDateRange_BadDate(t *testing.T) {
	_, err := ParseDateRange("17/10/2021", "2021-10-17")
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestDateRange_String(t *testing.T) {
	assert.Equal(t, "2021-10-12..2021-10-20", mustRange(t, "2021-10-12", "2021-10-20").String())
}

func TestTeamFilter(t *testing.T) {
	assert.False(t, NewTeamFilter(nil).Active())
	assert.False(t, NewTeamFilter([]string{"ALL"}).Active())

	f := NewTeamFilter([]string{kraken})
	assert.True(t, f.Allows(kraken))
	assert.False(t, f.Allows("seattle kraken"))
	assert.False(t, f.Allows("Seattle"))
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"total":     FieldTotal,
		"Scheduled": FieldScheduled,
		"POSTPONED": FieldPostponed,
		"final":     FieldFinal,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseField("live")
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestField_Value(t *testing.T) {
	s := &Summary{Total: 7, Scheduled: 1, Postponed: 2, Final: 3, Other: 1}
	assert.Equal(t, 7, FieldTotal.Value(s))
	assert.Equal(t, 1, FieldScheduled.Value(s))
	assert.Equal(t, 2, FieldPostponed.Value(s))
	assert.Equal(t, 3, FieldFinal.Value(s))
}
