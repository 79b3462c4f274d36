package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DateLayout is the calendar date format used by flags and the upstream API.
const DateLayout = "2006-01-02"

const (
	// SeasonGames is the most games a team plays in a regular season.
	SeasonGames = 82
	// MinGamesFloor is the smallest meaningful lower bound for a counter.
	MinGamesFloor = 0
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// NewDateRange truncates begin and end to calendar days and fails with
// ErrInvalidDateRange when end comes before begin.
func NewDateRange(begin, end time.Time) (DateRange, error) {
	b, e := day(begin), day(end)
	if e.Before(b) {
		return DateRange{}, errors.Wrapf(ErrInvalidDateRange,
			"end date %s is before begin date %s", e.Format(DateLayout), b.Format(DateLayout))
	}
	return DateRange{Begin: b, End: e}, nil
}

// ParseDateRange parses two YYYY-MM-DD dates into a DateRange.
func ParseDateRange(begin, end string) (DateRange, error) {
	b, err := time.Parse(DateLayout, begin)
	if err != nil {
		return DateRange{}, errors.Wrapf(ErrInvalidQuery, "begin date %q is not YYYY-MM-DD", begin)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, errors.Wrapf(ErrInvalidQuery, "end date %q is not YYYY-MM-DD", end)
	}
	return NewDateRange(b, e)
}

// SingleDay reports whether the range covers exactly one date.
func (r DateRange) SingleDay() bool {
	return r.Begin.Equal(r.End)
}

func (r DateRange) String() string {
	if r.SingleDay() {
		return r.Begin.Format(DateLayout)
	}
	return r.Begin.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TeamFilter is a set of exact team display names. The empty filter keeps every team.
type TeamFilter map[string]struct{}

// NewTeamFilter builds a filter from names. A lone "all" (any case) means no filtering.
func NewTeamFilter(names []string) TeamFilter {
	if len(names) == 1 && strings.EqualFold(names[0], "all") {
		return TeamFilter{}
	}
	f := make(TeamFilter, len(names))
	for _, n := range names {
		f[n] = struct{}{}
	}
	return f
}

// Active reports whether the filter restricts anything.
func (f TeamFilter) Active() bool {
	return len(f) > 0
}

// Allows reports whether name passes the filter.
func (f TeamFilter) Allows(name string) bool {
	if !f.Active() {
		return true
	}
	_, ok := f[name]
	return ok
}

// Names returns the filter entries sorted.
func (f TeamFilter) Names() []string {
	names := make([]string, 0, len(f))
	for n := range f {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Team is one entry of the league's team directory.
type Team struct {
	ID   int
	Name string
}

func sortTeams(teams []Team) {
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
}

// Status is the upstream lifecycle state of a game.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusPostponed Status = "Postponed"
	StatusFinal     Status = "Final"
)

// Side is one participant of a game.
type Side struct {
	TeamID int
	Team   string
}

// Game is a single scheduled contest as reported upstream.
type Game struct {
	ID     int64
	Date   string
	Status Status
	Home   Side
	Away   Side
}

// Summary counts the games one team plays inside the queried range.
type Summary struct {
	Team      string
	Total     int
	Scheduled int
	Postponed int
	Final     int
	// Other counts games whose status is none of the three above.
	Other     int
	Opponents []string
}

// Summaries maps a team display name to its summary.
type Summaries map[string]*Summary

// Names returns the team names sorted ascending.
func (s Summaries) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Field names the Summary counter a Threshold is evaluated against.
type Field string

const (
	FieldTotal     Field = "Total"
	FieldScheduled Field = "Scheduled"
	FieldPostponed Field = "Postponed"
	FieldFinal     Field = "Final"
)

// ParseField matches s case-insensitively against the known fields.
func ParseField(s string) (Field, error) {
	for _, f := range []Field{FieldTotal, FieldScheduled, FieldPostponed, FieldFinal} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidQuery, "unknown game state %q (available: total, scheduled, postponed, final)", s)
}

// Value returns the counter of s selected by f.
func (f Field) Value(s *Summary) int {
	switch f {
	case FieldScheduled:
		return s.Scheduled
	case FieldPostponed:
		return s.Postponed
	case FieldFinal:
		return s.Final
	default:
		return s.Total
	}
}
