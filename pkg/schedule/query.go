package schedule

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Query holds every input of one report, already parsed from flags.
type Query struct {
	Range          DateRange
	Teams          []string
	MinGames       int   `validate:"gte=0,lte=82"`
	MaxGames       int   `validate:"gte=0,lte=82"`
	Field          Field `validate:"oneof=Total Scheduled Postponed Final"`
	TrackOpponents bool
}

var validate = validator.New()

// Validate checks q without touching the network. Date and game range
// problems are reported first, with their own error kinds.
func (q Query) Validate() error {
	if q.Range.End.Before(q.Range.Begin) {
		return errors.Wrapf(ErrInvalidDateRange, "end date %s is before begin date %s",
			q.Range.End.Format(DateLayout), q.Range.Begin.Format(DateLayout))
	}
	if q.MinGames > q.MaxGames {
		return errors.Wrapf(ErrInvalidGameRange, "min games %d is greater than max games %d",
			q.MinGames, q.MaxGames)
	}
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Wrapf(ErrInvalidQuery, "%s=%v fails %q %s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return errors.Wrap(ErrInvalidQuery, err.Error())
	}
	return nil
}

// Threshold returns the range filter described by q.
func (q Query) Threshold() (Threshold, error) {
	return NewThreshold(q.Field, q.MinGames, q.MaxGames)
}

// Filter returns the team filter described by q.
func (q Query) Filter() TeamFilter {
	return NewTeamFilter(q.Teams)
}
