package schedule

import "github.com/cockroachdb/errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidGameRange = errors.New("invalid game range")
	ErrInvalidQuery     = errors.New("invalid query")
	ErrNoMatchingTeams  = errors.New("no matching teams")
)
