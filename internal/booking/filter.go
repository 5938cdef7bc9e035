package booking

import (
	"net/http"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/peershare/lending-backend/internal/pkg/apperror"
)

// ErrUnsupportedFilter is returned for state tokens outside the closed set.
// The message matches the wire contract of the platform gateway.
var ErrUnsupportedFilter = apperror.New(http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")

// StateFilter selects a temporal/status subset of bookings. Tokens are
// decoded once at the HTTP boundary; everything past that point works
// with the typed value.
type StateFilter int

const (
	FilterAll StateFilter = iota
	FilterCurrent
	FilterPast
	FilterFuture
	FilterWaiting
	FilterRejected
)

var filterTokens = map[string]StateFilter{
	"ALL":      FilterAll,
	"CURRENT":  FilterCurrent,
	"PAST":     FilterPast,
	"FUTURE":   FilterFuture,
	"WAITING":  FilterWaiting,
	"REJECTED": FilterRejected,
}

// ParseStateFilter decodes a state token. An empty token means ALL.
func ParseStateFilter(token string) (StateFilter, error) {
	if token == "" {
		return FilterAll, nil
	}
	f, ok := filterTokens[token]
	if !ok {
		return FilterAll, ErrUnsupportedFilter
	}
	return f, nil
}

func (f StateFilter) String() string {
	for token, v := range filterTokens {
		if v == f {
			return token
		}
	}
	return "ALL"
}

// conditions returns the SQL predicates for the filter, evaluated against
// now at query time. CURRENT means start <= now < end, FUTURE start > now,
// PAST end < now. WAITING additionally requires the start not to have
// passed; a stale undecided booking is reachable only via ALL.
func (f StateFilter) conditions(now time.Time) []squirrel.Sqlizer {
	switch f {
	case FilterCurrent:
		return []squirrel.Sqlizer{
			squirrel.LtOrEq{"b.start_date": now},
			squirrel.Gt{"b.end_date": now},
		}
	case FilterPast:
		return []squirrel.Sqlizer{
			squirrel.Lt{"b.end_date": now},
		}
	case FilterFuture:
		return []squirrel.Sqlizer{
			squirrel.Gt{"b.start_date": now},
		}
	case FilterWaiting:
		return []squirrel.Sqlizer{
			squirrel.Eq{"b.status": StatusWaiting},
			squirrel.GtOrEq{"b.start_date": now},
		}
	case FilterRejected:
		return []squirrel.Sqlizer{
			squirrel.Eq{"b.status": StatusRejected},
		}
	default:
		return nil
	}
}
