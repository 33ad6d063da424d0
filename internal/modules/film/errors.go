package film

import "errors"

var (
	ErrNotFound        = errors.New("film not found")
	ErrBadDates        = errors.New("dates must be YYYY-MM-DD")
	ErrSeancesRequired = errors.New("seances must be a non-empty array")
	ErrSeanceFields    = errors.New("each seance needs day_of_week and start_time")
)
