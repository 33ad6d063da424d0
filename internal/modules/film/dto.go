package film

import "cinelist/internal/domain"

// SeanceInput is one weekly slot in a create/update/append payload. Both
// fields must be non-empty; the values themselves are free text.
type SeanceInput struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
}

// CreateRequest carries a full film listing. Pointer fields distinguish a
// missing key from a present-but-empty value: presence is what is required
// here, empty strings and zeroes are accepted (the dates still have to match
// the YYYY-MM-DD shape). Subtitles is the one optional column.
type CreateRequest struct {
	Title           *string       `json:"title" validate:"required"`
	DurationMinutes *int          `json:"duration_minutes" validate:"required"`
	Language        *string       `json:"language" validate:"required"`
	Subtitles       *string       `json:"subtitles"`
	Director        *string       `json:"director" validate:"required"`
	MainCast        *string       `json:"main_cast" validate:"required"`
	MinAge          *int          `json:"min_age" validate:"required"`
	StartDate       *string       `json:"start_date" validate:"required"`
	EndDate         *string       `json:"end_date" validate:"required"`
	CinemaID        *int64        `json:"cinema_id" validate:"required"`
	ImageURL        *string       `json:"image_url" validate:"required"`
	Seances         []SeanceInput `json:"seances"`
}

// UpdateRequest is a sparse film patch. A nil field is left untouched. A
// non-nil Seances wholesale-replaces the film's seance set, empty slice
// included; the poster cannot be changed here.
type UpdateRequest struct {
	Title           *string        `json:"title"`
	DurationMinutes *int           `json:"duration_minutes"`
	Language        *string        `json:"language"`
	Subtitles       *string        `json:"subtitles"`
	Director        *string        `json:"director"`
	MainCast        *string        `json:"main_cast"`
	MinAge          *int           `json:"min_age"`
	StartDate       *string        `json:"start_date"`
	EndDate         *string        `json:"end_date"`
	CinemaID        *int64         `json:"cinema_id"`
	Seances         *[]SeanceInput `json:"seances"`
}

// AddSeancesRequest appends slots to a film's existing schedule.
type AddSeancesRequest struct {
	Seances []SeanceInput `json:"seances"`
}

// SeancesResponse is the schedule payload for a single film.
type SeancesResponse struct {
	FilmID  int64           `json:"film_id"`
	Seances []domain.Seance `json:"seances"`
}
