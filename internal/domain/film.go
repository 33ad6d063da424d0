package domain

// Seance is one weekly recurring screening slot of a film. Day and time are
// free-text tokens; the storage layer does not interpret them.
type Seance struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
}

// Film is a title showing at exactly one cinema during a date range.
// CinemaName and City are denormalized from the cinema join on reads.
type Film struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	DurationMinutes int      `json:"duration_minutes"`
	Language        string   `json:"language"`
	Subtitles       *string  `json:"subtitles"`
	Director        string   `json:"director"`
	MainCast        string   `json:"main_cast"`
	MinAge          int      `json:"min_age"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	CinemaID        int64    `json:"cinema_id"`
	OwnerID         int64    `json:"owner_id"`
	ImageURL        *string  `json:"image_url"`
	CinemaName      string   `json:"cinema_name"`
	City            string   `json:"city"`
	Seances         []Seance `json:"seances"`
}

// FilmPatch is a sparse update over the updatable film columns. A nil field
// is left untouched; only non-nil fields are emitted in the UPDATE statement.
// ImageURL is deliberately absent: the poster cannot be changed through the
// update route.
type FilmPatch struct {
	Title           *string
	DurationMinutes *int
	Language        *string
	Subtitles       *string
	Director        *string
	MainCast        *string
	MinAge          *int
	StartDate       *string
	EndDate         *string
	CinemaID        *int64
}
