package main

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"cinelist/internal/config"
	"cinelist/internal/database"
	"cinelist/internal/domain"
	"cinelist/internal/pkg/credential"
	"cinelist/internal/repository"

	"gorm.io/gorm"
)

// Seed data: a fixed admin owner, four cinemas and a film catalogue. The
// seed is idempotent: reruns update posters and cinema assignments of films
// that already exist instead of duplicating them, and never delete rows.

const (
	adminUsername = "admin"
	adminPassword = "admin"
	// Fixed key so local clients can authenticate without a login round-trip.
	adminAPIKey = "admin"

	defaultStartDate = "2025-01-10"
	defaultEndDate   = "2025-02-20"
)

type seedCinema struct {
	Name    string
	Address string
	City    string
}

type seedFilm struct {
	Title    string
	ImageURL string
	Duration int
	Language string
	Subs     string
	MinAge   int
	Director string
	MainCast string
	Cinema   string
}

var cinemasData = []seedCinema{
	{"Cinema Central", "1 Rue Exemple", "Paris"},
	{"Lumiere Lyon", "25 Quai du Rhone", "Lyon"},
	{"Mediterranee Marseille", "8 Rue Paradis", "Marseille"},
	{"Capitole Toulouse", "4 Place du Capitole", "Toulouse"},
}

var filmsData = []seedFilm{
	{Title: "Inception", ImageURL: "https://m.media-amazon.com/images/I/51v5ZpFyaFL._AC_.jpg", Duration: 148, Director: "Christopher Nolan", MainCast: "Leonardo DiCaprio, Joseph Gordon-Levitt", Cinema: "Cinema Central"},
	{Title: "Interstellar", ImageURL: "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg", Duration: 169, Director: "Christopher Nolan", MainCast: "Matthew McConaughey, Anne Hathaway", Cinema: "Lumiere Lyon"},
	{Title: "The Dark Knight", ImageURL: "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg", Duration: 152, Director: "Christopher Nolan", MainCast: "Christian Bale, Heath Ledger", Cinema: "Cinema Central"},
	{Title: "Dune", ImageURL: "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg", Duration: 155, Director: "Denis Villeneuve", MainCast: "Timothee Chalamet, Rebecca Ferguson", Cinema: "Mediterranee Marseille"},
	{Title: "Mad Max: Fury Road", ImageURL: "https://image.tmdb.org/t/p/w500/8tZYtuWezp8JbcsvHYO0O46tFbo.jpg", Duration: 120, Director: "George Miller", MainCast: "Tom Hardy, Charlize Theron", Cinema: "Capitole Toulouse"},
	{Title: "Arrival", ImageURL: "https://image.tmdb.org/t/p/w500/x2FJsf1ElAgr63Y3PNPtJrcmpoe.jpg", Duration: 116, Director: "Denis Villeneuve", MainCast: "Amy Adams, Jeremy Renner", Cinema: "Lumiere Lyon"},
	{Title: "Blade Runner 2049", ImageURL: "https://image.tmdb.org/t/p/w500/gajva2L0rPYkEWjzgFlBXCAVBE5.jpg", Duration: 164, Director: "Denis Villeneuve", MainCast: "Ryan Gosling, Harrison Ford", Cinema: "Mediterranee Marseille"},
	{Title: "Whiplash", ImageURL: "https://image.tmdb.org/t/p/w500/oPxnRhyAIzJKGUEdSiwTJQBa3NM.jpg", Duration: 107, Director: "Damien Chazelle", MainCast: "Miles Teller, J.K. Simmons", Cinema: "Cinema Central"},
	{Title: "Parasite", ImageURL: "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg", Duration: 132, Director: "Bong Joon-ho", MainCast: "Song Kang-ho, Lee Sun-kyun", Cinema: "Capitole Toulouse"},
	{Title: "La La Land", ImageURL: "https://image.tmdb.org/t/p/w500/uDO8zWDhfWwoFdKS4fzkUJt0Rf0.jpg", Duration: 128, Director: "Damien Chazelle", MainCast: "Emma Stone, Ryan Gosling", Cinema: "Cinema Central"},
	{Title: "The Grand Budapest Hotel", ImageURL: "https://image.tmdb.org/t/p/w500/ncEsesgOJDNrTUED89hYbA117wo.jpg", Duration: 100, Director: "Wes Anderson", MainCast: "Ralph Fiennes, Tony Revolori", Cinema: "Lumiere Lyon"},
	{Title: "Skyfall", ImageURL: "https://image.tmdb.org/t/p/w500/ghL4AZbVY9V9xglKcDq6P0I38An.jpg", Duration: 143, Director: "Sam Mendes", MainCast: "Daniel Craig, Judi Dench", Cinema: "Mediterranee Marseille"},
	{Title: "Spirited Away", ImageURL: "https://image.tmdb.org/t/p/w500/dL11DBPcRhWWnJcFXl9A07MrqTI.jpg", Duration: 125, Language: "VOST", Subs: "VF", MinAge: 8, Director: "Hayao Miyazaki", MainCast: "Chihiro, Haku", Cinema: "Capitole Toulouse"},
	{Title: "The Social Network", ImageURL: "https://image.tmdb.org/t/p/w500/n0ybibhJtQ5icDqTp8eRytcIHJx.jpg", Duration: 120, Director: "David Fincher", MainCast: "Jesse Eisenberg, Andrew Garfield", Cinema: "Cinema Central"},
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ownerRepo := repository.NewOwnerRepository(db)
	cinemaRepo := repository.NewCinemaRepository(db)
	filmRepo := repository.NewFilmRepository(db)

	adminID, err := ensureAdminOwner(ctx, ownerRepo)
	if err != nil {
		log.Fatal("seed admin: ", err)
	}

	cinemaIDs, err := ensureCinemas(ctx, cinemaRepo)
	if err != nil {
		log.Fatal("seed cinemas: ", err)
	}

	if err := seedFilms(ctx, filmRepo, adminID, cinemaIDs); err != nil {
		log.Fatal("seed films: ", err)
	}

	log.Println("Seed done. Admin API key: " + adminAPIKey)
}

// ensureAdminOwner creates the admin account or resets its credentials to
// the known values when it already exists.
func ensureAdminOwner(ctx context.Context, owners *repository.OwnerRepository) (int64, error) {
	hash := credential.HashPassword(adminPassword)

	existing, err := owners.GetByUsername(ctx, adminUsername)
	if err == nil {
		if err := owners.RotateCredentials(ctx, existing.ID, adminUsername, adminAPIKey, hash); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	admin := &domain.Owner{
		Name:         "admin",
		Username:     adminUsername,
		APIKey:       adminAPIKey,
		PasswordHash: hash,
	}
	if err := owners.Create(ctx, admin); err != nil {
		return 0, err
	}
	return admin.ID, nil
}

func ensureCinemas(ctx context.Context, cinemas *repository.CinemaRepository) (map[string]int64, error) {
	ids := make(map[string]int64, len(cinemasData))
	for _, data := range cinemasData {
		existing, err := cinemas.FindByNameAndCity(ctx, data.Name, data.City)
		if err == nil {
			ids[data.Name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		created := &domain.Cinema{Name: data.Name, Address: data.Address, City: data.City}
		if err := cinemas.Create(ctx, created); err != nil {
			return nil, err
		}
		ids[data.Name] = created.ID
	}
	return ids, nil
}

func seedFilms(ctx context.Context, films *repository.FilmRepository, ownerID int64, cinemaIDs map[string]int64) error {
	for _, data := range filmsData {
		cinemaID, ok := cinemaIDs[data.Cinema]
		if !ok {
			return errors.New("no cinema available to attach films")
		}

		existing, err := films.FindByTitle(ctx, data.Title)
		if err == nil {
			// Already seeded; realign the mutable bits and move on.
			imageURL := data.ImageURL
			if err := films.SetPosterAndCinema(ctx, existing.ID, &imageURL, cinemaID); err != nil {
				return err
			}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		language := data.Language
		if language == "" {
			language = "VO"
		}
		subs := data.Subs
		if subs == "" {
			subs = "VF"
		}
		minAge := data.MinAge
		if minAge == 0 {
			minAge = 12
		}
		imageURL := data.ImageURL

		f := &domain.Film{
			Title:           data.Title,
			DurationMinutes: data.Duration,
			Language:        language,
			Subtitles:       &subs,
			Director:        data.Director,
			MainCast:        data.MainCast,
			MinAge:          minAge,
			StartDate:       defaultStartDate,
			EndDate:         defaultEndDate,
			CinemaID:        cinemaID,
			OwnerID:         ownerID,
			ImageURL:        &imageURL,
			Seances:         randomSeances(),
		}
		if _, err := films.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// randomSeances picks three distinct weekdays with a random start time each.
func randomSeances() []domain.Seance {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	times := []string{"14:00", "17:00", "20:00", "22:30"}

	rand.Shuffle(len(days), func(i, j int) { days[i], days[j] = days[j], days[i] })

	out := make([]domain.Seance, 0, 3)
	for _, day := range days[:3] {
		out = append(out, domain.Seance{
			DayOfWeek: day,
			StartTime: times[rand.Intn(len(times))],
		})
	}
	return out
}
