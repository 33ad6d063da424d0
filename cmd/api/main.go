package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinelist/internal/config"
	"cinelist/internal/database"
	"cinelist/internal/middleware"
	"cinelist/internal/modules/auth"
	"cinelist/internal/modules/cinema"
	"cinelist/internal/modules/film"
	"cinelist/internal/modules/owner"
	"cinelist/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ownerRepo := repository.NewOwnerRepository(db)
	cinemaRepo := repository.NewCinemaRepository(db)
	filmRepo := repository.NewFilmRepository(db)

	authService := auth.NewService(ownerRepo)
	authHandler := auth.NewHandler(authService)

	ownerService := owner.NewService(ownerRepo)
	ownerHandler := owner.NewHandler(ownerService)

	cinemaService := cinema.NewService(cinemaRepo)
	cinemaHandler := cinema.NewHandler(cinemaService)

	filmService := film.NewService(filmRepo)
	filmHandler := film.NewHandler(filmService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.BodyLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public
	authHandler.RegisterRoutes(r)
	ownerHandler.RegisterRoutes(r)
	cinemaHandler.RegisterPublicRoutes(r)
	filmHandler.RegisterPublicRoutes(r)

	// protected (owner API key)
	protected := r.Group("/")
	protected.Use(auth.RequireOwner(authService))
	{
		cinemaHandler.RegisterProtectedRoutes(protected)
		filmHandler.RegisterProtectedRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	log.Printf("listening on http://%s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
