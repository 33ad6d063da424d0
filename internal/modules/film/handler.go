package film

import (
	"errors"
	"net/http"

	"cinelist/internal/pkg/request"
	"cinelist/internal/pkg/response"
	"cinelist/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for film listings.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/films", h.List)
	r.GET("/films/:id", h.Get)
	r.GET("/films/:id/seances", h.GetSeances)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/films", h.Create)
	r.PUT("/films/:id", h.Update)
	r.DELETE("/films/:id", h.Delete)
	r.POST("/films/:id/seances", h.AddSeances)
}

// List returns all films with cinema info and seances. The ville query
// parameter filters by exact cinema city.
func (h *Handler) List(c *gin.Context) {
	films, err := h.service.List(c.Request.Context(), c.Query("ville"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"films": films})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid film id")
		return
	}

	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Film not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, f)
}

func (h *Handler) GetSeances(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid film id")
		return
	}

	seances, err := h.service.GetSeances(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Film not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, SeancesResponse{FilmID: id, Seances: seances})
}

// Create inserts a film with its initial seances and answers with the
// refetched listing, cinema join included.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := request.DecodeJSON(c, &req); err != nil {
		switch {
		case errors.Is(err, request.ErrPayloadTooLarge):
			response.Error(c, http.StatusBadRequest, "Payload too large")
		case errors.Is(err, request.ErrInvalidJSON):
			response.Error(c, http.StatusBadRequest, "Invalid JSON")
		default:
			response.Error(c, http.StatusBadRequest, "Missing fields")
		}
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("owner_id"), req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, createErrorMessage(err))
		return
	}
	response.JSON(c, http.StatusCreated, created)
}

// Update applies a sparse patch. An empty or key-less body is rejected; an
// id that matches no film surfaces as 404 through the refetch.
func (h *Handler) Update(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid film id")
		return
	}

	var req UpdateRequest
	keys, err := request.DecodeJSONObject(c, &req)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrPayloadTooLarge):
			response.Error(c, http.StatusBadRequest, "Payload too large")
		case errors.Is(err, request.ErrInvalidJSON):
			response.Error(c, http.StatusBadRequest, "Invalid JSON")
		default:
			response.Error(c, http.StatusBadRequest, "Missing body")
		}
		return
	}
	if len(keys) == 0 {
		response.Error(c, http.StatusBadRequest, "Missing body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Film not found")
		case errors.Is(err, ErrBadDates):
			response.Error(c, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
		case errors.Is(err, ErrSeanceFields):
			response.Error(c, http.StatusBadRequest, "Each seance needs day_of_week and start_time")
		default:
			response.Error(c, http.StatusBadRequest, "Failed to update film")
		}
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid film id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Film not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"deleted": id})
}

// AddSeances appends slots to an existing film and answers with the film's
// full schedule.
func (h *Handler) AddSeances(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid film id")
		return
	}

	var req AddSeancesRequest
	if err := request.DecodeJSON(c, &req); err != nil {
		switch {
		case errors.Is(err, request.ErrPayloadTooLarge):
			response.Error(c, http.StatusBadRequest, "Payload too large")
		case errors.Is(err, request.ErrInvalidJSON):
			response.Error(c, http.StatusBadRequest, "Invalid JSON")
		default:
			response.Error(c, http.StatusBadRequest, "Seances must be a non-empty array")
		}
		return
	}

	seances, err := h.service.AddSeances(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Film not found")
		case errors.Is(err, ErrSeancesRequired):
			response.Error(c, http.StatusBadRequest, "Seances must be a non-empty array")
		case errors.Is(err, ErrSeanceFields):
			response.Error(c, http.StatusBadRequest, "Each seance needs day_of_week and start_time")
		default:
			response.Error(c, http.StatusBadRequest, "Failed to add seances")
		}
		return
	}
	response.JSON(c, http.StatusCreated, SeancesResponse{FilmID: id, Seances: seances})
}

func createErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrBadDates):
		return "Dates must be YYYY-MM-DD"
	case errors.Is(err, ErrSeancesRequired):
		return "Seances must be a non-empty array"
	case errors.Is(err, ErrSeanceFields):
		return "Each seance needs day_of_week and start_time"
	default:
		return "Failed to create film"
	}
}
