package cinema

import (
	"errors"
	"net/http"

	"cinelist/internal/pkg/request"
	"cinelist/internal/pkg/response"
	"cinelist/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for cinemas.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/cinemas", h.List)
	r.GET("/cinemas/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.POST("/cinemas", h.Create)
}

func (h *Handler) List(c *gin.Context) {
	cinemas, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"cinemas": cinemas})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := request.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid cinema id")
		return
	}

	cinema, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Cinema not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, cinema)
}

// Create registers a cinema. Requires an authenticated owner; the cinema
// itself carries no owner column.
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

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Address, req.City)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusCreated, created)
}
