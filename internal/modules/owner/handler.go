package owner

import (
	"errors"
	"net/http"

	"cinelist/internal/pkg/request"
	"cinelist/internal/pkg/response"
	"cinelist/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for owner accounts.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/owners", h.List)
	r.POST("/owners", h.Register)
}

// List returns every owner as {id, name}; credentials never leave the
// service.
func (h *Handler) List(c *gin.Context) {
	owners, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"owners": owners})
}

// Register creates an owner account. The response is the only place the
// generated API key is ever returned alongside the profile.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := request.DecodeJSON(c, &req); err != nil {
		switch {
		case errors.Is(err, request.ErrPayloadTooLarge):
			response.Error(c, http.StatusBadRequest, "Payload too large")
		case errors.Is(err, request.ErrInvalidJSON):
			response.Error(c, http.StatusBadRequest, "Invalid JSON")
		default:
			response.Error(c, http.StatusBadRequest, "Missing name/username/password")
		}
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "Missing name/username/password")
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "Username already taken")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	response.JSON(c, http.StatusCreated, RegisterResponse{
		ID:       created.ID,
		Name:     created.Name,
		Username: created.Username,
		APIKey:   created.APIKey,
	})
}
