package auth

import (
	"errors"
	"net/http"

	"cinelist/internal/pkg/request"
	"cinelist/internal/pkg/response"
	"cinelist/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP surface for owner authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/auth/login", h.Login)
}

// Login exchanges username/password for the owner account, API key included.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := request.DecodeJSON(c, &req); err != nil {
		switch {
		case errors.Is(err, request.ErrPayloadTooLarge):
			response.Error(c, http.StatusBadRequest, "Payload too large")
		case errors.Is(err, request.ErrInvalidJSON):
			response.Error(c, http.StatusBadRequest, "Invalid JSON")
		default:
			response.Error(c, http.StatusBadRequest, "Missing username/password")
		}
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "Missing username/password")
		return
	}

	owner, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal error")
		return
	}

	response.JSON(c, http.StatusOK, LoginResponse{
		ID:       owner.ID,
		Name:     owner.Name,
		Username: owner.Username,
		APIKey:   owner.APIKey,
	})
}
