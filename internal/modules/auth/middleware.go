package auth

import (
	"errors"
	"net/http"

	"cinelist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireOwner gates write routes behind the X-API-Key header. A missing
// header is 401, an unknown key is 403; the resolved owner's id and name are
// stored on the context for the handlers downstream.
func RequireOwner(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing X-API-Key")
			return
		}

		owner, err := service.AuthenticateByKey(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, ErrInvalidAPIKey) {
				response.AbortError(c, http.StatusForbidden, "Invalid API key")
				return
			}
			_ = c.Error(err)
			response.AbortError(c, http.StatusInternalServerError, "Internal error")
			return
		}

		c.Set("owner_id", owner.ID)
		c.Set("owner_name", owner.Name)
		c.Next()
	}
}
