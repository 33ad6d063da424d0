package auth

// LoginRequest carries the owner login form. Empty values are rejected the
// same as missing keys.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}
