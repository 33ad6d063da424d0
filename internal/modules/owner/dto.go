package owner

// RegisterRequest carries the owner registration form. Empty values are
// rejected the same as missing keys.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse returns the created owner including the freshly generated
// API key. This is the only time the key is handed out besides login.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	APIKey   string `json:"api_key"`
}
