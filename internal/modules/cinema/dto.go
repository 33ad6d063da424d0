package cinema

// CreateRequest carries the cinema creation form. Empty values are rejected
// the same as missing keys.
type CreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}
