package domain

// Owner is an account allowed to create cinemas and films. The APIKey is the
// opaque credential presented in X-API-Key on mutating routes.
type Owner struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	APIKey       string `json:"api_key"`
	PasswordHash string `json:"-"`
}

// OwnerSummary is the public directory view of an owner; credentials are
// never exposed through it.
type OwnerSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
