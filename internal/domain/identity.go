package domain

// Identity is the authenticated principal decoded from a bearer token.
type Identity struct {
	UserID   string
	Email    string
	Username string
}
