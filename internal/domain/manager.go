package domain

// Manager is an administrative account for the booking dashboard.
// PasswordHash is a bcrypt hash; plaintext passwords are never stored.
type Manager struct {
	ID           string
	Username     string
	PasswordHash string
}
