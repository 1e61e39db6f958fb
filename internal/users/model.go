package users

// User is a registered account. Immutable after creation.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}
