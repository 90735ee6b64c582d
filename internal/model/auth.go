package model

// AuthResult is returned by every successful authentication.
type AuthResult struct {
	Token string
	User  User
}
