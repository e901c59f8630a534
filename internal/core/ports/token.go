package ports

// Claims is the decoded payload of a bearer token.
type Claims struct {
	Email string
	Name  string
}

// TokenService signs and verifies bearer tokens.
// Verify returns domain.ErrTokenExpired when the embedded expiry has
// passed and domain.ErrTokenInvalid for any other failure, so callers can
// branch on the cause with ordinary control flow.
type TokenService interface {
	Issue(claims Claims) (string, error)
	Verify(token string) (Claims, error)
}
