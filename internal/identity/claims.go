package identity

import "github.com/golang-jwt/jwt/v5"

// ContextKey is the request-context key the auth middleware stores the
// validated claims under.
const ContextKey = "identity.claims"

// Claims is the authenticated identity attached to every mutating request.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"user_name"`
	Role     Role   `json:"role"`
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTeamOwner Role = "teamOwner"
	RoleViewer    Role = "viewer"
)
