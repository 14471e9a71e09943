package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// AuthContext carries the identity facts the session provider established.
// It is passed explicitly into every service call instead of being read from
// ambient state.
type AuthContext struct {
	UserID string
	Role   Role
}

func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
