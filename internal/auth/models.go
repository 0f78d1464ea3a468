package auth

import "time"

// Roles recognized by the demo platform.
const (
	RoleInvestor     = "INVESTOR"
	RoleProjectOwner = "PROJECT_OWNER"
	RoleAdmin        = "ADMIN"
)

// User is a platform account. PasswordHash is bcrypt and never leaves
// the package.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	Phone            string    `json:"phone,omitempty"`
	OrganizationType string    `json:"organizationType,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Session is the login/register response payload.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
