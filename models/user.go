package models

// Role names as issued by the backend.
const (
	RoleUser   = "ROLE_USER"
	RoleAdmin  = "ROLE_ADMIN"
	RoleVendor = "ROLE_VENDOR"
)

// User is the signed-in account record returned by the backend on sign-in
// and persisted alongside the bearer token for the life of the session.
type User struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether the user's role set contains the given role.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Credentials is the sign-in request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest registers a regular user account.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse is the backend's answer to POST /auth/signin.
type SignInResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// User returns the account record embedded in the sign-in response.
func (r SignInResponse) User() User {
	return User{Username: r.Username, Email: r.Email, Roles: r.Roles}
}

// UserProfile mirrors GET /users/profile. Optional fields stay empty when
// the backend omits them.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
