package entity

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
)

// maxDerivedIDLength caps usernames derived from an opaque external id.
const maxDerivedIDLength = 15

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsPrivileged reports whether the user may moderate content they do not own.
func (u *User) IsPrivileged() bool {
	return u != nil && u.Role == RoleModerator
}

// RequiresSession reports whether the account may only act through a session
// token: it signs in with a password or holds a moderator role.
func (u *User) RequiresSession() bool {
	return u != nil && (u.Password != "" || u.IsPrivileged())
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// IdentityPayload is the identity an external provider hands over when the
// request carries no session of ours.
type IdentityPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Username derives the local handle for the payload: the local part of the
// email when present, else the first 15 characters of the external id.
// An empty result means no identity can be resolved.
func (p IdentityPayload) Username() string {
	email := strings.TrimSpace(p.Email)
	if local, _, _ := strings.Cut(email, "@"); local != "" {
		return local
	}

	id := []rune(strings.TrimSpace(p.ID))
	if len(id) > maxDerivedIDLength {
		id = id[:maxDerivedIDLength]
	}
	return string(id)
}
