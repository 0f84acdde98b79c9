package users

import "time"

// RegisterRequest is the payload for account registration. The confirmation
// field must match the password exactly.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	Name            string `json:"name"`
}

// TokenRequest is the payload for token login.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the opaque bearer token returned on login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest is the payload for profile updates. Only the name is
// mutable this way; any other field sent by the client is simply not part of
// the shape and gets dropped during decoding.
type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

// ChangePasswordRequest is the payload for password changes.
type ChangePasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// DeleteAccountRequest is the payload for account deletion. The current
// password must be re-supplied.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// ProfileResponse is the public representation of an account.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func profileFromUser(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
