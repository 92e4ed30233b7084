package dto

// LoginRequest credentials for login. Username also accepts the email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus profile. CSRFToken must be echoed in the
// X-CSRF-Token header on every mutating request.
type LoginResponse struct {
	Token     string       `json:"token"`
	CSRFToken string       `json:"csrf_token"`
	User      UserResponse `json:"user"`
}

// ChangePasswordRequest self-service password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
