package models

// LoginRequest is the credential payload sent to the backend.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AdminPinRequest is step one of the admin two-factor flow.
type AdminPinRequest struct {
	Email string `json:"email" validate:"required,email"`
	PIN   string `json:"pin" validate:"required,min=4"`
}

// AdminPinResponse carries the intermediate session for step two.
type AdminPinResponse struct {
	SessionID string `json:"session_id"`
}

// AdminGoogleRequest is step two of the admin two-factor flow.
type AdminGoogleRequest struct {
	Email     string `json:"email" validate:"required,email"`
	SessionID string `json:"session_id" validate:"required"`
}
