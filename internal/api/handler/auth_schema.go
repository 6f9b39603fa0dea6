package handler

import "github.com/glamslot/booking/internal/core/domain"

// Credentials are checked by the identity provider, not here: empty fields must reach
// it so the failure is reported as invalid credentials.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type demoLoginRequest struct {
	Role string `json:"role" validate:"required,oneof=client salon"`
}

type sessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	Identity      *domain.Identity     `json:"identity,omitempty"`
	Toast         *domain.Notification `json:"toast,omitempty"`
}
