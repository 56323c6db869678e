package inbound

import (
	"github.com/openbiblio/biblio/internal/identity/usecase"
	"github.com/openbiblio/biblio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a staff account and returns the TOTP provisioning QR code.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		UserID:    resp.UserID,
		QRCodeURL: resp.QRCodeURL,
	}, nil
}

// Login authenticates a staff account, returning either an OTP challenge or
// the user with an access token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	if err != nil {
		return nil, err
	}

	out := LoginResponse{
		OtpRequired: resp.OtpRequired,
		AccessToken: resp.AccessToken,
	}
	if resp.User != nil {
		out.User = &LoginUserPayload{
			ID:    resp.User.ID,
			Name:  resp.User.Name,
			Email: resp.User.Email,
		}
	}

	return out, nil
}
