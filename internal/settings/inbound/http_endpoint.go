package inbound

import (
	"github.com/openbiblio/biblio/internal/pkg/router"
	"github.com/openbiblio/biblio/internal/settings/usecase"
)

// HTTPEndpoint exposes HTTP handlers for application settings.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return ListResponse(resp.Settings), nil
}

func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	var req UpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Update(r.Context(), usecase.UpdateInput{
		Key:   req.Key,
		Value: req.Value,
	}); err != nil {
		return nil, err
	}

	return UpdateResponse{Key: req.Key, Value: req.Value}, nil
}

// RegistrationStatus is public and tells the registration page whether
// sign-up is currently open.
func (h *HTTPEndpoint) RegistrationStatus(r *router.Request) (any, error) {
	resp, err := h.uc.RegistrationStatus(r.Context())
	if err != nil {
		return nil, err
	}

	return RegistrationStatusResponse{Allowed: resp.Allowed}, nil
}
