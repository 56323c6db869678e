package inbound

import (
	"context"

	"github.com/openbiblio/biblio/internal/pkg/router"
	"github.com/openbiblio/biblio/internal/settings/usecase"
)

type uc interface {
	List(ctx context.Context) (*usecase.ListOutput, error)
	Update(ctx context.Context, in usecase.UpdateInput) error
	RegistrationStatus(ctx context.Context) (*usecase.RegistrationStatusOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/settings", end.List)
	r.PUT("/api/v1/settings", end.Update)
	r.GET("/api/v1/settings/public/registration-status", end.RegistrationStatus)
}
