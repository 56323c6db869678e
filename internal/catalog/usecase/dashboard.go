package usecase

import (
	"context"
	"log/slog"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type DashboardOutput struct {
	Totals entity.DashboardTotals
}

func (s *Usecase) Dashboard(ctx context.Context) (*DashboardOutput, error) {
	ctx, span := s.startSpan(ctx, "Dashboard")
	defer span.End()

	totals, err := s.repoDB.GetDashboardTotals(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get dashboard totals", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DashboardOutput{Totals: *totals}, nil
}
