package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

// settingAppBaseURL overrides the configured base URL for public links.
const settingAppBaseURL = "app_base_url"

type BookLabelInput struct {
	ID int64 `validate:"required,gt=0"`
}

type BookLabelOutput struct {
	ID              int64
	Title           string
	Author          string
	AcquisitionDate time.Time
	PublicURL       string
	QRCodeURL       string
}

func (s *Usecase) BookLabel(ctx context.Context, in BookLabelInput) (*BookLabelOutput, error) {
	ctx, span := s.startSpan(ctx, "BookLabel")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.GetBookByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book by id", "book_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	publicURL := fmt.Sprintf("%s/books/%d", s.publicBaseURL(ctx), book.ID)

	qrDataURI, err := s.qr.DataURI(publicURL, 256)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode label qr code", "book_id", book.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookLabelOutput{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		AcquisitionDate: book.AcquisitionDate,
		PublicURL:       publicURL,
		QRCodeURL:       qrDataURI,
	}, nil
}

// publicBaseURL resolves the site base URL from settings, falling back to
// configuration when the key is absent.
func (s *Usecase) publicBaseURL(ctx context.Context) string {
	base, err := s.repoDB.GetSettingValue(ctx, settingAppBaseURL)
	if err != nil || base == "" {
		base = s.cfg.GetString("server.base_url")
	}

	return strings.TrimRight(base, "/")
}
