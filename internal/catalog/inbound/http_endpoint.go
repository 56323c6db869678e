package inbound

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/usecase"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the catalog workflows.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) BookList(r *router.Request) (any, error) {
	resp, err := h.uc.BookList(r.Context())
	if err != nil {
		return nil, err
	}

	return BookListResponse{Books: toBookPayloads(resp.Books)}, nil
}

func (h *HTTPEndpoint) BookDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BookDetail(r.Context(), usecase.BookDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return BookDetailResponse{Book: toBookPayload(resp.Book)}, nil
}

func (h *HTTPEndpoint) BookCreate(r *router.Request) (any, error) {
	var req BookWriteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	acquired, err := parseDate(req.AcquisitionDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BookCreate(r.Context(), usecase.BookCreateInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Quantity:        req.Quantity,
		Observations:    req.Observations,
		Active:          req.Active,
		AcquisitionDate: acquired,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
		IdempotencyKey:  r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return BookCreateResponse{ID: resp.ID}, nil
}

func (h *HTTPEndpoint) BookUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req BookWriteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	acquired, err := parseDate(req.AcquisitionDate)
	if err != nil {
		return nil, err
	}

	err = h.uc.BookUpdate(r.Context(), usecase.BookUpdateInput{
		ID:              id,
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Quantity:        req.Quantity,
		Observations:    req.Observations,
		Active:          req.Active,
		AcquisitionDate: acquired,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
	})

	return nil, err
}

func (h *HTTPEndpoint) BookDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.BookDelete(r.Context(), usecase.BookDeleteInput{ID: id})
}

func (h *HTTPEndpoint) BookCoverUpload(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, filename, err := r.StreamSingleFile("cover")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BookCoverUpload(r.Context(), usecase.BookCoverUploadInput{
		ID:       id,
		Filename: filename,
		File:     file,
	})
	if err != nil {
		return nil, err
	}

	return BookCoverResponse{CoverPath: resp.CoverPath}, nil
}

func (h *HTTPEndpoint) BookReport(r *router.Request) (any, error) {
	from, err := r.GetQueryDate("from", time.DateOnly)
	if err != nil {
		return nil, err
	}

	to, err := r.GetQueryDate("to", time.DateOnly)
	if err != nil {
		return nil, err
	}

	publisherID, err := r.GetQueryInt64("publisher_id")
	if err != nil {
		return nil, err
	}

	categoryID, err := r.GetQueryInt64("category_id")
	if err != nil {
		return nil, err
	}

	active, err := queryBoolTriState(r, "active")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BookReport(r.Context(), usecase.BookReportInput{
		AcquiredFrom: from,
		AcquiredTo:   to,
		PublisherID:  publisherID,
		CategoryID:   categoryID,
		Author:       r.GetQuery("author"),
		Active:       active,
	})
	if err != nil {
		return nil, err
	}

	return BookReportResponse{Books: toBookPayloads(resp.Books)}, nil
}

func (h *HTTPEndpoint) BookLabel(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BookLabel(r.Context(), usecase.BookLabelInput{ID: id})
	if err != nil {
		return nil, err
	}

	out := BookLabelResponse{
		ID:        resp.ID,
		Title:     resp.Title,
		Author:    resp.Author,
		PublicURL: resp.PublicURL,
		QRCodeURL: resp.QRCodeURL,
	}
	if !resp.AcquisitionDate.IsZero() {
		out.AcquisitionDate = resp.AcquisitionDate.Format(time.DateOnly)
	}

	return out, nil
}

func (h *HTTPEndpoint) PublicSearch(r *router.Request) (any, error) {
	resp, err := h.uc.PublicSearch(r.Context(), usecase.PublicSearchInput{Query: r.GetQuery("q")})
	if err != nil {
		return nil, err
	}

	return PublicSearchResponse{Books: toBookPayloads(resp.Books)}, nil
}

func (h *HTTPEndpoint) PublicBookDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PublicBookDetail(r.Context(), usecase.PublicBookDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return BookDetailResponse{Book: toBookPayload(resp.Book)}, nil
}

// Sitemap returns a raw handler that writes the sitemap XML document.
func (h *HTTPEndpoint) Sitemap() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := h.uc.Sitemap(r.Context())
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			slog.ErrorContext(r.Context(), "failed to write sitemap response", "error", err)
		}
	})
}

func (h *HTTPEndpoint) PublisherList(r *router.Request) (any, error) {
	resp, err := h.uc.PublisherList(r.Context())
	if err != nil {
		return nil, err
	}

	out := PublisherListResponse{Publishers: make([]PublisherPayload, 0, len(resp.Publishers))}
	for _, p := range resp.Publishers {
		out.Publishers = append(out.Publishers, PublisherPayload{ID: p.ID, Name: p.Name})
	}

	return out, nil
}

func (h *HTTPEndpoint) PublisherCreate(r *router.Request) (any, error) {
	var req NameWriteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PublisherCreate(r.Context(), usecase.PublisherCreateInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return PublisherCreateResponse{ID: resp.ID}, nil
}

func (h *HTTPEndpoint) PublisherDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.PublisherDelete(r.Context(), usecase.PublisherDeleteInput{ID: id})
}

func (h *HTTPEndpoint) CategoryList(r *router.Request) (any, error) {
	resp, err := h.uc.CategoryList(r.Context())
	if err != nil {
		return nil, err
	}

	out := CategoryListResponse{Categories: make([]CategoryPayload, 0, len(resp.Categories))}
	for _, c := range resp.Categories {
		out.Categories = append(out.Categories, CategoryPayload{ID: c.ID, Name: c.Name})
	}

	return out, nil
}

func (h *HTTPEndpoint) CategoryCreate(r *router.Request) (any, error) {
	var req NameWriteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CategoryCreate(r.Context(), usecase.CategoryCreateInput{Name: req.Name})
	if err != nil {
		return nil, err
	}

	return CategoryCreateResponse{ID: resp.ID}, nil
}

func (h *HTTPEndpoint) CategoryDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return nil, h.uc.CategoryDelete(r.Context(), usecase.CategoryDeleteInput{ID: id})
}

func (h *HTTPEndpoint) Dashboard(r *router.Request) (any, error) {
	resp, err := h.uc.Dashboard(r.Context())
	if err != nil {
		return nil, err
	}

	return DashboardResponse{
		Books:       resp.Totals.Books,
		ActiveBooks: resp.Totals.ActiveBooks,
		Accounts:    resp.Totals.Accounts,
		Publishers:  resp.Totals.Publishers,
		Categories:  resp.Totals.Categories,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, goerror.NewInvalidFormat("Invalid acquisition_date")
	}

	return parsed, nil
}

func queryBoolTriState(r *router.Request, key string) (*bool, error) {
	switch r.GetQuery(key) {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, goerror.NewInvalidFormat("Invalid query " + key)
	}
}
