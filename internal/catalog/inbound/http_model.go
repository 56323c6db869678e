package inbound

import (
	"net/http"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/samber/lo"
)

type BookPayload struct {
	ID              int64  `json:"id,string"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn,omitempty"`
	Quantity        int32  `json:"quantity"`
	Observations    string `json:"observations,omitempty"`
	Active          bool   `json:"active"`
	AcquisitionDate string `json:"acquisition_date,omitempty"`
	PublisherID     *int64 `json:"publisher_id,omitempty"`
	PublisherName   string `json:"publisher_name,omitempty"`
	CategoryID      *int64 `json:"category_id,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	CoverPath       string `json:"cover_path,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

func toBookPayload(b entity.BookRow) BookPayload {
	p := BookPayload{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Quantity:      b.Quantity,
		Observations:  b.Observations,
		Active:        b.Active,
		PublisherID:   b.PublisherID,
		PublisherName: b.PublisherName,
		CategoryID:    b.CategoryID,
		CategoryName:  b.CategoryName,
		CoverPath:     b.CoverPath,
	}
	if !b.AcquisitionDate.IsZero() {
		p.AcquisitionDate = b.AcquisitionDate.Format(time.DateOnly)
	}
	if !b.CreatedAt.IsZero() {
		p.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}

	return p
}

func toBookPayloads(books []entity.BookRow) []BookPayload {
	return lo.Map(books, func(b entity.BookRow, _ int) BookPayload {
		return toBookPayload(b)
	})
}

type BookListResponse struct {
	Books []BookPayload `json:"books"`
}

type BookDetailResponse struct {
	Book BookPayload `json:"book"`
}

type BookWriteRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Quantity        int32  `json:"quantity"`
	Observations    string `json:"observations"`
	Active          bool   `json:"active"`
	AcquisitionDate string `json:"acquisition_date"`
	PublisherID     *int64 `json:"publisher_id"`
	CategoryID      *int64 `json:"category_id"`
}

type BookCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (BookCreateResponse) Message() string {
	return "book created"
}

func (BookCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type BookCoverResponse struct {
	CoverPath string `json:"cover_path"`
}

func (BookCoverResponse) Message() string {
	return "cover uploaded"
}

type BookReportResponse struct {
	Books []BookPayload `json:"books"`
}

type BookLabelResponse struct {
	ID              int64  `json:"id,string"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	AcquisitionDate string `json:"acquisition_date,omitempty"`
	PublicURL       string `json:"public_url"`
	QRCodeURL       string `json:"qr_code_url"`
}

type PublicSearchResponse struct {
	Books []BookPayload `json:"books"`
}

type PublisherPayload struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

type PublisherListResponse struct {
	Publishers []PublisherPayload `json:"publishers"`
}

type NameWriteRequest struct {
	Name string `json:"name"`
}

type PublisherCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (PublisherCreateResponse) Message() string {
	return "publisher created"
}

func (PublisherCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type CategoryPayload struct {
	ID   int64  `json:"id,string"`
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Categories []CategoryPayload `json:"categories"`
}

type CategoryCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (CategoryCreateResponse) Message() string {
	return "category created"
}

func (CategoryCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type DashboardResponse struct {
	Books       int64 `json:"books"`
	ActiveBooks int64 `json:"active_books"`
	Accounts    int64 `json:"accounts"`
	Publishers  int64 `json:"publishers"`
	Categories  int64 `json:"categories"`
}
