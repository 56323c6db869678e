package inbound

import (
	"context"

	"github.com/openbiblio/biblio/internal/catalog/usecase"
	"github.com/openbiblio/biblio/internal/pkg/router"
)

type uc interface {
	BookList(ctx context.Context) (*usecase.BookListOutput, error)
	BookDetail(ctx context.Context, in usecase.BookDetailInput) (*usecase.BookDetailOutput, error)
	BookCreate(ctx context.Context, in usecase.BookCreateInput) (*usecase.BookCreateOutput, error)
	BookUpdate(ctx context.Context, in usecase.BookUpdateInput) error
	BookDelete(ctx context.Context, in usecase.BookDeleteInput) error
	BookCoverUpload(ctx context.Context, in usecase.BookCoverUploadInput) (*usecase.BookCoverUploadOutput, error)
	BookReport(ctx context.Context, in usecase.BookReportInput) (*usecase.BookReportOutput, error)
	BookLabel(ctx context.Context, in usecase.BookLabelInput) (*usecase.BookLabelOutput, error)

	PublicSearch(ctx context.Context, in usecase.PublicSearchInput) (*usecase.PublicSearchOutput, error)
	PublicBookDetail(ctx context.Context, in usecase.PublicBookDetailInput) (*usecase.PublicBookDetailOutput, error)

	PublisherList(ctx context.Context) (*usecase.PublisherListOutput, error)
	PublisherCreate(ctx context.Context, in usecase.PublisherCreateInput) (*usecase.PublisherCreateOutput, error)
	PublisherDelete(ctx context.Context, in usecase.PublisherDeleteInput) error

	CategoryList(ctx context.Context) (*usecase.CategoryListOutput, error)
	CategoryCreate(ctx context.Context, in usecase.CategoryCreateInput) (*usecase.CategoryCreateOutput, error)
	CategoryDelete(ctx context.Context, in usecase.CategoryDeleteInput) error

	Dashboard(ctx context.Context) (*usecase.DashboardOutput, error)
	Sitemap(ctx context.Context) ([]byte, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Books
	r.GET("/api/v1/catalog/books", end.BookList)
	r.GET("/api/v1/catalog/books/:id", end.BookDetail)
	r.POST("/api/v1/catalog/books", end.BookCreate)
	r.PUT("/api/v1/catalog/books/:id", end.BookUpdate)
	r.PUT("/api/v1/catalog/books/:id/cover", end.BookCoverUpload)
	r.DELETE("/api/v1/catalog/books/:id", end.BookDelete)
	r.GET("/api/v1/catalog/books-report", end.BookReport)
	r.GET("/api/v1/catalog/books/:id/label", end.BookLabel)

	// Public catalog
	r.GET("/api/v1/catalog/public/search", end.PublicSearch)
	r.GET("/api/v1/catalog/public/books/:id", end.PublicBookDetail)
	r.GETRaw("/sitemap.xml", end.Sitemap())

	// Publishers & categories
	r.GET("/api/v1/catalog/publishers", end.PublisherList)
	r.POST("/api/v1/catalog/publishers", end.PublisherCreate)
	r.DELETE("/api/v1/catalog/publishers/:id", end.PublisherDelete)
	r.GET("/api/v1/catalog/categories", end.CategoryList)
	r.POST("/api/v1/catalog/categories", end.CategoryCreate)
	r.DELETE("/api/v1/catalog/categories/:id", end.CategoryDelete)

	// Dashboard
	r.GET("/api/v1/catalog/dashboard", end.Dashboard)
}
