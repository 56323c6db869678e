package entity

import "time"

// Book is a catalog entry as stored.
type Book struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	Quantity        int32
	Observations    string
	Active          bool
	AcquisitionDate time.Time
	PublisherID     *int64
	CategoryID      *int64
	CoverPath       string
	CreatedAt       time.Time
}

// BookRow is a book joined with its publisher and category names.
type BookRow struct {
	Book
	PublisherName string
	CategoryName  string
}

// NewBook is the data required to create a book.
type NewBook struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	Quantity        int32
	Observations    string
	Active          bool
	AcquisitionDate time.Time
	PublisherID     *int64
	CategoryID      *int64
}

// UpdateBook carries the replaceable fields of a book. The cover is managed
// through its own endpoint and is never touched here.
type UpdateBook struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	Quantity        int32
	Observations    string
	Active          bool
	AcquisitionDate time.Time
	PublisherID     *int64
	CategoryID      *int64
}

// BookReportFilter narrows the acquisitions report. Zero values mean the
// dimension is not filtered; Active is tri-state.
type BookReportFilter struct {
	AcquiredFrom time.Time
	AcquiredTo   time.Time
	PublisherID  int64
	CategoryID   int64
	Author       string
	Active       *bool
}

// SitemapBook is the subset of an active book needed for sitemap entries.
type SitemapBook struct {
	ID        int64
	CreatedAt time.Time
}

// Publisher is a book publisher.
type Publisher struct {
	ID   int64
	Name string
}

// Category is a book category.
type Category struct {
	ID   int64
	Name string
}

// DashboardTotals aggregates the entity counts shown on the dashboard.
type DashboardTotals struct {
	Books       int64
	ActiveBooks int64
	Accounts    int64
	Publishers  int64
	Categories  int64
}
