package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/config"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/goroutine"
	"github.com/openbiblio/biblio/internal/pkg/idempotency"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/storage"
	"github.com/openbiblio/biblio/internal/pkg/validator"
)

type fakeRepoDB struct {
	books      map[int64]*entity.BookRow
	publishers map[int64]entity.Publisher
	categories map[int64]entity.Category
	settings   map[string]string
	totals     entity.DashboardTotals

	createBookErr      error
	deletePublisherErr error
	deleteCategoryErr  error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		books:      map[int64]*entity.BookRow{},
		publishers: map[int64]entity.Publisher{},
		categories: map[int64]entity.Category{},
		settings:   map[string]string{},
	}
}

func (f *fakeRepoDB) GetBookList(context.Context) ([]entity.BookRow, error) {
	books := make([]entity.BookRow, 0, len(f.books))
	for _, b := range f.books {
		books = append(books, *b)
	}

	return books, nil
}

func (f *fakeRepoDB) GetBookByID(_ context.Context, id int64) (*entity.BookRow, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	row := *b

	return &row, nil
}

func (f *fakeRepoDB) CreateBook(_ context.Context, in entity.NewBook) error {
	if f.createBookErr != nil {
		return f.createBookErr
	}

	f.books[in.ID] = &entity.BookRow{Book: entity.Book{
		ID:              in.ID,
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Quantity:        in.Quantity,
		Observations:    in.Observations,
		Active:          in.Active,
		AcquisitionDate: in.AcquisitionDate,
		PublisherID:     in.PublisherID,
		CategoryID:      in.CategoryID,
	}}

	return nil
}

func (f *fakeRepoDB) UpdateBook(_ context.Context, in entity.UpdateBook) error {
	b, ok := f.books[in.ID]
	if !ok {
		return goerror.ErrNotFound
	}

	b.Title = in.Title
	b.Author = in.Author
	b.ISBN = in.ISBN
	b.Quantity = in.Quantity
	b.Observations = in.Observations
	b.Active = in.Active
	b.AcquisitionDate = in.AcquisitionDate
	b.PublisherID = in.PublisherID
	b.CategoryID = in.CategoryID

	return nil
}

func (f *fakeRepoDB) UpdateBookCover(_ context.Context, id int64, coverPath string) error {
	b, ok := f.books[id]
	if !ok {
		return goerror.ErrNotFound
	}

	b.CoverPath = coverPath

	return nil
}

func (f *fakeRepoDB) DeleteBook(_ context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return goerror.ErrNotFound
	}

	delete(f.books, id)

	return nil
}

func (f *fakeRepoDB) GetBookReport(_ context.Context, filter entity.BookReportFilter) ([]entity.BookRow, error) {
	books := make([]entity.BookRow, 0)
	for _, b := range f.books {
		if filter.Active != nil && b.Active != *filter.Active {
			continue
		}
		books = append(books, *b)
	}

	return books, nil
}

func (f *fakeRepoDB) SearchPublicBooks(context.Context, string) ([]entity.BookRow, error) {
	books := make([]entity.BookRow, 0)
	for _, b := range f.books {
		if b.Active {
			books = append(books, *b)
		}
	}

	return books, nil
}

func (f *fakeRepoDB) GetPublicBookByID(_ context.Context, id int64) (*entity.BookRow, error) {
	b, ok := f.books[id]
	if !ok || !b.Active {
		return nil, goerror.ErrNotFound
	}

	return b, nil
}

func (f *fakeRepoDB) GetSitemapBooks(context.Context) ([]entity.SitemapBook, error) {
	books := make([]entity.SitemapBook, 0)
	for _, b := range f.books {
		if b.Active {
			books = append(books, entity.SitemapBook{ID: b.ID, CreatedAt: b.CreatedAt})
		}
	}

	return books, nil
}

func (f *fakeRepoDB) GetPublisherList(context.Context) ([]entity.Publisher, error) {
	publishers := make([]entity.Publisher, 0, len(f.publishers))
	for _, p := range f.publishers {
		publishers = append(publishers, p)
	}

	return publishers, nil
}

func (f *fakeRepoDB) CreatePublisher(_ context.Context, in entity.Publisher) error {
	for _, p := range f.publishers {
		if p.Name == in.Name {
			return goerror.ErrConflict
		}
	}

	f.publishers[in.ID] = in

	return nil
}

func (f *fakeRepoDB) DeletePublisher(_ context.Context, id int64) error {
	if f.deletePublisherErr != nil {
		return f.deletePublisherErr
	}
	if _, ok := f.publishers[id]; !ok {
		return goerror.ErrNotFound
	}

	delete(f.publishers, id)

	return nil
}

func (f *fakeRepoDB) GetCategoryList(context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		categories = append(categories, c)
	}

	return categories, nil
}

func (f *fakeRepoDB) CreateCategory(_ context.Context, in entity.Category) error {
	for _, c := range f.categories {
		if c.Name == in.Name {
			return goerror.ErrConflict
		}
	}

	f.categories[in.ID] = in

	return nil
}

func (f *fakeRepoDB) DeleteCategory(_ context.Context, id int64) error {
	if f.deleteCategoryErr != nil {
		return f.deleteCategoryErr
	}
	if _, ok := f.categories[id]; !ok {
		return goerror.ErrNotFound
	}

	delete(f.categories, id)

	return nil
}

func (f *fakeRepoDB) GetDashboardTotals(context.Context) (*entity.DashboardTotals, error) {
	totals := f.totals

	return &totals, nil
}

func (f *fakeRepoDB) GetSettingValue(_ context.Context, key string) (string, error) {
	v, ok := f.settings[key]
	if !ok {
		return "", goerror.ErrNotFound
	}

	return v, nil
}

type fakeBlob struct {
	uploaded map[string][]byte
	deleted  []string
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{uploaded: map[string][]byte{}}
}

func (f *fakeBlob) Upload(_ context.Context, bucket, key string, r io.Reader, _ storage.UploadOptions) (storage.ObjectInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}

	f.uploaded[bucket+"/"+key] = data

	return storage.ObjectInfo{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func (f *fakeBlob) Download(context.Context, string, string) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, goerror.ErrNotFound
}

func (f *fakeBlob) Delete(_ context.Context, bucket, key string) error {
	f.deleted = append(f.deleted, bucket+"/"+key)

	return nil
}

func (f *fakeBlob) SignedURL(context.Context, string, string, time.Duration) (string, error) {
	return "", storage.ErrMissingSigner
}

func (f *fakeBlob) Close() error { return nil }

// fakeIdempotency reports a duplicate for keys it has already seen,
// remembering whether the first attempt completed or failed.
type fakeIdempotency struct {
	completed map[string]bool
	failed    map[string]bool
}

func newFakeIdempotency() *fakeIdempotency {
	return &fakeIdempotency{completed: map[string]bool{}, failed: map[string]bool{}}
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.completed[key] {
		return idempotency.ErrAlreadyCompleted
	}
	if f.failed[key] {
		return idempotency.ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		f.failed[key] = true

		return err
	}

	f.completed[key] = true

	return nil
}

type sequenceID struct{ next int64 }

func (s *sequenceID) Generate() int64 {
	s.next++

	return s.next
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type testEnv struct {
	uc    *Usecase
	repo  *fakeRepoDB
	blob  *fakeBlob
	gomgr *goroutine.Manager
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator failed: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(
		"server:\n  base_url: \"http://fallback.example.com/\"\nstorage:\n  bucket: covers-bucket\n"))
	if err != nil {
		t.Fatalf("new config failed: %v", err)
	}

	repo := newFakeRepoDB()
	blob := newFakeBlob()
	gomgr := goroutine.NewManager(4)

	uc := New(Dependency{
		RepoDB:      repo,
		Validator:   v10,
		Config:      cfg,
		Blob:        blob,
		Idempotency: newFakeIdempotency(),
		UID:         &sequenceID{},
		QR:          qrcode.NewQR(),
		Clock:       fixedClock{now: now},
		Instrument:  instrument.NewNoop(),
		Goroutine:   gomgr,
	})

	return &testEnv{uc: uc, repo: repo, blob: blob, gomgr: gomgr}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}

	return gerr.StatusCode()
}
