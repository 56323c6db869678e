package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the sitemap XML document: the base URL plus one entry per
// active book.
func (s *Usecase) Sitemap(ctx context.Context) ([]byte, error) {
	ctx, span := s.startSpan(ctx, "Sitemap")
	defer span.End()

	books, err := s.repoDB.GetSitemapBooks(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get sitemap books", "error", err)
		return nil, goerror.NewServer(err)
	}

	base := s.publicBaseURL(ctx)

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(books)+1),
	}
	set.URLs = append(set.URLs, sitemapURL{Loc: base})

	for _, book := range books {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/books/%d", base, book.ID),
			LastMod: book.CreatedAt.Format(time.DateOnly),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		slog.ErrorContext(ctx, "failed to marshal sitemap", "error", err)
		return nil, goerror.NewServer(err)
	}

	return append([]byte(xml.Header), out...), nil
}
