package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSitemap(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	env.repo.settings["app_base_url"] = "https://library.example.com"
	activeID := seedBook(t, env, true)
	seedBook(t, env, false)

	// Act
	out, err := env.uc.Sitemap(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("sitemap failed: %v", err)
	}
	doc := string(out)
	if !strings.HasPrefix(doc, xml.Header) {
		t.Fatal("expected an xml declaration")
	}
	if !strings.Contains(doc, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Fatal("expected the sitemap namespace")
	}
	if !strings.Contains(doc, "<loc>https://library.example.com</loc>") {
		t.Fatal("expected the base url entry")
	}
	if !strings.Contains(doc, fmt.Sprintf("<loc>https://library.example.com/books/%d</loc>", activeID)) {
		t.Fatal("expected the active book entry")
	}

	var parsed struct {
		URLs []struct {
			Loc     string `xml:"loc"`
			LastMod string `xml:"lastmod"`
		} `xml:"url"`
	}
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output is not valid xml: %v", err)
	}
	if len(parsed.URLs) != 2 {
		t.Fatalf("expected base entry plus one active book, got %d entries", len(parsed.URLs))
	}
}
