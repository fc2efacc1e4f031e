package scraper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

// A storefront is a named set of extraction heuristics for one supported
// site layout.
type storefront interface {
	Name() string
	// Matches reports whether this storefront's heuristics apply, either
	// by URL host or by structural probing of the document.
	Matches(host string, doc *goquery.Document) bool
	Extract(doc *goquery.Document) (models.ProductInfo, error)
}

// Extractor parses product pages. Storefront heuristics are tried by URL
// pattern first, falling back to generic Open Graph tags.
type Extractor struct {
	storefronts []storefront
	logger      *zap.Logger
}

// NewExtractor creates an Extractor with the supported storefront
// heuristics (Amazon, Shopify) and the generic fallback.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{
		storefronts: []storefront{
			amazonStorefront{},
			shopifyStorefront{},
		},
		logger: logger,
	}
}

// Extract locates title, description and product images in the page. It
// fails rather than returning partial data.
func (e *Extractor) Extract(pageURL, html string) (models.ProductInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return models.ProductInfo{}, &pipeline.ExtractionError{Err: fmt.Errorf("failed to parse HTML: %w", err)}
	}

	host := ""
	if u, err := url.Parse(pageURL); err == nil {
		host = strings.ToLower(u.Hostname())
	}

	for _, sf := range e.storefronts {
		if !sf.Matches(host, doc) {
			continue
		}
		info, err := sf.Extract(doc)
		if err != nil {
			return models.ProductInfo{}, &pipeline.ExtractionError{Err: fmt.Errorf("%s layout: %w", sf.Name(), err)}
		}
		e.logger.Info("extracted product info",
			zap.String("storefront", sf.Name()),
			zap.String("title", info.Title),
			zap.Int("images", len(info.Images)),
		)
		return info, nil
	}

	info, err := extractGeneric(doc)
	if err != nil {
		return models.ProductInfo{}, &pipeline.ExtractionError{Err: err}
	}
	e.logger.Info("extracted product info",
		zap.String("storefront", "generic"),
		zap.String("title", info.Title),
	)
	return info, nil
}

// metaContent returns the content attribute of the first matching meta tag.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// extractGeneric covers pages that only expose Open Graph metadata.
func extractGeneric(doc *goquery.Document) (models.ProductInfo, error) {
	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return models.ProductInfo{}, fmt.Errorf("no product title found")
	}

	description := metaContent(doc, `meta[name="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}
	if description == "" {
		description = "No description provided"
	}

	imageURL := metaContent(doc, `meta[property="og:image"]`)
	if imageURL == "" {
		return models.ProductInfo{}, fmt.Errorf("no product image found")
	}

	return models.ProductInfo{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Images:      []string{imageURL},
	}, nil
}
