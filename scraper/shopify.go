package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

// shopifyStorefront extracts from Shopify product pages, which expose both
// Open Graph tags and a JSON-LD Product block.
type shopifyStorefront struct{}

func (shopifyStorefront) Name() string { return "shopify" }

func (shopifyStorefront) Matches(host string, doc *goquery.Document) bool {
	if strings.HasSuffix(host, ".myshopify.com") {
		return true
	}
	if doc.Find(`meta[name="shopify-checkout-api-token"]`).Length() > 0 {
		return true
	}
	// Shopify themes load assets from cdn.shopify.com.
	found := false
	doc.Find(`script[src], link[href]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok {
			src, _ = s.Attr("href")
		}
		if strings.Contains(src, "cdn.shopify.com") {
			found = true
			return false
		}
		return true
	})
	return found
}

func (shopifyStorefront) Extract(doc *goquery.Document) (models.ProductInfo, error) {
	// Prefer the structured JSON-LD Product block when present.
	info, ok := shopifyProductJSONLD(doc)
	if ok {
		return info, nil
	}

	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return models.ProductInfo{}, fmt.Errorf("no product title found")
	}

	description := metaContent(doc, `meta[property="og:description"]`)
	if description == "" {
		description = metaContent(doc, `meta[name="description"]`)
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

// shopifyProductJSONLD scans ld+json script blocks for a Product entry.
func shopifyProductJSONLD(doc *goquery.Document) (models.ProductInfo, bool) {
	var info models.ProductInfo
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		parsed := gjson.Parse(s.Text())
		product := findProductNode(parsed)
		if !product.Exists() {
			return true
		}

		title := strings.TrimSpace(product.Get("name").String())
		if title == "" {
			return true
		}

		var images []string
		image := product.Get("image")
		if image.IsArray() {
			for _, img := range image.Array() {
				if u := strings.TrimSpace(img.String()); u != "" && len(images) < maxGalleryImages {
					images = append(images, u)
				}
			}
		} else if u := strings.TrimSpace(image.String()); u != "" {
			images = append(images, u)
		}
		if len(images) == 0 {
			return true
		}

		description := strings.TrimSpace(product.Get("description").String())
		if description == "" {
			description = "No description provided"
		}

		info = models.ProductInfo{
			Title:       title,
			Description: description,
			ImageURL:    images[0],
			Images:      images,
		}
		found = true
		return false
	})

	return info, found
}

// findProductNode handles both a bare Product object and @graph wrappers.
func findProductNode(parsed gjson.Result) gjson.Result {
	if parsed.Get("@type").String() == "Product" {
		return parsed
	}
	var product gjson.Result
	parsed.Get("@graph").ForEach(func(_, node gjson.Result) bool {
		if node.Get("@type").String() == "Product" {
			product = node
			return false
		}
		return true
	})
	return product
}
