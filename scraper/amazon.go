package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

const maxGalleryImages = 4

// Amazon serves several size variants of the same image; the size infix
// (e.g. "._AC_SL1500_.") is the only difference between their URLs.
var amazonSizeInfix = regexp.MustCompile(`\._[^.]+\.`)

// amazonStorefront extracts from Amazon product detail pages.
type amazonStorefront struct{}

func (amazonStorefront) Name() string { return "amazon" }

func (amazonStorefront) Matches(host string, doc *goquery.Document) bool {
	if strings.Contains(host, "amazon.") {
		return true
	}
	// Structural probe for mirrors and shortened hosts.
	return doc.Find("#productTitle").Length() > 0
}

func (amazonStorefront) Extract(doc *goquery.Document) (models.ProductInfo, error) {
	title := strings.TrimSpace(doc.Find("#productTitle").First().Text())
	if title == "" {
		title = metaContent(doc, `meta[property="og:title"]`)
	}
	if title == "" {
		return models.ProductInfo{}, fmt.Errorf("no product title found")
	}

	description := metaContent(doc, `meta[name="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}
	if description == "" {
		// Feature bullets carry the marketing copy on most detail pages.
		var bullets []string
		doc.Find("#feature-bullets li span").Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				bullets = append(bullets, text)
			}
		})
		description = strings.Join(bullets, " ")
	}
	if description == "" {
		description = "No description provided"
	}

	images := amazonGalleryImages(doc)
	if len(images) == 0 {
		if src, ok := doc.Find("img#landingImage").First().Attr("src"); ok && strings.TrimSpace(src) != "" {
			images = append(images, strings.TrimSpace(src))
		}
	}
	if len(images) == 0 {
		if og := metaContent(doc, `meta[property="og:image"]`); og != "" {
			images = append(images, og)
		}
	}
	if len(images) == 0 {
		return models.ProductInfo{}, fmt.Errorf("no product image found")
	}

	return models.ProductInfo{
		Title:       title,
		Description: description,
		ImageURL:    images[0],
		Images:      images,
	}, nil
}

// amazonGalleryImages reads the data-a-dynamic-image attribute, a JSON
// object keyed by image URL, and keeps one URL per distinct base image.
func amazonGalleryImages(doc *goquery.Document) []string {
	var images []string
	seen := make(map[string]struct{})

	doc.Find("img[data-a-dynamic-image]").Each(func(_ int, s *goquery.Selection) {
		raw, ok := s.Attr("data-a-dynamic-image")
		if !ok {
			return
		}
		parsed := gjson.Parse(raw)
		if !parsed.IsObject() {
			return
		}
		parsed.ForEach(func(key, _ gjson.Result) bool {
			imgURL := key.String()
			base := amazonSizeInfix.ReplaceAllString(imgURL, ".")
			if _, dup := seen[base]; dup || len(images) >= maxGalleryImages {
				return true
			}
			seen[base] = struct{}{}
			images = append(images, imgURL)
			return true
		})
	})

	return images
}
