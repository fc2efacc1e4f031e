package models

import "strings"

// ProductInfo holds the metadata scraped from a single product page.
// It is created once by the extractor and never mutated afterwards.
type ProductInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images,omitempty"` // extra gallery images, primary first
}

// AdScript is the generated voiceover text for a product ad.
type AdScript struct {
	Text string `json:"text"`
}

// Lines returns the non-empty lines of the script, one caption per line.
func (s AdScript) Lines() []string {
	var lines []string
	for _, line := range strings.Split(s.Text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
