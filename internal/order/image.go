package order

import (
	"net/url"
	"strings"
)

// imageExtensions lists the recognized image file extensions for offer
// attachments.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// ValidImageURL reports whether raw is a well-formed absolute http(s) URL
// whose path ends in a recognized image extension. Anything else is treated
// as image-absent rather than an error.
func ValidImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return false
	}
	path := strings.ToLower(parsed.Path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
