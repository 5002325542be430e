package catalog

import (
	"net/url"
	"strconv"
)

// ResizedImageURL derives a URL requesting a resized rendition by setting
// width/height query parameters. The input URL is never mutated, and the
// derivation is idempotent: resizing an already-derived URL overwrites the
// parameters instead of stacking them. Unparseable URLs come back as-is.
func ResizedImageURL(rawURL string, width, height int) string {
	if rawURL == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if width > 0 {
		q.Set("width", strconv.Itoa(width))
	}
	if height > 0 {
		q.Set("height", strconv.Itoa(height))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
