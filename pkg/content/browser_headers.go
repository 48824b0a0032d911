package content

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values; Japanese
// variants first since most configured sources are Japanese tech sites
var acceptLanguages = []string{
	"ja,en-US;q=0.9,en;q=0.8",
	"ja-JP,ja;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,ja;q=0.8",
	"en-US,en;q=0.9",
}

// addBrowserHeaders adds common browser headers to the request, article pages
// behind aggressive CDNs tend to reject obviously non-browser clients
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	// randomized language
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // non-cryptographic randomness is fine for header variation

	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Connection", "keep-alive")
}
