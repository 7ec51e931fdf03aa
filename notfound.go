package rustdocs

import "strings"

// NotFoundMarkers are phrases docs.rs renders on pages for missing crates,
// versions, modules or items. Those pages are often served with a 200 status.
var NotFoundMarkers = []string{
	"404",
	"Not Found",
	"crate not found",
	"does not have",
}

// IsNotFoundPage reports whether body contains any NotFoundMarkers phrase.
func IsNotFoundPage(body string) bool {
	for _, m := range NotFoundMarkers {
		if strings.Contains(body, m) {
			return true
		}
	}
	return false
}
