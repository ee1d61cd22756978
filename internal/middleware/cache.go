package middleware

import (
	"net/http"
	"strings"
)

// Catalog listings only change on deploy.
var cacheablePrefixes = []string{
	"/api/tools",
	"/api/workflows",
	"/api/questionnaire/options",
}

// CacheControl adds cache headers based on the request path.
type CacheControl struct {
	maxAge string
}

func NewCacheControl() *CacheControl {
	return &CacheControl{maxAge: "300"}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && isCacheable(path):
			w.Header().Set("Cache-Control", "public, max-age="+c.maxAge)

		case strings.HasPrefix(path, "/api/"):
			// Sessions, recommendations and shares are per-user.
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")

		case strings.HasPrefix(path, "/s/"):
			// Share pages count views, so always revalidate.
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}

func isCacheable(path string) bool {
	for _, prefix := range cacheablePrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
