package middleware

import (
	"net/http"
	"strings"

	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/i18n"
)

// Locale picks the response language from the lang query parameter or the
// Accept-Language header and stores it on the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("lang")
		if locale == "" {
			locale = primaryLanguage(r.Header.Get("Accept-Language"))
		}
		if locale != "" {
			r = r.WithContext(i18n.WithLocale(r.Context(), locale))
		}
		next.ServeHTTP(w, r)
	})
}

// primaryLanguage reduces an Accept-Language header to its first base tag,
// e.g. "ar-SA,ar;q=0.9" -> "ar".
func primaryLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.Split(strings.TrimSpace(first), "-")[0]
	return strings.ToLower(first)
}
