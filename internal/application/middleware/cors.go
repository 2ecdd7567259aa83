package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CORS allows the origins matching one of the comma separated glob patterns. "*" allows every origin.
// Credentials are never allowed since the API authenticates with bearer tokens only.
func CORS(allowedOriginPatterns string) echo.MiddlewareFunc {
	patterns := make([]string, 0)
	for _, pattern := range strings.Split(allowedOriginPatterns, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			patterns = append(patterns, pattern)
		}
	}

	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return originAllowed(patterns, origin), nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		ExposeHeaders: []string{
			echo.HeaderLocation,
			echo.HeaderXRequestID,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			echo.HeaderRetryAfter,
		},
		MaxAge: 3600,
	})
}

func originAllowed(patterns []string, origin string) bool {
	for _, pattern := range patterns {
		if pattern == "*" || strings.EqualFold(pattern, origin) {
			return true
		}
		if matched, err := path.Match(strings.ToLower(pattern), strings.ToLower(origin)); err == nil && matched {
			return true
		}
	}
	return false
}
