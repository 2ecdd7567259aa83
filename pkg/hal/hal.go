// Package hal builds HAL (Hypertext Application Language) documents with absolute links.
package hal

import (
	"fmt"
	"net/http"
	"strings"
)

// MediaType is the content type of every HAL document
const MediaType = "application/hal+json"

// Link is a single HAL link object
type Link struct {
	Href string `json:"href"`
}

// Links maps relation names to links
type Links map[string]Link

// Linker resolves application paths against the URL the client used to reach the API.
type Linker struct {
	base string
}

// NewLinker creates a Linker for scheme://host followed by contextPath.
func NewLinker(scheme, host, contextPath string) Linker {
	return Linker{base: scheme + "://" + host + normalizeContextPath(contextPath)}
}

// FromRequest creates a Linker for the incoming request. X-Forwarded-Proto and
// X-Forwarded-Host are honored when the API runs behind a proxy.
func FromRequest(r *http.Request, contextPath string) Linker {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	return NewLinker(scheme, host, contextPath)
}

// Href returns the absolute URL of the formatted path
func (l Linker) Href(format string, args ...any) string {
	path := fmt.Sprintf(format, args...)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.base + path
}

// Link returns a Link to the formatted path
func (l Linker) Link(format string, args ...any) Link {
	return Link{Href: l.Href(format, args...)}
}

// Base returns the absolute root of the API
func (l Linker) Base() string {
	return l.base
}

func normalizeContextPath(contextPath string) string {
	contextPath = strings.TrimSpace(contextPath)
	if contextPath == "" || contextPath == "/" {
		return ""
	}
	if !strings.HasPrefix(contextPath, "/") {
		contextPath = "/" + contextPath
	}
	return strings.TrimRight(contextPath, "/")
}
