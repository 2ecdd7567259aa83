package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/entity"
	"todolist-api/internal/domain/model"
	"todolist-api/pkg/oidc"
	"todolist-api/pkg/redis"
)

type fakeVerifier map[string]*oidc.Claims

func (f fakeVerifier) Verify(_ context.Context, raw string) (*oidc.Claims, error) {
	if raw == "unavailable" {
		return nil, errors.New("connection refused")
	}
	claims, ok := f[raw]
	if !ok {
		return nil, fmt.Errorf("%w: signature is invalid", oidc.ErrInvalidToken)
	}
	return claims, nil
}

type fakeUserUseCase struct {
	claims []model.UserClaims
	err    error
}

func (f *fakeUserUseCase) GetUser(_ context.Context, claims model.UserClaims) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.claims = append(f.claims, claims)
	return &entity.User{ID: 7, Username: claims.GivenName, Email: claims.Email}, nil
}

func (f *fakeUserUseCase) Delete(context.Context, string) error { return nil }

func newAuthServer(users *fakeUserUseCase) *echo.Echo {
	verifier := fakeVerifier{
		"good": {
			RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"},
			Email:            "ana@example.com",
			GivenName:        "Ana",
		},
		"no-email": {RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-2"}},
	}

	e := echo.New()
	e.Use(Authentication(verifier, users, PublicPathSkipper("/api")))
	handler := func(c echo.Context) error {
		if current, ok := CurrentUser(c); ok {
			return c.String(http.StatusOK, current.Email)
		}
		return c.String(http.StatusOK, "anonymous")
	}
	api := e.Group("/api")
	api.GET("/tasks", handler)
	api.GET("/health", handler)
	api.GET("/", handler)
	return e
}

func serve(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{name: "valid token", target: "/api/tasks", authorization: "Bearer good", wantStatus: http.StatusOK, wantBody: "ana@example.com"},
		{name: "lower case scheme", target: "/api/tasks", authorization: "bearer good", wantStatus: http.StatusOK, wantBody: "ana@example.com"},
		{name: "missing token", target: "/api/tasks", wantStatus: http.StatusUnauthorized, wantBody: "Missing bearer token"},
		{name: "basic scheme", target: "/api/tasks", authorization: "Basic YW5hOnB3", wantStatus: http.StatusUnauthorized, wantBody: "Missing bearer token"},
		{name: "invalid token", target: "/api/tasks", authorization: "Bearer forged", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "provider unavailable", target: "/api/tasks", authorization: "Bearer unavailable", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "missing email", target: "/api/tasks", authorization: "Bearer no-email", wantStatus: http.StatusUnauthorized, wantBody: "Token does not carry an email claim"},
		{name: "public health", target: "/api/health", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "public root", target: "/api/", wantStatus: http.StatusOK, wantBody: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newAuthServer(&fakeUserUseCase{}), tt.target, tt.authorization)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK && rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
					t.Error("expected a WWW-Authenticate header")
				}
				if !containsJSONError(rec, tt.wantBody) {
					t.Errorf("expected error %q, got %s", tt.wantBody, rec.Body.String())
				}
			}
		})
	}
}

func containsJSONError(rec *httptest.ResponseRecorder, message string) bool {
	return rec.Body.String() == fmt.Sprintf("{\"error\":%q}\n", message)
}

func TestAuthenticationMapsClaims(t *testing.T) {
	users := &fakeUserUseCase{}
	serve(newAuthServer(users), "/api/tasks", "Bearer good")

	if len(users.claims) != 1 {
		t.Fatalf("expected one lookup, got %d", len(users.claims))
	}
	want := model.UserClaims{Subject: "sub-1", Email: "ana@example.com", GivenName: "Ana"}
	if users.claims[0] != want {
		t.Errorf("expected %+v, got %+v", want, users.claims[0])
	}
}

func TestAuthenticationUserLookupFailure(t *testing.T) {
	rec := serve(newAuthServer(&fakeUserUseCase{err: errors.New("database down")}), "/api/tasks", "Bearer good")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestPublicPathSkipper(t *testing.T) {
	skipper := PublicPathSkipper("/api/")
	e := echo.New()

	for path, want := range map[string]bool{
		"/api":                    true,
		"/api/":                   true,
		"/api/health":             true,
		"/api/swagger/index.html": true,
		"/api/tasks":              false,
		"/api/user":               false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		if got := skipper(c); got != want {
			t.Errorf("skipper(%s) = %v, want %v", path, got, want)
		}
	}
}

type fakeLimiter struct {
	keys   []string
	result redis.RateLimitResult
	err    error
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (redis.RateLimitResult, error) {
	f.keys = append(f.keys, key)
	return f.result, f.err
}

func newRateLimitedServer(limiter Limiter, user *entity.User) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user != nil {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	})
	e.Use(RateLimit(limiter, nil))
	e.GET("/tasks", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func TestRateLimit(t *testing.T) {
	limiter := &fakeLimiter{result: redis.RateLimitResult{Allowed: true, Limit: 60, Remaining: 59, ResetIn: 30 * time.Second}}
	rec := serve(newRateLimitedServer(limiter, &entity.User{ID: 7}), "/tasks", "")

	if rec.Code != http.StatusOK || rec.Header().Get("X-RateLimit-Remaining") != "59" {
		t.Errorf("expected an allowed request, got %d %v", rec.Code, rec.Header())
	}
	if limiter.keys[0] != "user:7" {
		t.Errorf("expected the user key, got %s", limiter.keys[0])
	}

	limiter.result = redis.RateLimitResult{Allowed: false, Limit: 60, ResetIn: 1500 * time.Millisecond}
	rec = serve(newRateLimitedServer(limiter, nil), "/tasks", "")
	if rec.Code != http.StatusTooManyRequests || rec.Header().Get(echo.HeaderRetryAfter) != "2" {
		t.Errorf("expected 429 with Retry-After 2, got %d %v", rec.Code, rec.Header())
	}
	if limiter.keys[1] != "ip:192.0.2.1" {
		t.Errorf("expected the client IP key, got %s", limiter.keys[1])
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	rec := serve(newRateLimitedServer(&fakeLimiter{err: errors.New("redis down")}, nil), "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected the request to pass, got %d", rec.Code)
	}
}

type countingVerifier struct {
	TokenVerifier
	calls int
}

func (v *countingVerifier) Verify(ctx context.Context, raw string) (*oidc.Claims, error) {
	v.calls++
	return v.TokenVerifier.Verify(ctx, raw)
}

func newAccessControlledServer(config AccessControl) *echo.Echo {
	e := echo.New()
	SetupAccessControl(e, config)
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	api := e.Group("/api")
	api.GET("/tasks", handler)
	api.GET("/health", handler)
	return e
}

func TestAccessControlLimitsBadTokensBeforeVerification(t *testing.T) {
	verifier := &countingVerifier{TokenVerifier: fakeVerifier{}}
	ipLimiter := &fakeLimiter{result: redis.RateLimitResult{Allowed: false, Limit: 10, ResetIn: time.Second}}
	e := newAccessControlledServer(AccessControl{
		Verifier:    verifier,
		Users:       &fakeUserUseCase{},
		ContextPath: "/api",
		IPLimiter:   ipLimiter,
	})

	for i := 0; i < 3; i++ {
		rec := serve(e, "/api/tasks", "Bearer forged")
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
	}
	if verifier.calls != 0 {
		t.Errorf("expected no token verification, got %d", verifier.calls)
	}
	if len(ipLimiter.keys) != 3 || ipLimiter.keys[0] != "ip:192.0.2.1" {
		t.Errorf("unexpected limiter keys %v", ipLimiter.keys)
	}

	if rec := serve(e, "/api/health", ""); rec.Code != http.StatusOK {
		t.Errorf("expected public path to pass, got %d", rec.Code)
	}
	if len(ipLimiter.keys) != 3 {
		t.Errorf("expected public path to skip the limiter, got %v", ipLimiter.keys)
	}
}

func TestAccessControlKeysUserLimiterByUser(t *testing.T) {
	allowed := redis.RateLimitResult{Allowed: true, Limit: 60, Remaining: 59, ResetIn: time.Minute}
	ipLimiter := &fakeLimiter{result: allowed}
	userLimiter := &fakeLimiter{result: allowed}
	e := newAccessControlledServer(AccessControl{
		Verifier: fakeVerifier{"good": {
			RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"},
			Email:            "ana@example.com",
		}},
		Users:       &fakeUserUseCase{},
		ContextPath: "/api",
		IPLimiter:   ipLimiter,
		UserLimiter: userLimiter,
	})

	if rec := serve(e, "/api/tasks", "Bearer good"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(ipLimiter.keys) != 1 || ipLimiter.keys[0] != "ip:192.0.2.1" {
		t.Errorf("unexpected ip limiter keys %v", ipLimiter.keys)
	}
	if len(userLimiter.keys) != 1 || userLimiter.keys[0] != "user:7" {
		t.Errorf("unexpected user limiter keys %v", userLimiter.keys)
	}

	if rec := serve(e, "/api/tasks", "Bearer forged"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(userLimiter.keys) != 1 {
		t.Errorf("expected rejected tokens to stop before the user limiter, got %v", userLimiter.keys)
	}
}

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"http://localhost:*", "https://*.example.com"}

	for origin, want := range map[string]bool{
		"http://localhost:3000":       true,
		"https://app.example.com":     true,
		"https://APP.example.com":     true,
		"https://example.com":         false,
		"https://evil.com":            false,
		"https://a.b.example.com.evil": false,
	} {
		if got := originAllowed(patterns, origin); got != want {
			t.Errorf("originAllowed(%s) = %v, want %v", origin, got, want)
		}
	}
	if !originAllowed([]string{"*"}, "https://anything.test") {
		t.Error("expected * to allow every origin")
	}
}

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(CORS("https://*.example.com"))
	e.GET("/tasks", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://app.example.com" {
		t.Errorf("unexpected allowed origin %q", got)
	}
}

func TestCORSNeverAllowsCredentials(t *testing.T) {
	e := echo.New()
	e.Use(CORS("*"))
	e.GET("/tasks", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.test")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowCredentials); got != "" {
		t.Errorf("expected no credentials header, got %q", got)
	}
}
