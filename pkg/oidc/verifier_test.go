package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpclient "todolist-api/pkg/http"
)

type provider struct {
	server    *httptest.Server
	mu        sync.Mutex
	keys      map[string]signingKey
	jwksCalls atomic.Int32
	jwksDown  atomic.Bool
}

type signingKey struct {
	alg string
	key *rsa.PrivateKey
}

func newProvider(t *testing.T) *provider {
	t.Helper()
	p := &provider{keys: make(map[string]signingKey)}
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/todolist/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"issuer":   p.issuer(),
			"jwks_uri": p.server.URL + "/realms/todolist/certs",
		})
	})
	mux.HandleFunc("/realms/todolist/certs", func(w http.ResponseWriter, r *http.Request) {
		p.jwksCalls.Add(1)
		if p.jwksDown.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		keys := make([]map[string]string, 0, len(p.keys))
		for kid, signing := range p.keys {
			keys = append(keys, map[string]string{
				"kty": "RSA",
				"kid": kid,
				"use": "sig",
				"alg": signing.alg,
				"n":   base64.RawURLEncoding.EncodeToString(signing.key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(signing.key.E)).Bytes()),
			})
		}
		w.Header().Set("Content-Type", "application/jwk-set+json")
		_ = json.NewEncoder(w).Encode(map[string]any{"keys": keys})
	})
	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *provider) issuer() string {
	return p.server.URL + "/realms/todolist"
}

func (p *provider) addKey(t *testing.T, kid string, method jwt.SigningMethod) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	p.mu.Lock()
	p.keys[kid] = signingKey{alg: method.Alg(), key: key}
	p.mu.Unlock()
	return key
}

func sign(t *testing.T, method jwt.SigningMethod, kid string, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	raw, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func validClaims(issuer string) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "2f9d3c1e",
			Audience:  jwt.ClaimStrings{"todolist-api"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
		},
		Email:             "jane@example.com",
		GivenName:         "Jane",
		PreferredUsername: "jane",
	}
}

func newVerifier(t *testing.T, p *provider) *Verifier {
	t.Helper()
	verifier := NewVerifier(Config{
		IssuerURL:       p.issuer(),
		ClientID:        "todolist-api",
		Leeway:          5 * time.Second,
		RefreshInterval: time.Minute,
	}, httpclient.NewHttpClient("", httpclient.ClientOptions{}))
	t.Cleanup(verifier.Close)
	return verifier
}

func TestVerifyValidToken(t *testing.T) {
	p := newProvider(t)
	methods := []jwt.SigningMethod{jwt.SigningMethodRS256, jwt.SigningMethodRS384, jwt.SigningMethodRS512}
	keys := make(map[string]*rsa.PrivateKey, len(methods))
	for _, method := range methods {
		keys[method.Alg()] = p.addKey(t, method.Alg(), method)
	}
	verifier := newVerifier(t, p)

	for _, method := range methods {
		t.Run(method.Alg(), func(t *testing.T) {
			claims, err := verifier.Verify(context.Background(), sign(t, method, method.Alg(), keys[method.Alg()], validClaims(p.issuer())))
			if err != nil {
				t.Fatalf("Verify returned error: %v", err)
			}
			if claims.Email != "jane@example.com" || claims.GivenName != "Jane" || claims.Subject != "2f9d3c1e" {
				t.Errorf("unexpected claims: %+v", claims)
			}
		})
	}

	if calls := p.jwksCalls.Load(); calls != 1 {
		t.Errorf("expected keys to be fetched once, got %d", calls)
	}
}

func TestVerifyRejectsInvalidTokens(t *testing.T) {
	p := newProvider(t)
	key := p.addKey(t, "k1", jwt.SigningMethodRS256)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	verifier := newVerifier(t, p)

	expired := validClaims(p.issuer())
	expired.IssuedAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims(p.issuer())
	wrongIssuer.Issuer = "https://evil.example.com"

	wrongAudience := validClaims(p.issuer())
	wrongAudience.Audience = jwt.ClaimStrings{"account"}

	noExpiry := validClaims(p.issuer())
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: sign(t, jwt.SigningMethodRS256, "k1", key, expired)},
		{name: "wrong issuer", token: sign(t, jwt.SigningMethodRS256, "k1", key, wrongIssuer)},
		{name: "wrong audience", token: sign(t, jwt.SigningMethodRS256, "k1", key, wrongAudience)},
		{name: "missing expiry", token: sign(t, jwt.SigningMethodRS256, "k1", key, noExpiry)},
		{name: "missing kid", token: sign(t, jwt.SigningMethodRS256, "", key, validClaims(p.issuer()))},
		{name: "algorithm does not match key", token: sign(t, jwt.SigningMethodRS512, "k1", key, validClaims(p.issuer()))},
		{name: "wrong key", token: sign(t, jwt.SigningMethodRS256, "k1", other, validClaims(p.issuer()))},
		{name: "hmac", token: func() string {
			raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(p.issuer())).SignedString([]byte("secret"))
			return raw
		}()},
		{name: "garbage", token: "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestVerifyAcceptsAuthorizedParty(t *testing.T) {
	p := newProvider(t)
	key := p.addKey(t, "k1", jwt.SigningMethodRS256)
	verifier := newVerifier(t, p)

	claims := validClaims(p.issuer())
	claims.Audience = jwt.ClaimStrings{"account"}
	claims.AuthorizedParty = "todolist-api"

	if _, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k1", key, claims)); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
}

func TestVerifyRefreshesKeysOnRotation(t *testing.T) {
	p := newProvider(t)
	key := p.addKey(t, "k1", jwt.SigningMethodRS256)
	verifier := newVerifier(t, p)

	if _, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k1", key, validClaims(p.issuer()))); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	rotated := p.addKey(t, "k2", jwt.SigningMethodRS256)
	if _, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k2", rotated, validClaims(p.issuer()))); err != nil {
		t.Fatalf("Verify after rotation returned error: %v", err)
	}
	if calls := p.jwksCalls.Load(); calls != 2 {
		t.Fatalf("expected a second key fetch, got %d", calls)
	}

	// unknown kids refresh at most once per RefreshInterval
	again := p.addKey(t, "k3", jwt.SigningMethodRS256)
	if _, err := verifier.Verify(context.Background(), sign(t, jwt.SigningMethodRS256, "k3", again, validClaims(p.issuer()))); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken within the refresh interval, got %v", err)
	}
	if calls := p.jwksCalls.Load(); calls != 2 {
		t.Errorf("expected no further key fetch, got %d", calls)
	}
}

func TestVerifyRecoversWhenKeysBecomeAvailable(t *testing.T) {
	p := newProvider(t)
	key := p.addKey(t, "k1", jwt.SigningMethodRS256)
	verifier := newVerifier(t, p)
	token := sign(t, jwt.SigningMethodRS256, "k1", key, validClaims(p.issuer()))

	p.jwksDown.Store(true)
	_, err := verifier.Verify(context.Background(), token)
	if err == nil || errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected a provider error, got %v", err)
	}

	p.jwksDown.Store(false)
	if _, err := verifier.Verify(context.Background(), token); err != nil {
		t.Fatalf("Verify after recovery returned error: %v", err)
	}
	if calls := p.jwksCalls.Load(); calls != 2 {
		t.Errorf("expected the keys to be fetched again, got %d", calls)
	}
}

func TestVerifyDiscoveryFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	verifier := NewVerifier(Config{IssuerURL: server.URL}, httpclient.NewHttpClient("", httpclient.ClientOptions{}))
	defer verifier.Close()
	_, err := verifier.Verify(context.Background(), "anything")
	if err == nil || errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected a discovery error, got %v", err)
	}
}
