// Package oidc verifies bearer tokens issued by an OpenID Connect provider.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	httpclient "todolist-api/pkg/http"
	"todolist-api/pkg/log"
)

// ErrInvalidToken wraps every reason a token is rejected
var ErrInvalidToken = errors.New("invalid token")

const (
	discoveryPath = "/.well-known/openid-configuration"
	jwksTimeout   = 10 * time.Second
)

// Config holds the provider settings.
type Config struct {
	IssuerURL string
	ClientID  string
	Leeway    time.Duration
	// RefreshInterval bounds how often an unknown kid may trigger a JWKS download.
	RefreshInterval time.Duration
	// ReloadInterval is the period of the background JWKS reload.
	ReloadInterval time.Duration
}

// Claims are the token claims the API relies on.
type Claims struct {
	jwt.RegisteredClaims
	Email             string `json:"email"`
	GivenName         string `json:"given_name"`
	PreferredUsername string `json:"preferred_username"`
	AuthorizedParty   string `json:"azp"`
}

type discoveryDocument struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

// Verifier validates RS256/RS384/RS512 signed tokens against the provider's JWKS.
// Discovery and the first key download happen on first use and are retried by
// later calls until they succeed.
type Verifier struct {
	config Config
	client *httpclient.Client
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mutex   sync.Mutex
	issuer  string
	keyfunc keyfunc.Keyfunc
}

// NewVerifier creates a verifier that fetches provider metadata through client.
func NewVerifier(config Config, client *httpclient.Client) *Verifier {
	config.IssuerURL = strings.TrimRight(config.IssuerURL, "/")
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = 5 * time.Minute
	}
	if config.ReloadInterval <= 0 {
		config.ReloadInterval = time.Hour
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Verifier{
		config: config,
		client: client,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Close stops the background JWKS reload.
func (v *Verifier) Close() {
	v.cancel()
}

// Verify parses and validates the raw token and returns its claims.
// Errors that are not ErrInvalidToken mean the provider could not be reached.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	issuer, keys, err := v.provider(ctx)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithIssuer(issuer),
		jwt.WithLeeway(v.config.Leeway),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	claims := &Claims{}
	if _, err = parser.ParseWithClaims(raw, claims, keys.KeyfuncCtx(ctx)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if v.config.ClientID != "" && !slices.Contains(claims.Audience, v.config.ClientID) && claims.AuthorizedParty != v.config.ClientID {
		return nil, fmt.Errorf("%w: audience %v does not include %s", ErrInvalidToken, []string(claims.Audience), v.config.ClientID)
	}

	return claims, nil
}

// provider returns the expected issuer and the key set. Nothing is cached until
// discovery and the first JWKS download both succeed.
func (v *Verifier) provider(ctx context.Context) (string, keyfunc.Keyfunc, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	if v.keyfunc != nil {
		return v.issuer, v.keyfunc, nil
	}

	document, err := v.discover(ctx)
	if err != nil {
		return "", nil, err
	}

	jwksURL, err := url.Parse(document.JWKSURI)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch jwks: %w", err)
	}

	storage, err := jwkset.NewStorageFromHTTP(jwksURL, jwkset.HTTPClientStorageOptions{
		Ctx:                v.ctx,
		HTTPExpectedStatus: http.StatusOK,
		HTTPMethod:         http.MethodGet,
		HTTPTimeout:        jwksTimeout,
		RefreshInterval:    v.config.ReloadInterval,
		RefreshErrorHandler: func(_ context.Context, err error) {
			log.Error("Fail to reload jwks", zap.String("url", document.JWKSURI), zap.Error(err))
		},
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch jwks: %w", err)
	}

	keySet, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
		HTTPURLs:          map[string]jwkset.Storage{document.JWKSURI: storage},
		RateLimitWaitMax:  time.Second,
		RefreshUnknownKID: rate.NewLimiter(rate.Every(v.config.RefreshInterval), 1),
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to create jwks client: %w", err)
	}

	keys, err := keyfunc.New(keyfunc.Options{
		Ctx:          v.ctx,
		Storage:      keySet,
		UseWhitelist: []jwkset.USE{jwkset.UseSig},
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to create keyfunc: %w", err)
	}

	v.issuer = document.Issuer
	v.keyfunc = keys
	return v.issuer, v.keyfunc, nil
}

func (v *Verifier) discover(ctx context.Context) (discoveryDocument, error) {
	var document discoveryDocument
	_, err := v.client.Request().
		WithContext(ctx).
		WithPath(v.config.IssuerURL + discoveryPath).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		WithSuccessResp(&document).
		Execute()
	if err != nil {
		return document, fmt.Errorf("failed to fetch openid configuration: %w", err)
	}
	if document.JWKSURI == "" {
		return document, errors.New("openid configuration has no jwks_uri")
	}
	if document.Issuer == "" {
		document.Issuer = v.config.IssuerURL
	}
	if strings.TrimRight(document.Issuer, "/") != v.config.IssuerURL {
		return document, fmt.Errorf("issuer %s does not match configured issuer %s", document.Issuer, v.config.IssuerURL)
	}
	return document, nil
}
