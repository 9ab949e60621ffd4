// Package identity verifies bearer tokens issued by the external identity
// provider against its published JWKS.
package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"dominant_assurance/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sasha-s/go-deadlock"
)

var ErrNoUsableKeys = errors.New("no usable RSA keys in JWKS")

// JWKSVerifier validates RS256 tokens. Keys are cached per kid and refreshed
// when the cache expires or an unknown kid shows up.
type JWKSVerifier struct {
	jwksURL    string
	audience   string
	issuer     string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu       deadlock.RWMutex
	expires  time.Time
	keyByKID map[string]*rsa.PublicKey
}

var _ interfaces.IIdentityVerifier = (*JWKSVerifier)(nil)

func NewJWKSVerifier(jwksURL, audience, issuer string) *JWKSVerifier {
	return &JWKSVerifier{
		jwksURL:    strings.TrimSpace(jwksURL),
		audience:   strings.TrimSpace(audience),
		issuer:     strings.TrimSpace(issuer),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cacheTTL:   10 * time.Minute,
		keyByKID:   map[string]*rsa.PublicKey{},
	}
}

func (v *JWKSVerifier) VerifyToken(ctx context.Context, tokenString string) (interfaces.Principal, bool, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"}), jwt.WithLeeway(30 * time.Second)}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var fetchErr error
	claims := jwt.RegisteredClaims{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || strings.TrimSpace(kid) == "" {
			return nil, errors.New("missing kid in token")
		}
		key, err := v.publicKey(ctx, kid)
		if err != nil && !errors.Is(err, errUnknownKID) {
			fetchErr = err
		}
		return key, err
	})
	if fetchErr != nil {
		log.Printf("[identity][jwks] key fetch failed url=%s err=%v", v.jwksURL, fetchErr)
		return interfaces.Principal{}, false, fetchErr
	}
	if err != nil || !token.Valid {
		return interfaces.Principal{}, false, nil
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return interfaces.Principal{}, false, nil
	}
	return interfaces.Principal{UserID: sub}, true, nil
}

var errUnknownKID = errors.New("unknown kid")

func (v *JWKSVerifier) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key := v.cachedKey(kid); key != nil {
		return key, nil
	}
	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}
	if key := v.cachedKey(kid); key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("%w %s", errUnknownKID, kid)
}

func (v *JWKSVerifier) cachedKey(kid string) *rsa.PublicKey {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if time.Now().After(v.expires) {
		return nil
	}
	return v.keyByKID[kid]
}

func (v *JWKSVerifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		Keys []struct {
			Kid string `json:"kid"`
			Kty string `json:"kty"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}

	keys := map[string]*rsa.PublicKey{}
	for _, key := range payload.Keys {
		if key.Kid == "" || key.Kty != "RSA" || key.N == "" || key.E == "" {
			continue
		}
		pub, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		keys[key.Kid] = pub
	}
	if len(keys) == 0 {
		return ErrNoUsableKeys
	}

	v.mu.Lock()
	v.keyByKID = keys
	v.expires = time.Now().Add(v.cacheTTL)
	v.mu.Unlock()
	return nil
}

func parseRSAPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	var exp uint64
	for _, b := range eb {
		exp = exp<<8 | uint64(b)
	}
	if exp == 0 {
		return nil, errors.New("invalid exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: int(exp)}, nil
}
