package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Volland/did-auth-oidc-siop/pkg/verifier"
)

type contextKey string

const issuerDIDKey contextKey = "issuer_did"

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// NonceBinder supplies the expected nonce for a request, typically looked up
// from the session that issued the matching auth request. When nil, the
// middleware uses the nonce from its base options.
type NonceBinder func(r *http.Request) string

// DIDAuthMiddleware authenticates incoming requests that carry a DID Auth
// response token as a bearer credential.
type DIDAuthMiddleware struct {
	verifier     verifier.DIDAuthVerifier
	options      verifier.VerifyOptions
	nonceBinder  NonceBinder
	errorHandler ErrorHandler
	optional     bool
}

// NewDIDAuthMiddleware creates middleware around the given verifier and base
// verification options.
func NewDIDAuthMiddleware(didVerifier verifier.DIDAuthVerifier, options verifier.VerifyOptions) *DIDAuthMiddleware {
	return &DIDAuthMiddleware{
		verifier:     didVerifier,
		options:      options,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler
func (m *DIDAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetNonceBinder sets a per-request nonce lookup
func (m *DIDAuthMiddleware) SetNonceBinder(binder NonceBinder) {
	m.nonceBinder = binder
}

// SetOptional sets whether authentication is optional
// If true, requests without a bearer token are allowed to pass through
func (m *DIDAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with DID Auth token verification
func (m *DIDAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing bearer token"))
			return
		}

		opts := m.options
		if m.nonceBinder != nil {
			opts.Nonce = m.nonceBinder(r)
		}

		result, err := m.verifier.VerifyAuthResponse(r.Context(), token, &opts)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("token verification failed: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), issuerDIDKey, result.DID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIssuerDIDFromContext extracts the verified issuer DID from the request
// context
func GetIssuerDIDFromContext(ctx context.Context) (string, bool) {
	issuer, ok := ctx.Value(issuerDIDKey).(string)
	return issuer, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return auth[len(prefix):]
	}
	return ""
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
