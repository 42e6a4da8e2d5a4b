// Copyright (C) 2026 DID Auth OIDC SIOP Project
//
// This file is part of did-auth-oidc-siop.
//
// did-auth-oidc-siop is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// did-auth-oidc-siop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with did-auth-oidc-siop.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Volland/did-auth-oidc-siop/pkg/resolver"
	"github.com/Volland/did-auth-oidc-siop/pkg/siop"
)

// DefaultDIDAuthVerifier sequences the verification pipeline in one fixed
// order: parameter validation, parsing, resolution, method selection,
// signature verification, claim checks. The first failing stage rejects the
// token; no later stage runs after a failure.
type DefaultDIDAuthVerifier struct {
	httpClient   *http.Client
	registryOpts []resolver.Option
}

// Option configures a DefaultDIDAuthVerifier.
type Option func(*DefaultDIDAuthVerifier)

// WithHTTPClient overrides the HTTP client used for resolver lookups and
// remote verification requests.
func WithHTTPClient(c *http.Client) Option {
	return func(v *DefaultDIDAuthVerifier) {
		if c != nil {
			v.httpClient = c
		}
	}
}

// WithRegistryOptions passes extra options to the per-call resolver registry.
func WithRegistryOptions(opts ...resolver.Option) Option {
	return func(v *DefaultDIDAuthVerifier) {
		v.registryOpts = append(v.registryOpts, opts...)
	}
}

// NewDefaultDIDAuthVerifier creates a verifier with default options.
func NewDefaultDIDAuthVerifier(opts ...Option) *DefaultDIDAuthVerifier {
	v := &DefaultDIDAuthVerifier{
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyAuthResponse verifies a compact DID Auth response token end to end
// and returns the verified issuer identity.
func (v *DefaultDIDAuthVerifier) VerifyAuthResponse(ctx context.Context, token string, opts *VerifyOptions) (*VerificationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrBadParameters)
	}
	strat, err := opts.strategy()
	if err != nil {
		return nil, err
	}

	tok, err := siop.ParseResponseToken(token)
	if err != nil {
		return nil, err
	}
	issuer, err := tok.IssuerDID()
	if err != nil {
		return nil, err
	}

	result := &VerificationResult{DID: issuer, Claims: tok.Claims}

	switch strat {
	case strategyRemote:
		remote := NewRemoteVerifier(opts.VerifyURI, opts.AuthZToken, v.httpClient)
		if err := remote.VerifyAuthResponse(ctx, token); err != nil {
			return nil, err
		}
	case strategyLocal:
		registryOpts := append([]resolver.Option{resolver.WithHTTPClient(v.httpClient)}, v.registryOpts...)
		registry := resolver.NewRegistry(*opts.Resolution, registryOpts...)

		doc, err := registry.Resolve(ctx, issuer)
		if err != nil {
			return nil, err
		}
		vm, err := SelectVerificationMethod(doc, tok.Header.Kid)
		if err != nil {
			return nil, err
		}
		if vm == nil {
			return nil, fmt.Errorf("%w: kid %q", ErrVerificationMethodNotFound, tok.Header.Kid)
		}
		ok, err := VerifySignature(tok, vm)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSignatureVerification, tok.Header.Alg)
		}
		result.Document = doc
	}

	// Claim checks close the pipeline.
	if _, err := tok.Audience(); err != nil {
		return nil, err
	}
	if err := tok.ValidateNonce(opts.Nonce); err != nil {
		return nil, err
	}
	return result, nil
}
