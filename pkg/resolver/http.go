package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	didauth "github.com/Volland/did-auth-oidc-siop"
	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

// resolveHTTP looks the DID up on the configured resolver endpoint with a
// key-transform hint so returned verification methods carry JWKs.
func (r *Registry) resolveHTTP(ctx context.Context, d *did.DID) (*did.Document, error) {
	target := strings.TrimSuffix(r.cfg.ResolverURL, "/") + "/" + d.String() + ";transform-keys=jwks"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build resolver request: %w", err)
	}
	req.Header.Set("Accept", "application/did+json")
	req.Header.Set("User-Agent", didauth.UserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if r.probe(ctx, d) {
			return nil, fmt.Errorf("resolver lookup failed: %w", err)
		}
		return nil, fmt.Errorf("resolver unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("resolver returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var doc did.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode resolver response: %w", err)
	}
	if len(doc.VerificationMethod) == 0 {
		return nil, fmt.Errorf("resolver returned no usable configuration for %s", d)
	}
	return &doc, nil
}

// probe issues a plain lookup without the transform hint. It only
// distinguishes "endpoint up but lookup failed" from "endpoint down" in the
// error the caller reports before paying for a chain query.
func (r *Registry) probe(ctx context.Context, d *did.DID) bool {
	target := strings.TrimSuffix(r.cfg.ResolverURL, "/") + "/" + d.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", didauth.UserAgent)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
