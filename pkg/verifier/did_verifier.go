package verifier

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
	"github.com/Volland/did-auth-oidc-siop/pkg/resolver"
)

// DIDAuthVerifier verifies SIOP DID Auth response tokens
type DIDAuthVerifier interface {
	// VerifyAuthResponse runs the full verification pipeline over a compact
	// response token and returns the verified issuer identity
	VerifyAuthResponse(ctx context.Context, token string, opts *VerifyOptions) (*VerificationResult, error)
}

// VerifyOptions configures a single verification call. Either VerifyURI
// (delegate signature checking to a remote service) or Resolution (resolve
// and check locally) must be populated; which one is set selects the
// strategy once at call entry.
type VerifyOptions struct {
	// Nonce is the expected nonce. Mandatory: a response token presented
	// without a matching request nonce is not acceptable.
	Nonce string

	// VerifyURI delegates verification to an external service.
	VerifyURI string

	// AuthZToken is the bearer token sent to VerifyURI.
	AuthZToken string

	// Resolution supplies resolver configuration for local verification.
	Resolution *resolver.Config
}

// VerificationResult surfaces the verified issuer identity on success.
type VerificationResult struct {
	// DID is the issuer DID the signature was verified against.
	DID string

	// Document is the resolved DID Document. Nil when verification was
	// delegated to a remote service.
	Document *did.Document

	// Claims is the token payload.
	Claims jwt.MapClaims
}

// strategy is the verification variant chosen once at call entry, not
// re-derived by branching through the pipeline.
type strategy int

const (
	strategyLocal strategy = iota
	strategyRemote
)

// strategy validates the options and picks the variant. It runs before any
// parsing, network, or crypto work.
func (o *VerifyOptions) strategy() (strategy, error) {
	if o == nil {
		return 0, fmt.Errorf("%w: missing verification options", ErrBadParameters)
	}
	if o.Nonce == "" {
		return 0, fmt.Errorf("%w: missing expected nonce", ErrBadParameters)
	}
	if o.VerifyURI != "" {
		return strategyRemote, nil
	}
	if o.Resolution != nil && (o.Resolution.ResolverURL != "" || (o.Resolution.RegistryAddress != "" && o.Resolution.RPCURL != "")) {
		return strategyLocal, nil
	}
	return 0, fmt.Errorf("%w: neither a verification service nor resolver configuration is set", ErrBadParameters)
}
