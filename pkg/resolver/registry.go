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

package resolver

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

var (
	// ErrMissingResolutionConfig is returned when a DID needs network
	// resolution but neither an HTTP resolver endpoint nor a complete
	// registry+RPC pair is configured.
	ErrMissingResolutionConfig = errors.New("missing internal verification configuration")

	// ErrResolution is returned when every configured resolution strategy
	// has been exhausted without producing a document.
	ErrResolution = errors.New("error retrieving DID document")
)

// DefaultNetwork is the network assumed for chain-based DIDs that carry no
// network segment.
const DefaultNetwork = "mainnet"

// Config supplies the resolution strategies available to a Registry: an HTTP
// resolver endpoint, an ERC-1056 registry contract + RPC endpoint for chain
// fallback, or both. did:key needs neither.
type Config struct {
	// ResolverURL is the base URL of a universal resolver endpoint.
	ResolverURL string

	// RegistryAddress is the ERC-1056 registry contract address used for
	// chain fallback resolution.
	RegistryAddress string

	// RPCURL is the JSON-RPC endpoint the registry contract is queried over.
	RPCURL string

	// Network overrides DefaultNetwork for DIDs without a network segment.
	Network string
}

func (c Config) defaultNetwork() string {
	if c.Network != "" {
		return c.Network
	}
	return DefaultNetwork
}

func (c Config) hasRegistry() bool {
	return c.RegistryAddress != "" && c.RPCURL != ""
}

// ContractCaller is the slice of the Ethereum client used for registry
// lookups. *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Registry dispatches DID resolution to the strategy the DID's method
// implies. It is built per verification call from explicit configuration and
// holds no global state.
type Registry struct {
	cfg        Config
	httpClient *http.Client
	caller     ContractCaller
}

// Option configures a Registry.
type Option func(*Registry)

// WithHTTPClient overrides the HTTP client used for resolver requests.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Registry) {
		if c != nil {
			r.httpClient = c
		}
	}
}

// WithContractCaller overrides the Ethereum client used for registry
// lookups. When unset, the registry dials Config.RPCURL per call.
func WithContractCaller(caller ContractCaller) Option {
	return func(r *Registry) {
		r.caller = caller
	}
}

// NewRegistry creates a Registry for the given configuration.
func NewRegistry(cfg Config, opts ...Option) *Registry {
	r := &Registry{
		cfg:        cfg,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces the DID Document for the given DID.
//
// did:key is resolved locally from the identifier itself. Every other method
// is looked up through the HTTP resolver endpoint first; if that endpoint is
// unreachable or returns no usable document, resolution falls back to the
// on-chain registry for the network the DID names.
func (r *Registry) Resolve(ctx context.Context, didStr string) (*did.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	d, err := did.Parse(didStr)
	if err != nil {
		return nil, err
	}

	if d.Method() == did.MethodKey {
		return ResolveKeyDID(d)
	}

	var httpErr error
	if r.cfg.ResolverURL != "" {
		doc, err := r.resolveHTTP(ctx, d)
		if err == nil {
			return doc, nil
		}
		httpErr = err
	}

	if !r.cfg.hasRegistry() {
		if httpErr == nil {
			return nil, ErrMissingResolutionConfig
		}
		return nil, fmt.Errorf("%w: %v", ErrResolution, httpErr)
	}

	doc, err := r.resolveRegistry(ctx, d)
	if err != nil {
		if httpErr != nil {
			return nil, fmt.Errorf("%w: resolver: %v; registry: %v", ErrResolution, httpErr, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrResolution, err)
	}
	return doc, nil
}
