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

// Package resolver dispatches DID resolution to method-aware strategies.
//
// A Registry is built per verification call from explicit configuration:
//
//	registry := resolver.NewRegistry(resolver.Config{
//	    ResolverURL:     "https://uniresolver.example.com/1.0/identifiers",
//	    RegistryAddress: "0xdca7ef03e98e0dc2b855be647c39abe984fcf21b",
//	    RPCURL:          "https://mainnet.infura.io/v3/...",
//	})
//	doc, err := registry.Resolve(ctx, issuerDID)
//
// Three strategies exist:
//
//   - did:key resolves locally; the identifier itself encodes the public key
//     (multibase base58btc with a multicodec prefix).
//   - Every other method is first looked up on the HTTP resolver endpoint
//     with a transform-keys=jwks hint.
//   - When the endpoint is unreachable or returns nothing usable, did:ethr
//     DIDs fall back to an ERC-1056 identityOwner query on the configured
//     registry contract, on the network named by the DID's extra segments
//     (none means mainnet).
//
// The two-tier fallback tries the cheaper path first and only pays for a
// chain query when necessary. Nothing is retried; a failed resolution is
// terminal for the verification call that requested it.
package resolver
