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

// Package did models decentralized identifiers and the DID Document subset
// needed for DID Auth verification.
//
// # DIDs
//
// Parse validates the did:<method>:<id> shape and exposes the method as a
// tagged value so callers dispatch on did.Method instead of comparing raw
// strings:
//
//	d, err := did.Parse("did:ethr:0x1234...")
//	switch d.Method() {
//	case did.MethodKey:
//	    // self-contained, resolve locally
//	case did.MethodEthr:
//	    // ERC-1056 registry
//	default:
//	    // universal resolver
//	}
//
// # Key material
//
// A verification method carries its public key as publicKeyJwk,
// publicKeyBase58, or an account address binding. KeyMaterial normalizes
// whichever encoding is present and tags it explicitly, so downstream
// signature routines never guess the format from string content.
package did
