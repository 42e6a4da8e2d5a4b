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

// Package siop decomposes Self-Issued OpenID Connect (SIOP) DID Auth
// response tokens and validates their claims.
//
// ParseResponseToken splits a compact token into header, claims, signing
// input, and raw signature bytes:
//
//	tok, err := siop.ParseResponseToken(raw)
//	if err != nil {
//	    // structurally broken token, nothing else runs
//	}
//	issuer, err := tok.IssuerDID()
//
// Self-issued tokens (iss == "self_issued") carry the subject DID under the
// did claim; IssuerDID handles both conventions. Audience arrays are rejected
// outright, and nonce checks are exact string equality.
package siop
