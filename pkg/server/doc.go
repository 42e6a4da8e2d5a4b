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

// Package server provides HTTP middleware for relying parties that accept
// DID Auth response tokens as bearer credentials.
//
// # Usage
//
//	v := verifier.NewDefaultDIDAuthVerifier()
//	middleware := server.NewDIDAuthMiddleware(v, verifier.VerifyOptions{
//	    Resolution: &resolver.Config{ResolverURL: resolverURL},
//	})
//	middleware.SetNonceBinder(func(r *http.Request) string {
//	    return sessionNonce(r)
//	})
//
//	http.Handle("/api/", middleware.Wrap(apiHandler))
//
// Handlers behind the middleware read the verified issuer identity from the
// request context:
//
//	issuer, ok := server.GetIssuerDIDFromContext(r.Context())
//
// With SetOptional(true), requests without a bearer token pass through and
// the context carries no issuer DID.
package server
