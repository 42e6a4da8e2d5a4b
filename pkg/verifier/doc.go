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

// Package verifier ties token parsing, DID resolution, verification method
// selection, and signature verification into one DID Auth verdict.
//
// # Verification
//
// The DIDAuthVerifier runs the pipeline in a fixed order — parameter
// validation, parsing, resolution, method selection, signature verification,
// claim checks — and rejects on the first failing stage:
//
//	v := verifier.NewDefaultDIDAuthVerifier()
//	result, err := v.VerifyAuthResponse(ctx, token, &verifier.VerifyOptions{
//	    Nonce: expectedNonce,
//	    Resolution: &resolver.Config{
//	        ResolverURL: "https://uniresolver.example.com/1.0/identifiers",
//	    },
//	})
//	if err != nil {
//	    // typed rejection, see errors.go
//	}
//	log.Println("verified issuer:", result.DID)
//
// # Strategies
//
// Which of the two verification paths runs is decided once at call entry by
// the populated option fields:
//
//   - VerifyURI set: the token is POSTed to an external verification service
//     with a bearer token; resolution and method selection are skipped.
//   - Resolution set: the issuer DID is resolved and the signature is checked
//     locally.
//
// # Algorithms
//
// Signature verification dispatches on the token's alg header: EdDSA
// (Ed25519), ES256K (secp256k1 over SHA-256), and the legacy recoverable
// ES256K-R raw encoding, which can also verify against methods that bind
// only an account address. Any other algorithm is reported as not verified
// rather than as an internal error.
//
// # Error Handling
//
// Every rejection carries one of the sentinel errors in errors.go (or one
// from pkg/siop, pkg/did, pkg/resolver), suitable for mapping onto a
// relying-party decision. Nothing is retried, and no stage substitutes a
// generic error for a more specific one.
package verifier
