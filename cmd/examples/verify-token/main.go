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

package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"

	"github.com/Volland/did-auth-oidc-siop/pkg/resolver"
	"github.com/Volland/did-auth-oidc-siop/pkg/signer"
	"github.com/Volland/did-auth-oidc-siop/pkg/siop"
	"github.com/Volland/did-auth-oidc-siop/pkg/verifier"
)

func main() {
	fmt.Println("DID Auth OIDC SIOP - Verify Token Example")
	fmt.Println("=========================================")

	ctx := context.Background()

	// Generate a holder key pair and derive its did:key identifier.
	fmt.Println("\n1. Generating holder key pair...")
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}
	holderDID, keyID, err := keyDID(pub)
	if err != nil {
		log.Fatalf("Failed to derive did:key: %v", err)
	}
	fmt.Printf("   Holder DID: %s\n", holderDID)

	// Build a self-issued response token.
	fmt.Println("\n2. Creating self-issued response token...")
	nonce := "n-0S6_WzA2Mj"
	now := time.Now()
	token, err := signer.CreateResponseToken(jwt.MapClaims{
		"iss":   siop.IssuerSelfIssued,
		"did":   holderDID,
		"aud":   "https://rp.example.com/demo",
		"nonce": nonce,
		"iat":   now.Unix(),
		"exp":   now.Add(5 * time.Minute).Unix(),
	}, priv, &signer.SigningOptions{
		Algorithm: siop.AlgEdDSA,
		Kid:       keyID,
	})
	if err != nil {
		log.Fatalf("Failed to create token: %v", err)
	}
	fmt.Printf("   Token: %.60s...\n", token)

	// Verify it. did:key resolves locally; the resolver URL only anchors the
	// configuration for other methods.
	fmt.Println("\n3. Verifying response token...")
	v := verifier.NewDefaultDIDAuthVerifier()
	result, err := v.VerifyAuthResponse(ctx, token, &verifier.VerifyOptions{
		Nonce: nonce,
		Resolution: &resolver.Config{
			ResolverURL: "https://dev.uniresolver.io/1.0/identifiers",
		},
	})
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	fmt.Printf("   Verified issuer: %s\n", result.DID)
	fmt.Printf("   Verification methods: %d\n", len(result.Document.VerificationMethod))
	fmt.Println("\nDone.")
}

// keyDID encodes an Ed25519 public key as a did:key identifier and returns
// the DID together with its verification method id.
func keyDID(pub ed25519.PublicKey) (string, string, error) {
	data := append(varint.ToUvarint(0xed), pub...)
	id, err := multibase.Encode(multibase.Base58BTC, data)
	if err != nil {
		return "", "", err
	}
	d := "did:key:" + id
	return d, d + "#" + id, nil
}
