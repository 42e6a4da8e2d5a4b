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

package signer

import (
	"crypto"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Volland/did-auth-oidc-siop/pkg/siop"
)

var (
	// ErrUnsupportedAlgorithm is returned when asked to sign with an
	// algorithm outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

	// ErrWrongKeyType is returned when the private key does not match the
	// requested algorithm.
	ErrWrongKeyType = errors.New("private key does not match algorithm")
)

// SigningOptions selects the algorithm and key identifier for a response
// token.
type SigningOptions struct {
	Algorithm siop.Algorithm
	Kid       string
}

// CreateResponseToken builds and signs a compact DID Auth response token.
//
// The key type must match the algorithm: ed25519.PrivateKey for EdDSA,
// *secp256k1.PrivateKey for ES256K and ES256K-R. ES256K-R emits the raw
// 65-byte r||s||v layout the recoverable verifier expects.
func CreateResponseToken(claims jwt.MapClaims, key crypto.PrivateKey, opts *SigningOptions) (string, error) {
	if opts == nil {
		return "", fmt.Errorf("%w: missing signing options", ErrUnsupportedAlgorithm)
	}

	header := map[string]string{
		"alg": opts.Algorithm.String(),
		"typ": "JWT",
	}
	if opts.Kid != "" {
		header["kid"] = opts.Kid
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}
	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) + "." + base64.RawURLEncoding.EncodeToString(claimsJSON)

	var signature []byte
	switch opts.Algorithm {
	case siop.AlgEdDSA:
		edKey, ok := key.(ed25519.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: EdDSA needs an ed25519 private key, got %T", ErrWrongKeyType, key)
		}
		signature = ed25519.Sign(edKey, []byte(signingInput))

	case siop.AlgES256K, siop.AlgES256KRecoverable:
		ecKey, ok := key.(*secp256k1.PrivateKey)
		if !ok {
			return "", fmt.Errorf("%w: %s needs a secp256k1 private key, got %T", ErrWrongKeyType, opts.Algorithm, key)
		}
		digest := sha256.Sum256([]byte(signingInput))
		// SignCompact yields v||r||s with v in 27..30 for uncompressed keys.
		compact := secpecdsa.SignCompact(ecKey, digest[:], false)
		if opts.Algorithm == siop.AlgES256K {
			signature = compact[1:]
		} else {
			signature = append(compact[1:], compact[0]-27)
		}

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algorithm)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}
