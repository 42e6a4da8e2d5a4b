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

package verifier

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
	"github.com/Volland/did-auth-oidc-siop/pkg/siop"
)

// VerifySignature checks the token signature against the verification
// method, dispatching on the algorithm the token header declares.
//
// An unsupported algorithm yields (false, nil): not verified, but not an
// internal error either. Malformed key material or signature framing along
// the way surfaces as a typed error.
func VerifySignature(tok *siop.ResponseToken, vm *did.VerificationMethod) (bool, error) {
	alg, ok := siop.ParseAlgorithm(tok.Header.Alg)
	if !ok {
		return false, nil
	}
	switch alg {
	case siop.AlgEdDSA:
		return verifyEdDSA(tok, vm)
	case siop.AlgES256K:
		return verifyES256K(tok, vm)
	case siop.AlgES256KRecoverable:
		return verifyES256KRecoverable(tok, vm)
	default:
		return false, nil
	}
}

func verifyEdDSA(tok *siop.ResponseToken, vm *did.VerificationMethod) (bool, error) {
	jwk, err := vm.JWK()
	if err != nil {
		return false, err
	}
	pub, err := jwk.Ed25519PublicKey()
	if err != nil {
		return false, err
	}
	return ed25519.Verify(pub, []byte(tok.SigningInput), tok.Signature), nil
}

func verifyES256K(tok *siop.ResponseToken, vm *did.VerificationMethod) (bool, error) {
	jwk, err := vm.JWK()
	if err != nil {
		return false, err
	}
	pub, err := jwk.Secp256k1PublicKey()
	if err != nil {
		return false, err
	}
	if len(tok.Signature) != 64 {
		return false, fmt.Errorf("%w: ES256K signature must be 64 bytes, got %d", ErrInvalidSignatureLength, len(tok.Signature))
	}
	digest := sha256.Sum256([]byte(tok.SigningInput))
	return verifyRS(digest[:], tok.Signature[:32], tok.Signature[32:64], pub)
}

// verifyES256KRecoverable handles the legacy recoverable encoding: a raw
// 64-byte r||s layout, optionally followed by a recovery byte. This path
// bypasses standard JOSE verification entirely.
func verifyES256KRecoverable(tok *siop.ResponseToken, vm *did.VerificationMethod) (bool, error) {
	sig := tok.Signature
	if len(sig) != 64 && len(sig) != 65 {
		return false, fmt.Errorf("%w: recoverable signature must be 64 or 65 bytes, got %d", ErrInvalidSignatureLength, len(sig))
	}
	digest := sha256.Sum256([]byte(tok.SigningInput))

	material, err := vm.KeyMaterial()
	if err != nil {
		return false, err
	}
	switch material.Encoding {
	case did.EncodingJWK:
		pub, err := material.JWK.Secp256k1PublicKey()
		if err != nil {
			return false, err
		}
		return verifyRS(digest[:], sig[:32], sig[32:64], pub)
	case did.EncodingBase58:
		pub, err := secp256k1.ParsePubKey(material.Bytes)
		if err != nil {
			return false, fmt.Errorf("parse secp256k1 point: %w", err)
		}
		return verifyRS(digest[:], sig[:32], sig[32:64], pub)
	case did.EncodingAccountAddress:
		return verifyRecoveredAddress(digest[:], sig, material.Address)
	default:
		return false, did.ErrNoPublicKey
	}
}

func verifyRS(digest, rBytes, sBytes []byte, pub *secp256k1.PublicKey) (bool, error) {
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(rBytes); overflow {
		return false, fmt.Errorf("signature r component overflows curve order")
	}
	if overflow := s.SetByteSlice(sBytes); overflow {
		return false, fmt.Errorf("signature s component overflows curve order")
	}
	return secpecdsa.NewSignature(&r, &s).Verify(digest, pub), nil
}

// verifyRecoveredAddress recovers candidate public keys from the signature
// and compares the derived account address against the one the method binds.
// Without a recovery byte both recovery ids are tried.
func verifyRecoveredAddress(digest, sig []byte, address string) (bool, error) {
	recoveryIDs := []byte{0, 1}
	if len(sig) == 65 {
		v := sig[64]
		if v >= 27 {
			v -= 27
		}
		if v > 3 {
			return false, fmt.Errorf("invalid recovery byte %d", sig[64])
		}
		recoveryIDs = []byte{v}
	}
	compact := make([]byte, 65)
	copy(compact[1:], sig[:64])
	for _, v := range recoveryIDs {
		compact[0] = 27 + v
		pub, _, err := secpecdsa.RecoverCompact(compact, digest)
		if err != nil {
			continue
		}
		recovered := ethcrypto.PubkeyToAddress(*pub.ToECDSA())
		if strings.EqualFold(recovered.Hex(), address) {
			return true, nil
		}
	}
	return false, nil
}
