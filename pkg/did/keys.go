package did

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
)

var (
	// ErrNoPublicKey is returned when a verification method carries no
	// usable public key encoding.
	ErrNoPublicKey = errors.New("no public key found on verification method")

	// ErrUnsupportedCurve is returned when key material uses a key type or
	// curve outside the EdDSA/secp256k1 set this library verifies.
	ErrUnsupportedCurve = errors.New("unsupported key type or curve")
)

// KeyEncoding tags how the source document encoded the public key. The
// encoding travels with the material as explicit metadata so later stages
// never have to re-detect the format from string content.
type KeyEncoding int

const (
	// EncodingJWK means the method carried a publicKeyJwk entry.
	EncodingJWK KeyEncoding = iota

	// EncodingBase58 means the method carried a publicKeyBase58 entry,
	// decoded here into raw point bytes.
	EncodingBase58

	// EncodingAccountAddress means the method binds an account address
	// (ethereumAddress or blockchainAccountId) rather than a key. Only the
	// recoverable signature algorithm can verify against it.
	EncodingAccountAddress
)

// KeyMaterial is the normalized form of a verification method's public key.
// It is computed fresh per verification call and never cached.
type KeyMaterial struct {
	Encoding KeyEncoding
	JWK      *JWK   // set for EncodingJWK
	Bytes    []byte // raw point bytes, set for EncodingBase58
	Address  string // hex account address, set for EncodingAccountAddress
}

// KeyMaterial extracts the method's public key with its source encoding.
// Absence of every encoding is an error here, at the point of use, not at
// document parse time.
func (vm *VerificationMethod) KeyMaterial() (*KeyMaterial, error) {
	switch {
	case vm.PublicKeyJwk != nil:
		return &KeyMaterial{Encoding: EncodingJWK, JWK: vm.PublicKeyJwk}, nil
	case vm.PublicKeyBase58 != "":
		raw, err := base58.Decode(vm.PublicKeyBase58)
		if err != nil {
			return nil, fmt.Errorf("decode publicKeyBase58: %w", err)
		}
		return &KeyMaterial{Encoding: EncodingBase58, Bytes: raw}, nil
	case vm.EthereumAddress != "":
		return &KeyMaterial{Encoding: EncodingAccountAddress, Address: vm.EthereumAddress}, nil
	case vm.BlockchainAccountID != "":
		// CAIP-10 account id, e.g. eip155:1:0xabc...; the address is the
		// final segment.
		parts := strings.Split(vm.BlockchainAccountID, ":")
		return &KeyMaterial{Encoding: EncodingAccountAddress, Address: parts[len(parts)-1]}, nil
	default:
		return nil, ErrNoPublicKey
	}
}

// JWK returns the method's key in JWK form, converting base58-encoded point
// bytes when the document did not carry a JWK directly.
func (vm *VerificationMethod) JWK() (*JWK, error) {
	material, err := vm.KeyMaterial()
	if err != nil {
		return nil, err
	}
	switch material.Encoding {
	case EncodingJWK:
		return material.JWK, nil
	case EncodingBase58:
		return jwkFromPointBytes(material.Bytes, vm.Type)
	default:
		return nil, fmt.Errorf("%w: %s binds an account address, not a key", ErrNoPublicKey, vm.ID)
	}
}

// jwkFromPointBytes converts raw public key bytes into JWK form. The
// verification method type disambiguates 32-byte Ed25519 keys; secp256k1
// points are recognized by their SEC1 length.
func jwkFromPointBytes(raw []byte, vmType string) (*JWK, error) {
	switch {
	case len(raw) == ed25519.PublicKeySize && !strings.Contains(vmType, "Secp256k1"):
		return &JWK{
			Kty: "OKP",
			Crv: "Ed25519",
			X:   base64.RawURLEncoding.EncodeToString(raw),
		}, nil
	case len(raw) == 33 || len(raw) == 65:
		pub, err := secp256k1.ParsePubKey(raw)
		if err != nil {
			return nil, fmt.Errorf("parse secp256k1 point: %w", err)
		}
		uncompressed := pub.SerializeUncompressed()
		return &JWK{
			Kty: "EC",
			Crv: "secp256k1",
			X:   base64.RawURLEncoding.EncodeToString(uncompressed[1:33]),
			Y:   base64.RawURLEncoding.EncodeToString(uncompressed[33:65]),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d-byte %s key", ErrUnsupportedCurve, len(raw), vmType)
	}
}

// Ed25519PublicKey decodes an OKP/Ed25519 JWK and checks the bytes form a
// valid curve point.
func (j *JWK) Ed25519PublicKey() (ed25519.PublicKey, error) {
	if j.Kty != "OKP" || j.Crv != "Ed25519" {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedCurve, j.Kty, j.Crv)
	}
	raw, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, fmt.Errorf("decode x coordinate: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: %d-byte ed25519 key", ErrUnsupportedCurve, len(raw))
	}
	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return nil, fmt.Errorf("invalid ed25519 point: %w", err)
	}
	return ed25519.PublicKey(raw), nil
}

// Secp256k1PublicKey decodes an EC/secp256k1 JWK into a curve point.
func (j *JWK) Secp256k1PublicKey() (*secp256k1.PublicKey, error) {
	if j.Kty != "EC" || (j.Crv != "secp256k1" && j.Crv != "K-256") {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedCurve, j.Kty, j.Crv)
	}
	x, err := base64.RawURLEncoding.DecodeString(j.X)
	if err != nil {
		return nil, fmt.Errorf("decode x coordinate: %w", err)
	}
	y, err := base64.RawURLEncoding.DecodeString(j.Y)
	if err != nil {
		return nil, fmt.Errorf("decode y coordinate: %w", err)
	}
	if len(x) > 32 || len(y) > 32 {
		return nil, fmt.Errorf("%w: oversized coordinates", ErrUnsupportedCurve)
	}
	raw := make([]byte, 65)
	raw[0] = 0x04
	copy(raw[33-len(x):33], x)
	copy(raw[65-len(y):65], y)
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parse secp256k1 point: %w", err)
	}
	return pub, nil
}
