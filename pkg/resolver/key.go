package resolver

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

// Multicodec codes for the public key types did:key can carry here.
const (
	codecEd25519Pub   = 0xed
	codecSecp256k1Pub = 0xe7
)

// ResolveKeyDID derives a DID Document from the public key encoded in a
// did:key identifier. Resolution is deterministic from the DID string alone
// and performs no network I/O.
func ResolveKeyDID(d *did.DID) (*did.Document, error) {
	if d.Method() != did.MethodKey {
		return nil, fmt.Errorf("%w: %s is not a did:key identifier", did.ErrInvalidDID, d)
	}

	id := d.MethodSpecificID()
	encoding, data, err := multibase.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("%w: decode multibase identifier: %v", ErrResolution, err)
	}
	if encoding != multibase.Base58BTC {
		return nil, fmt.Errorf("%w: unexpected multibase encoding %q", ErrResolution, string(rune(encoding)))
	}

	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode multicodec prefix: %v", ErrResolution, err)
	}
	keyBytes := data[n:]

	vm := did.VerificationMethod{
		ID:         d.String() + "#" + id,
		Controller: d.String(),
	}
	switch code {
	case codecEd25519Pub:
		if len(keyBytes) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: %d-byte ed25519 key", did.ErrUnsupportedCurve, len(keyBytes))
		}
		vm.Type = "Ed25519VerificationKey2018"
		vm.PublicKeyBase58 = base58.Encode(keyBytes)
	case codecSecp256k1Pub:
		if len(keyBytes) != 33 && len(keyBytes) != 65 {
			return nil, fmt.Errorf("%w: %d-byte secp256k1 key", did.ErrUnsupportedCurve, len(keyBytes))
		}
		vm.Type = "EcdsaSecp256k1VerificationKey2019"
		vm.PublicKeyBase58 = base58.Encode(keyBytes)
	default:
		return nil, fmt.Errorf("%w: multicodec 0x%x", did.ErrUnsupportedCurve, code)
	}

	return &did.Document{
		Context:            "https://w3id.org/did/v1",
		ID:                 d.String(),
		VerificationMethod: []did.VerificationMethod{vm},
		Authentication:     []any{vm.ID},
		AssertionMethod:    []any{vm.ID},
	}, nil
}
