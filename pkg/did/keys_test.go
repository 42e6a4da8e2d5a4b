package did_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

func TestKeyMaterialEncodingTags(t *testing.T) {
	t.Run("jwk", func(t *testing.T) {
		jwk := &did.JWK{Kty: "OKP", Crv: "Ed25519", X: "abc"}
		material, err := (&did.VerificationMethod{PublicKeyJwk: jwk}).KeyMaterial()
		require.NoError(t, err)
		assert.Equal(t, did.EncodingJWK, material.Encoding)
		assert.Same(t, jwk, material.JWK)
	})

	t.Run("base58", func(t *testing.T) {
		raw := []byte{1, 2, 3, 4}
		material, err := (&did.VerificationMethod{PublicKeyBase58: base58.Encode(raw)}).KeyMaterial()
		require.NoError(t, err)
		assert.Equal(t, did.EncodingBase58, material.Encoding)
		assert.Equal(t, raw, material.Bytes)
	})

	t.Run("ethereum address", func(t *testing.T) {
		material, err := (&did.VerificationMethod{EthereumAddress: "0xabc"}).KeyMaterial()
		require.NoError(t, err)
		assert.Equal(t, did.EncodingAccountAddress, material.Encoding)
		assert.Equal(t, "0xabc", material.Address)
	})

	t.Run("blockchain account id", func(t *testing.T) {
		material, err := (&did.VerificationMethod{BlockchainAccountID: "eip155:1:0xabc"}).KeyMaterial()
		require.NoError(t, err)
		assert.Equal(t, did.EncodingAccountAddress, material.Encoding)
		assert.Equal(t, "0xabc", material.Address)
	})

	t.Run("no encoding at all", func(t *testing.T) {
		_, err := (&did.VerificationMethod{ID: "#key-1"}).KeyMaterial()
		assert.ErrorIs(t, err, did.ErrNoPublicKey)
	})

	t.Run("bad base58", func(t *testing.T) {
		_, err := (&did.VerificationMethod{PublicKeyBase58: "0OIl"}).KeyMaterial()
		assert.Error(t, err)
	})
}

func TestJWKConversionFromBase58(t *testing.T) {
	t.Run("ed25519", func(t *testing.T) {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		vm := &did.VerificationMethod{
			Type:            "Ed25519VerificationKey2018",
			PublicKeyBase58: base58.Encode(pub),
		}
		jwk, err := vm.JWK()
		require.NoError(t, err)
		assert.Equal(t, "OKP", jwk.Kty)
		assert.Equal(t, "Ed25519", jwk.Crv)

		decoded, err := jwk.Ed25519PublicKey()
		require.NoError(t, err)
		assert.Equal(t, []byte(pub), []byte(decoded))
	})

	t.Run("secp256k1 compressed point", func(t *testing.T) {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)

		vm := &did.VerificationMethod{
			Type:            "EcdsaSecp256k1VerificationKey2019",
			PublicKeyBase58: base58.Encode(priv.PubKey().SerializeCompressed()),
		}
		jwk, err := vm.JWK()
		require.NoError(t, err)
		assert.Equal(t, "EC", jwk.Kty)
		assert.Equal(t, "secp256k1", jwk.Crv)

		decoded, err := jwk.Secp256k1PublicKey()
		require.NoError(t, err)
		assert.True(t, priv.PubKey().IsEqual(decoded))
	})

	t.Run("unusable key length", func(t *testing.T) {
		vm := &did.VerificationMethod{
			Type:            "EcdsaSecp256k1VerificationKey2019",
			PublicKeyBase58: base58.Encode([]byte{1, 2, 3}),
		}
		_, err := vm.JWK()
		assert.ErrorIs(t, err, did.ErrUnsupportedCurve)
	})

	t.Run("address-only method has no JWK", func(t *testing.T) {
		vm := &did.VerificationMethod{EthereumAddress: "0xabc"}
		_, err := vm.JWK()
		assert.ErrorIs(t, err, did.ErrNoPublicKey)
	})
}

func TestJWKKeyDecoding(t *testing.T) {
	t.Run("wrong curve rejected", func(t *testing.T) {
		jwk := &did.JWK{Kty: "EC", Crv: "P-256", X: "abc", Y: "def"}
		_, err := jwk.Secp256k1PublicKey()
		assert.ErrorIs(t, err, did.ErrUnsupportedCurve)

		_, err = jwk.Ed25519PublicKey()
		assert.ErrorIs(t, err, did.ErrUnsupportedCurve)
	})

	t.Run("ed25519 length enforced", func(t *testing.T) {
		jwk := &did.JWK{
			Kty: "OKP",
			Crv: "Ed25519",
			X:   base64.RawURLEncoding.EncodeToString([]byte("short")),
		}
		_, err := jwk.Ed25519PublicKey()
		assert.ErrorIs(t, err, did.ErrUnsupportedCurve)
	})

	t.Run("secp256k1 coordinates round trip", func(t *testing.T) {
		priv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)
		uncompressed := priv.PubKey().SerializeUncompressed()

		jwk := &did.JWK{
			Kty: "EC",
			Crv: "secp256k1",
			X:   base64.RawURLEncoding.EncodeToString(uncompressed[1:33]),
			Y:   base64.RawURLEncoding.EncodeToString(uncompressed[33:65]),
		}
		decoded, err := jwk.Secp256k1PublicKey()
		require.NoError(t, err)
		assert.True(t, priv.PubKey().IsEqual(decoded))
	})
}
