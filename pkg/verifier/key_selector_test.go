package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
	"github.com/Volland/did-auth-oidc-siop/pkg/verifier"
)

func TestSelectVerificationMethod(t *testing.T) {
	doc := &did.Document{
		ID: "did:example:123",
		VerificationMethod: []did.VerificationMethod{
			{ID: "did:example:123#key-1", Type: "Ed25519VerificationKey2018"},
			{ID: "did:example:123#key-2", Type: "EcdsaSecp256k1VerificationKey2019"},
			{ID: "#key-3", Type: "EcdsaSecp256k1VerificationKey2019"},
			{
				ID:           "did:example:123#jwk-key",
				Type:         "JsonWebKey2020",
				PublicKeyJwk: &did.JWK{Kty: "EC", Crv: "secp256k1", Kid: "signing-key-2020"},
			},
		},
	}

	t.Run("empty kid selects the first method", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "did:example:123#key-1", vm.ID)
	})

	t.Run("exact method id", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "did:example:123#key-2")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "did:example:123#key-2", vm.ID)
	})

	t.Run("fragment-only kid", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "#key-2")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "did:example:123#key-2", vm.ID)
	})

	t.Run("bare fragment kid", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "key-2")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "did:example:123#key-2", vm.ID)
	})

	t.Run("full DID URL kid against a relative method id", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "did:example:123#key-3")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "#key-3", vm.ID)
	})

	t.Run("JWK kid takes priority over the method id", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "signing-key-2020")
		require.NoError(t, err)
		require.NotNil(t, vm)
		assert.Equal(t, "did:example:123#jwk-key", vm.ID)
	})

	t.Run("JWK kid mismatch does not fall through to the method id", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "jwk-key")
		require.NoError(t, err)
		assert.Nil(t, vm)
	})

	t.Run("no match yields nil without error", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "did:example:123#missing")
		require.NoError(t, err)
		assert.Nil(t, vm)
	})

	t.Run("different DID with the same fragment does not match", func(t *testing.T) {
		vm, err := verifier.SelectVerificationMethod(doc, "did:example:456#key-1")
		require.NoError(t, err)
		assert.Nil(t, vm)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := verifier.SelectVerificationMethod(&did.Document{}, "key-1")
		assert.ErrorIs(t, err, verifier.ErrNoVerificationMethods)

		_, err = verifier.SelectVerificationMethod(nil, "key-1")
		assert.ErrorIs(t, err, verifier.ErrNoVerificationMethods)
	})
}
