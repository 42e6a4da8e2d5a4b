package verifier_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
	"github.com/Volland/did-auth-oidc-siop/pkg/signer"
	"github.com/Volland/did-auth-oidc-siop/pkg/siop"
	"github.com/Volland/did-auth-oidc-siop/pkg/verifier"
)

var testClaims = jwt.MapClaims{
	"iss":   "did:example:123",
	"nonce": "n-0S6_WzA2Mj",
}

func signedToken(t *testing.T, alg siop.Algorithm, key any) *siop.ResponseToken {
	t.Helper()
	raw, err := signer.CreateResponseToken(testClaims, key, &signer.SigningOptions{Algorithm: alg})
	require.NoError(t, err)
	tok, err := siop.ParseResponseToken(raw)
	require.NoError(t, err)
	return tok
}

// tokenWithSignature assembles a token whose signature bytes are supplied
// directly, for exercising framing checks the signer never produces.
func tokenWithSignature(t *testing.T, alg string, sig []byte) *siop.ResponseToken {
	t.Helper()
	headerJSON, err := json.Marshal(map[string]string{"alg": alg})
	require.NoError(t, err)
	claimsJSON, err := json.Marshal(testClaims)
	require.NoError(t, err)
	raw := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(claimsJSON) +
		"." + base64.RawURLEncoding.EncodeToString(sig)
	tok, err := siop.ParseResponseToken(raw)
	require.NoError(t, err)
	return tok
}

func TestVerifySignatureEdDSA(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	vm := &did.VerificationMethod{
		Type:            "Ed25519VerificationKey2018",
		PublicKeyBase58: base58.Encode(pub),
	}

	t.Run("valid signature", func(t *testing.T) {
		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgEdDSA, priv), vm)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgEdDSA, otherPriv), vm)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tampered payload", func(t *testing.T) {
		tok := signedToken(t, siop.AlgEdDSA, priv)
		tok.SigningInput += "x"

		ok, err := verifier.VerifySignature(tok, vm)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestVerifySignatureES256K(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	vm := &did.VerificationMethod{
		Type:            "EcdsaSecp256k1VerificationKey2019",
		PublicKeyBase58: base58.Encode(priv.PubKey().SerializeCompressed()),
	}

	t.Run("valid signature", func(t *testing.T) {
		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgES256K, priv), vm)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong key", func(t *testing.T) {
		otherPriv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)

		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgES256K, otherPriv), vm)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("signature length enforced", func(t *testing.T) {
		tok := tokenWithSignature(t, "ES256K", make([]byte, 70))
		_, err := verifier.VerifySignature(tok, vm)
		assert.ErrorIs(t, err, verifier.ErrInvalidSignatureLength)
	})
}

func TestVerifySignatureES256KRecoverable(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	address := ethcrypto.PubkeyToAddress(*priv.PubKey().ToECDSA()).Hex()

	addressVM := &did.VerificationMethod{
		Type:                "EcdsaSecp256k1RecoveryMethod2020",
		BlockchainAccountID: "eip155:mainnet:" + address,
	}
	keyVM := &did.VerificationMethod{
		Type:            "EcdsaSecp256k1VerificationKey2019",
		PublicKeyBase58: base58.Encode(priv.PubKey().SerializeCompressed()),
	}

	t.Run("65-byte signature against a bound address", func(t *testing.T) {
		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgES256KRecoverable, priv), addressVM)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("64-byte signature tries both recovery ids", func(t *testing.T) {
		tok := signedToken(t, siop.AlgES256KRecoverable, priv)
		tok.Signature = tok.Signature[:64]

		ok, err := verifier.VerifySignature(tok, addressVM)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("explicit key material skips recovery", func(t *testing.T) {
		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgES256KRecoverable, priv), keyVM)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("signature from another key recovers a different address", func(t *testing.T) {
		otherPriv, err := secp256k1.GeneratePrivateKey()
		require.NoError(t, err)

		ok, err := verifier.VerifySignature(signedToken(t, siop.AlgES256KRecoverable, otherPriv), addressVM)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("signature length enforced", func(t *testing.T) {
		for _, n := range []int{0, 63, 66, 128} {
			tok := tokenWithSignature(t, "ES256K-R", make([]byte, n))
			_, err := verifier.VerifySignature(tok, addressVM)
			assert.ErrorIs(t, err, verifier.ErrInvalidSignatureLength, "%d bytes", n)
		}
	})

	t.Run("method without key material", func(t *testing.T) {
		tok := signedToken(t, siop.AlgES256KRecoverable, priv)
		_, err := verifier.VerifySignature(tok, &did.VerificationMethod{ID: "#bare"})
		assert.ErrorIs(t, err, did.ErrNoPublicKey)
	})
}

func TestVerifySignatureUnsupportedAlgorithm(t *testing.T) {
	// An algorithm outside the supported set is "not verified", not an
	// internal error.
	for _, alg := range []string{"ES256", "RS256", "none"} {
		tok := tokenWithSignature(t, alg, []byte("sig"))
		ok, err := verifier.VerifySignature(tok, &did.VerificationMethod{})
		assert.NoError(t, err, alg)
		assert.False(t, ok, alg)
	}
}
