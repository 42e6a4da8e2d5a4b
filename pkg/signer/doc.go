// Package signer builds and signs DID Auth response tokens, mirroring the
// algorithm set the verifier accepts: EdDSA, ES256K, and the legacy
// recoverable ES256K-R encoding.
package signer
