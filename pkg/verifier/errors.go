package verifier

import "errors"

var (
	// ErrBadParameters is returned when the token or the verification
	// options are missing or incomplete, before any network or crypto work.
	ErrBadParameters = errors.New("verify called with bad parameters")

	// ErrNoVerificationMethods is returned when the resolved document has an
	// empty or absent verificationMethod list.
	ErrNoVerificationMethods = errors.New("document carries no verification methods")

	// ErrVerificationMethodNotFound is returned when no method in the
	// document matches the token's key identifier.
	ErrVerificationMethodNotFound = errors.New("verification method not found")

	// ErrInvalidSignatureLength is returned when a recoverable signature is
	// neither 64 nor 65 bytes. The check runs before any curve math.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrSignatureVerification is returned when a signature does not verify
	// under the key and algorithm the token declares.
	ErrSignatureVerification = errors.New("error verifying signature")

	// ErrRemoteVerification wraps failures of the external verification
	// service, preserving the original message.
	ErrRemoteVerification = errors.New("remote verification failed")
)
