package siop

// Algorithm is the set of JWS algorithms a DID Auth token may be signed with.
// Keeping the set as a tagged value makes "unsupported" an explicit default
// case instead of a string comparison scattered through the flow.
type Algorithm int

const (
	// AlgEdDSA is JOSE EdDSA over Ed25519.
	AlgEdDSA Algorithm = iota

	// AlgES256K is standard JOSE ECDSA over secp256k1 with SHA-256.
	AlgES256K

	// AlgES256KRecoverable is the legacy ES256K-R encoding whose raw
	// signature layout may embed a recovery byte.
	AlgES256KRecoverable
)

// ParseAlgorithm maps a JOSE alg header value onto the supported set. The
// second return is false for any algorithm this library does not verify.
func ParseAlgorithm(alg string) (Algorithm, bool) {
	switch alg {
	case "EdDSA":
		return AlgEdDSA, true
	case "ES256K":
		return AlgES256K, true
	case "ES256K-R":
		return AlgES256KRecoverable, true
	default:
		return 0, false
	}
}

// String returns the JOSE alg header value.
func (a Algorithm) String() string {
	switch a {
	case AlgEdDSA:
		return "EdDSA"
	case AlgES256K:
		return "ES256K"
	case AlgES256KRecoverable:
		return "ES256K-R"
	default:
		return "unknown"
	}
}
