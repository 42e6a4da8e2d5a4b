package did

// Document models the subset of a DID Document needed for DID Auth
// verification: the identifier and its verification methods.
type Document struct {
	Context            any                  `json:"@context,omitempty"`
	ID                 string               `json:"id,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []any                `json:"authentication,omitempty"`
	AssertionMethod    []any                `json:"assertionMethod,omitempty"`
	Service            []any                `json:"service,omitempty"`
}

// VerificationMethod binds a key identifier to public key material. The ID is
// either a full DID URL (did:...#fragment) or a bare #fragment reference.
// Exactly one key encoding is expected to be populated; that is only enforced
// when the key material is actually extracted.
type VerificationMethod struct {
	ID                  string `json:"id,omitempty"`
	Type                string `json:"type,omitempty"`
	Controller          string `json:"controller,omitempty"`
	PublicKeyJwk        *JWK   `json:"publicKeyJwk,omitempty"`
	PublicKeyBase58     string `json:"publicKeyBase58,omitempty"`
	EthereumAddress     string `json:"ethereumAddress,omitempty"`
	BlockchainAccountID string `json:"blockchainAccountId,omitempty"`
}

// Fragment returns the part of the method ID after '#', or the whole ID when
// no fragment separator is present.
func (vm *VerificationMethod) Fragment() string {
	for i := 0; i < len(vm.ID); i++ {
		if vm.ID[i] == '#' {
			return vm.ID[i+1:]
		}
	}
	return vm.ID
}

// JWK captures the JSON Web Key fields needed for signature verification.
type JWK struct {
	Kty string `json:"kty,omitempty"`
	Crv string `json:"crv,omitempty"`
	Alg string `json:"alg,omitempty"`
	Kid string `json:"kid,omitempty"`
	Use string `json:"use,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}
