package verifier

import (
	"strings"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

// SelectVerificationMethod finds the verification method the token's kid
// refers to. An empty kid selects the document's first method. A nil method
// with a nil error means nothing matched.
//
// Per candidate, matching happens in priority order: a JWK that carries its
// own kid is matched by exact equality against the requested kid; otherwise
// the method id is compared, honoring both the full-DID-URL and the
// fragment-only kid conventions.
func SelectVerificationMethod(doc *did.Document, kid string) (*did.VerificationMethod, error) {
	if doc == nil || len(doc.VerificationMethod) == 0 {
		return nil, ErrNoVerificationMethods
	}
	if kid == "" {
		return &doc.VerificationMethod[0], nil
	}
	for i := range doc.VerificationMethod {
		vm := &doc.VerificationMethod[i]
		if vm.PublicKeyJwk != nil && vm.PublicKeyJwk.Kid != "" {
			if vm.PublicKeyJwk.Kid == kid {
				return vm, nil
			}
			continue
		}
		if matchMethodID(vm, kid) {
			return vm, nil
		}
	}
	return nil, nil
}

// matchMethodID compares a requested kid against a method id. Full ids match
// exactly; a relative reference on either side is compared by fragment so
// that fragment-only documents and full DID URL kids still find each other.
func matchMethodID(vm *did.VerificationMethod, kid string) bool {
	if vm.ID == kid {
		return true
	}
	if strings.HasPrefix(kid, "#") {
		return vm.Fragment() == kid[1:]
	}
	if strings.Contains(kid, "did:") {
		if i := strings.IndexByte(kid, '#'); i >= 0 && !strings.Contains(vm.ID, "did:") {
			return vm.Fragment() == kid[i+1:]
		}
		return false
	}
	return vm.Fragment() == kid
}
