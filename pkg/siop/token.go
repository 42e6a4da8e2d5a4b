// Copyright (C) 2026 DID Auth OIDC SIOP Project
//
// This file is part of did-auth-oidc-siop.
//
// did-auth-oidc-siop is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// did-auth-oidc-siop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with did-auth-oidc-siop.  If not, see <https://www.gnu.org/licenses/>.

package siop

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken is returned when a response token cannot be split
	// into its three compact segments or its header/payload JSON does not
	// decode. A token that fails here never reaches later pipeline stages.
	ErrMalformedToken = errors.New("malformed signature response token")

	// ErrNoIssuerDID is returned when a token carries neither an issuer DID
	// nor a did claim on a self-issued token.
	ErrNoIssuerDID = errors.New("no issuer DID in token payload")

	// ErrInvalidAudience is returned for multi-audience tokens. An aud array
	// is rejected regardless of its contents, even with a single element.
	ErrInvalidAudience = errors.New("invalid audience claim")

	// ErrNonceMismatch is returned when the token nonce does not equal the
	// nonce the caller expected.
	ErrNonceMismatch = errors.New("nonce does not match expected value")
)

// IssuerSelfIssued is the iss value of a self-issued response token. Such
// tokens carry the subject DID under the did claim instead.
const IssuerSelfIssued = "self_issued"

// Header is the decoded JOSE header of a response token.
type Header struct {
	Alg string
	Kid string
	Typ string
}

// ResponseToken is a decomposed DID Auth response token: decoded header and
// claims plus the exact bytes the signature was computed over.
type ResponseToken struct {
	Raw          string
	Header       Header
	Claims       jwt.MapClaims
	SigningInput string
	Signature    []byte
}

// ParseResponseToken decomposes a compact token string. Parsing fails closed:
// any structural defect surfaces as ErrMalformedToken before resolution or
// signature work begins.
func ParseResponseToken(raw string) (*ResponseToken, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	token, parts, err := parser.ParseUnverified(raw, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	signature, err := parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	alg, _ := token.Header["alg"].(string)
	if alg == "" {
		return nil, fmt.Errorf("%w: missing alg header", ErrMalformedToken)
	}
	header := Header{Alg: alg}
	if kid, ok := token.Header["kid"].(string); ok {
		header.Kid = kid
	}
	if typ, ok := token.Header["typ"].(string); ok {
		header.Typ = typ
	}

	return &ResponseToken{
		Raw:          raw,
		Header:       header,
		Claims:       claims,
		SigningInput: parts[0] + "." + parts[1],
		Signature:    signature,
	}, nil
}

// IssuerDID returns the DID that issued the token: the iss claim, or the did
// claim when the token is self-issued.
func (t *ResponseToken) IssuerDID() (string, error) {
	iss, _ := t.Claims["iss"].(string)
	if iss != "" && iss != IssuerSelfIssued {
		return iss, nil
	}
	if subject, _ := t.Claims["did"].(string); subject != "" {
		return subject, nil
	}
	return "", ErrNoIssuerDID
}

// Audience returns the aud claim when it is a single string. A missing
// audience is not an error and yields the empty string; an audience array is
// always rejected.
func (t *ResponseToken) Audience() (string, error) {
	switch aud := t.Claims["aud"].(type) {
	case nil:
		return "", nil
	case string:
		return aud, nil
	default:
		return "", fmt.Errorf("%w: aud must be a single string", ErrInvalidAudience)
	}
}

// Nonce returns the nonce claim, or the empty string when absent.
func (t *ResponseToken) Nonce() string {
	nonce, _ := t.Claims["nonce"].(string)
	return nonce
}

// ValidateNonce checks the token nonce against the caller's expectation by
// exact string equality. An empty expectation skips the check.
func (t *ResponseToken) ValidateNonce(expected string) error {
	if expected == "" {
		return nil
	}
	if t.Nonce() != expected {
		return fmt.Errorf("%w: got %q", ErrNonceMismatch, t.Nonce())
	}
	return nil
}
