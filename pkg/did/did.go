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

package did

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDID is returned for strings that do not have the
// did:<method>:<method-specific-id> shape.
var ErrInvalidDID = errors.New("invalid DID")

// Method identifies the resolution strategy implied by a DID's method segment.
type Method int

const (
	// MethodGeneric covers methods resolvable through a universal resolver endpoint.
	MethodGeneric Method = iota

	// MethodKey is the self-contained did:key method. The public key is
	// encoded in the identifier itself, so resolution needs no network call.
	MethodKey

	// MethodEthr is the ERC-1056 did:ethr method, resolvable against an
	// on-chain registry contract.
	MethodEthr
)

// String returns the method segment name for the strategy.
func (m Method) String() string {
	switch m {
	case MethodKey:
		return "key"
	case MethodEthr:
		return "ethr"
	default:
		return "generic"
	}
}

// DID is a parsed decentralized identifier.
type DID struct {
	raw      string
	segments []string
}

// Parse validates the basic shape of a DID string. Anything with fewer than
// three colon-delimited segments, a wrong scheme, or an empty segment is
// rejected here, before any resolution is attempted.
func Parse(s string) (*DID, error) {
	segments := strings.Split(s, ":")
	if len(segments) < 3 || segments[0] != "did" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDID, s)
	}
	for _, segment := range segments[1:] {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidDID, s)
		}
	}
	return &DID{raw: s, segments: segments}, nil
}

// String returns the original DID string.
func (d *DID) String() string { return d.raw }

// MethodName returns the raw method segment, e.g. "ethr".
func (d *DID) MethodName() string { return d.segments[1] }

// Method maps the method segment onto a resolution strategy.
func (d *DID) Method() Method {
	switch d.segments[1] {
	case "key":
		return MethodKey
	case "ethr":
		return MethodEthr
	default:
		return MethodGeneric
	}
}

// MethodSpecificID returns everything after the method segment, joined back
// with colons.
func (d *DID) MethodSpecificID() string {
	return strings.Join(d.segments[2:], ":")
}

// Address returns the final segment. For did:ethr this is the identity
// address regardless of whether a network segment is present.
func (d *DID) Address() string {
	return d.segments[len(d.segments)-1]
}

// Network derives the network identifier for chain-based methods.
// A three-segment DID carries no network and yields defaultNetwork, a
// four-segment DID names its network in the third segment, and longer DIDs
// use a compound <segment3>:<segment4> identifier.
func (d *DID) Network(defaultNetwork string) string {
	switch {
	case len(d.segments) == 3:
		return defaultNetwork
	case len(d.segments) == 4:
		return d.segments[2]
	default:
		return d.segments[2] + ":" + d.segments[3]
	}
}
