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

// Package didauth provides version information for did-auth-oidc-siop.
package didauth

const (
	// Version is the current version of did-auth-oidc-siop
	Version = "1.0.0"

	// SIOPFlowVersion is the DID SIOP flow specification version this library supports
	// See: https://identity.foundation/did-siop/
	SIOPFlowVersion = "0.1"

	// UserAgent identifies this library on outgoing resolver and
	// verification-service requests.
	UserAgent = "did-auth-oidc-siop/" + Version
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	LibraryVersion  string
	SIOPFlowVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		LibraryVersion:  Version,
		SIOPFlowVersion: SIOPFlowVersion,
	}
}
