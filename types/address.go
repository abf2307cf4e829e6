package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// Transaction family constants for the certificate registry.
const (
	FamilyName    = "certificate_registry"
	FamilyVersion = "1.0"
)

// AddressLength is the constant width of every state address:
// 6-char family namespace, 2-char entity prefix, 62-char identifier
// digest.
const AddressLength = 70

const (
	namespaceLength = 6
	prefixLength    = 2
	digestLength    = AddressLength - namespaceLength - prefixLength
)

// Each entity type owns a disjoint, constant-width prefix under the
// family namespace.
const (
	prefixAgent        = "00"
	prefixCertificate  = "01"
	prefixOrganization = "02"
	prefixStandard     = "03"
	prefixRequest      = "04"
	prefixAssertion    = "05"
)

// familyNamespace is the leading 6 hex characters of the SHA-256
// digest of the family name.
var familyNamespace = hexDigest(FamilyName)[:namespaceLength]

// FamilyNamespace returns the 6-character address prefix shared by all
// state owned by the certificate registry family.
func FamilyNamespace() string { return familyNamespace }

// AgentAddress derives the state address of the agent record for the
// given public key.
func AgentAddress(publicKeyHex string) Address {
	return deriveAddress(prefixAgent, publicKeyHex)
}

// CertificateAddress derives the state address of a certificate.
func CertificateAddress(id string) Address {
	return deriveAddress(prefixCertificate, id)
}

// OrganizationAddress derives the state address of an organization.
func OrganizationAddress(id string) Address {
	return deriveAddress(prefixOrganization, id)
}

// StandardAddress derives the state address of a standard.
func StandardAddress(id string) Address {
	return deriveAddress(prefixStandard, id)
}

// RequestAddress derives the state address of a certificate request.
func RequestAddress(id string) Address {
	return deriveAddress(prefixRequest, id)
}

// AssertionAddress derives the state address of an assertion.
func AssertionAddress(id string) Address {
	return deriveAddress(prefixAssertion, id)
}

// deriveAddress maps an entity prefix and identifier to a fixed-format
// address. Pure and total: any identifier string is valid input, and
// the same (prefix, identifier) pair always yields the same address.
func deriveAddress(prefix, identifier string) Address {
	return Address(familyNamespace + prefix + hexDigest(identifier)[:digestLength])
}

func hexDigest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
