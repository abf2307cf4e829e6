package payload

import (
	"crypto/sha256"
	"encoding/hex"
)

// AgentRole is the authorization level an organization grants an agent.
type AgentRole uint8

const (
	RoleUnset AgentRole = iota
	RoleAdmin
	RoleTransactor
)

// OrganizationType classifies an organization.
type OrganizationType uint8

const (
	OrganizationUnset OrganizationType = iota
	CertifyingBody
	StandardsBody
	Factory
	Ingestion
)

// CertificateSource records what triggered an issuance: a request made
// by the factory, or an independent decision by the certifying body.
type CertificateSource uint8

const (
	SourceUnset CertificateSource = iota
	FromRequest
	Independent
)

// Contact is an organization's point of contact.
type Contact struct {
	Name         string `cramberry:"1"`
	PhoneNumber  string `cramberry:"2"`
	LanguageCode string `cramberry:"3"`
}

// FactoryAddress is the physical address of a factory.
type FactoryAddress struct {
	StreetLine1   string `cramberry:"1"`
	StreetLine2   string `cramberry:"2"`
	City          string `cramberry:"3"`
	StateProvince string `cramberry:"4"`
	PostalCode    string `cramberry:"5"`
	Country       string `cramberry:"6"`
}

// CertificateDatum is one free-form key/value attached to a
// certificate.
type CertificateDatum struct {
	Field string `cramberry:"1"`
	Data  string `cramberry:"2"`
}

// CreateAgent registers the signer as a named agent.
type CreateAgent struct {
	Name      string `cramberry:"1"`
	Timestamp uint64 `cramberry:"2"`
}

// AuthorizeAgent grants an agent a role within the authorizer's
// organization.
type AuthorizeAgent struct {
	PublicKey string    `cramberry:"1"`
	Role      AgentRole `cramberry:"2"`
}

// CreateOrganization registers a new organization. Factories carry a
// physical address.
type CreateOrganization struct {
	ID       string           `cramberry:"1"`
	Name     string           `cramberry:"2"`
	Type     OrganizationType `cramberry:"3"`
	Contacts []Contact        `cramberry:"4"`
	Address  *FactoryAddress  `cramberry:"5"`
}

// UpdateOrganization replaces an organization's mutable fields.
type UpdateOrganization struct {
	ID       string          `cramberry:"1"`
	Name     string          `cramberry:"2"`
	Contacts []Contact       `cramberry:"3"`
	Address  *FactoryAddress `cramberry:"4"`
}

// IssueCertificate issues a certificate to a factory. Source FromRequest
// requires RequestID; Independent requires FactoryName.
type IssueCertificate struct {
	ID               string             `cramberry:"1"`
	CertifyingBodyID string             `cramberry:"2"`
	FactoryID        string             `cramberry:"3"`
	Source           CertificateSource  `cramberry:"4"`
	RequestID        string             `cramberry:"5"`
	FactoryName      string             `cramberry:"6"`
	StandardID       string             `cramberry:"7"`
	Data             []CertificateDatum `cramberry:"8"`
	ValidFrom        uint64             `cramberry:"9"`
	ValidTo          uint64             `cramberry:"10"`
}

// UpdateCertificate replaces a certificate's validity window and data.
type UpdateCertificate struct {
	ID               string             `cramberry:"1"`
	CertifyingBodyID string             `cramberry:"2"`
	ValidFrom        uint64             `cramberry:"3"`
	ValidTo          uint64             `cramberry:"4"`
	Data             []CertificateDatum `cramberry:"5"`
}

// CreateStandard registers a standard owned by a standards body.
type CreateStandard struct {
	StandardID   string `cramberry:"1"`
	Name         string `cramberry:"2"`
	Version      string `cramberry:"3"`
	Description  string `cramberry:"4"`
	Link         string `cramberry:"5"`
	ApprovalDate uint64 `cramberry:"6"`
}

// AccreditCertifyingBody accredits a certifying body for a standard.
type AccreditCertifyingBody struct {
	CertifyingBodyID string `cramberry:"1"`
	StandardsBodyID  string `cramberry:"2"`
	StandardID       string `cramberry:"3"`
	ValidFrom        uint64 `cramberry:"4"`
	ValidTo          uint64 `cramberry:"5"`
}

// AssertFact records a third-party assertion about a factory,
// certificate, or standard that does not exist on the ledger yet.
// Exactly one of the New* fields is populated.
type AssertFact struct {
	AssertionID    string              `cramberry:"1"`
	NewFactory     *CreateOrganization `cramberry:"2"`
	NewCertificate *IssueCertificate   `cramberry:"3"`
	NewStandard    *CreateStandard     `cramberry:"4"`
}

// TransferAssertion converts an asserted fact into a first-class
// record owned by the (now on-ledger) subject.
type TransferAssertion struct {
	AssertionID string `cramberry:"1"`
}

// StandardID derives the ledger identifier of a standard from its
// name. Registering the same name twice therefore collides on the
// same state entry, which the ledger rejects.
func StandardID(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}
