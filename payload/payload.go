// Package payload defines the certificate registry's action payloads.
//
// A Payload is a tagged union: the Action discriminator names the
// operation and exactly one of the pointer fields is populated.
// Encode produces the deterministic byte blob the transaction
// assembler hashes and carries; the assembler itself never inspects
// payload contents.
package payload

import "github.com/blockberries/cramberry/pkg/cramberry"

// Action discriminates the operation a payload carries.
type Action uint8

const (
	ActionUnset Action = iota
	ActionCreateAgent
	ActionAuthorizeAgent
	ActionCreateOrganization
	ActionUpdateOrganization
	ActionIssueCertificate
	ActionUpdateCertificate
	ActionCreateStandard
	ActionAccreditCertifyingBody
	ActionAssertFact
	ActionTransferAssertion
)

func (a Action) String() string {
	switch a {
	case ActionCreateAgent:
		return "create agent"
	case ActionAuthorizeAgent:
		return "authorize agent"
	case ActionCreateOrganization:
		return "create organization"
	case ActionUpdateOrganization:
		return "update organization"
	case ActionIssueCertificate:
		return "issue certificate"
	case ActionUpdateCertificate:
		return "update certificate"
	case ActionCreateStandard:
		return "create standard"
	case ActionAccreditCertifyingBody:
		return "accredit certifying body"
	case ActionAssertFact:
		return "assert fact"
	case ActionTransferAssertion:
		return "transfer assertion"
	default:
		return "unset"
	}
}

// Payload is one registry action. Exactly one action field matches the
// Action discriminator.
type Payload struct {
	Action Action `cramberry:"1"`

	CreateAgent            *CreateAgent            `cramberry:"2"`
	AuthorizeAgent         *AuthorizeAgent         `cramberry:"3"`
	CreateOrganization     *CreateOrganization     `cramberry:"4"`
	UpdateOrganization     *UpdateOrganization     `cramberry:"5"`
	IssueCertificate       *IssueCertificate       `cramberry:"6"`
	UpdateCertificate      *UpdateCertificate      `cramberry:"7"`
	CreateStandard         *CreateStandard         `cramberry:"8"`
	AccreditCertifyingBody *AccreditCertifyingBody `cramberry:"9"`
	AssertFact             *AssertFact             `cramberry:"10"`
	TransferAssertion      *TransferAssertion      `cramberry:"11"`
}

// Encode returns the deterministic byte encoding of the payload.
func (p Payload) Encode() ([]byte, error) {
	return cramberry.Marshal(p)
}

// Decode parses bytes produced by Encode.
func Decode(data []byte) (Payload, error) {
	var p Payload
	err := cramberry.Unmarshal(data, &p)
	return p, err
}
