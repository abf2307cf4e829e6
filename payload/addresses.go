package payload

import "github.com/certsource/certreg/types"

// Address-set conventions per action kind. Inputs list everything the
// action may read, including referenced but unmutated entities such as
// the signer's own agent record; outputs list everything it creates or
// mutates. An omitted address is not detected locally; the ledger
// rejects the transaction as an unauthorized read or write.

// CreateAgentAddresses returns the footprint of a create-agent action:
// the signer's own agent record, read and written.
func CreateAgentAddresses(publicKeyHex string) []types.Address {
	return []types.Address{types.AgentAddress(publicKeyHex)}
}

// AuthorizeAgentInputs covers the authorizing agent, the organization,
// and the agent being authorized.
func AuthorizeAgentInputs(authorizerKeyHex, orgID, authorizedKeyHex string) []types.Address {
	return []types.Address{
		types.AgentAddress(authorizerKeyHex),
		types.OrganizationAddress(orgID),
		types.AgentAddress(authorizedKeyHex),
	}
}

// AuthorizeAgentOutputs covers the organization's role list and the
// authorized agent's record.
func AuthorizeAgentOutputs(orgID, authorizedKeyHex string) []types.Address {
	return []types.Address{
		types.OrganizationAddress(orgID),
		types.AgentAddress(authorizedKeyHex),
	}
}

// OrganizationAddresses returns the footprint of creating or updating
// an organization: the acting agent plus the organization record.
func OrganizationAddresses(publicKeyHex, orgID string) []types.Address {
	return []types.Address{
		types.AgentAddress(publicKeyHex),
		types.OrganizationAddress(orgID),
	}
}

// StandardAddresses returns the footprint of registering a standard:
// the standard, the acting agent, and the owning standards body.
func StandardAddresses(publicKeyHex, standardID, orgID string) []types.Address {
	return []types.Address{
		types.StandardAddress(standardID),
		types.AgentAddress(publicKeyHex),
		types.OrganizationAddress(orgID),
	}
}

// IssueCertificateInputs covers the acting agent, the certifying body,
// the certificate, the receiving factory, the standard, and, for
// request-sourced issuance, the originating request.
func IssueCertificateInputs(publicKeyHex string, cert IssueCertificate) []types.Address {
	inputs := []types.Address{
		types.AgentAddress(publicKeyHex),
		types.OrganizationAddress(cert.CertifyingBodyID),
		types.CertificateAddress(cert.ID),
		types.OrganizationAddress(cert.FactoryID),
		types.StandardAddress(cert.StandardID),
	}
	if cert.Source == FromRequest {
		inputs = append(inputs, types.RequestAddress(cert.RequestID))
	}
	return inputs
}

// IssueCertificateOutputs covers the certificate record, plus the
// request record when issuance closes a request.
func IssueCertificateOutputs(cert IssueCertificate) []types.Address {
	outputs := []types.Address{types.CertificateAddress(cert.ID)}
	if cert.Source == FromRequest {
		outputs = append(outputs, types.RequestAddress(cert.RequestID))
	}
	return outputs
}

// UpdateCertificateInputs covers the acting agent, the certifying
// body, and the certificate being updated.
func UpdateCertificateInputs(publicKeyHex, certifyingBodyID, certID string) []types.Address {
	return []types.Address{
		types.AgentAddress(publicKeyHex),
		types.OrganizationAddress(certifyingBodyID),
		types.CertificateAddress(certID),
	}
}

// UpdateCertificateOutputs covers the certificate record alone.
func UpdateCertificateOutputs(certID string) []types.Address {
	return []types.Address{types.CertificateAddress(certID)}
}

// AccreditationInputs covers the standard, the acting agent, and both
// organizations party to the accreditation.
func AccreditationInputs(publicKeyHex string, acc AccreditCertifyingBody) []types.Address {
	return []types.Address{
		types.StandardAddress(acc.StandardID),
		types.AgentAddress(publicKeyHex),
		types.OrganizationAddress(acc.CertifyingBodyID),
		types.OrganizationAddress(acc.StandardsBodyID),
	}
}

// AccreditationOutputs covers the certifying body's accreditation
// list.
func AccreditationOutputs(acc AccreditCertifyingBody) []types.Address {
	return []types.Address{types.OrganizationAddress(acc.CertifyingBodyID)}
}

// AssertionAddresses returns the footprint shared by all assertion
// kinds: the asserting agent and the assertion record, plus the
// address of the entity being asserted into existence.
func AssertionAddresses(publicKeyHex, assertionID string, entity types.Address) []types.Address {
	return []types.Address{
		types.AgentAddress(publicKeyHex),
		types.AssertionAddress(assertionID),
		entity,
	}
}

// TransferAssertionAddresses covers the acting agent and the assertion
// being transferred.
func TransferAssertionAddresses(publicKeyHex, assertionID string) []types.Address {
	return []types.Address{
		types.AgentAddress(publicKeyHex),
		types.AssertionAddress(assertionID),
	}
}
