package payload_test

import (
	"bytes"
	"testing"

	"github.com/certsource/certreg/payload"
	"github.com/certsource/certreg/types"
)

func TestEncodeDeterminism(t *testing.T) {
	p := payload.Payload{
		Action: payload.ActionCreateOrganization,
		CreateOrganization: &payload.CreateOrganization{
			ID:   "org-1",
			Name: "Acme Certification",
			Type: payload.CertifyingBody,
			Contacts: []payload.Contact{
				{Name: "Dana", PhoneNumber: "555-0100", LanguageCode: "en"},
			},
		},
	}
	first, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("payload encoding is not deterministic")
	}
}

func TestDecodePreservesAction(t *testing.T) {
	p := payload.Payload{
		Action:      payload.ActionCreateAgent,
		CreateAgent: &payload.CreateAgent{Name: "bob@example.com", Timestamp: 1700000000},
	}
	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := payload.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Action != payload.ActionCreateAgent {
		t.Errorf("action = %v, want %v", got.Action, payload.ActionCreateAgent)
	}
	if got.CreateAgent == nil || got.CreateAgent.Name != "bob@example.com" {
		t.Errorf("create agent body lost in round trip: %+v", got.CreateAgent)
	}
}

func TestStandardIDDeterminism(t *testing.T) {
	if payload.StandardID("ISO 9001") != payload.StandardID("ISO 9001") {
		t.Error("StandardID not deterministic")
	}
	if payload.StandardID("ISO 9001") == payload.StandardID("ISO 14001") {
		t.Error("distinct standard names produced the same ID")
	}
}

// The signer's own agent record is always part of an action's read
// set.
func TestAddressSetsIncludeActingAgent(t *testing.T) {
	pub := "02deadbeef"
	agent := types.AgentAddress(pub)

	sets := map[string][]types.Address{
		"create agent":  payload.CreateAgentAddresses(pub),
		"organization":  payload.OrganizationAddresses(pub, "org-1"),
		"standard":      payload.StandardAddresses(pub, "std-1", "org-1"),
		"update cert":   payload.UpdateCertificateInputs(pub, "org-1", "cert-1"),
		"authorize":     payload.AuthorizeAgentInputs(pub, "org-1", "03cafe"),
		"assertion":     payload.AssertionAddresses(pub, "as-1", types.OrganizationAddress("org-2")),
		"transfer":      payload.TransferAssertionAddresses(pub, "as-1"),
		"accreditation": payload.AccreditationInputs(pub, payload.AccreditCertifyingBody{}),
	}
	for name, set := range sets {
		found := false
		for _, a := range set {
			if a == agent {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s input set is missing the acting agent's address", name)
		}
	}
}

func TestIssueCertificateFootprint(t *testing.T) {
	cert := payload.IssueCertificate{
		ID:               "cert-1",
		CertifyingBodyID: "cb-1",
		FactoryID:        "fac-1",
		StandardID:       "std-1",
		Source:           payload.FromRequest,
		RequestID:        "req-1",
	}
	inputs := payload.IssueCertificateInputs("02aa", cert)
	outputs := payload.IssueCertificateOutputs(cert)

	wantIn := types.RequestAddress("req-1")
	if inputs[len(inputs)-1] != wantIn {
		t.Errorf("request-sourced issuance must read the request record")
	}
	if len(outputs) != 2 {
		t.Errorf("request-sourced issuance writes certificate and request, got %d outputs", len(outputs))
	}

	cert.Source = payload.Independent
	cert.RequestID = ""
	if len(payload.IssueCertificateOutputs(cert)) != 1 {
		t.Errorf("independent issuance writes only the certificate")
	}
}
