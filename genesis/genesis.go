// Package genesis builds the batch list that bootstraps a new registry
// network from a YAML descriptor.
//
// The descriptor is a list of agents. Each agent gets a freshly
// generated keypair and a create-agent batch; an agent may additionally
// carry one organization (with its standards, for standards bodies),
// producing create-organization and create-standard batches signed with
// the same key. The resulting list is staged to a batch file through
// the offline gateway rather than submitted over the network.
package genesis

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
	"github.com/certsource/certreg/signing"
	"github.com/certsource/certreg/txn"
	"github.com/certsource/certreg/types"
)

// Agent is one entry of the descriptor.
type Agent struct {
	Email        string        `yaml:"email"`
	Organization *Organization `yaml:"organization"`
}

// Organization describes the organization an agent founds at genesis.
type Organization struct {
	ID        string     `yaml:"id"`
	Type      string     `yaml:"type"`
	Name      string     `yaml:"name"`
	Contact   Contact    `yaml:"contact"`
	Address   *Address   `yaml:"address"`
	Standards []Standard `yaml:"standards"`
}

// Contact is the organization's point of contact.
type Contact struct {
	Name         string `yaml:"name"`
	PhoneNumber  string `yaml:"phone_number"`
	LanguageCode string `yaml:"language_code"`
}

// Address is a factory's physical address.
type Address struct {
	StreetLine1   string `yaml:"street_line_1"`
	StreetLine2   string `yaml:"street_line_2"`
	City          string `yaml:"city"`
	StateProvince string `yaml:"state_province"`
	PostalCode    string `yaml:"postal_code"`
	Country       string `yaml:"country"`
}

// Standard describes a standard a standards body registers at genesis.
type Standard struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Description  string `yaml:"description"`
	Link         string `yaml:"link"`
	ApprovalDate Date   `yaml:"approval_date"`
}

// Date is a YYYY/MM/DD descriptor date held as epoch seconds.
type Date uint64

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	t, err := time.Parse("2006/01/02", s)
	if err != nil {
		return fmt.Errorf("approval date %q: want YYYY/MM/DD", s)
	}
	*d = Date(t.Unix())
	return nil
}

// Parse reads a YAML descriptor.
func Parse(r io.Reader) ([]Agent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}
	var agents []Agent
	if err := yaml.Unmarshal(data, &agents); err != nil {
		return nil, &certreg.SerializationError{What: "genesis descriptor", Err: err}
	}
	return agents, nil
}

// Result carries the generated batch list plus the keypair generated
// for each descriptor agent, indexed by email.
type Result struct {
	List *types.BatchList
	Keys map[string]*signing.Signer
}

// Build generates a keypair per agent and assembles the genesis batch
// list. Batches are ordered so that each agent exists before its
// organization and each standards body before its standards.
func Build(agents []Agent, now time.Time) (*Result, error) {
	result := &Result{Keys: make(map[string]*signing.Signer, len(agents))}
	var batches []types.Batch

	for _, agent := range agents {
		if agent.Email == "" {
			return nil, &certreg.InputError{Msg: "descriptor agent without an email"}
		}
		if _, dup := result.Keys[agent.Email]; dup {
			return nil, &certreg.InputError{Msg: fmt.Sprintf("duplicate descriptor agent %s", agent.Email)}
		}

		signer, err := signing.NewRandom()
		if err != nil {
			return nil, err
		}
		result.Keys[agent.Email] = signer

		agentBatch, err := buildBatch(signer, payload.Payload{
			Action: payload.ActionCreateAgent,
			CreateAgent: &payload.CreateAgent{
				Name:      agent.Email,
				Timestamp: uint64(now.Unix()),
			},
		}, payload.CreateAgentAddresses(signer.PublicKeyHex()))
		if err != nil {
			return nil, err
		}
		batches = append(batches, agentBatch)

		if agent.Organization == nil {
			continue
		}
		orgBatches, err := buildOrganization(signer, agent.Email, *agent.Organization)
		if err != nil {
			return nil, err
		}
		batches = append(batches, orgBatches...)
	}

	result.List = txn.NewBatchList(batches...)
	return result, nil
}

func buildOrganization(signer *signing.Signer, email string, org Organization) ([]types.Batch, error) {
	orgType, err := organizationType(org.Type)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", email, err)
	}
	if org.ID == "" {
		return nil, &certreg.InputError{Msg: fmt.Sprintf("agent %s: organization without an id", email)}
	}
	if org.Name == "" {
		return nil, &certreg.InputError{Msg: fmt.Sprintf("agent %s: organization without a name", email)}
	}

	var factoryAddr *payload.FactoryAddress
	if orgType == payload.Factory {
		if org.Address == nil || org.Address.StreetLine1 == "" || org.Address.City == "" || org.Address.Country == "" {
			return nil, &certreg.InputError{
				Msg: fmt.Sprintf("agent %s: factory %s needs street, city and country", email, org.Name),
			}
		}
		factoryAddr = &payload.FactoryAddress{
			StreetLine1:   org.Address.StreetLine1,
			StreetLine2:   org.Address.StreetLine2,
			City:          org.Address.City,
			StateProvince: org.Address.StateProvince,
			PostalCode:    org.Address.PostalCode,
			Country:       org.Address.Country,
		}
	}
	if len(org.Standards) > 0 && orgType != payload.StandardsBody {
		return nil, &certreg.InputError{
			Msg: fmt.Sprintf("agent %s: only standards bodies carry standards", email),
		}
	}

	orgBatch, err := buildBatch(signer, payload.Payload{
		Action: payload.ActionCreateOrganization,
		CreateOrganization: &payload.CreateOrganization{
			ID:   org.ID,
			Name: org.Name,
			Type: orgType,
			Contacts: []payload.Contact{{
				Name:         org.Contact.Name,
				PhoneNumber:  org.Contact.PhoneNumber,
				LanguageCode: org.Contact.LanguageCode,
			}},
			Address: factoryAddr,
		},
	}, payload.OrganizationAddresses(signer.PublicKeyHex(), org.ID))
	if err != nil {
		return nil, err
	}
	batches := []types.Batch{orgBatch}

	for _, std := range org.Standards {
		standardID := payload.StandardID(std.Name)
		stdBatch, err := buildBatch(signer, payload.Payload{
			Action: payload.ActionCreateStandard,
			CreateStandard: &payload.CreateStandard{
				StandardID:   standardID,
				Name:         std.Name,
				Version:      std.Version,
				Description:  std.Description,
				Link:         std.Link,
				ApprovalDate: uint64(std.ApprovalDate),
			},
		}, payload.StandardAddresses(signer.PublicKeyHex(), standardID, org.ID))
		if err != nil {
			return nil, err
		}
		batches = append(batches, stdBatch)
	}
	return batches, nil
}

// buildBatch wraps one payload into a single-transaction batch. Every
// genesis action reads and writes the same address set.
func buildBatch(signer *signing.Signer, p payload.Payload, addrs []types.Address) (types.Batch, error) {
	encoded, err := p.Encode()
	if err != nil {
		return types.Batch{}, &certreg.SerializationError{What: p.Action.String() + " payload", Err: err}
	}
	transaction, err := txn.NewTransaction(signer, encoded, addrs, addrs)
	if err != nil {
		return types.Batch{}, err
	}
	return txn.NewBatch(signer, transaction)
}

func organizationType(s string) (payload.OrganizationType, error) {
	switch s {
	case "certifying_body":
		return payload.CertifyingBody, nil
	case "standards_body":
		return payload.StandardsBody, nil
	case "factory":
		return payload.Factory, nil
	case "ingestion":
		return payload.Ingestion, nil
	default:
		return payload.OrganizationUnset, &certreg.InputError{
			Msg: fmt.Sprintf("unknown organization type %q", s),
		}
	}
}

// StoreKeys escrows every generated keypair under dir, one key file
// pair per agent named by email.
func StoreKeys(result *Result, dir string) error {
	for email, signer := range result.Keys {
		if err := signing.Store(dir, email, signer); err != nil {
			return err
		}
	}
	return nil
}
