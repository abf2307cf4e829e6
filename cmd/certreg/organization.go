package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
)

func (a *app) runOrganization(args []string) error {
	if len(args) == 0 {
		return &certreg.InputError{Msg: "organization: want create or update"}
	}
	switch args[0] {
	case "create":
		return a.organizationCreate(args[1:])
	case "update":
		return a.organizationUpdate(args[1:])
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("organization: unknown subcommand %q", args[0])}
	}
}

func (a *app) organizationCreate(args []string) error {
	fs := pflag.NewFlagSet("organization create", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	id := fs.String("id", "", "organization id (defaults to a new UUID)")
	addr := newAddressFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "name", "type", "contact_name", "phone_number", "language_code")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	orgType, err := parseOrgType(pos[1])
	if err != nil {
		return err
	}
	var factoryAddr *payload.FactoryAddress
	if orgType == payload.Factory {
		factoryAddr, err = addr.factoryAddress()
		if err != nil {
			return err
		}
	}

	orgID := *id
	if orgID == "" {
		orgID = uuid.NewString()
	}

	p := payload.Payload{
		Action: payload.ActionCreateOrganization,
		CreateOrganization: &payload.CreateOrganization{
			ID:   orgID,
			Name: pos[0],
			Type: orgType,
			Contacts: []payload.Contact{{
				Name:         pos[2],
				PhoneNumber:  pos[3],
				LanguageCode: pos[4],
			}},
			Address: factoryAddr,
		},
	}
	addrs := payload.OrganizationAddresses(signer.PublicKeyHex(), orgID)
	if err := a.submit(*url, signer, p, addrs, addrs); err != nil {
		return err
	}
	a.log.Infow("organization created", "id", orgID, "name", pos[0])
	return nil
}

func (a *app) organizationUpdate(args []string) error {
	fs := pflag.NewFlagSet("organization update", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	addr := newAddressFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "organization_id", "name", "contact_name", "phone_number", "language_code")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	var factoryAddr *payload.FactoryAddress
	if !addr.empty() {
		factoryAddr, err = addr.factoryAddress()
		if err != nil {
			return err
		}
	}

	p := payload.Payload{
		Action: payload.ActionUpdateOrganization,
		UpdateOrganization: &payload.UpdateOrganization{
			ID:   pos[0],
			Name: pos[1],
			Contacts: []payload.Contact{{
				Name:         pos[2],
				PhoneNumber:  pos[3],
				LanguageCode: pos[4],
			}},
			Address: factoryAddr,
		},
	}
	addrs := payload.OrganizationAddresses(signer.PublicKeyHex(), pos[0])
	return a.submit(*url, signer, p, addrs, addrs)
}
