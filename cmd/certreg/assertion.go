package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
	"github.com/certsource/certreg/types"
)

// Assertions record facts about entities that have no on-ledger owner
// yet, signed by a third party such as an ingestion service.

func (a *app) runAssertion(args []string) error {
	if len(args) == 0 {
		return &certreg.InputError{Msg: "assertion: want factory, certificate, standard or transfer"}
	}
	switch args[0] {
	case "factory":
		return a.assertFactory(args[1:])
	case "certificate":
		return a.assertCertificate(args[1:])
	case "standard":
		return a.assertStandard(args[1:])
	case "transfer":
		return a.assertionTransfer(args[1:])
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("assertion: unknown subcommand %q", args[0])}
	}
}

func (a *app) assertFactory(args []string) error {
	fs := pflag.NewFlagSet("assertion factory", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	assertionID := fs.String("id", "", "assertion id (defaults to a new UUID)")
	factoryID := fs.String("factory-id", "", "id for the asserted factory (defaults to a new UUID)")
	addr := newAddressFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "name", "contact_name", "phone_number", "language_code")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	factoryAddr, err := addr.factoryAddress()
	if err != nil {
		return err
	}

	aid := *assertionID
	if aid == "" {
		aid = uuid.NewString()
	}
	fid := *factoryID
	if fid == "" {
		fid = uuid.NewString()
	}

	p := payload.Payload{
		Action: payload.ActionAssertFact,
		AssertFact: &payload.AssertFact{
			AssertionID: aid,
			NewFactory: &payload.CreateOrganization{
				ID:   fid,
				Name: pos[0],
				Type: payload.Factory,
				Contacts: []payload.Contact{{
					Name:         pos[1],
					PhoneNumber:  pos[2],
					LanguageCode: pos[3],
				}},
				Address: factoryAddr,
			},
		},
	}
	addrs := payload.AssertionAddresses(signer.PublicKeyHex(), aid, types.OrganizationAddress(fid))
	if err := a.submit(*url, signer, p, addrs, addrs); err != nil {
		return err
	}
	a.log.Infow("factory asserted", "assertion", aid, "factory", fid)
	return nil
}

func (a *app) assertCertificate(args []string) error {
	fs := pflag.NewFlagSet("assertion certificate", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	assertionID := fs.String("id", "", "assertion id (defaults to a new UUID)")
	certID := fs.String("certificate-id", "", "id for the asserted certificate (defaults to a new UUID)")
	factoryName := fs.String("factory-name", "", "name of the factory the certificate covers")
	dataPairs := fs.StringArray("data", nil, "certificate data as field=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "certifying_body_id", "factory_id", "standard_id", "valid_from", "valid_to")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	validFrom, err := parseEpoch(pos[3], "valid_from")
	if err != nil {
		return err
	}
	validTo, err := parseEpoch(pos[4], "valid_to")
	if err != nil {
		return err
	}
	data, err := parseCertData(*dataPairs)
	if err != nil {
		return err
	}

	aid := *assertionID
	if aid == "" {
		aid = uuid.NewString()
	}
	cid := *certID
	if cid == "" {
		cid = uuid.NewString()
	}

	p := payload.Payload{
		Action: payload.ActionAssertFact,
		AssertFact: &payload.AssertFact{
			AssertionID: aid,
			NewCertificate: &payload.IssueCertificate{
				ID:               cid,
				CertifyingBodyID: pos[0],
				FactoryID:        pos[1],
				Source:           payload.Independent,
				FactoryName:      *factoryName,
				StandardID:       pos[2],
				Data:             data,
				ValidFrom:        validFrom,
				ValidTo:          validTo,
			},
		},
	}
	addrs := payload.AssertionAddresses(signer.PublicKeyHex(), aid, types.CertificateAddress(cid))
	if err := a.submit(*url, signer, p, addrs, addrs); err != nil {
		return err
	}
	a.log.Infow("certificate asserted", "assertion", aid, "certificate", cid)
	return nil
}

func (a *app) assertStandard(args []string) error {
	fs := pflag.NewFlagSet("assertion standard", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	assertionID := fs.String("id", "", "assertion id (defaults to a new UUID)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "name", "version", "description", "link", "approval_date")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	approval, err := parseEpoch(pos[4], "approval_date")
	if err != nil {
		return err
	}

	aid := *assertionID
	if aid == "" {
		aid = uuid.NewString()
	}
	standardID := payload.StandardID(pos[0])

	p := payload.Payload{
		Action: payload.ActionAssertFact,
		AssertFact: &payload.AssertFact{
			AssertionID: aid,
			NewStandard: &payload.CreateStandard{
				StandardID:   standardID,
				Name:         pos[0],
				Version:      pos[1],
				Description:  pos[2],
				Link:         pos[3],
				ApprovalDate: approval,
			},
		},
	}
	addrs := payload.AssertionAddresses(signer.PublicKeyHex(), aid, types.StandardAddress(standardID))
	if err := a.submit(*url, signer, p, addrs, addrs); err != nil {
		return err
	}
	a.log.Infow("standard asserted", "assertion", aid, "standard", standardID)
	return nil
}

func (a *app) assertionTransfer(args []string) error {
	fs := pflag.NewFlagSet("assertion transfer", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "assertion_id")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	p := payload.Payload{
		Action:            payload.ActionTransferAssertion,
		TransferAssertion: &payload.TransferAssertion{AssertionID: pos[0]},
	}
	addrs := payload.TransferAssertionAddresses(signer.PublicKeyHex(), pos[0])
	return a.submit(*url, signer, p, addrs, addrs)
}
