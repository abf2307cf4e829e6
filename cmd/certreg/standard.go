package main

import (
	"github.com/spf13/pflag"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
)

func (a *app) runStandard(args []string) error {
	if len(args) == 0 || args[0] != "create" {
		return &certreg.InputError{Msg: "standard: want create"}
	}
	return a.standardCreate(args[1:])
}

func (a *app) standardCreate(args []string) error {
	fs := pflag.NewFlagSet("standard create", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "name", "version", "description", "link", "organization_id", "approval_date")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	approval, err := parseEpoch(pos[5], "approval_date")
	if err != nil {
		return err
	}

	standardID := payload.StandardID(pos[0])
	p := payload.Payload{
		Action: payload.ActionCreateStandard,
		CreateStandard: &payload.CreateStandard{
			StandardID:   standardID,
			Name:         pos[0],
			Version:      pos[1],
			Description:  pos[2],
			Link:         pos[3],
			ApprovalDate: approval,
		},
	}
	addrs := payload.StandardAddresses(signer.PublicKeyHex(), standardID, pos[4])
	if err := a.submit(*url, signer, p, addrs, addrs); err != nil {
		return err
	}
	a.log.Infow("standard created", "id", standardID, "name", pos[0])
	return nil
}

func (a *app) runAccreditation(args []string) error {
	if len(args) == 0 || args[0] != "create" {
		return &certreg.InputError{Msg: "accreditation: want create"}
	}
	return a.accreditationCreate(args[1:])
}

func (a *app) accreditationCreate(args []string) error {
	fs := pflag.NewFlagSet("accreditation create", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "certifying_body_id", "standards_body_id", "standard_id", "valid_from", "valid_to")
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

	acc := payload.AccreditCertifyingBody{
		CertifyingBodyID: pos[0],
		StandardsBodyID:  pos[1],
		StandardID:       pos[2],
		ValidFrom:        validFrom,
		ValidTo:          validTo,
	}
	p := payload.Payload{Action: payload.ActionAccreditCertifyingBody, AccreditCertifyingBody: &acc}
	return a.submit(*url, signer, p,
		payload.AccreditationInputs(signer.PublicKeyHex(), acc),
		payload.AccreditationOutputs(acc))
}
