package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
)

func (a *app) runCertificate(args []string) error {
	if len(args) == 0 {
		return &certreg.InputError{Msg: "certificate: want create or update"}
	}
	switch args[0] {
	case "create":
		return a.certificateCreate(args[1:])
	case "update":
		return a.certificateUpdate(args[1:])
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("certificate: unknown subcommand %q", args[0])}
	}
}

func (a *app) certificateCreate(args []string) error {
	fs := pflag.NewFlagSet("certificate create", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	id := fs.String("id", "", "certificate id (defaults to a new UUID)")
	requestID := fs.String("request", "", "request id, required for the request source")
	factoryName := fs.String("factory-name", "", "factory name, required for the independent source")
	dataPairs := fs.StringArray("data", nil, "certificate data as field=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "certifying_body_id", "factory_id", "source", "standard_id", "valid_from", "valid_to")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	var source payload.CertificateSource
	switch pos[2] {
	case "request":
		source = payload.FromRequest
		if *requestID == "" {
			return &certreg.InputError{Msg: "request source needs --request"}
		}
	case "independent":
		source = payload.Independent
		if *factoryName == "" {
			return &certreg.InputError{Msg: "independent source needs --factory-name"}
		}
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("source: want request or independent, got %q", pos[2])}
	}

	validFrom, err := parseEpoch(pos[4], "valid_from")
	if err != nil {
		return err
	}
	validTo, err := parseEpoch(pos[5], "valid_to")
	if err != nil {
		return err
	}
	data, err := parseCertData(*dataPairs)
	if err != nil {
		return err
	}

	certID := *id
	if certID == "" {
		certID = uuid.NewString()
	}

	cert := payload.IssueCertificate{
		ID:               certID,
		CertifyingBodyID: pos[0],
		FactoryID:        pos[1],
		Source:           source,
		RequestID:        *requestID,
		FactoryName:      *factoryName,
		StandardID:       pos[3],
		Data:             data,
		ValidFrom:        validFrom,
		ValidTo:          validTo,
	}
	p := payload.Payload{Action: payload.ActionIssueCertificate, IssueCertificate: &cert}
	if err := a.submit(*url, signer, p,
		payload.IssueCertificateInputs(signer.PublicKeyHex(), cert),
		payload.IssueCertificateOutputs(cert)); err != nil {
		return err
	}
	a.log.Infow("certificate issued", "id", certID)
	return nil
}

func (a *app) certificateUpdate(args []string) error {
	fs := pflag.NewFlagSet("certificate update", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	dataPairs := fs.StringArray("data", nil, "certificate data as field=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "certificate_id", "certifying_body_id", "valid_from", "valid_to")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	validFrom, err := parseEpoch(pos[2], "valid_from")
	if err != nil {
		return err
	}
	validTo, err := parseEpoch(pos[3], "valid_to")
	if err != nil {
		return err
	}
	data, err := parseCertData(*dataPairs)
	if err != nil {
		return err
	}

	p := payload.Payload{
		Action: payload.ActionUpdateCertificate,
		UpdateCertificate: &payload.UpdateCertificate{
			ID:               pos[0],
			CertifyingBodyID: pos[1],
			ValidFrom:        validFrom,
			ValidTo:          validTo,
			Data:             data,
		},
	}
	return a.submit(*url, signer, p,
		payload.UpdateCertificateInputs(signer.PublicKeyHex(), pos[1], pos[0]),
		payload.UpdateCertificateOutputs(pos[0]))
}
