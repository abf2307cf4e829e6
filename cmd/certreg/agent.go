package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
	"github.com/certsource/certreg/signing"
)

func (a *app) runKeygen(args []string) error {
	fs := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite an existing key pair")
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := a.cfg.KeyName
	if fs.NArg() > 1 {
		return &certreg.InputError{Msg: "keygen: want at most one name argument"}
	}
	if fs.NArg() == 1 {
		name = fs.Arg(0)
	}

	if !*force {
		if _, err := signing.Load(a.cfg.KeyDir, name); err == nil {
			return &certreg.InputError{Msg: fmt.Sprintf("key %q already exists, use --force to overwrite", name)}
		}
	}
	signer, err := signing.NewRandom()
	if err != nil {
		return err
	}
	if err := signing.Store(a.cfg.KeyDir, name, signer); err != nil {
		return err
	}
	a.log.Infow("key pair written", "name", name, "dir", a.cfg.KeyDir, "public_key", signer.PublicKeyHex())
	return nil
}

func (a *app) runAgent(args []string) error {
	if len(args) == 0 {
		return &certreg.InputError{Msg: "agent: want create or authorize"}
	}
	switch args[0] {
	case "create":
		return a.agentCreate(args[1:])
	case "authorize":
		return a.agentAuthorize(args[1:])
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("agent: unknown subcommand %q", args[0])}
	}
}

func (a *app) agentCreate(args []string) error {
	fs := pflag.NewFlagSet("agent create", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "name")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	p := payload.Payload{
		Action: payload.ActionCreateAgent,
		CreateAgent: &payload.CreateAgent{
			Name:      pos[0],
			Timestamp: uint64(time.Now().Unix()),
		},
	}
	addrs := payload.CreateAgentAddresses(signer.PublicKeyHex())
	return a.submit(*url, signer, p, addrs, addrs)
}

func (a *app) agentAuthorize(args []string) error {
	fs := pflag.NewFlagSet("agent authorize", pflag.ContinueOnError)
	url, key := a.commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos, err := positionals(fs, "public_key", "organization_id", "role")
	if err != nil {
		return err
	}
	signer, err := a.signer(*key)
	if err != nil {
		return err
	}

	var role payload.AgentRole
	switch pos[2] {
	case "admin":
		role = payload.RoleAdmin
	case "transactor":
		role = payload.RoleTransactor
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("role: want admin or transactor, got %q", pos[2])}
	}

	p := payload.Payload{
		Action: payload.ActionAuthorizeAgent,
		AuthorizeAgent: &payload.AuthorizeAgent{
			PublicKey: pos[0],
			Role:      role,
		},
	}
	return a.submit(*url, signer, p,
		payload.AuthorizeAgentInputs(signer.PublicKeyHex(), pos[1], pos[0]),
		payload.AuthorizeAgentOutputs(pos[1], pos[0]))
}
