// Command certreg is the certificate registry client. It assembles
// signed transactions for registry actions, submits them to a REST
// gateway as atomic batches, and waits for the commit outcome.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/config"
)

const usage = `usage: certreg <command> [arguments]

Commands:
  keygen [name]            generate and store a signing key pair
  agent create             register the signing key as a named agent
  agent authorize          grant an agent a role in an organization
  organization create      register an organization
  organization update      replace an organization's contact and address
  certificate create       issue a certificate to a factory
  certificate update       replace a certificate's validity window
  standard create          register a standard for a standards body
  accreditation create     accredit a certifying body for a standard
  assertion factory        assert an unregistered factory
  assertion certificate    assert an unregistered certificate
  assertion standard       assert an unregistered standard
  assertion transfer       claim an asserted fact as its subject
  genesis                  build a network bootstrap batch file

Run certreg <command> --help for command flags.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Print(usage)
		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a := &app{cfg: cfg, log: logger.Sugar()}

	switch args[0] {
	case "keygen":
		return a.runKeygen(args[1:])
	case "agent":
		return a.runAgent(args[1:])
	case "organization":
		return a.runOrganization(args[1:])
	case "certificate":
		return a.runCertificate(args[1:])
	case "standard":
		return a.runStandard(args[1:])
	case "accreditation":
		return a.runAccreditation(args[1:])
	case "assertion":
		return a.runAssertion(args[1:])
	case "genesis":
		return a.runGenesis(args[1:])
	default:
		return &certreg.InputError{Msg: fmt.Sprintf("unknown command %q, run certreg help", args[0])}
	}
}
