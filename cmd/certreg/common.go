package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/config"
	"github.com/certsource/certreg/payload"
	certrest "github.com/certsource/certreg/rest"
	"github.com/certsource/certreg/signing"
	"github.com/certsource/certreg/submit"
	"github.com/certsource/certreg/txn"
	"github.com/certsource/certreg/types"
)

type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

// commonFlags attaches the flags every submitting command shares.
func (a *app) commonFlags(fs *pflag.FlagSet) (url, key *string) {
	url = fs.String("url", a.cfg.GatewayURL, "gateway base URL")
	key = fs.StringP("key", "k", a.cfg.KeyName, "name of the signing key file pair")
	return url, key
}

func (a *app) signer(name string) (*signing.Signer, error) {
	return signing.Load(a.cfg.KeyDir, name)
}

// submit wraps one payload into a single-transaction batch list and
// drives it to a terminal outcome. Ctrl-C cancels the poll loop.
func (a *app) submit(url string, signer *signing.Signer, p payload.Payload, inputs, outputs []types.Address) error {
	encoded, err := p.Encode()
	if err != nil {
		return &certreg.SerializationError{What: p.Action.String() + " payload", Err: err}
	}
	transaction, err := txn.NewTransaction(signer, encoded, inputs, outputs)
	if err != nil {
		return err
	}
	batch, err := txn.NewBatch(signer, transaction)
	if err != nil {
		return err
	}

	gw, err := certrest.New(url)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := &submit.Waiter{
		Interval:    a.cfg.PollInterval,
		MaxAttempts: a.cfg.MaxPollAttempts,
		Logger:      a.log,
	}
	if err := w.Run(ctx, gw, txn.NewBatchList(batch)); err != nil {
		return err
	}
	a.log.Infow("action committed", "action", p.Action.String(), "batch", batch.ID())
	return nil
}

// positionals checks the remaining argument count against the expected
// names and returns them.
func positionals(fs *pflag.FlagSet, names ...string) ([]string, error) {
	if fs.NArg() != len(names) {
		return nil, &certreg.InputError{
			Msg: fmt.Sprintf("want arguments <%s>, got %d", strings.Join(names, "> <"), fs.NArg()),
		}
	}
	return fs.Args(), nil
}

func parseEpoch(arg, what string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, &certreg.InputError{Msg: fmt.Sprintf("%s: want epoch seconds, got %q", what, arg)}
	}
	return v, nil
}

// parseCertData turns repeated field=value flags into certificate data.
func parseCertData(pairs []string) ([]payload.CertificateDatum, error) {
	var data []payload.CertificateDatum
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, &certreg.InputError{Msg: fmt.Sprintf("certificate data: want field=value, got %q", pair)}
		}
		data = append(data, payload.CertificateDatum{Field: field, Data: value})
	}
	return data, nil
}

func parseOrgType(s string) (payload.OrganizationType, error) {
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
			Msg: fmt.Sprintf("organization type: want certifying_body, standards_body, factory or ingestion, got %q", s),
		}
	}
}

// addressFlags attaches the factory street address flags.
type addressFlags struct {
	street1 *string
	street2 *string
	city    *string
	state   *string
	postal  *string
	country *string
}

func newAddressFlags(fs *pflag.FlagSet) addressFlags {
	return addressFlags{
		street1: fs.String("street", "", "street address, first line"),
		street2: fs.String("street2", "", "street address, second line"),
		city:    fs.String("city", "", "city"),
		state:   fs.String("state", "", "state or province"),
		postal:  fs.String("postal-code", "", "postal code"),
		country: fs.String("country", "", "country"),
	}
}

// factoryAddress validates the required fields and builds the address.
func (f addressFlags) factoryAddress() (*payload.FactoryAddress, error) {
	if *f.street1 == "" || *f.city == "" || *f.country == "" {
		return nil, &certreg.InputError{Msg: "factory address needs --street, --city and --country"}
	}
	return &payload.FactoryAddress{
		StreetLine1:   *f.street1,
		StreetLine2:   *f.street2,
		City:          *f.city,
		StateProvince: *f.state,
		PostalCode:    *f.postal,
		Country:       *f.country,
	}, nil
}

// empty reports whether no address flag was given.
func (f addressFlags) empty() bool {
	return *f.street1 == "" && *f.street2 == "" && *f.city == "" &&
		*f.state == "" && *f.postal == "" && *f.country == ""
}
