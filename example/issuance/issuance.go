// Package issuance demonstrates the full client pipeline: build an
// issue-certificate payload, wrap it in a signed transaction and an
// atomic batch, submit the batch list through a Gateway, and wait for
// the commit outcome.
//
// It works against any Gateway, so the same code runs against the REST
// client, the offline file gateway, or a test double.
package issuance

import (
	"context"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/payload"
	"github.com/certsource/certreg/submit"
	"github.com/certsource/certreg/txn"
)

// Issue submits one certificate issuance and blocks until the ledger
// commits or rejects it. The signer must belong to an agent with a
// transactor role in the certifying body.
func Issue(ctx context.Context, gw certreg.Gateway, signer certreg.Signer, cert payload.IssueCertificate) error {
	p := payload.Payload{
		Action:           payload.ActionIssueCertificate,
		IssueCertificate: &cert,
	}
	encoded, err := p.Encode()
	if err != nil {
		return &certreg.SerializationError{What: "issue certificate payload", Err: err}
	}

	transaction, err := txn.NewTransaction(signer, encoded,
		payload.IssueCertificateInputs(signer.PublicKeyHex(), cert),
		payload.IssueCertificateOutputs(cert))
	if err != nil {
		return err
	}
	batch, err := txn.NewBatch(signer, transaction)
	if err != nil {
		return err
	}

	w := &submit.Waiter{}
	return w.Run(ctx, gw, txn.NewBatchList(batch))
}
