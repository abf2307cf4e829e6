// Package certreg is the client SDK for the certificate registry
// ledger: deterministic state addressing, signed transaction and batch
// assembly, and batch submission with commit confirmation against the
// registry's REST gateway.
//
// The pipeline is built on two seams. [Signer] produces the header
// signatures that double as transaction and batch identifiers.
// [Gateway] carries encoded batch lists to the ledger and reports
// their commit status; the REST client and the offline file adapter
// both implement it.
package certreg

import (
	"context"

	"github.com/certsource/certreg/types"
)

// Signer produces signatures over serialized header bytes under the
// registry's fixed secp256k1 scheme.
//
// A Signer is read-only and safe to reuse across many transactions and
// batches within one invocation.
type Signer interface {
	// PublicKeyHex returns the signer's compressed public key as
	// lowercase hex.
	PublicKeyHex() string

	// Sign returns the compact r||s signature of msg as lowercase hex.
	Sign(msg []byte) (string, error)
}

// Gateway is a transport-agnostic connection to the registry's batch
// intake.
//
// A submission is accepted, not committed: SubmitBatchList resolves as
// soon as the gateway has taken custody of the batch list, and the
// returned link is the handle to poll for the eventual outcome.
type Gateway interface {
	// SubmitBatchList transmits the encoded batch list and returns the
	// status link identifying where to poll for the outcome.
	SubmitBatchList(ctx context.Context, list *types.BatchList) (string, error)

	// BatchStatus fetches the current status of a prior submission.
	// The link already carries its own query prefix; implementations
	// may ask the gateway to block server-side until a change occurs.
	BatchStatus(ctx context.Context, link string) (*types.StatusData, error)
}
