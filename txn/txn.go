// Package txn assembles signed transactions, batches, and batch lists
// for submission to the certificate registry.
//
// Batching policy is a caller choice, never inferred: NewBatch places
// many transactions into one atomic unit, NewBatches maps each
// transaction into its own independently signed batch.
package txn

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/certsource/certreg"
	"github.com/certsource/certreg/types"
)

// nonce returns a time-derived uniqueness value so textually identical
// payloads submitted in rapid succession still produce distinct header
// bytes and therefore distinct transaction IDs.
func nonce() string {
	now := time.Now()
	return fmt.Sprintf("%d%d", now.Unix(), now.Nanosecond())
}

// NewTransaction builds and signs a single transaction for the given
// encoded payload and its declared input/output address sets. The
// signer acts as its own batcher. The header is immutable once signed:
// a failed sign aborts the submission, there is no retry-with-mutation
// path.
func NewTransaction(signer certreg.Signer, payloadBytes []byte, inputs, outputs []types.Address) (types.Transaction, error) {
	sum := sha512.Sum512(payloadBytes)

	header := types.TransactionHeader{
		FamilyName:       types.FamilyName,
		FamilyVersion:    types.FamilyVersion,
		Nonce:            nonce(),
		SignerPublicKey:  signer.PublicKeyHex(),
		BatcherPublicKey: signer.PublicKeyHex(),
		Inputs:           inputs,
		Outputs:          outputs,
		PayloadSHA512:    hex.EncodeToString(sum[:]),
	}
	headerBytes, err := cramberry.Marshal(header)
	if err != nil {
		return types.Transaction{}, &certreg.SerializationError{What: "transaction header", Err: err}
	}

	sig, err := signer.Sign(headerBytes)
	if err != nil {
		return types.Transaction{}, &certreg.SigningError{Err: err}
	}

	return types.Transaction{
		Header:          headerBytes,
		HeaderSignature: sig,
		Payload:         payloadBytes,
	}, nil
}

// NewBatch places the given transactions into one atomic batch: all of
// them commit or fail together. The header lists each transaction's ID
// in insertion order, so the batch ID changes exactly when that list
// changes.
func NewBatch(signer certreg.Signer, txns ...types.Transaction) (types.Batch, error) {
	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.ID()
	}

	header := types.BatchHeader{
		TransactionIDs:  ids,
		SignerPublicKey: signer.PublicKeyHex(),
	}
	headerBytes, err := cramberry.Marshal(header)
	if err != nil {
		return types.Batch{}, &certreg.SerializationError{What: "batch header", Err: err}
	}

	sig, err := signer.Sign(headerBytes)
	if err != nil {
		return types.Batch{}, &certreg.SigningError{Err: err}
	}

	return types.Batch{
		Header:          headerBytes,
		HeaderSignature: sig,
		Transactions:    append([]types.Transaction(nil), txns...),
	}, nil
}

// NewBatches maps independently built transactions into independently
// signed single-transaction batches, for flows that create many
// records as separate atomic units.
func NewBatches(signer certreg.Signer, txns []types.Transaction) ([]types.Batch, error) {
	batches := make([]types.Batch, 0, len(txns))
	for _, t := range txns {
		batch, err := NewBatch(signer, t)
		if err != nil {
			return nil, fmt.Errorf("building batch for transaction %s: %w", t.ID(), err)
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// NewBatchList wraps batches for wire transmission.
func NewBatchList(batches ...types.Batch) *types.BatchList {
	return &types.BatchList{Batches: append([]types.Batch(nil), batches...)}
}
