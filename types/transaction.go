package types

import "github.com/blockberries/cramberry/pkg/cramberry"

// TransactionHeader is the signed portion of a transaction. The input
// and output sets must include every address the action reads or
// writes; an omission is not detected locally and surfaces as a
// ledger-side rejection.
type TransactionHeader struct {
	FamilyName       string    `cramberry:"1"`
	FamilyVersion    string    `cramberry:"2"`
	Nonce            string    `cramberry:"3"`
	SignerPublicKey  string    `cramberry:"4"`
	BatcherPublicKey string    `cramberry:"5"`
	Inputs           []Address `cramberry:"6"`
	Outputs          []Address `cramberry:"7"`
	PayloadSHA512    string    `cramberry:"8"`
}

// Transaction is a signed ledger action. The header signature is
// computed over the exact serialized header bytes and doubles as the
// transaction's unique identifier; any header change invalidates it.
type Transaction struct {
	Header          []byte `cramberry:"1"`
	HeaderSignature string `cramberry:"2"`
	Payload         []byte `cramberry:"3"`
}

// ID returns the transaction identifier (the header signature).
func (t Transaction) ID() string { return t.HeaderSignature }

// BatchHeader is the signed portion of a batch: the ordered list of
// member transaction IDs plus the batch signer's public key.
type BatchHeader struct {
	TransactionIDs  []string `cramberry:"1"`
	SignerPublicKey string   `cramberry:"2"`
}

// Batch is an atomic unit of transactions: all members commit or fail
// together. The batch ID is the header signature and changes whenever
// the transaction ID list changes.
type Batch struct {
	Header          []byte        `cramberry:"1"`
	HeaderSignature string        `cramberry:"2"`
	Transactions    []Transaction `cramberry:"3"`
}

// ID returns the batch identifier (the header signature).
func (b Batch) ID() string { return b.HeaderSignature }

// BatchList is the unit actually transmitted to the gateway.
type BatchList struct {
	Batches []Batch `cramberry:"1"`
}

// Encode returns the deterministic wire encoding of the batch list.
func (l *BatchList) Encode() ([]byte, error) {
	return cramberry.Marshal(*l)
}

// DecodeBatchList decodes wire bytes produced by Encode.
func DecodeBatchList(data []byte) (*BatchList, error) {
	var l BatchList
	if err := cramberry.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
