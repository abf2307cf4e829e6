package types

// Batch status enumerators reported by the gateway. Any value other
// than the two terminal ones means the batch is still processing.
const (
	StatusCommitted = "COMMITTED"
	StatusInvalid   = "INVALID"
	StatusPending   = "PENDING"
)

// StatusData is the gateway's JSON status response for a polled link.
type StatusData struct {
	Data []Status `json:"data"`
	Link string   `json:"link"`
}

// Status reports one batch's commit outcome.
type Status struct {
	ID                  string               `json:"id"`
	Status              string               `json:"status"`
	InvalidTransactions []InvalidTransaction `json:"invalid_transactions"`
}

// InvalidTransaction carries the ledger's diagnostic for a rejected
// transaction. Populated only on terminal INVALID status; the first
// entry is the authoritative diagnostic.
type InvalidTransaction struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
