// Package types defines the wire-level data types for the certificate
// registry client.
//
// These are plain Go structs with cramberry struct tags for
// deterministic binary serialization. Transport concerns (REST
// routing, JSON status decoding) are handled in the transport package.
package types

// Address is a fixed-width hexadecimal identifier for a piece of
// ledger state, used to declare a transaction's read/write footprint.
type Address string
