// Package signing implements the registry's fixed secp256k1 signature
// scheme and the hex key files the CLI loads credentials from.
//
// Signatures are computed over the SHA-256 digest of the message and
// serialized in the 64-byte compact r||s form, hex encoded. The hex
// signature of a serialized header is what the wire types use as the
// transaction and batch identifier.
package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signer holds a secp256k1 private key and signs serialized header
// bytes. Read-only after construction; safe to reuse across many
// transactions and batches.
type Signer struct {
	priv *secp256k1.PrivateKey
	pub  string
}

// NewRandom generates a Signer with a fresh random private key.
func NewRandom() (*Signer, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generating private key: %w", err)
	}
	return newSigner(priv), nil
}

// FromHex constructs a Signer from a 32-byte hex-encoded private key.
func FromHex(keyHex string) (*Signer, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(keyHex))
	if err != nil {
		return nil, fmt.Errorf("decoding private key hex: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(raw))
	}
	return newSigner(secp256k1.PrivKeyFromBytes(raw)), nil
}

func newSigner(priv *secp256k1.PrivateKey) *Signer {
	return &Signer{
		priv: priv,
		pub:  hex.EncodeToString(priv.PubKey().SerializeCompressed()),
	}
}

// PublicKeyHex returns the compressed public key as lowercase hex.
func (s *Signer) PublicKeyHex() string { return s.pub }

// PrivateKeyHex returns the private key as lowercase hex, for key
// escrow when generating credentials.
func (s *Signer) PrivateKeyHex() string {
	return hex.EncodeToString(s.priv.Serialize())
}

// Sign returns the compact r||s signature of msg as lowercase hex.
func (s *Signer) Sign(msg []byte) (string, error) {
	hash := sha256.Sum256(msg)
	// SignCompact prepends a recovery code byte; the wire form is
	// the bare 64-byte r||s that follows it.
	sig := ecdsa.SignCompact(s.priv, hash[:], true)
	if len(sig) != 65 {
		return "", fmt.Errorf("unexpected compact signature length %d", len(sig))
	}
	return hex.EncodeToString(sig[1:]), nil
}

// Verify reports whether sigHex is a valid compact signature of msg
// under the given compressed public key.
func Verify(publicKeyHex string, msg []byte, sigHex string) bool {
	pubRaw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false
	}
	pub, err := secp256k1.ParsePubKey(pubRaw)
	if err != nil {
		return false
	}
	raw, err := hex.DecodeString(sigHex)
	if err != nil || len(raw) != 64 {
		return false
	}
	var r, sv secp256k1.ModNScalar
	if overflow := r.SetByteSlice(raw[:32]); overflow {
		return false
	}
	if overflow := sv.SetByteSlice(raw[32:]); overflow {
		return false
	}
	hash := sha256.Sum256(msg)
	return ecdsa.NewSignature(&r, &sv).Verify(hash[:], pub)
}
