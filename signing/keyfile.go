package signing

import (
	"fmt"
	"os"
	"path/filepath"
)

// Key files are bare hex: <name>.priv holds the private key,
// <name>.pub the compressed public key.

// DefaultKeyDir returns the directory the CLI loads signing keys from.
func DefaultKeyDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".certreg", "keys")
	}
	return filepath.Join(home, ".certreg", "keys")
}

// Load reads the private key file <dir>/<name>.priv and returns a
// Signer for it.
func Load(dir, name string) (*Signer, error) {
	path := filepath.Join(dir, name+".priv")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading signing key %s: %w", path, err)
	}
	signer, err := FromHex(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing signing key %s: %w", path, err)
	}
	return signer, nil
}

// Store writes <dir>/<name>.priv and <dir>/<name>.pub, creating the
// directory if needed. The private key file is owner-readable only.
func Store(dir, name string, s *Signer) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating key directory %s: %w", dir, err)
	}
	privPath := filepath.Join(dir, name+".priv")
	if err := os.WriteFile(privPath, []byte(s.PrivateKeyHex()), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", privPath, err)
	}
	pubPath := filepath.Join(dir, name+".pub")
	if err := os.WriteFile(pubPath, []byte(s.PublicKeyHex()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", pubPath, err)
	}
	return nil
}
