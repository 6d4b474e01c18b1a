package transfer

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// Credential selects the single authentication method attempted for a
// destination. Exactly one variant is active; there is no fallback between
// password and key authentication.
type Credential interface {
	authMethod(keyPath string) (ssh.AuthMethod, error)
}

// Password authenticates with the destination's configured password.
type Password string

func (p Password) authMethod(string) (ssh.AuthMethod, error) {
	return ssh.Password(string(p)), nil
}

// PrivateKey authenticates with the run-level private key file. The key path
// is supplied once per run, not per destination.
type PrivateKey struct{}

func (PrivateKey) authMethod(keyPath string) (ssh.AuthMethod, error) {
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key %s: %w", keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SSH key %s: %w", keyPath, err)
	}

	return ssh.PublicKeys(signer), nil
}
