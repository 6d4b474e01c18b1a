package transfer

import (
	"errors"
	"fmt"
)

var (
	ErrLocalPath  = errors.New("local path does not exist")
	ErrConnection = errors.New("connection failed")
	ErrHandshake  = errors.New("ssh handshake failed")
	ErrAuth       = errors.New("authentication failed")
	ErrRemoteDir  = errors.New("remote directory creation failed")
	ErrLocalIO    = errors.New("local read failed")
	ErrRemoteIO   = errors.New("remote write failed")
)

// WrapError adds destination and operation context to an error
func WrapError(destination, operation string, err error) error {
	return fmt.Errorf("%s (%s): %w", operation, destination, err)
}
