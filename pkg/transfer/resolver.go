package transfer

import (
	"os"
	"path"
)

const remoteDirMode = os.FileMode(0o755)

// ensureRemoteDir guarantees dir and all its ancestors exist on the remote
// side, creating missing ones top-down. Calling it again for the same or an
// overlapping path within a session is a cheap no-op: an existing directory
// is detected by a single stat.
//
// Missing ancestors are collected on an explicit stack instead of recursing,
// so pathological path depths cannot blow the call stack.
func ensureRemoteDir(fs remoteFS, dest, dir string) error {
	// Walk up until an existing ancestor is found. "/" and "." terminate the
	// climb; the root is assumed present.
	var missing []string
	for p := path.Clean(dir); p != "/" && p != "."; p = path.Dir(p) {
		if _, err := fs.Stat(p); err == nil {
			break
		}
		missing = append(missing, p)
	}

	// Create ancestor-first, i.e. in reverse discovery order.
	for i := len(missing) - 1; i >= 0; i-- {
		p := missing[i]
		if err := fs.Mkdir(p); err != nil {
			return WrapError(dest, "mkdir "+p, ErrRemoteDir)
		}
		if err := fs.Chmod(p, remoteDirMode); err != nil {
			return WrapError(dest, "chmod "+p, ErrRemoteDir)
		}
	}

	return nil
}
