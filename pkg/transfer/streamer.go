package transfer

import (
	"io"
	"os"
)

// streamBufferSize is the chunk size for file streaming. 256 KiB keeps the
// SFTP pipeline full without holding large buffers per transfer.
const streamBufferSize = 256 * 1024

// streamFile copies all bytes of the local file to remotePath through a
// fixed-size buffer and returns the exact byte count moved. The remote
// file's parent directory must already exist.
func streamFile(fs remoteFS, dest, localPath, remotePath string) (int64, error) {
	localFile, err := os.Open(localPath)
	if err != nil {
		return 0, WrapError(dest, "open "+localPath, ErrLocalIO)
	}
	defer localFile.Close()

	remoteFile, err := fs.Create(remotePath)
	if err != nil {
		return 0, WrapError(dest, "create "+remotePath, ErrRemoteIO)
	}
	defer remoteFile.Close()

	buf := make([]byte, streamBufferSize)
	var total int64
	for {
		n, readErr := localFile.Read(buf)
		if n > 0 {
			written, writeErr := remoteFile.Write(buf[:n])
			if writeErr != nil || written != n {
				// A short write is an error: the counter must reflect
				// exactly the local file's size.
				return total, WrapError(dest, "write "+remotePath, ErrRemoteIO)
			}
			total += int64(n)
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return total, WrapError(dest, "read "+localPath, ErrLocalIO)
		}
	}

	return total, nil
}
