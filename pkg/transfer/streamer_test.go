package transfer

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, 0o644))
	return p
}

func TestStreamFile(t *testing.T) {
	t.Run("copies_content_byte_for_byte", func(t *testing.T) {
		content := []byte("hello over sftp")
		local := writeTempFile(t, "hello.txt", content)
		remote := newFakeRemoteFS()

		n, err := streamFile(remote, "nas", local, "/up/hello.txt")

		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), n)
		assert.Equal(t, content, remote.files["/up/hello.txt"].Bytes())
	})

	t.Run("spans_multiple_chunks", func(t *testing.T) {
		// Larger than the stream buffer so the loop runs more than once.
		content := make([]byte, streamBufferSize*2+12345)
		_, err := rand.Read(content)
		require.NoError(t, err)

		local := writeTempFile(t, "big.bin", content)
		remote := newFakeRemoteFS()

		n, err := streamFile(remote, "nas", local, "/up/big.bin")

		require.NoError(t, err)
		assert.Equal(t, int64(len(content)), n)
		assert.True(t, bytes.Equal(content, remote.files["/up/big.bin"].Bytes()))
	})

	t.Run("empty_file_transfers_zero_bytes", func(t *testing.T) {
		local := writeTempFile(t, "empty", nil)
		remote := newFakeRemoteFS()

		n, err := streamFile(remote, "nas", local, "/up/empty")

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, remote.files["/up/empty"].Len())
	})

	t.Run("missing_local_file_is_local_io_error", func(t *testing.T) {
		remote := newFakeRemoteFS()

		_, err := streamFile(remote, "nas", "/does/not/exist", "/up/x")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLocalIO)
	})

	t.Run("remote_create_failure_names_the_remote_path", func(t *testing.T) {
		local := writeTempFile(t, "a.txt", []byte("x"))
		remote := newFakeRemoteFS()
		remote.createErrOn = "/up/a.txt"

		_, err := streamFile(remote, "nas", local, "/up/a.txt")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRemoteIO)
		assert.Contains(t, err.Error(), "/up/a.txt")
	})

	t.Run("short_write_is_remote_io_error", func(t *testing.T) {
		local := writeTempFile(t, "a.txt", []byte("some content"))
		remote := newFakeRemoteFS()
		remote.shortWrite = true

		_, err := streamFile(remote, "nas", local, "/up/a.txt")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRemoteIO)
	})
}
