package transfer

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

const (
	dialTimeout = 15 * time.Second

	// Socket buffer size used for bulk transfer over high-latency links.
	socketBufferSize = 2 * 1024 * 1024
)

// remoteFS is the narrow slice of the SFTP client the resolver and streamer
// need. It exists so both can be tested against an in-memory fake.
type remoteFS interface {
	Stat(path string) (os.FileInfo, error)
	Mkdir(path string) error
	Chmod(path string, mode os.FileMode) error
	Create(path string) (io.WriteCloser, error)
}

// Session is an authenticated SFTP connection to one destination. It is
// owned by exactly one transfer and never reused across destinations.
type Session struct {
	conn       net.Conn
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

// connect dials the destination, performs the SSH handshake, authenticates
// with the destination's credential and opens the SFTP subsystem. Each step
// is a hard failure point; nothing is retried.
func connect(dest Destination, keyPath string) (*Session, error) {
	auth, err := dest.Credential.authMethod(keyPath)
	if err != nil {
		return nil, WrapError(dest.Name, "auth setup", err)
	}

	conn, err := net.DialTimeout("tcp", dest.Addr(), dialTimeout)
	if err != nil {
		// Keep the cause: "connection refused", DNS failure and timeout
		// read very differently in the failure report.
		return nil, WrapError(dest.Name, "connect "+dest.Addr(), fmt.Errorf("%w: %v", ErrConnection, err))
	}

	// Best effort: larger socket buffers help sustain throughput on
	// high-latency links. Failure to tune is not fatal.
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
		_ = tcpConn.SetReadBuffer(socketBufferSize)
		_ = tcpConn.SetWriteBuffer(socketBufferSize)
	}

	clientConfig := &ssh.ClientConfig{
		User:            dest.Username,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // TODO: Add host key verification
		Timeout:         dialTimeout,
	}

	ncc, chans, reqs, err := ssh.NewClientConn(conn, dest.Addr(), clientConfig)
	if err != nil {
		conn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			return nil, WrapError(dest.Name, "authenticate", fmt.Errorf("%w: %v", ErrAuth, err))
		}
		return nil, WrapError(dest.Name, "handshake", fmt.Errorf("%w: %v", ErrHandshake, err))
	}

	sshClient := ssh.NewClient(ncc, chans, reqs)

	// The ssh package reports authentication failures through NewClientConn,
	// but guard against a connection that came back unauthenticated anyway.
	if len(sshClient.ServerVersion()) == 0 {
		sshClient.Close()
		return nil, WrapError(dest.Name, "authenticate", ErrAuth)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, WrapError(dest.Name, "sftp init", err)
	}

	return &Session{
		conn:       conn,
		sshClient:  sshClient,
		sftpClient: sftpClient,
	}, nil
}

// fs returns the session's remote filesystem view.
func (s *Session) fs() remoteFS {
	return sftpFS{client: s.sftpClient}
}

// Close releases the SFTP subsystem and the underlying SSH connection.
func (s *Session) Close() error {
	if s.sftpClient != nil {
		s.sftpClient.Close()
	}
	if s.sshClient != nil {
		return s.sshClient.Close()
	}
	return nil
}

// sftpFS adapts *sftp.Client to the remoteFS interface.
type sftpFS struct {
	client *sftp.Client
}

func (f sftpFS) Stat(path string) (os.FileInfo, error) {
	return f.client.Stat(path)
}

func (f sftpFS) Mkdir(path string) error {
	return f.client.Mkdir(path)
}

func (f sftpFS) Chmod(path string, mode os.FileMode) error {
	return f.client.Chmod(path, mode)
}

func (f sftpFS) Create(path string) (io.WriteCloser, error) {
	return f.client.Create(path)
}
