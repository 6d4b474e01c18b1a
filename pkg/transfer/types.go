// Package transfer implements the arkv upload engine: SSH/SFTP session
// establishment, remote directory materialization, chunked file streaming
// and the concurrent multi-destination driver.
package transfer

import (
	"fmt"
	"time"
)

// Destination describes one remote upload target. It is immutable for the
// duration of a run; the engine never mutates it.
type Destination struct {
	Name       string
	Host       string
	Port       uint16
	Username   string
	RemotePath string
	Credential Credential
}

// Addr returns the host:port dial address.
func (d Destination) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

// Task is one file to move: where it lives locally, its path relative to the
// upload root, and the absolute remote path it will be written to.
type Task struct {
	LocalPath  string
	RelPath    string
	RemotePath string
}

// Stats is the result record for one destination's completed transfer.
type Stats struct {
	Bytes    int64
	Duration time.Duration
}

// Seconds returns the elapsed wall-clock time in seconds.
func (s Stats) Seconds() float64 {
	return s.Duration.Seconds()
}

// Result represents the outcome of one destination's transfer. Exactly one
// of Stats and Err is set.
type Result struct {
	Destination string
	Stats       *Stats
	Err         error
}
