// Package config handles arkv's persisted configuration: the run-level SSH
// key path and the list of upload destinations.
package config

import (
	"github.com/williamokano/arkv/pkg/transfer"
)

// Destination defines one configured remote upload target as stored on disk.
// An absent password means key-based authentication.
type Destination struct {
	Name       string `json:"name"`
	Host       string `json:"host"`
	Port       uint16 `json:"port,omitempty"`
	Username   string `json:"username"`
	RemotePath string `json:"remote_path"`
	Password   string `json:"password,omitempty"`
}

// GetPort returns the effective SSH port (defaults to 22).
func (d *Destination) GetPort() uint16 {
	if d.Port > 0 {
		return d.Port
	}
	return 22
}

// Transfer converts the stored record into the engine's destination value,
// selecting the credential variant: password when one is configured, the
// run-level private key otherwise.
func (d *Destination) Transfer() transfer.Destination {
	var cred transfer.Credential
	if d.Password != "" {
		cred = transfer.Password(d.Password)
	} else {
		cred = transfer.PrivateKey{}
	}

	return transfer.Destination{
		Name:       d.Name,
		Host:       d.Host,
		Port:       d.GetPort(),
		Username:   d.Username,
		RemotePath: d.RemotePath,
		Credential: cred,
	}
}

// Config is the root configuration structure
type Config struct {
	SSHKeyPath   string        `json:"ssh_key_path"`
	Destinations []Destination `json:"destinations"`
}
