package services

import (
	"fmt"
	"net"
	"os"
	"path"
	"strings"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// RemoteConfig identifies the deploy target and how to authenticate to it.
type RemoteConfig struct {
	Host       string
	Port       string
	User       string
	KeyFile    string
	KnownHosts string // path to a known_hosts file; empty skips verification
}

// RemoteRunner is the publisher's view of the remote host: run a shell
// command, upload a file, hang up.
type RemoteRunner interface {
	Run(cmd string) (string, error)
	Upload(localPath, remotePath string) error
	Close() error
}

type sshRunner struct {
	client *ssh.Client
	sftp   *sftp.Client
}

// DialRemote opens an SSH connection and an SFTP subsystem on top of it.
func DialRemote(cfg RemoteConfig) (RemoteRunner, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("deploy host is not configured")
	}

	key, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHosts != "" {
		hostKeyCallback, err = knownhosts.New(cfg.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("load known_hosts: %w", err)
		}
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("open sftp session: %w", err)
	}

	return &sshRunner{client: client, sftp: sftpClient}, nil
}

func (r *sshRunner) Run(cmd string) (string, error) {
	sess, err := r.client.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()

	out, err := sess.CombinedOutput(cmd)
	if err != nil {
		return string(out), fmt.Errorf("remote command %q: %w", cmd, err)
	}
	return string(out), nil
}

func (r *sshRunner) Upload(localPath, remotePath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := r.sftp.Create(remotePath)
	if err != nil {
		return fmt.Errorf("create %s on remote: %w", remotePath, err)
	}
	if _, err := dst.ReadFrom(src); err != nil {
		dst.Close()
		return fmt.Errorf("upload %s: %w", path.Base(remotePath), err)
	}
	return dst.Close()
}

func (r *sshRunner) Close() error {
	r.sftp.Close()
	return r.client.Close()
}

// shellQuote single-quotes a path for use inside a remote shell command.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
