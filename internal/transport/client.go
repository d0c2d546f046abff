package transport

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Transport is the narrow contract the check executor depends on. The real
// implementation delegates all protocol work to the ssh and sftp libraries.
type Transport interface {
	Connect(params ConnectionParams) (Conn, error)
}

// Conn is one established SFTP session.
type Conn interface {
	IsConnected() bool
	ListDirectory(path string) ([]os.FileInfo, error)
	Disconnect() error
}

type sftpTransport struct{}

// New creates the SFTP transport.
func New() Transport {
	return &sftpTransport{}
}

func (sftpTransport) Connect(p ConnectionParams) (Conn, error) {
	addr := net.JoinHostPort(p.Host, strconv.Itoa(p.Port))

	cfg := &ssh.ClientConfig{
		User: p.Username,
		Auth: p.Auth,
		// Host key pinning belongs to the host platform's trust store, not
		// to a connectivity probe.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         p.Timeout,
	}

	sshClient, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("sftp session on %s: %w", addr, err)
	}

	return &sftpConn{ssh: sshClient, sftp: sftpClient}, nil
}

type sftpConn struct {
	ssh  *ssh.Client
	sftp *sftp.Client

	mu     sync.Mutex
	closed bool
}

func (c *sftpConn) IsConnected() bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	// Cheap round trip; connected means the session still answers.
	_, err := c.sftp.Getwd()
	return err == nil
}

func (c *sftpConn) ListDirectory(path string) ([]os.FileInfo, error) {
	return c.sftp.ReadDir(path)
}

func (c *sftpConn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	sessionErr := c.sftp.Close()
	if err := c.ssh.Close(); err != nil && sessionErr == nil {
		sessionErr = err
	}
	return sessionErr
}
