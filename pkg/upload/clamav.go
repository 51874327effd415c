package upload

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"
)

// ClamAV scans buffers with a clamd daemon over its INSTREAM command.
type ClamAV struct {
	address string // host:port, or a unix socket path
	timeout time.Duration
}

func NewClamAV(address string, timeout time.Duration) *ClamAV {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClamAV{address: address, timeout: timeout}
}

func (c *ClamAV) dial(ctx context.Context) (net.Conn, error) {
	network := "tcp"
	if strings.HasPrefix(c.address, "/") {
		network = "unix"
	}
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, network, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clamd: %w", err)
	}
	deadline := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	_ = conn.SetDeadline(deadline)
	return conn, nil
}

// Scan returns the threat name clamd reports, or "" when data is clean.
// Any transport or scanner error is returned so callers can fail closed.
func (c *ClamAV) Scan(ctx context.Context, data []byte) (string, error) {
	conn, err := c.dial(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	// zINSTREAM, one length-prefixed chunk, then a zero-length terminator
	frame := make([]byte, 0, len("zINSTREAM\x00")+4+len(data)+4)
	frame = append(frame, "zINSTREAM\x00"...)
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(data)))
	frame = append(frame, data...)
	frame = binary.BigEndian.AppendUint32(frame, 0)
	if _, err := conn.Write(frame); err != nil {
		return "", fmt.Errorf("failed to stream to clamd: %w", err)
	}

	reply, err := io.ReadAll(io.LimitReader(conn, 1024))
	if err != nil {
		return "", fmt.Errorf("failed to read clamd reply: %w", err)
	}
	return parseClamReply(string(reply))
}

// parseClamReply understands "stream: OK", "stream: <name> FOUND" and
// "stream: <reason> ERROR".
func parseClamReply(reply string) (string, error) {
	reply = strings.TrimRight(reply, "\x00\r\n ")
	_, verdict, _ := strings.Cut(reply, ":")
	verdict = strings.TrimSpace(verdict)

	switch {
	case verdict == "OK":
		return "", nil
	case strings.HasSuffix(verdict, " FOUND"):
		return strings.TrimSuffix(verdict, " FOUND"), nil
	case strings.HasSuffix(verdict, " ERROR"):
		return "", fmt.Errorf("clamd: %s", strings.TrimSuffix(verdict, " ERROR"))
	default:
		return "", fmt.Errorf("clamd: unexpected reply %q", reply)
	}
}

// Scanner is satisfied by *ClamAV.
type Scanner interface {
	Scan(ctx context.Context, data []byte) (threat string, err error)
}

// Scanned refuses infected or unscannable files before they reach next.
type Scanned struct {
	next    domain.FileUploader
	scanner Scanner
}

func NewScanned(next domain.FileUploader, scanner Scanner) *Scanned {
	return &Scanned{next: next, scanner: scanner}
}

func (s *Scanned) Upload(ctx context.Context, file *domain.UploadFile, replacePublicID string) (*domain.Asset, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, domain.ErrEmptyFileBuffer
	}

	threat, err := s.scanner.Scan(ctx, file.Data)
	if err != nil {
		logger.Log.Error("malware scan failed", "file", file.Filename, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFileRejected, err)
	}
	if threat != "" {
		logger.Log.Warn("upload rejected", "file", file.Filename, "threat", threat)
		return nil, fmt.Errorf("%w: %s", domain.ErrFileRejected, threat)
	}
	return s.next.Upload(ctx, file, replacePublicID)
}
