package upload

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClamd answers one INSTREAM session with reply and hands back what it received.
func fakeClamd(t *testing.T, reply string) (string, <-chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		if _, err := r.ReadString(0); err != nil {
			return
		}
		var body []byte
		for {
			var size uint32
			if err := binary.Read(r, binary.BigEndian, &size); err != nil {
				return
			}
			if size == 0 {
				break
			}
			chunk := make([]byte, size)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return
			}
			body = append(body, chunk...)
		}
		got <- body
		_, _ = conn.Write([]byte(reply + "\x00"))
	}()
	return ln.Addr().String(), got
}

func TestClamAVScan(t *testing.T) {
	t.Run("Should stream the data and report clean", func(t *testing.T) {
		addr, got := fakeClamd(t, "stream: OK")

		threat, err := NewClamAV(addr, time.Second).Scan(context.Background(), []byte("%PDF-1.7 resume"))

		require.NoError(t, err)
		assert.Empty(t, threat)
		assert.Equal(t, []byte("%PDF-1.7 resume"), <-got)
	})

	t.Run("Should name the threat", func(t *testing.T) {
		addr, _ := fakeClamd(t, "stream: Eicar-Test-Signature FOUND")

		threat, err := NewClamAV(addr, time.Second).Scan(context.Background(), []byte("X5O!P%@AP"))

		require.NoError(t, err)
		assert.Equal(t, "Eicar-Test-Signature", threat)
	})

	t.Run("Should fail when clamd is unreachable", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		ln.Close()

		_, err = NewClamAV(addr, time.Second).Scan(context.Background(), []byte("data"))
		assert.Error(t, err)
	})
}

func TestParseClamReply(t *testing.T) {
	_, err := parseClamReply("stream: INSTREAM size limit exceeded. ERROR")
	assert.EqualError(t, err, "clamd: INSTREAM size limit exceeded.")

	_, err = parseClamReply("garbage")
	assert.Error(t, err)
}

type stubScanner struct {
	threat string
	err    error
}

func (s stubScanner) Scan(context.Context, []byte) (string, error) { return s.threat, s.err }

type recordingUploader struct{ calls int }

func (r *recordingUploader) Upload(context.Context, *domain.UploadFile, string) (*domain.Asset, error) {
	r.calls++
	return &domain.Asset{URL: "https://cdn.test/a", PublicID: "a"}, nil
}

func TestScanned(t *testing.T) {
	file := &domain.UploadFile{Filename: "cv.pdf", Data: []byte("%PDF-1.7")}

	t.Run("Should pass clean files through", func(t *testing.T) {
		next := &recordingUploader{}
		asset, err := NewScanned(next, stubScanner{}).Upload(context.Background(), file, "")

		require.NoError(t, err)
		assert.Equal(t, "a", asset.PublicID)
		assert.Equal(t, 1, next.calls)
	})

	t.Run("Should reject infected files", func(t *testing.T) {
		next := &recordingUploader{}
		_, err := NewScanned(next, stubScanner{threat: "Eicar"}).Upload(context.Background(), file, "")

		assert.ErrorIs(t, err, domain.ErrFileRejected)
		assert.Zero(t, next.calls)
	})

	t.Run("Should fail closed when the scan errors", func(t *testing.T) {
		next := &recordingUploader{}
		_, err := NewScanned(next, stubScanner{err: errors.New("down")}).Upload(context.Background(), file, "")

		assert.ErrorIs(t, err, domain.ErrFileRejected)
		assert.Zero(t, next.calls)
	})

	t.Run("Should refuse an empty buffer", func(t *testing.T) {
		_, err := NewScanned(&recordingUploader{}, stubScanner{}).Upload(context.Background(), &domain.UploadFile{}, "")
		assert.ErrorIs(t, err, domain.ErrEmptyFileBuffer)
	})
}
