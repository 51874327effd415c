package upload_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/upload"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareRejectsEmptyBuffer(t *testing.T) {
	_, err := upload.Prepare(&domain.UploadFile{Filename: "a.png"})
	assert.ErrorIs(t, err, domain.ErrEmptyFileBuffer)

	_, err = upload.DataURI(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyFileBuffer)
}

func TestCompressImage(t *testing.T) {
	small := pngOf(t, 10, 5)
	out, changed, err := upload.CompressImage(small, 100, 80)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, small, out)

	out, changed, err = upload.CompressImage(pngOf(t, 400, 200), 100, 80)
	require.NoError(t, err)
	assert.True(t, changed)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestServiceClientUpload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/utils/upload", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn/x.pdf","public_id":"x"}`))
	}))
	defer srv.Close()

	client := upload.NewServiceClient(srv.URL, time.Second)
	asset, err := client.Upload(context.Background(), &domain.UploadFile{
		Filename: "cv.pdf",
		Data:     []byte("%PDF-1.4 body"),
	}, "old-id")

	require.NoError(t, err)
	assert.Equal(t, &domain.Asset{URL: "https://cdn/x.pdf", PublicID: "x"}, asset)
	assert.True(t, strings.HasPrefix(got["buffer"], "data:application/pdf;base64,"))
	assert.Equal(t, "old-id", got["public_id"])
}

func TestServiceClientOmitsEmptyPublicID(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_, _ = w.Write([]byte(`{"url":"u","public_id":"p"}`))
	}))
	defer srv.Close()

	_, err := upload.NewServiceClient(srv.URL, time.Second).
		Upload(context.Background(), &domain.UploadFile{Data: []byte("hello")}, "")
	require.NoError(t, err)
	_, present := raw["public_id"]
	assert.False(t, present)
}

func TestServiceClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()
	client := upload.NewServiceClient(srv.URL, time.Second)

	_, err := client.Upload(context.Background(), &domain.UploadFile{Data: []byte("x")}, "")
	assert.ErrorContains(t, err, "502")

	_, err = client.Upload(context.Background(), &domain.UploadFile{}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyFileBuffer)
}

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *mockObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func TestS3UploaderReplacesOldObject(t *testing.T) {
	api := new(mockObjectAPI)
	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "assets" && strings.HasSuffix(aws.ToString(in.Key), "-my-cv.pdf")
	})).Return(&s3.PutObjectOutput{}, nil)
	api.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "uploads/old.pdf"
	})).Return(nil, errors.New("gone"))

	u := upload.NewS3Uploader(api, upload.S3Config{Bucket: "assets", PublicBaseURL: "https://cdn.example.com/"})
	asset, err := u.Upload(context.Background(), &domain.UploadFile{Filename: "My CV.pdf", Data: []byte("%PDF-1.7")}, "uploads/old.pdf")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.URL, "https://cdn.example.com/uploads/"))
	assert.Equal(t, asset.URL, "https://cdn.example.com/"+asset.PublicID)
	api.AssertExpectations(t)
}

func TestS3UploaderPutFailure(t *testing.T) {
	api := new(mockObjectAPI)
	api.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("denied"))

	u := upload.NewS3Uploader(api, upload.S3Config{Bucket: "assets", Region: "eu-west-1"})
	_, err := u.Upload(context.Background(), &domain.UploadFile{Filename: "a.txt", Data: []byte("a")}, "uploads/old")

	assert.Error(t, err)
	api.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
}

func TestSignatures(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		image bool
		pdf   bool
	}{
		{"png", []byte("\x89PNG\r\n\x1a\n rest"), true, false},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, true, false},
		{"gif", []byte("GIF89a...."), true, false},
		{"webp", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), true, false},
		{"wav is riff but not webp", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), false, false},
		{"pdf", []byte("%PDF-1.7\n"), false, true},
		{"text", []byte("hello"), false, false},
		{"empty", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.image, upload.IsImage(tt.data))
			assert.Equal(t, tt.pdf, upload.IsPDF(tt.data))
		})
	}
}
