package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/domain"

	"golang.org/x/image/draw"
)

const (
	maxImageDimension = 1024
	jpegQuality       = 80
)

// contentType prefers the sniffed type; browsers send whatever the extension suggests.
func contentType(file *domain.UploadFile) string {
	sniffed := http.DetectContentType(file.Data)
	if sniffed != "application/octet-stream" {
		return sniffed
	}
	if file.ContentType != "" {
		return file.ContentType
	}
	return sniffed
}

// Prepare validates the buffer and shrinks oversized images. The returned
// file is a copy; the caller's file is never modified.
func Prepare(file *domain.UploadFile) (*domain.UploadFile, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, domain.ErrEmptyFileBuffer
	}

	out := &domain.UploadFile{
		Filename:    file.Filename,
		ContentType: contentType(file),
		Data:        file.Data,
	}
	if !strings.HasPrefix(out.ContentType, "image/") {
		return out, nil
	}

	shrunk, changed, err := CompressImage(file.Data, maxImageDimension, jpegQuality)
	if err != nil {
		// Not decodable; let the collaborator decide
		return out, nil
	}
	if changed {
		out.Data = shrunk
		out.ContentType = "image/jpeg"
	}
	return out, nil
}

// DataURI encodes the buffer the way the upload service expects it.
func DataURI(file *domain.UploadFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", domain.ErrEmptyFileBuffer
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType(file), base64.StdEncoding.EncodeToString(file.Data)), nil
}

// CompressImage downscales an image so its longest side is at most
// maxDimension and re-encodes it as JPEG. changed is false when the image
// already fits.
func CompressImage(data []byte, maxDimension int, quality int) ([]byte, bool, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDimension && height <= maxDimension {
		return data, false, nil
	}

	newWidth, newHeight := maxDimension, maxDimension
	if width > height {
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else {
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, false, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}
