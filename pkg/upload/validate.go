package upload

import "bytes"

// Leading bytes of the formats users may upload. The declared content type
// and file name are never trusted.
var (
	imageSignatures = [][]byte{
		{0xFF, 0xD8, 0xFF},                               // jpeg
		{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, // png
		[]byte("GIF87a"),
		[]byte("GIF89a"),
	}
	pdfSignature = []byte("%PDF-")
)

// IsImage reports whether data starts like a jpeg, png, gif or webp image.
func IsImage(data []byte) bool {
	for _, sig := range imageSignatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return isWebP(data)
}

// webp is a RIFF container tagged WEBP at offset 8.
func isWebP(data []byte) bool {
	return len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP"))
}

func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfSignature)
}
