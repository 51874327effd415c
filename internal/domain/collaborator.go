package domain

import (
	"context"
	"errors"
)

var (
	// ErrEmptyFileBuffer means no buffer could be built from an uploaded file.
	ErrEmptyFileBuffer = errors.New("file buffer is empty")
	// ErrFileRejected means the malware scan refused the file or could not run.
	ErrFileRejected = errors.New("file rejected by malware scan")
)

type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadFile is a multipart file read into memory.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type FileUploader interface {
	// Upload stores file; a non-empty replacePublicID names the asset it supersedes.
	Upload(ctx context.Context, file *UploadFile, replacePublicID string) (*Asset, error)
}

const TopicSendMail = "send-mail"

type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Notifier interface {
	Publish(ctx context.Context, topic string, msg Notification) error
}
