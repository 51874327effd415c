package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobportal-backend/internal/domain"
)

const uploadPath = "/api/utils/upload"

// ServiceClient talks to the upload microservice.
type ServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewServiceClient(baseURL string, timeout time.Duration) *ServiceClient {
	return &ServiceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type uploadRequest struct {
	Buffer   string `json:"buffer"`
	PublicID string `json:"public_id,omitempty"`
}

func (s *ServiceClient) Upload(ctx context.Context, file *domain.UploadFile, replacePublicID string) (*domain.Asset, error) {
	prepared, err := Prepare(file)
	if err != nil {
		return nil, err
	}
	buffer, err := DataURI(prepared)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(uploadRequest{Buffer: buffer, PublicID: replacePublicID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+uploadPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload service returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var asset domain.Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if asset.URL == "" || asset.PublicID == "" {
		return nil, fmt.Errorf("upload service response missing url or public_id")
	}
	return &asset, nil
}
