package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/kelanaapp/kelana/internal/pkg/models"
)

// MediaHTTPClient is an HTTP client for the media storage service
type MediaHTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewMediaHTTPClient creates a new media storage client
func NewMediaHTTPClient(cfg models.MediaConfig) *MediaHTTPClient {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MediaHTTPClient{
		baseURL: cfg.ServiceURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// storeMediaResponse is the media service's upload response body
type storeMediaResponse struct {
	URL  string `json:"url"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// StoreMedia uploads a file as multipart form data and returns the stored
// reference.
func (c *MediaHTTPClient) StoreMedia(ctx context.Context, upload *models.MediaUpload) (*models.Media, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/media", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create media upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send media upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("media service returned status %d: %s", resp.StatusCode, respBody)
	}

	var stored storeMediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to decode media upload response: %w", err)
	}

	mediaType := stored.Mime
	if mediaType == "" {
		mediaType = upload.ContentType
	}
	return &models.Media{
		URL:  stored.URL,
		Type: mediaType,
		Size: stored.Size,
	}, nil
}
