package bucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"github.com/cantikstore/storefront/internal/storage"
	"github.com/cantikstore/storefront/pkg/httpclient"
)

// Config identifies the bucket endpoint and project.
type Config struct {
	// Endpoint is the storage API base URL, e.g. https://files.example.com/v1.
	Endpoint string
	// ProjectID scopes requests and view URLs to a project.
	ProjectID string
	// BucketID is the bucket files are uploaded into.
	BucketID string
}

// Client uploads files to an HTTP bucket service. Calls go through a circuit
// breaker so a dead storage backend is skipped quickly and the media service
// can fall back to inline encoding.
type Client struct {
	cfg  Config
	http *httpclient.CircuitBreakerClient
}

var _ storage.Storage = (*Client)(nil)

// NewClient creates a bucket client over the given circuit-breaker HTTP client.
func NewClient(cfg Config, http *httpclient.CircuitBreakerClient) *Client {
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return &Client{cfg: cfg, http: http}
}

type createFileResponse struct {
	ID string `json:"$id"`
}

// Upload sends the file as multipart form data and returns the assigned key
// together with its public view URL.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (*storage.Object, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("fileId", uuid.NewString()); err != nil {
		return nil, fmt.Errorf("write fileId field: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/storage/buckets/%s/files", c.cfg.Endpoint, c.cfg.BucketID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Project", c.cfg.ProjectID)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("upload file: unexpected status %d: %s", resp.StatusCode, string(b))
	}

	var created createFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("upload response missing file id")
	}

	return &storage.Object{
		Key: created.ID,
		URL: c.ViewURL(created.ID),
	}, nil
}

// ViewURL builds the public URL for a stored file.
func (c *Client) ViewURL(fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.cfg.Endpoint, c.cfg.BucketID, fileID, c.cfg.ProjectID)
}
