package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

type uploadReply struct {
	Upload models.Upload `json:"upload"`
}

// Upload sends a spreadsheet to a project as the multipart field "file".
func (c *Client) Upload(ctx context.Context, projectID, fileName string, r io.Reader) (*models.Upload, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/uploads/"+url.PathEscape(projectID), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var reply uploadReply
	if err := c.send(req, &reply); err != nil {
		return nil, err
	}
	return &reply.Upload, nil
}

// ListUploads returns a project's uploads.
func (c *Client) ListUploads(ctx context.Context, projectID string) ([]models.Upload, error) {
	var reply struct {
		Uploads []models.Upload `json:"uploads"`
	}
	if err := c.do(ctx, http.MethodGet, "/uploads/"+url.PathEscape(projectID), nil, &reply); err != nil {
		return nil, err
	}
	return reply.Uploads, nil
}

// GetUpload fetches an upload with its parsed data.
func (c *Client) GetUpload(ctx context.Context, uploadID string) (*models.Upload, error) {
	var reply uploadReply
	if err := c.do(ctx, http.MethodGet, "/uploads/file/"+url.PathEscape(uploadID), nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Upload, nil
}

// DeleteUpload removes an upload and its charts.
func (c *Client) DeleteUpload(ctx context.Context, uploadID string) error {
	return c.do(ctx, http.MethodDelete, "/uploads/file/"+url.PathEscape(uploadID), nil, nil)
}
