package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

type chartReply struct {
	Chart models.ChartRecord `json:"chart"`
}

type chartsReply struct {
	Charts []models.ChartRecord `json:"charts"`
}

// CreateChart creates a chart over an upload's data.
func (c *Client) CreateChart(ctx context.Context, uploadID string, cfg models.ChartConfig) (*models.ChartRecord, error) {
	var reply chartReply
	if err := c.do(ctx, http.MethodPost, "/charts/upload/"+url.PathEscape(uploadID), cfg, &reply); err != nil {
		return nil, err
	}
	return &reply.Chart, nil
}

// ListCharts returns the charts of an upload.
func (c *Client) ListCharts(ctx context.Context, uploadID string) ([]models.ChartRecord, error) {
	var reply chartsReply
	if err := c.do(ctx, http.MethodGet, "/charts/upload/"+url.PathEscape(uploadID), nil, &reply); err != nil {
		return nil, err
	}
	return reply.Charts, nil
}

// GetChart fetches one chart with its data.
func (c *Client) GetChart(ctx context.Context, chartID string) (*models.ChartRecord, error) {
	var reply chartReply
	if err := c.do(ctx, http.MethodGet, "/charts/"+url.PathEscape(chartID), nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Chart, nil
}

// UpdateChart replaces a chart's configuration.
func (c *Client) UpdateChart(ctx context.Context, chartID string, cfg models.ChartConfig) (*models.ChartRecord, error) {
	var reply chartReply
	if err := c.do(ctx, http.MethodPut, "/charts/"+url.PathEscape(chartID), cfg, &reply); err != nil {
		return nil, err
	}
	return &reply.Chart, nil
}

// DeleteChart removes a chart.
func (c *Client) DeleteChart(ctx context.Context, chartID string) error {
	return c.do(ctx, http.MethodDelete, "/charts/"+url.PathEscape(chartID), nil, nil)
}
