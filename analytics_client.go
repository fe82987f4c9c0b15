package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cropcycle/models"

	"go.uber.org/zap"
)

// AnalyticsClient fetches the marketplace backend's dashboard collections.
type AnalyticsClient struct {
	base string
	hc   *http.Client
	log  *zap.Logger
}

func NewAnalyticsClient(base string, log *zap.Logger) *AnalyticsClient {
	return &AnalyticsClient{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
}

// MonthlyDatum is one raw upstream analytics point; Month is 1..12.
type MonthlyDatum struct {
	Month         int     `json:"month"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type monthlyAnalyticsResp struct {
	Status string `json:"status"`
	Data   struct {
		MonthlyData []MonthlyDatum `json:"monthlyData"`
	} `json:"data"`
}

type statsResp struct {
	Status string `json:"status"`
	Data   struct {
		Stats models.DashboardStats `json:"stats"`
	} `json:"data"`
}

// MonthlyAnalytics calls GET {base}/dashboards/analytics/monthly.
func (c *AnalyticsClient) MonthlyAnalytics(ctx context.Context) ([]MonthlyDatum, error) {
	var out monthlyAnalyticsResp
	if err := c.getJSON(ctx, "/dashboards/analytics/monthly", &out); err != nil {
		return nil, err
	}
	return out.Data.MonthlyData, nil
}

// Stats calls GET {base}/dashboards/stats.
func (c *AnalyticsClient) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var out statsResp
	if err := c.getJSON(ctx, "/dashboards/stats", &out); err != nil {
		return nil, err
	}
	return &out.Data.Stats, nil
}

func (c *AnalyticsClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("dashboard fetch failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("dashboard fetch failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("dashboard non-2xx: %s, body: %s", resp.Status, string(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
