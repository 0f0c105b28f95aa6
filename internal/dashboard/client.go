package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Vovarama1992/intent-engine/internal/classify"
)

// Proxy is the classification proxy as seen from the dashboard.
type Proxy interface {
	Process(ctx context.Context, text string) (Result, error)
}

type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewClient talks to the proxy at baseURL. The http client has no timeout:
// the proxy has none either, and a dispatched request is never cancelled.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		log:     logger.Named("proxy-client"),
	}
}

// Process returns the proxy body for any JSON response, error bodies
// included. The error return is reserved for transport failures and bodies
// that are not JSON.
func (c *Client) Process(ctx context.Context, text string) (Result, error) {
	b, err := json.Marshal(classify.Request{Text: text})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+classify.ProcessPath,
		bytes.NewReader(b),
	)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read proxy response: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return Result{}, fmt.Errorf("proxy response is not json: %s", resp.Status)
	}

	res := NewResult(body)
	if resp.StatusCode >= 300 && !res.IsError() {
		return Result{}, fmt.Errorf("proxy returned %s without an error body", resp.Status)
	}

	c.log.Debug("proxy response", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))
	return res, nil
}
