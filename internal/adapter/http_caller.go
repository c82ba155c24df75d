package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"fortio.org/safecast"

	m "github.com/mouse-blink/nego/internal/model"
)

const defaultMaxBody = 1 << 20

// ServiceCaller sends one request to the service under test.
type ServiceCaller interface {
	Call(ctx context.Context, req m.Request) (m.Response, error)
}

// HTTPCaller is a ServiceCaller backed by net/http.
type HTTPCaller struct {
	client  *http.Client
	maxBody int64
}

// NewHTTPCaller constructs an HTTPCaller. A nil client uses http.DefaultClient.
func NewHTTPCaller(client *http.Client) *HTTPCaller {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPCaller{client: client, maxBody: defaultMaxBody}
}

// Call performs the request and captures status, headers, body and response time.
func (c *HTTPCaller) Call(ctx context.Context, req m.Request) (m.Response, error) {
	var body io.Reader
	if req.Payload != "" {
		body = bytes.NewBufferString(req.Payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return m.Response{}, fmt.Errorf("failed to build request: %w", err)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return m.Response{}, fmt.Errorf("request to %s failed: %w", req.URL, err)
	}
	defer resp.Body.Close()

	payload, err := c.readBody(resp)
	elapsed := time.Since(start)

	if err != nil {
		return m.Response{}, fmt.Errorf("failed to read response from %s: %w", req.URL, err)
	}

	headers := make(map[string]string, len(resp.Header))
	for name := range resp.Header {
		headers[name] = resp.Header.Get(name)
	}

	return m.Response{
		Status:         resp.StatusCode,
		Headers:        headers,
		Body:           string(payload),
		ResponseTimeMs: elapsed.Milliseconds(),
		ContentLength:  int64(len(payload)),
	}, nil
}

func (c *HTTPCaller) readBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, c.maxBody)

	if resp.ContentLength <= 0 || resp.ContentLength > c.maxBody {
		return io.ReadAll(limited)
	}

	size, err := safecast.Conv[int](resp.ContentLength)
	if err != nil {
		return io.ReadAll(limited)
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := buf.ReadFrom(limited); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
