package compareativos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/etnz/brfunds"
)

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into data.
//
// A non 2xx status is a *brfunds.RemoteRequestError, a body that is not valid
// json for data is a *brfunds.TransientShapeError.
func (c *Client) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %s: %w", addr, err)
	}
	defer resp.Body.Close()
	if c.Logger != nil {
		c.Logger.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("http response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &brfunds.RemoteRequestError{StatusCode: resp.StatusCode, URL: addr}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read http body of %s: %w", addr, err)
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return &brfunds.TransientShapeError{Err: fmt.Errorf("cannot decode %s: %w", req.URL.Path, err)}
	}
	return nil
}
