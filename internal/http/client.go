package http

import (
	"net/http"
	"time"
)

// UserAgent is sent with every request that does not set its own.
const UserAgent = "csv2md"

type Client struct {
	client *http.Client
}

// NewClient returns a Client whose requests give up after timeout. Zero means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent)
	}
	return c.client.Do(req)
}
