// Package client is a typed client for the vault JSON API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"
)

// Error is a non-2xx response from the API.
type Error struct {
	StatusCode     int
	Message        string
	Field          string
	NotificationID string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Field)
	}
	return e.Message
}

// IsNotFound returns true if err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsRejected returns true if err is a validation rejection from the API.
func IsRejected(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity
}

type envelope struct {
	Status         string          `json:"status"`
	Data           json.RawMessage `json:"data"`
	Error          string          `json:"error"`
	Field          string          `json:"field"`
	NotificationID string          `json:"notification_id"`
}

// Client talks to a running vault server.
type Client struct {
	http    *client.Client
	baseURL string
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string) *Client {
	c := client.New()
	c.SetTimeout(10 * time.Second)
	c.SetHeader("Accept", "application/json")
	return &Client{
		http:    c,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the server address the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method string
	path   string
	params map[string]string
	body   any
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetMethod(r.method).
		SetURL(c.baseURL + r.path)

	for k, v := range r.params {
		if v != "" {
			req.AddParam(k, v)
		}
	}
	if r.body != nil {
		req.SetJSON(r.body)
	}

	resp, err := req.Send()
	if err != nil {
		client.ReleaseRequest(req)
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	// Closing the response also releases the request.
	defer resp.Close()

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%s %s: unexpected response (status %d): %w", r.method, r.path, resp.StatusCode(), err)
	}
	if resp.StatusCode() >= http.StatusBadRequest || env.Status == "error" {
		return &Error{
			StatusCode:     resp.StatusCode(),
			Message:        env.Error,
			Field:          env.Field,
			NotificationID: env.NotificationID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: failed to decode data: %w", r.method, r.path, err)
	}
	return nil
}
