package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var (
	// ErrUnauthorized covers upstream 401 and 403 alike; both destroy
	// the caller's session.
	ErrUnauthorized = errors.New("upstream rejected credentials")
	ErrNotFound     = errors.New("upstream resource not found")
)

// BadRequestError carries the upstream validation body so handlers can
// surface it inline.
type BadRequestError struct {
	Status int
	Body   string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}

// Client talks to the content API. Per-user calls pass the session's
// upstream token; public reads and the background poller use the
// configured service token.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) token(token string) string {
	if token == "" {
		return c.serviceToken
	}
	return token
}

func (c *Client) do(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Token "+c.token(token))

	return c.send(req, out)
}

// doMultipart posts form fields plus an optional image file, used for
// update create/edit when an image is attached.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, fields map[string]string, fileField, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Token "+c.token(token))

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("upstream returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &BadRequestError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
