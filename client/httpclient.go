package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client talks to the Hikma admin API. All requests flow through do: one
// URL-resolution, auth-header and body-encoding decision point.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionStore
	cache   *QueryCache
	log     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying transport (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a zap logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, session *SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: session,
		cache:   NewQueryCache(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session exposes the session store backing this client.
func (c *Client) Session() *SessionStore { return c.session }

// Cache exposes the query cache (read side for UI bindings).
func (c *Client) Cache() *QueryCache { return c.cache }

// StatusError is a non-2xx HTTP response. Its message embeds the status
// code and the raw body text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string { return fmt.Sprintf("%d: %s", e.Code, e.Body) }

// TransportError is a connection-level failure (DNS, refused connection,
// timeout) as opposed to an HTTP-status failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "request failed: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// Multipart is a pre-built multipart/form-data payload. When a request body
// is a *Multipart the wrapper passes it through untouched and uses the
// writer's boundary content type instead of application/json.
type Multipart struct {
	buf         bytes.Buffer
	writer      *multipart.Writer
	contentType string
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

func (m *Multipart) WriteField(name, value string) error {
	return m.writer.WriteField(name, value)
}

func (m *Multipart) WriteFile(field, filename string, r io.Reader) error {
	w, err := m.writer.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	return err
}

// Close finalizes the payload. Must be called before the request is sent.
func (m *Multipart) Close() error {
	m.contentType = m.writer.FormDataContentType()
	return m.writer.Close()
}

type envelope struct {
	Status    string          `json:"status"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
	Result    json.RawMessage `json:"result"`
}

// resolveURL resolves a possibly-relative path against the base URL.
// Absolute URLs pass through unchanged.
func (c *Client) resolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + path
}

// doRaw performs a call whose response is not wrapped in the standard
// envelope. Only the status code is inspected.
func (c *Client) doRaw(ctx context.Context, op Operation) error {
	req, err := http.NewRequestWithContext(ctx, op.Method, c.resolveURL(op.Path), nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{Code: res.StatusCode, Body: res.Status}
	}
	return nil
}

// do performs one API call: builds the URL from the operation's template,
// encodes the body, attaches the bearer token when one is held, performs
// the request and unwraps the envelope's result into out.
func (c *Client) do(ctx context.Context, op Operation, params map[string]string, query url.Values, body interface{}, out interface{}) error {
	path, err := BuildURL(op.Path, params)
	if err != nil {
		return err
	}
	fullURL := c.resolveURL(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *Multipart:
		if b.contentType == "" {
			return errors.New("multipart payload not closed")
		}
		reqBody = &b.buf
		contentType = b.contentType
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, fullURL, reqBody)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("api request", zap.String("method", op.Method), zap.String("url", fullURL))

	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		text := strings.TrimSpace(string(raw))
		if text == "" {
			text = res.Status
		}
		c.log.Debug("api error", zap.Int("status", res.StatusCode), zap.String("body", text))
		return &StatusError{Code: res.StatusCode, Body: text}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("malformed response envelope: %w", err)
	}
	// An error field inside a 2xx envelope still counts as failure.
	if env.Error != "" {
		return &StatusError{Code: res.StatusCode, Body: env.Error}
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("malformed response result: %w", err)
		}
	}
	return nil
}
