package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwise1/trailhead_admin/internal/model"
	"github.com/bwise1/trailhead_admin/util/values"
	"github.com/google/go-querystring/query"
	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
)

// Client talks to the admin JSON API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Token supplies the bearer token for each request; empty means anonymous.
	Token func() string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		log.Println("[Admin]: API base url is empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
	}
}

// Envelope is the success body: {data, meta, message, status}.
type Envelope struct {
	Data    json.RawMessage       `json:"data"`
	Meta    *model.PaginationMeta `json:"meta,omitempty"`
	Message string                `json:"message"`
	Status  Status                `json:"status"`
}

// Status accepts the envelope status as either a string or a number.
type Status string

func (s *Status) UnmarshalJSON(b []byte) error {
	*s = Status(strings.Trim(string(b), `"`))
	if *s == "null" {
		*s = ""
	}
	return nil
}

// Decode unmarshals data[key] into target, or the whole data object when
// key is empty.
func (e *Envelope) Decode(key string, target interface{}) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return errors.New("response has no data")
	}
	if key == "" {
		return errors.Wrap(json.Unmarshal(e.Data, target), "error decoding data")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e.Data, &fields); err != nil {
		return errors.Wrap(err, "error decoding data")
	}
	raw, ok := fields[key]
	if !ok {
		return errors.Errorf("response data has no %q", key)
	}
	return errors.Wrapf(json.Unmarshal(raw, target), "error decoding data.%s", key)
}

// Query encodes a filter struct tagged with `url` into query values.
func Query(filters interface{}) url.Values {
	if filters == nil {
		return nil
	}
	v, err := query.Values(filters)
	if err != nil {
		log.Printf("[Admin]: unable to encode filters %T: %v", filters, err)
		return nil
	}
	return v
}

func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	return c.Do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do sends a JSON request and decodes the envelope. Non-2xx responses and
// transport failures come back as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body interface{}) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "error encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, params, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating %s %s request", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(values.HeaderRequestID, cuid.New())
	req.Header.Set(values.HeaderRequestSource, values.RequestSource)
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) send(req *http.Request) (*Envelope, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeFailure(raw, resp.StatusCode)
	}

	var env Envelope
	if len(bytes.TrimSpace(raw)) == 0 {
		return &env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "error decoding %s %s response", req.Method, req.URL.Path)
	}
	return &env, nil
}

func decodeFailure(raw []byte, status int) *APIError {
	var body ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &APIError{Message: SanitizeErrorMessage("", status), Status: status}
	}
	return &APIError{
		Message: SanitizeErrorMessage(body.Message, status),
		Status:  status,
		Data:    &body,
	}
}
