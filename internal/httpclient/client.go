package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-client/internal/logging"
)

// ErrTransport marks failures where no HTTP response was received.
var ErrTransport = errors.New("httpclient: transport failure")

// APIError is a non-2xx response. Message is the body's message field when the
// server sent one, otherwise a generic status line; FromServer tells the two apart.
type APIError struct {
	StatusCode int
	Message    string
	FromServer bool
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode returns the status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Doer sends a single HTTP request; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource returns the current bearer token, or "" when there is none.
type TokenSource func() string

// Client sends JSON requests to the backend services, attaching the bearer token when one exists.
type Client struct {
	doer   Doer
	token  TokenSource
	logger *logrus.Logger
}

func New(doer Doer, token TokenSource, logger *logrus.Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{doer: doer, token: token, logger: logger}
}

// Do sends body (if non-nil) as JSON and decodes a 2xx response into out (if non-nil).
// A 2xx body that is empty, not valid JSON, or does not fit out leaves out untouched.
func (c *Client) Do(ctx context.Context, method, url string, body, out interface{}) error {
	logData := logging.NewLogData(c.logger)
	logData.AddData("method", method)
	logData.AddData("url", url)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("httpclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	stopTimer := logData.AddTiming("requestMs")
	resp, err := c.doer.Do(req)
	stopTimer()
	if err != nil {
		logData.Log().WithError(err).Warn("HTTPClient.Do.Error")
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, url, err)
	}
	defer resp.Body.Close()

	logData.AddData("status", resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logData.Log().WithError(err).Warn("HTTPClient.Do.Error")
		return fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(payload, resp.StatusCode)
		logData.Log().WithError(apiErr).Info("HTTPClient.Do.Error")
		return apiErr
	}

	logData.Log().Debug("HTTPClient.Do.Complete")

	if out != nil && len(payload) > 0 {
		if err := decodeInto(payload, out); err != nil {
			logData.Log().WithError(err).Warn("HTTPClient.Do.MalformedBody")
		}
	}

	return nil
}

// decodeInto decodes payload into a fresh value and copies it into out only on
// success, so a body that fails part way through leaves out as it was.
func decodeInto(payload []byte, out interface{}) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return json.Unmarshal(payload, out)
	}
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(payload, fresh.Interface()); err != nil {
		return err
	}
	target.Elem().Set(fresh.Elem())
	return nil
}

func newAPIError(payload []byte, status int) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return &APIError{StatusCode: status, Message: body.Message, FromServer: true}
	}
	return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP error! Status: %d", status)}
}
