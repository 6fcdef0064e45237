package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/folioview/folioview-cli/internal/fverrors"
	"github.com/folioview/folioview-cli/internal/utils"
)

type requestOptions struct {
	// noAuth skips the bearer header and the 401 recovery path, used by the
	// login, register and refresh calls themselves.
	noAuth bool
	query  url.Values
}

type requestOption func(*requestOptions)

func withNoAuth() requestOption {
	return func(o *requestOptions) {
		o.noAuth = true
	}
}

func withQuery(query url.Values) requestOption {
	return func(o *requestOptions) {
		o.query = query
	}
}

// do sends one authenticated request and decodes the 2xx response body into
// out (when out is not nil). On a 401 it attempts exactly one session refresh
// and replays the request exactly once with the new access token; the
// replay's outcome is final. Any other non-2xx response becomes an *APIError.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any, opts ...requestOption) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	payload, contentType, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return c.send(ctx, method, path, payload, contentType, options, out)
}

// send carries the replay logic and is shared by do and the multipart upload.
// The payload is a byte slice, not a reader, precisely so the single replay
// can resend it.
func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	payload []byte,
	contentType string,
	options requestOptions,
	out any,
) error {
	if c.limiter != nil {
		err := c.limiter.Wait(ctx)
		if err != nil {
			return err
		}
	}
	accessToken := ""
	if !options.noAuth {
		tokens, err := c.session.Tokens(ctx)
		if err != nil && !errors.Is(err, fverrors.ErrTokenNotFound) {
			return err
		}
		// no stored token means the request goes out without a bearer header
		// and the 401 handling below decides what happens next
		accessToken = tokens.AccessToken
	}
	requestID := utils.NewRequestID()
	resp, err := c.sendOnce(ctx, method, path, payload, contentType, options.query, accessToken, requestID)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized && !options.noAuth {
		drain(resp)
		slog.Debug(
			"API CLIENT",
			"message", "got 401, attempting a token refresh",
			"method", method,
			"path", path,
			"requestID", requestID,
			"sessionID", c.session.ID,
		)
		newTokens, err := c.session.Refresh(ctx, accessToken, c.refreshTokenSet)
		if err != nil {
			return err
		}
		// one-shot retry: this replay is the only one, whatever its outcome
		resp, err = c.sendOnce(ctx, method, path, payload, contentType, options.query, newTokens.AccessToken, requestID)
		if err != nil {
			return fmt.Errorf("replaying request %s %s failed: %w", method, path, err)
		}
	}
	return decodeResponse(resp, out)
}

func (c *Client) sendOnce(
	ctx context.Context,
	method string,
	path string,
	payload []byte,
	contentType string,
	query url.Values,
	accessToken string,
	requestID string,
) (*http.Response, error) {
	endpoint := c.baseURL.JoinPath(path)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return c.httpClient.Do(req)
}

func encodeJSONBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return payload, "application/json", nil
}

// encodeMultipartBody buffers the file into a multipart payload with the
// field name the report endpoint expects.
func encodeMultipartBody(fieldName string, fileName string, content io.Reader) ([]byte, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, "", err
	}
	_, err = io.Copy(part, content)
	if err != nil {
		return nil, "", err
	}
	err = writer.Close()
	if err != nil {
		return nil, "", err
	}
	return buffer.Bytes(), writer.FormDataContentType(), nil
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	err := json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("cannot decode the response body: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	resp.Body.Close()
}
