package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
}

// ClientOptions represents the configuration options for the HTTP client.
// Zero timeouts keep the transport defaults.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
}

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 20
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 5
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// doRequest builds the URL, sets headers, executes the request, and decodes the
// response into successResp (2xx) or errorResp (anything else).
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	requestURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		requestURL += "?" + buildQueryString(queryParams)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, nil, 0, err
	}

	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	if errorResp != nil {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			return nil, nil, resp.StatusCode, statusErr
		}
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path == "" || path == "/" {
		return hc.baseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped query string from parameters
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}
