// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the Device42 API client. Each call is a single HTTP(S) round
// trip without any retries; all outcomes get folded into a Result envelope.

package d42

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// API is the interface to the Device42 REST API as seen by operations.
type API interface {
	// Call queries the API at the specified path (relative to the API base URL
	// and version) using the given HTTP method, optionally sending parameters
	// as the request body. Call never fails with an error, but instead returns
	// a Result envelope with OK false.
	Call(path, method string, body Params) Result
}

// Client accesses the Device42 REST API using HTTP basic authentication.
type Client struct {
	// Base URL including the API version, always ending in a slash.
	apiurl string
	opts   ClientOptions
	// HTTP client used to issue requests; its transport has TLS verification
	// disabled only if explicitly asked for.
	httpclient *http.Client
}

var _ API = (*Client)(nil)

// NewClient returns a new API client for the specified options. If the URL
// lacks a scheme, https is assumed. The URL must not contain user
// information, query parameters, or fragments.
func NewClient(opts *ClientOptions) (*Client, error) {
	c := &Client{
		opts: ClientOptions{
			URL:     DefaultAPIURL,
			Version: DefaultAPIVersion,
		},
	}
	if opts != nil {
		c.opts = *opts
		if c.opts.URL == "" {
			c.opts.URL = DefaultAPIURL
		}
		if c.opts.Version == "" {
			c.opts.Version = DefaultAPIVersion
		}
	}
	baseurl := c.opts.URL
	if !strings.HasPrefix(baseurl, "http://") && !strings.HasPrefix(baseurl, "https://") {
		baseurl = "https://" + baseurl
	}
	u, err := url.Parse(baseurl)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", c.opts.URL, err)
	}
	if u.Host == "" || u.User != nil || u.Opaque != "" ||
		u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("invalid API URL %q: only scheme, host, port, and path allowed",
			c.opts.URL)
	}
	if !strings.HasSuffix(baseurl, "/") {
		baseurl += "/"
	}
	c.apiurl = baseurl + strings.Trim(c.opts.Version, "/")

	// Never touch the default transport, but work on a copy of it.
	httptrans := http.DefaultTransport.(*http.Transport).Clone()
	if c.opts.InsecureSkipVerify {
		httptrans.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	c.httpclient = &http.Client{Transport: httptrans}
	return c, nil
}

// URL returns the full URL for the specified API query path.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.apiurl + path
}

// Call queries the API; see API.Call for details.
func (c *Client) Call(path, method string, body Params) Result {
	if path == "" {
		return failed(FailureNoQuery, "No API query provided.")
	}
	if c.opts.User == "" || c.opts.Password == "" {
		return failed(FailureNoCredentials, "No API credentials provided.")
	}
	if method == "" {
		method = http.MethodGet
	}

	var payload io.Reader
	switch method {
	case http.MethodGet:
		// never any body.
	case http.MethodPost, http.MethodDelete:
		if method == http.MethodPost || len(body) > 0 {
			if body == nil {
				body = Params{}
			}
			b, err := json.Marshal(body)
			if err != nil {
				return failed(FailureRequest, "Unable to encode request parameters.")
			}
			payload = bytes.NewReader(b)
		}
	default:
		return failed(FailureRequest, fmt.Sprintf("Unsupported API method %s.", method))
	}

	apiurl := c.URL(path)
	req, err := http.NewRequest(method, apiurl, payload)
	if err != nil {
		log.Debugf("cannot create new HTTP request: %s", err.Error())
		return failed(FailureRequest, "Unable to create API request.")
	}
	req.SetBasicAuth(c.opts.User, c.opts.Password)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("%s %s", method, apiurl)
	res, err := c.httpclient.Do(req)
	if err != nil {
		log.Debugf("API request failed: %s", err.Error())
		if isTLSError(err) {
			return failed(FailureTLS, "SSL error when connecting to server.")
		}
		return failed(FailureConnect, "Unable to connect to server.")
	}
	defer res.Body.Close()
	text, err := io.ReadAll(res.Body)
	if err != nil {
		log.Debugf("cannot read API response: %s", err.Error())
		return failed(FailureConnect, "Unable to connect to server.")
	}
	log.Debugf("API response status %q, %d bytes", res.Status, len(text))

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		data, err := decode(text)
		if err != nil {
			return failed(FailureDecode, map[string]any{
				"error_message":   "Error decoding API response",
				"server_response": normalizeString(string(text)),
			})
		}
		return Result{OK: true, Data: Normalize(data), StatusCode: res.StatusCode}
	}

	detail := map[string]any{
		"error_message": fmt.Sprintf("Error accessing API (%s)", reason(res)),
	}
	if len(text) != 0 {
		if data, err := decode(text); err == nil {
			detail["server_response"] = Normalize(data)
		} else {
			detail["server_response"] = normalizeString(string(text))
		}
	}
	return failed(FailureStatus, detail)
}

// decode decodes a JSON text, keeping numbers as json.Number so that integers
// don't turn into floats. An empty text decodes to nil.
func decode(text []byte) (any, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// reason returns the reason phrase of the response's status line, falling
// back to the standard status text and finally to a placeholder.
func reason(res *http.Response) string {
	r := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if r == "" {
		r = http.StatusText(res.StatusCode)
	}
	if r == "" {
		return "Invalid Error"
	}
	return r
}

// isTLSError returns true if the (wrapped) transport error is caused by the
// TLS handshake or certificate verification.
func isTLSError(err error) bool {
	var (
		verr  *tls.CertificateVerificationError
		rherr tls.RecordHeaderError
		aerr  tls.AlertError
		uaerr x509.UnknownAuthorityError
		hnerr x509.HostnameError
		cierr x509.CertificateInvalidError
	)
	return errors.As(err, &verr) || errors.As(err, &rherr) || errors.As(err, &aerr) ||
		errors.As(err, &uaerr) || errors.As(err, &hnerr) || errors.As(err, &cierr)
}
