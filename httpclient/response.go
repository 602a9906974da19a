// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"net/http"
	"time"
)

// A Response is the fully read outcome of a request: the HTTP response
// with its body already buffered, plus the attempt's elapsed time.
type Response struct {
	// Response is the underlying HTTP response. Its Body has already
	// been consumed; read Body on this struct instead.
	Response *http.Response

	// Body is the complete response body. It may be empty but is
	// never nil on a Response returned without error.
	Body []byte

	// Elapsed is the wall time of the attempt that produced this
	// response, from sending the request to finishing the body read.
	Elapsed time.Duration
}

// StatusCode returns the response status code.
func (r *Response) StatusCode() int {
	return r.Response.StatusCode
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// IsInfo reports whether the status code is informational (1xx).
func (r *Response) IsInfo() bool {
	return 100 <= r.StatusCode() && r.StatusCode() < 200
}

// IsSuccess reports whether the status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return 200 <= r.StatusCode() && r.StatusCode() < 300
}

// IsRedirect reports whether the status code is a redirect (3xx).
func (r *Response) IsRedirect() bool {
	return 300 <= r.StatusCode() && r.StatusCode() < 400
}

// IsClientError reports whether the status code is a client error
// (4xx).
func (r *Response) IsClientError() bool {
	return 400 <= r.StatusCode() && r.StatusCode() < 500
}

// IsServerError reports whether the status code is a server error
// (5xx).
func (r *Response) IsServerError() bool {
	return 500 <= r.StatusCode() && r.StatusCode() < 600
}
