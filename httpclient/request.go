// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
)

// A Request describes one logical HTTP request. Unlike http.Request it
// is immutable and reusable: the client builds a fresh http.Request
// from it on every attempt, so a retried request never carries state
// over from a previous attempt.
type Request struct {
	// Method is the HTTP method. Empty means GET.
	Method string

	// URL is the request URL. If the owning client has a BaseURL, a
	// relative URL is joined onto it.
	URL string

	// Header holds request headers, overriding same-named client base
	// headers.
	Header http.Header

	// Body is the request body. Nil means no body.
	Body []byte

	// Name identifies the logical request in logs and broker
	// messages, e.g. "CREATE-ORDER".
	Name string

	// Tag further distinguishes instances of a named request, e.g. an
	// order ID.
	Tag string
}

// NewRequest constructs a request. Name and Tag can be set on the
// returned value.
func NewRequest(method, url string, body []byte) *Request {
	return &Request{Method: method, URL: url, Body: body}
}

// Label returns the request's log label: NAME-TAG when both are set,
// just the name when only it is set, and "UNNAMED" otherwise.
func (r *Request) Label() string {
	name := r.Name
	if name == "" {
		name = "UNNAMED"
	}
	if r.Tag != "" {
		return name + "-" + r.Tag
	}
	return name
}

func (r *Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// resolveURL joins the request URL onto the base URL when the request
// URL is relative.
func (r *Request) resolveURL(base string) (string, error) {
	if base == "" {
		return r.URL, nil
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", err
	}
	if u.IsAbs() {
		return r.URL, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(u).String(), nil
}

// toHTTP builds the http.Request for one attempt.
func (r *Request) toHTTP(ctx context.Context, base string, baseHeader http.Header) (*http.Request, error) {
	u, err := r.resolveURL(base)
	if err != nil {
		return nil, err
	}

	var body *bytes.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	} else {
		body = bytes.NewReader(nil)
	}

	hr, err := http.NewRequestWithContext(ctx, r.method(), u, body)
	if err != nil {
		return nil, err
	}
	for name, values := range baseHeader {
		hr.Header[name] = values
	}
	for name, values := range r.Header {
		hr.Header[name] = values
	}
	return hr, nil
}
