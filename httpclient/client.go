// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/retryx"
	"github.com/gogama/retryx/broker"
	"github.com/gogama/retryx/httpretry"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

// DefaultTimeout is the per-attempt timeout used when Client.Timeout
// is zero.
const DefaultTimeout = 5 * time.Second

// NoTimeout disables the per-attempt timeout when assigned to
// Client.Timeout.
const NoTimeout = time.Duration(-1)

// RequestLogConfig selects which request details go into the request
// log line.
type RequestLogConfig struct {
	Name    bool
	Tag     bool
	Method  bool
	URL     bool
	Headers bool
	Body    bool
}

// ResponseLogConfig selects which details go into the response log
// line.
type ResponseLogConfig struct {
	Name        bool
	Tag         bool
	Method      bool
	URL         bool
	StatusCode  bool
	Headers     bool
	Body        bool
	ElapsedTime bool
}

// DefaultRequestLogConfig logs the request identity and target but not
// headers or body.
var DefaultRequestLogConfig = RequestLogConfig{Name: true, Tag: true, Method: true, URL: true}

// DefaultResponseLogConfig logs the request identity, status code, and
// elapsed time but not headers or body.
var DefaultResponseLogConfig = ResponseLogConfig{
	Name: true, Tag: true, Method: true, URL: true,
	StatusCode: true, ElapsedTime: true,
}

// A MessageBuilder turns a request/response pair into a broker
// message. Filter decides whether the pair should produce a message at
// all; BuildMetadata and BuildBody produce the message parts (package
// broker has attribute constructors, and package textutil has masking
// and compression helpers for sensitive or bulky bodies).
type MessageBuilder interface {
	Filter(req *Request, resp *Response) bool
	BuildMetadata(req *Request, resp *Response) map[string]broker.Attribute
	BuildBody(req *Request, resp *Response) string
}

// BuildMessage runs a builder over a request/response pair. It returns
// nil when the builder filters the pair out or produces an empty
// message.
func BuildMessage(b MessageBuilder, req *Request, resp *Response) *broker.Message {
	if !b.Filter(req, resp) {
		return nil
	}
	m := broker.Message{
		Attributes: b.BuildMetadata(req, resp),
		Body:       b.BuildBody(req, resp),
	}
	if m.Empty() {
		return nil
	}
	return &m
}

// A Client is an HTTP client wrapper adding named requests, structured
// logging, retries, and broker publication on top of an HTTPDoer. Its
// zero value is a valid configuration sending through
// http.DefaultClient with default logging selections and no retries.
//
// Configure a Client before first use and do not modify it afterward;
// within that constraint it is safe for concurrent use by multiple
// goroutines.
type Client struct {
	// HTTPDoer sends the actual requests. Nil means
	// http.DefaultClient.
	HTTPDoer HTTPDoer

	// Retry, when non-nil, runs every request under the given
	// strategy. Use httpretry.New for a ready-made HTTP rule set.
	Retry *retryx.Strategy

	// BaseURL, when set, is the base for relative request URLs.
	BaseURL string

	// Header holds base headers applied to every request. Per-request
	// headers override same-named base headers.
	Header http.Header

	// Timeout bounds each individual attempt, including reading the
	// response body. Zero means DefaultTimeout; NoTimeout disables it.
	// The retry delay is not part of the attempt, so the timeout
	// applies afresh on every retry.
	Timeout time.Duration

	// Logger receives the request/response log lines. The zero Logger
	// discards everything.
	Logger zerolog.Logger

	// RequestLog selects request log details. Nil means
	// DefaultRequestLogConfig.
	RequestLog *RequestLogConfig

	// ResponseLog selects response log details. Nil means
	// DefaultResponseLogConfig.
	ResponseLog *ResponseLogConfig

	// Broker and MessageBuilder, when both non-nil, publish a message
	// for each successful request/response pair. Publication failures
	// are logged, not returned: the response was already obtained.
	Broker         broker.Client
	MessageBuilder MessageBuilder
}

// Do executes the request, retrying under the configured strategy, and
// returns the fully read response.
//
// On terminal failure the error is the strategy's *retryx.ExhaustedError
// (when a retry strategy is configured) or the transport error itself.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		panic("httpclient: nil request")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if c.Retry == nil {
		resp, err := c.send(ctx, req)
		if err != nil {
			return nil, err
		}
		c.publish(ctx, req, resp)
		return resp, nil
	}

	info := httpretry.RequestInfo{Method: req.method(), URL: req.URL, Label: req.Label()}
	v, err := c.Retry.DoContext(ctx, func(ctx context.Context, _ ...any) (any, error) {
		return c.send(ctx, req)
	}, info)
	if err != nil {
		return nil, err
	}
	resp := v.(*Response)
	c.publish(ctx, req, resp)
	return resp, nil
}

// Get executes a GET against url with the given name and tag.
func (c *Client) Get(ctx context.Context, url, name, tag string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url, Name: name, Tag: tag})
}

// Post executes a POST of body against url with the given name and
// tag. The Content-Type header is set to contentType.
func (c *Client) Post(ctx context.Context, url, contentType string, body []byte, name, tag string) (*Response, error) {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	return c.Do(ctx, &Request{
		Method: http.MethodPost, URL: url, Header: header, Body: body, Name: name, Tag: tag,
	})
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer, if it has one.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(interface{ CloseIdleConnections() }); ok {
		ic.CloseIdleConnections()
	}
}

// send performs one attempt: build, log, send, read, log.
func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	if t := c.timeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	hr, err := req.toHTTP(ctx, c.BaseURL, c.Header)
	if err != nil {
		return nil, err
	}

	c.logRequest(req, hr)

	start := time.Now()
	resp, err := c.doer().Do(hr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	r := &Response{Response: resp, Body: body, Elapsed: time.Since(start)}
	c.logResponse(req, r)
	return r, nil
}

// publish sends the request/response message to the broker, when one
// is configured and the builder produces a message.
func (c *Client) publish(ctx context.Context, req *Request, resp *Response) {
	if c.Broker == nil || c.MessageBuilder == nil {
		return
	}
	m := BuildMessage(c.MessageBuilder, req, resp)
	if m == nil {
		return
	}
	c.Logger.Info().
		Str("request", req.Label()).
		Msg("sending HTTP request message to broker")
	if err := c.Broker.Send(ctx, *m); err != nil {
		c.Logger.Error().
			Err(err).
			Str("request", req.Label()).
			Msg("failed to send HTTP request message to broker")
	}
}

func (c *Client) logRequest(req *Request, hr *http.Request) {
	cfg := c.RequestLog
	if cfg == nil {
		cfg = &DefaultRequestLogConfig
	}

	evt := c.Logger.Info().Str("request", req.Label())
	if cfg.Name {
		evt = evt.Str("name", req.Name)
	}
	if cfg.Tag {
		evt = evt.Str("tag", req.Tag)
	}
	if cfg.Method {
		evt = evt.Str("method", hr.Method)
	}
	if cfg.URL {
		evt = evt.Stringer("url", hr.URL)
	}
	if cfg.Headers {
		evt = evt.Interface("headers", hr.Header)
	}
	if cfg.Body {
		evt = evt.Bytes("body", req.Body)
	}
	evt.Msg("sending HTTP request")
}

func (c *Client) logResponse(req *Request, r *Response) {
	cfg := c.ResponseLog
	if cfg == nil {
		cfg = &DefaultResponseLogConfig
	}

	evt := c.Logger.Info().Str("request", req.Label())
	if cfg.Name {
		evt = evt.Str("name", req.Name)
	}
	if cfg.Tag {
		evt = evt.Str("tag", req.Tag)
	}
	if cfg.Method {
		evt = evt.Str("method", r.Response.Request.Method)
	}
	if cfg.URL {
		evt = evt.Stringer("url", r.Response.Request.URL)
	}
	if cfg.StatusCode {
		evt = evt.Int("status_code", r.StatusCode())
	}
	if cfg.Headers {
		evt = evt.Interface("headers", r.Response.Header)
	}
	if cfg.Body {
		evt = evt.Bytes("body", r.Body)
	}
	if cfg.ElapsedTime {
		evt = evt.Dur("elapsed", r.Elapsed)
	}
	evt.Msg("HTTP response received")
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) timeout() time.Duration {
	switch {
	case c.Timeout == 0:
		return DefaultTimeout
	case c.Timeout < 0:
		return 0
	}
	return c.Timeout
}
