// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpretry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/retryx"
	"github.com/gogama/retryx/fault"
)

// A StatusGroup names a family of HTTP response status codes for the
// status rule.
type StatusGroup string

const (
	// Info covers 1xx responses.
	Info StatusGroup = "info"
	// Redirect covers 3xx responses.
	Redirect StatusGroup = "redirect"
	// ClientError covers 4xx responses.
	ClientError StatusGroup = "client_error"
	// ServerError covers 5xx responses.
	ServerError StatusGroup = "server_error"
)

// Statuses constructs the status group set for Config.OnStatuses.
func Statuses(groups ...StatusGroup) map[StatusGroup]bool {
	set := make(map[StatusGroup]bool, len(groups))
	for _, g := range groups {
		set[g] = true
	}
	return set
}

// Config configures an HTTP retry strategy. Construct it once and pass
// it to New; it is copied and never mutated afterward.
type Config struct {
	// Attempts is the maximum number of attempts, including the
	// initial one. Values below 1 mean a single attempt.
	Attempts int

	// Delay is the fixed wait between attempts.
	Delay time.Duration

	// OnTimeouts enables retrying timeouts occurring after the
	// connection was established (read, write, and header deadlines).
	// Connection-establishment failures, including dial timeouts, are
	// always retried regardless of this flag.
	OnTimeouts bool

	// OnNetworkErrors enables retrying network interruptions on an
	// established connection (resets, broken pipes, failed reads and
	// writes).
	OnNetworkErrors bool

	// OnProtocolErrors enables retrying protocol violations (malformed
	// responses, truncated bodies, HTTP/2 stream errors).
	OnProtocolErrors bool

	// OnStatuses selects response status groups to retry. A successful
	// (2xx) response is never retried. Nil or empty disables the
	// status rule. Build the set with Statuses.
	OnStatuses map[StatusGroup]bool

	// Logger receives the strategy's structured log output. The zero
	// Logger discards everything.
	Logger zerolog.Logger
}

// RequestInfo identifies the HTTP request being retried. Callers that
// want the strategy's hooks to log the request pass a RequestInfo as
// the first operation argument; httpclient.Client does this
// automatically.
type RequestInfo struct {
	Method string
	URL    string
	Label  string
}

// New builds a retry strategy implementing the HTTP rule set described
// in the package documentation. The returned strategy is ready for
// concurrent use.
func New(cfg Config) *retryx.Strategy {
	groups := make(map[StatusGroup]bool, len(cfg.OnStatuses))
	for g, on := range cfg.OnStatuses {
		if on {
			groups[g] = true
		}
	}
	log := cfg.Logger

	rules := retryx.NewRuleset(
		retryx.OnError("connection_error", func(err error) bool {
			log.Info().
				Str("error_type", fmt.Sprintf("%T", err)).
				Err(err).
				Msg("marking HTTP request for retry due to connection error")
			return true
		}, fault.IsConnect),
		retryx.OnError("timeout_error", func(err error) bool {
			if !cfg.OnTimeouts {
				return false
			}
			log.Info().
				Str("error_type", fmt.Sprintf("%T", err)).
				Err(err).
				Msg("marking HTTP request for retry due to timeout error")
			return true
		}, fault.IsTimeout),
		retryx.OnError("network_error", func(err error) bool {
			if !cfg.OnNetworkErrors {
				return false
			}
			log.Info().
				Str("error_type", fmt.Sprintf("%T", err)).
				Err(err).
				Msg("marking HTTP request for retry due to network error")
			return true
		}, fault.IsNetwork),
		retryx.OnError("protocol_error", func(err error) bool {
			if !cfg.OnProtocolErrors {
				return false
			}
			log.Info().
				Str("error_type", fmt.Sprintf("%T", err)).
				Err(err).
				Msg("marking HTTP request for retry due to protocol error")
			return true
		}, fault.IsProtocol),
		retryx.OnResult("status_code", func(v any) bool {
			code := statusCode(v)
			if code == 0 || (200 <= code && code < 300) || len(groups) == 0 {
				return false
			}
			if !groups[groupOf(code)] {
				return false
			}
			log.Info().
				Int("status_code", code).
				Msg("marking HTTP request for retry due to status code")
			return true
		}),
	)

	attempts := cfg.Attempts
	return &retryx.Strategy{
		Policy: retryx.Policy{Attempts: cfg.Attempts, Delay: cfg.Delay},
		Rules:  rules,
		Hooks: retryx.Hooks{
			Before: func(s *retryx.State) {
				evt := log.Info().
					Int("attempt", s.Attempt+1).
					Int("attempts", attempts)
				evt = describeRequest(evt, s)
				evt.Msg("retrying HTTP request")
			},
			OnExhausted: func(s *retryx.State) error {
				evt := log.Error().
					Int("attempt", s.Attempt).
					Int("attempts", attempts).
					Err(s.Err)
				evt = describeRequest(evt, s)
				evt.Msg("all retry attempts failed for HTTP request")
				return nil
			},
		},
	}
}

// describeRequest annotates a log event with the request identity, if
// the operation args carry one.
func describeRequest(evt *zerolog.Event, s *retryx.State) *zerolog.Event {
	switch r := s.Arg(0).(type) {
	case RequestInfo:
		return evt.Str("request", r.Label).Str("method", r.Method).Str("url", r.URL)
	case *http.Request:
		return evt.Str("method", r.Method).Stringer("url", r.URL)
	}
	return evt
}

// statusCode extracts a response status code from an operation result.
func statusCode(v any) int {
	switch r := v.(type) {
	case interface{ StatusCode() int }:
		return r.StatusCode()
	case *http.Response:
		if r != nil {
			return r.StatusCode
		}
	}
	return 0
}

// groupOf maps a status code to its group. Codes outside the groups
// the rule understands map to the empty group, which is never enabled.
func groupOf(code int) StatusGroup {
	switch code / 100 {
	case 1:
		return Info
	case 3:
		return Redirect
	case 4:
		return ClientError
	case 5:
		return ServerError
	}
	return ""
}
