// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package httpretry assembles a ready-made retryx strategy for HTTP
// requests.
//
// The strategy always retries connection-establishment failures.
// Retrying timeouts, network interruptions, and protocol violations is
// opt-in per Config flag, and responses can be retried by status group
// (informational, redirect, client error, server error); a 2xx
// response is never retried. Every rule that votes for a retry logs
// the reason through the configured zerolog logger, and the strategy's
// hooks log each upcoming retry and the final exhaustion.
//
//	s := httpretry.New(httpretry.Config{
//		Attempts:   3,
//		Delay:      500 * time.Millisecond,
//		OnTimeouts: true,
//		OnStatuses: httpretry.Statuses(httpretry.ServerError),
//		Logger:     logger,
//	})
//
// The result is a plain *retryx.Strategy; install it in an
// httpclient.Client or use it directly.
package httpretry
