// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpclient provides a thin, observable wrapper over a standard
HTTP client: named requests, structured request/response logging,
retries through a retryx strategy, and optional publication of
request/response messages to a broker.

The zero value Client is usable and sends through http.DefaultClient.

	client := &httpclient.Client{
		BaseURL: "https://api.example.com",
		Retry: httpretry.New(httpretry.Config{
			Attempts:   3,
			Delay:      time.Second,
			OnStatuses: httpretry.Statuses(httpretry.ServerError),
			Logger:     logger,
		}),
		Logger: logger,
	}
	resp, err := client.Get(ctx, "/things", "LIST-THINGS", "")

The client is not a complete abstraction over net/http; it extends an
HTTPDoer with the features above and stays out of the way otherwise.
Redirects, cookies, proxies, and TLS remain the HTTPDoer's business.
*/
package httpclient
