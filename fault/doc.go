// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault classifies errors from HTTP request execution into the
// transport fault classes a retry strategy cares about: connection
// establishment failures, timeouts, network interruptions on an
// established connection, and protocol violations.
//
// The classification looks through wrapped causes, so errors arriving
// inside *url.Error or *net.OpError envelopes are recognized. Errors
// matching no class, including nil, classify as None; a retry after
// such an error is unlikely to succeed.
//
// The Is* helpers have the signature of a retryx.Class, so they can be
// used directly as pre-filters on OnError rules.
package fault
