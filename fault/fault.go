// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"io"
	"net"
	"strings"
	"syscall"

	"golang.org/x/net/http2"
)

// A Class is the fault class of a particular error, as reported by
// Classify.
type Class int

const (
	// None indicates an error matching no fault class, including nil.
	None Class = iota
	// Connect indicates a failure to establish a connection: a refused
	// or timed-out dial, or a name resolution failure. Connection
	// failures are often temporary (a service restarting is briefly
	// not listening on its port), so they are prime retry candidates.
	//
	// Classify reports Connect for dial-phase *net.OpError values,
	// including dial timeouts, for *net.DNSError, and for
	// syscall.ECONNREFUSED.
	Connect
	// Timeout indicates a client-side timeout after the connection was
	// established: a read, write, or header deadline expiring. The
	// server may be going through a period of slowness.
	//
	// Classify reports Timeout if the error or any of its wrapped
	// causes has a Timeout() function reporting true. Classify never
	// consults Temporary(), as its semantics aren't clear.
	Timeout
	// Network indicates an established connection that broke: a reset,
	// an aborted connection, a broken pipe, or a failed read or write.
	//
	// Classify reports Network for syscall.ECONNRESET,
	// syscall.ECONNABORTED, and syscall.EPIPE, for net.ErrClosed, and
	// for read/write/close-phase *net.OpError values.
	Network
	// Protocol indicates the peer spoke HTTP incorrectly: a malformed
	// response, a truncated body, or an HTTP/2 connection, stream, or
	// GOAWAY error.
	Protocol
)

var classNames = []string{
	"None",
	"Connect",
	"Timeout",
	"Network",
	"Protocol",
}

// String returns the name of the fault class.
func (c Class) String() string {
	return classNames[int(c)]
}

// Classify returns the fault class of the given error.
//
// Classes are checked in a fixed order: Connect, then Timeout, then
// Protocol, then Network. The order matters for errors that would
// match more than one class; in particular a dial timeout classifies
// as Connect, not Timeout, because it describes a connection that was
// never established.
func Classify(err error) Class {
	if err == nil {
		return None
	}
	if isConnect(err) {
		return Connect
	}
	if isTimeout(err) {
		return Timeout
	}
	if isProtocol(err) {
		return Protocol
	}
	if isNetwork(err) {
		return Network
	}
	return None
}

// IsConnect reports whether err classifies as Connect.
func IsConnect(err error) bool { return Classify(err) == Connect }

// IsTimeout reports whether err classifies as Timeout.
func IsTimeout(err error) bool { return Classify(err) == Timeout }

// IsNetwork reports whether err classifies as Network.
func IsNetwork(err error) bool { return Classify(err) == Network }

// IsProtocol reports whether err classifies as Protocol.
func IsProtocol(err error) bool { return Classify(err) == Protocol }

func isConnect(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ECONNREFUSED
}

func isTimeout(err error) bool {
	var hasTimeout hasTimeout
	return errors.As(err, &hasTimeout) && hasTimeout.Timeout()
}

func isProtocol(err error) bool {
	var connErr http2.ConnectionError
	if errors.As(err, &connErr) {
		return true
	}

	var streamErr http2.StreamError
	if errors.As(err, &streamErr) {
		return true
	}

	var goAway http2.GoAwayError
	if errors.As(err, &goAway) {
		return true
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	// net/http reports malformed response lines and headers as plain
	// string errors, so there is no type to match on.
	return strings.Contains(err.Error(), "malformed HTTP")
}

func isNetwork(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNABORTED, syscall.EPIPE:
			return true
		}
	}

	if errors.Is(err, net.ErrClosed) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch opErr.Op {
		case "read", "write", "close":
			return true
		}
	}

	return false
}

type hasTimeout interface {
	Timeout() bool
}
