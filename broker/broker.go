// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package broker defines the message broker boundary used by
// httpclient to publish request/response messages, independent of any
// particular broker technology. Package broker/sqs provides the Amazon
// SQS implementation.
package broker

import (
	"context"
	"strconv"
)

// An Attribute is one typed message attribute. Use the constructor
// functions rather than filling the struct by hand, so the DataType
// stays consistent with the populated value field.
type Attribute struct {
	DataType         string
	StringValue      string
	BinaryValue      []byte
	StringListValues []string
	BinaryListValues [][]byte
}

// NumberAttr constructs a numeric attribute.
func NumberAttr(value int64) Attribute {
	return Attribute{DataType: "Number", StringValue: strconv.FormatInt(value, 10)}
}

// StringAttr constructs a string attribute.
func StringAttr(value string) Attribute {
	return Attribute{DataType: "String", StringValue: value}
}

// StringListAttr constructs a string list attribute.
func StringListAttr(values ...string) Attribute {
	vs := make([]string, len(values))
	copy(vs, values)
	return Attribute{DataType: "String", StringListValues: vs}
}

// BinaryAttr constructs a binary attribute.
func BinaryAttr(value []byte) Attribute {
	return Attribute{DataType: "Binary", BinaryValue: value}
}

// BinaryListAttr constructs a binary list attribute.
func BinaryListAttr(values ...[]byte) Attribute {
	vs := make([][]byte, len(values))
	copy(vs, values)
	return Attribute{DataType: "Binary", BinaryListValues: vs}
}

// A Message is one broker message: a body plus named attributes.
// Either part may be empty, but builders should not emit a message
// with both empty.
type Message struct {
	Attributes map[string]Attribute
	Body       string
}

// Empty reports whether the message carries neither attributes nor a
// body.
func (m Message) Empty() bool {
	return len(m.Attributes) == 0 && m.Body == ""
}

// A Client sends messages to a broker.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Client interface {
	Send(ctx context.Context, m Message) error
}

// The ClientFunc type is an adapter to allow the use of ordinary
// functions as broker clients.
type ClientFunc func(ctx context.Context, m Message) error

// Send calls f(ctx, m).
func (f ClientFunc) Send(ctx context.Context, m Message) error {
	return f(ctx, m)
}
