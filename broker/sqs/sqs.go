// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sqs implements the broker.Client interface on Amazon SQS.
package sqs

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/gogama/retryx/broker"
	"github.com/gogama/retryx/lazy"
)

// An API is the subset of the SQS service client used by Client. The
// generated *awssqs.Client satisfies it; tests substitute a fake.
type API interface {
	SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error)
}

// A Client sends broker messages to one SQS queue. Construct it with
// New or NewFromConfig. A Client is safe for concurrent use by
// multiple goroutines.
type Client struct {
	queueURL      string
	conn          *lazy.Value[API]
	logger        zerolog.Logger
	logAttributes bool
	logBody       bool
}

// An Option configures a Client.
type Option func(*Client)

// WithLogger sets the client's structured logger. Without it, the
// client is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithAttributeLogging includes message attributes in the success log.
func WithAttributeLogging(on bool) Option {
	return func(c *Client) { c.logAttributes = on }
}

// WithBodyLogging includes the message body in the success log. Mask
// sensitive fields (see package textutil) before building the message
// if this is enabled.
func WithBodyLogging(on bool) Option {
	return func(c *Client) { c.logBody = on }
}

// New constructs a Client on an existing SQS service client (or any
// API implementation). New panics if api is nil or queueURL is empty.
func New(queueURL string, api API, opts ...Option) *Client {
	if queueURL == "" {
		panic("sqs: empty queue URL")
	}
	if api == nil {
		panic("sqs: nil API")
	}
	return newClient(queueURL, lazy.Of(api), opts)
}

// NewFromConfig constructs a Client that builds its SQS service client
// from cfg lazily, on first Send, so constructing the broker client is
// cheap and never dials. NewFromConfig panics if queueURL is empty.
func NewFromConfig(queueURL string, cfg aws.Config, opts ...Option) *Client {
	if queueURL == "" {
		panic("sqs: empty queue URL")
	}
	conn := lazy.New(func() API {
		return awssqs.NewFromConfig(cfg)
	})
	return newClient(queueURL, conn, opts)
}

func newClient(queueURL string, conn *lazy.Value[API], opts []Option) *Client {
	c := &Client{
		queueURL: queueURL,
		conn:     conn,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send delivers the message to the queue. Failures are logged and
// returned; an SQS service error is logged with its service code and
// message, a transport-level failure with the bare error.
func (c *Client) Send(ctx context.Context, m broker.Message) error {
	in := &awssqs.SendMessageInput{
		QueueUrl:          aws.String(c.queueURL),
		MessageBody:       aws.String(m.Body),
		MessageAttributes: attributeValues(m.Attributes),
	}

	_, err := c.conn.Get().SendMessage(ctx, in)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			c.logger.Error().
				Str("error_code", apiErr.ErrorCode()).
				Str("error_message", apiErr.ErrorMessage()).
				Msg("failed to send SQS message due to service error")
		} else {
			c.logger.Error().
				Err(err).
				Msg("failed to send SQS message")
		}
		return err
	}

	evt := c.logger.Info()
	if c.logAttributes {
		evt = evt.Interface("attributes", m.Attributes)
	}
	if c.logBody {
		evt = evt.Str("body", m.Body)
	}
	evt.Msg("sent SQS message successfully")
	return nil
}

// attributeValues maps broker attributes onto the SQS wire type.
func attributeValues(attrs map[string]broker.Attribute) map[string]types.MessageAttributeValue {
	if len(attrs) == 0 {
		return nil
	}
	values := make(map[string]types.MessageAttributeValue, len(attrs))
	for name, a := range attrs {
		v := types.MessageAttributeValue{
			DataType: aws.String(a.DataType),
		}
		if a.StringValue != "" {
			v.StringValue = aws.String(a.StringValue)
		}
		if a.BinaryValue != nil {
			v.BinaryValue = a.BinaryValue
		}
		if len(a.StringListValues) > 0 {
			v.StringListValues = a.StringListValues
		}
		if len(a.BinaryListValues) > 0 {
			v.BinaryListValues = a.BinaryListValues
		}
		values[name] = v
	}
	return values
}
