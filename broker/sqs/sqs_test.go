// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sqs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/retryx/broker"
)

// fakeAPI captures SendMessage inputs and returns a canned error.
type fakeAPI struct {
	inputs []*awssqs.SendMessageInput
	err    error
}

func (f *fakeAPI) SendMessage(ctx context.Context, params *awssqs.SendMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &awssqs.SendMessageOutput{}, nil
}

const queueURL = "https://sqs.eu-west-1.amazonaws.com/123456789012/orders"

func TestNew(t *testing.T) {
	t.Run("Declaration errors", func(t *testing.T) {
		assert.PanicsWithValue(t, "sqs: empty queue URL", func() {
			New("", &fakeAPI{})
		})
		assert.PanicsWithValue(t, "sqs: nil API", func() {
			New(queueURL, nil)
		})
	})
}

func TestSend(t *testing.T) {
	t.Run("Maps the message onto the wire type", func(t *testing.T) {
		api := &fakeAPI{}
		c := New(queueURL, api)
		err := c.Send(context.Background(), broker.Message{
			Body: "payload",
			Attributes: map[string]broker.Attribute{
				"Name":       broker.StringAttr("CREATE"),
				"StatusCode": broker.NumberAttr(201),
				"Raw":        broker.BinaryAttr([]byte{0xCA, 0xFE}),
			},
		})

		require.NoError(t, err)
		require.Len(t, api.inputs, 1)
		in := api.inputs[0]
		assert.Equal(t, queueURL, *in.QueueUrl)
		assert.Equal(t, "payload", *in.MessageBody)
		require.Len(t, in.MessageAttributes, 3)
		assert.Equal(t, "String", *in.MessageAttributes["Name"].DataType)
		assert.Equal(t, "CREATE", *in.MessageAttributes["Name"].StringValue)
		assert.Equal(t, "Number", *in.MessageAttributes["StatusCode"].DataType)
		assert.Equal(t, "201", *in.MessageAttributes["StatusCode"].StringValue)
		assert.Equal(t, "Binary", *in.MessageAttributes["Raw"].DataType)
		assert.Equal(t, []byte{0xCA, 0xFE}, in.MessageAttributes["Raw"].BinaryValue)
	})
	t.Run("No attributes", func(t *testing.T) {
		api := &fakeAPI{}
		c := New(queueURL, api)
		err := c.Send(context.Background(), broker.Message{Body: "payload"})

		require.NoError(t, err)
		assert.Nil(t, api.inputs[0].MessageAttributes)
	})
	t.Run("Service error", func(t *testing.T) {
		svcErr := &smithy.GenericAPIError{
			Code:    "AccessDenied",
			Message: "not authorized",
		}
		var buf bytes.Buffer
		c := New(queueURL, &fakeAPI{err: svcErr}, WithLogger(zerolog.New(&buf)))
		err := c.Send(context.Background(), broker.Message{Body: "payload"})

		assert.Same(t, error(svcErr), err)
		out := buf.String()
		assert.Contains(t, out, "failed to send SQS message due to service error")
		assert.Contains(t, out, `"error_code":"AccessDenied"`)
		assert.Contains(t, out, `"error_message":"not authorized"`)
	})
	t.Run("Transport error", func(t *testing.T) {
		transportErr := errors.New("dial tcp: connection refused")
		var buf bytes.Buffer
		c := New(queueURL, &fakeAPI{err: transportErr}, WithLogger(zerolog.New(&buf)))
		err := c.Send(context.Background(), broker.Message{Body: "payload"})

		assert.Same(t, transportErr, err)
		out := buf.String()
		assert.Contains(t, out, "failed to send SQS message")
		assert.NotContains(t, out, "service error")
	})
	t.Run("Success logging", func(t *testing.T) {
		var buf bytes.Buffer
		c := New(queueURL, &fakeAPI{},
			WithLogger(zerolog.New(&buf)),
			WithAttributeLogging(true),
			WithBodyLogging(true))
		err := c.Send(context.Background(), broker.Message{
			Body:       "payload",
			Attributes: map[string]broker.Attribute{"Name": broker.StringAttr("X")},
		})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "sent SQS message successfully")
		assert.Contains(t, out, `"body":"payload"`)
		assert.Contains(t, out, `"attributes"`)
	})
	t.Run("Silent by default", func(t *testing.T) {
		api := &fakeAPI{}
		c := New(queueURL, api)
		err := c.Send(context.Background(), broker.Message{Body: "payload"})
		require.NoError(t, err)
	})
}
