// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package textutil

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskCardNumber(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Last four survive",
			text:     `<Card CardNumber="4111111111111111"/>`,
			expected: `<Card CardNumber="************1111"/>`,
		},
		{
			name:     "Multiple occurrences",
			text:     `CardNumber="4111111111111111" CardNumber="5500005555555559"`,
			expected: `CardNumber="************1111" CardNumber="************5559"`,
		},
		{
			name:     "No card number",
			text:     `<Card Holder="J Doe"/>`,
			expected: `<Card Holder="J Doe"/>`,
		},
		{
			name:     "Surrounding text untouched",
			text:     `before CardNumber="123456789" after`,
			expected: `before CardNumber="*****6789" after`,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, MaskCardNumber(testCase.text))
		})
	}
}

func TestMaskSeriesCode(t *testing.T) {
	assert.Equal(t, `<Card SeriesCode="***"/>`, MaskSeriesCode(`<Card SeriesCode="123"/>`))
	assert.Equal(t, `<Card SeriesCode=""/>`, MaskSeriesCode(`<Card SeriesCode=""/>`))
	assert.Equal(t, `<Card Holder="J Doe"/>`, MaskSeriesCode(`<Card Holder="J Doe"/>`))
}

func TestMaskPattern(t *testing.T) {
	p := regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)
	assert.Equal(t, "ssn ***********.", MaskPattern("ssn 123-45-6789.", p))
	assert.Equal(t, "nothing here", MaskPattern("nothing here", p))
}

func TestCompressAndEncode(t *testing.T) {
	payload := []byte(`<Request CardNumber="************1111">lots of XML</Request>`)
	encoded := CompressAndEncode(payload)

	compressed, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer func() {
		_ = r.Close()
	}()

	decompressed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, decompressed)
}

func TestCompressAndEncodeEmpty(t *testing.T) {
	encoded := CompressAndEncode(nil)
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	decompressed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}
