// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package textutil holds small text helpers for broker message
// builders: masking sensitive fields before a payload leaves the
// process, and compressing payloads for attribute-size limits.
package textutil

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"regexp"
	"strings"
)

// All digits of a card number except the last four, inside a
// CardNumber="..." XML attribute.
var cardNumberPattern = regexp.MustCompile(`(CardNumber=")(\d+)(\d{4}")`)

// The full series code inside a SeriesCode="..." XML attribute.
var seriesCodePattern = regexp.MustCompile(`(SeriesCode=")(\d*)(")`)

// MaskPattern replaces every match of pattern in text with asterisks
// of the same length.
func MaskPattern(text string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat("*", len(m))
	})
}

// MaskCardNumber masks all but the last four digits of CardNumber
// attribute values in text.
func MaskCardNumber(text string) string {
	return maskGroup(text, cardNumberPattern)
}

// MaskSeriesCode masks SeriesCode attribute values in text.
func MaskSeriesCode(text string) string {
	return maskGroup(text, seriesCodePattern)
}

// maskGroup rewrites each match of a three-group pattern, replacing
// the middle group with asterisks. RE2 has no lookaround, so the
// context to preserve is captured instead.
func maskGroup(text string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := pattern.FindStringSubmatch(m)
		return sub[1] + strings.Repeat("*", len(sub[2])) + sub[3]
	})
}

// CompressAndEncode zlib-compresses data and returns it
// base64-encoded.
func CompressAndEncode(data []byte) string {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
