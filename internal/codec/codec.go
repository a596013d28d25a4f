// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privault Authors

// Package codec normalizes file payloads between their canonical byte form
// and the string encodings produced by past and present clients: plain
// base64, base64 data URIs, and comma-separated decimal byte lists.
//
// Decode is deliberately strict: a value that matches one of the recognized
// shapes but fails to decode under it is rejected outright rather than
// passed on to a later rule. Truncating or zero-filling a vault payload
// would corrupt user data silently.
package codec

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// decimalListPattern matches one or more comma-separated runs of digits with
// no surrounding whitespace. Range checking happens during parsing.
var decimalListPattern = regexp.MustCompile(`^\d+(,\d+)*$`)

const dataURIPrefix = "data:"

// Decode converts an encoded payload back to canonical bytes. Detection
// order, first match wins:
//
//  1. strict decimal list ("72,101,108"), one byte per token;
//  2. data URI ("data:<mime>;base64,<payload>");
//  3. base64, standard or URL-safe alphabet, embedded whitespace tolerated.
func Decode(value string) ([]byte, error) {
	if decimalListPattern.MatchString(value) {
		return decodeDecimalList(value)
	}

	if strings.HasPrefix(value, dataURIPrefix) {
		return decodeDataURI(value)
	}

	return decodeBase64(value)
}

// EncodeBase64 renders bytes in the standard base64 alphabet with padding.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// EncodeDataURI renders bytes as a base64 data URI for the given MIME type.
// Used to materialize inline previews; the caller decides which MIME types
// are previewable.
func EncodeDataURI(b []byte, mime string) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(b))
}

// EncodeDecimalList renders bytes as a comma-separated decimal list. Legacy
// producers stored payloads this way; the format is kept encodable so
// round-trips remain exercisable.
func EncodeDecimalList(b []byte) string {
	var sb strings.Builder
	for i, octet := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(octet)))
	}
	return sb.String()
}

func decodeDecimalList(value string) ([]byte, error) {
	tokens := strings.Split(value, ",")
	out := make([]byte, len(tokens))

	for i, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil || n > 255 {
			return nil, fmt.Errorf("%w: token %q at position %d", ErrMalformedDecimalList, token, i)
		}
		out[i] = byte(n)
	}

	return out, nil
}

func decodeDataURI(value string) ([]byte, error) {
	header, payload, found := strings.Cut(value, ",")
	if !found {
		return nil, fmt.Errorf("%w: no comma separator", ErrMalformedDataURI)
	}
	if !strings.Contains(header, ";base64") {
		return nil, fmt.Errorf("%w: header %q does not declare base64", ErrMalformedDataURI, header)
	}

	return decodeBase64(payload)
}

// decodeBase64 tolerates embedded whitespace and accepts both the standard
// and URL-safe alphabets, padded or not.
func decodeBase64(value string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, value)

	// Nothing left after stripping whitespace matches no rule at all.
	// A vault payload is never the empty string; reject it rather than
	// manufacture a zero-byte file.
	if compact == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidBase64)
	}

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		if out, err := enc.DecodeString(compact); err == nil {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidBase64, truncateForError(value))
}

// truncateForError keeps rejected payloads out of logs at full length.
func truncateForError(value string) string {
	const maxLen = 32
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}
