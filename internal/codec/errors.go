package codec

import (
	"errors"
	"fmt"
)

// ErrDecode is the common ancestor of every decode failure in this package.
// Callers that only care whether a payload was decodable match against it
// with [errors.Is]; the wrapped sentinels below pinpoint the rule that
// rejected the value.
var ErrDecode = errors.New("payload cannot be decoded")

var (
	// ErrMalformedDecimalList is returned when a value matches the
	// decimal-list pattern but contains a token outside the byte range.
	ErrMalformedDecimalList = fmt.Errorf("%w: malformed decimal list", ErrDecode)

	// ErrMalformedDataURI is returned when a data URI has no comma
	// separator or its header does not declare base64 content.
	ErrMalformedDataURI = fmt.Errorf("%w: malformed data uri", ErrDecode)

	// ErrInvalidBase64 is returned when a value decodes under neither the
	// standard nor the URL-safe base64 alphabet.
	ErrInvalidBase64 = fmt.Errorf("%w: invalid base64 payload", ErrDecode)
)
