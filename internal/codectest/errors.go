// SPDX-License-Identifier: EPL-2.0

package codectest

import "errors"

var (
	// ErrBadMagic reports decode bytes that do not start with the frame
	// magic.
	ErrBadMagic = errors.New("frame does not start with the magic pair")

	// ErrMalformedFrame reports a frame whose header fields do not agree
	// with each other or with the output buffer.
	ErrMalformedFrame = errors.New("malformed frame header")
)
