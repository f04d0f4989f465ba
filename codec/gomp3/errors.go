// SPDX-License-Identifier: EPL-2.0

package gomp3

import "errors"

var (
	// ErrInvalidFrameHeader reports bytes that do not begin with a valid
	// Layer III frame header.
	ErrInvalidFrameHeader = errors.New("invalid MP3 frame header")

	// ErrShortPCMBuffer reports an output buffer with no room for one
	// decoded frame.
	ErrShortPCMBuffer = errors.New("pcm buffer is too small for a decoded frame")
)
