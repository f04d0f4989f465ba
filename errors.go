// SPDX-License-Identifier: EPL-2.0

package mp3pull

import "errors"

var (
	// ErrEmptyPath reports an attempt to open a decoder without an input
	// file path.
	ErrEmptyPath = errors.New("input path must not be empty")

	// ErrNilFrameDecoder reports an attempt to open a decoder without a
	// frame decoder backend.
	ErrNilFrameDecoder = errors.New("frame decoder must not be nil")

	// ErrNilDecoder reports a pull from a nil decoder session.
	ErrNilDecoder = errors.New("decoder must not be nil")

	// ErrInvalidFrameCount reports a pull requesting zero or a negative
	// number of frames.
	ErrInvalidFrameCount = errors.New("requested frame count must be positive")

	// ErrShortOutputBuffer reports an output buffer with no room for the
	// requested frames.
	ErrShortOutputBuffer = errors.New("output buffer is too small for the requested frames")

	// ErrNoMP3Frames reports an input in which no decodable MP3 frame was
	// found.
	ErrNoMP3Frames = errors.New("no decodable MP3 frames found in input")
)
