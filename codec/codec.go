// SPDX-License-Identifier: EPL-2.0

package codec

// FrameInfo describes one decoded MP3 frame.
type FrameInfo struct {
	// SampleRate of the frame in Hz.
	SampleRate int
	// Bitrate of the frame in bits per second. Variable-bitrate streams
	// report a different value from frame to frame.
	Bitrate int
	// Channels is the channel layout of the samples written to pcm:
	// 1 for mono, 2 for interleaved stereo. A backend that widens mono
	// sources itself reports 2.
	Channels int
	// OutputSamples is the total sample count written to pcm across all
	// channels for this frame.
	OutputSamples int
}

// FrameDecoder is the capability pair a decoding session drives: locating
// frame boundaries in buffered compressed data, and decoding one frame at a
// time out of it. Implementations may carry state between calls (MP3 frames
// borrow bits from their predecessors), so a single FrameDecoder must only
// ever be fed one stream, in order.
type FrameDecoder interface {
	// FindSync returns the byte offset of the next plausible frame header
	// within buf, or -1 when buf contains none.
	FindSync(buf []byte) int

	// DecodeFrame decodes the frame starting at src[0], writes its samples
	// into pcm, and returns the count of compressed bytes consumed from src
	// together with the frame description.
	//
	// When src holds a valid frame start but not the complete frame,
	// DecodeFrame returns ErrUnderflow; the caller buffers more data and
	// retries. consumed may be non-zero alongside ErrUnderflow if bytes
	// were absorbed that cannot yet produce samples. Any other error is
	// unrecoverable for the stream.
	DecodeFrame(src []byte, pcm []int16) (consumed int, info FrameInfo, err error)
}
