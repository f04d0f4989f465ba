// SPDX-License-Identifier: EPL-2.0

// Package codec defines the boundary between the mp3pull session driver and
// an MP3 bitstream decoder.
//
// The driver does not understand MP3 bitstreams. It keeps compressed bytes
// buffered and asks a FrameDecoder two questions: where does the next frame
// begin (FindSync), and what does this frame decode to (DecodeFrame). The
// answers carry everything the session needs: bytes consumed, sample rate,
// bitrate, channel layout and the sample count written.
//
// # Implementing a backend
//
// A backend implements FrameDecoder over whatever engine it likes. The
// in-tree production backend is codec/gomp3, built on
// github.com/hajimehoshi/go-mp3. The contract points that matter:
//
//   - FindSync only locates a plausible header; it must never read past
//     len(buf).
//   - DecodeFrame must return ErrUnderflow, not a hard error, when src
//     starts with a valid frame that continues beyond len(src). The session
//     responds by buffering more compressed data and retrying.
//   - FrameInfo.Channels describes the layout actually written to pcm.
//     Report 1 only when pcm holds mono samples the session still needs to
//     widen to stereo.
//
// # Statefulness
//
// MP3 frames reference bits from earlier frames (the bit reservoir), so a
// FrameDecoder is stateful and single-stream: feed it frames from one
// stream, in order, and do not share it between sessions.
package codec
