// SPDX-License-Identifier: EPL-2.0

// Package gomp3 is the default frame decoder backend, built on the pure Go
// MP3 decoder github.com/hajimehoshi/go-mp3.
//
// # Framing
//
// The engine underneath decodes streams, not frames, so this package adds
// the framing layer itself: frame headers are parsed here to locate sync
// positions and to compute exact frame lengths, and every frame accepted by
// DecodeFrame is replayed to the engine through an internal feed buffer in
// stream order. Bit-reservoir frames, which borrow main data from earlier
// frames, decode correctly because the engine still observes one unbroken
// stream.
//
// # Supported streams
//
// MPEG-1, MPEG-2 and MPEG-2.5 Layer III at all standard bit and sample
// rates. Free-format streams are rejected, as their frame length cannot be
// derived from the header. Other layers never match FindSync, so mixed
// content is skipped rather than decoded.
//
// # Output
//
// Decoded PCM is always interleaved stereo, 16 bits per sample; the engine
// widens mono input by itself and FrameInfo.Channels reports 2 accordingly.
package gomp3
