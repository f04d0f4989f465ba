// SPDX-License-Identifier: EPL-2.0

// Package codectest provides a frame decoder over a tiny synthetic wire
// format, so decoding sessions can be driven through real byte streams in
// tests without shipping MP3 fixtures.
//
// A frame is a two-byte magic, a little-endian header and a payload of raw
// little-endian int16 samples:
//
//	F7 5A | size u16 | rate u16 | kbps u16 | channels u8 | samples u16 | payload
//
// size covers the whole frame, header included, so truncation is detectable
// exactly the way it is for MPEG frames.
package codectest

import (
	"encoding/binary"

	"github.com/ik5/mp3pull/codec"
)

const (
	magic0 = 0xF7
	magic1 = 0x5A

	headerBytes = 11
)

// Frame describes one synthetic frame before encoding.
type Frame struct {
	SampleRate int
	Bitrate    int // bits per second, stored on the wire in kbit/s
	Channels   int
	Samples    []int16 // interleaved
}

// Encode appends the wire form of f to dst and returns the extended slice.
func Encode(dst []byte, f Frame) []byte {
	size := headerBytes + 2*len(f.Samples)

	var header [headerBytes]byte
	header[0] = magic0
	header[1] = magic1
	binary.LittleEndian.PutUint16(header[2:], uint16(size))
	binary.LittleEndian.PutUint16(header[4:], uint16(f.SampleRate))
	binary.LittleEndian.PutUint16(header[6:], uint16(f.Bitrate/1000))
	header[8] = byte(f.Channels)
	binary.LittleEndian.PutUint16(header[9:], uint16(len(f.Samples)))

	dst = append(dst, header[:]...)
	for _, s := range f.Samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}

	return dst
}

// Stream encodes frames back to back into one byte stream.
func Stream(frames ...Frame) []byte {
	var out []byte
	for _, f := range frames {
		out = Encode(out, f)
	}

	return out
}

// Codec implements codec.FrameDecoder over the synthetic wire format.
type Codec struct {
	// Decoded counts the frames decoded so far, for assertions.
	Decoded int
}

// New returns a Codec with no frames decoded.
func New() *Codec { return &Codec{} }

// FindSync returns the offset of the next magic pair in buf, or -1.
func (c *Codec) FindSync(buf []byte) int {
	for i := 0; i+2 <= len(buf); i++ {
		if buf[i] == magic0 && buf[i+1] == magic1 {
			return i
		}
	}

	return -1
}

// DecodeFrame copies the payload of the frame at the start of src into pcm.
func (c *Codec) DecodeFrame(src []byte, pcm []int16) (int, codec.FrameInfo, error) {
	if len(src) < headerBytes {
		return 0, codec.FrameInfo{}, codec.ErrUnderflow
	}
	if src[0] != magic0 || src[1] != magic1 {
		return 0, codec.FrameInfo{}, ErrBadMagic
	}

	size := int(binary.LittleEndian.Uint16(src[2:]))
	samples := int(binary.LittleEndian.Uint16(src[9:]))
	channels := int(src[8])

	if size != headerBytes+2*samples || channels < 1 || channels > 2 {
		return 0, codec.FrameInfo{}, ErrMalformedFrame
	}
	if size > len(src) {
		return 0, codec.FrameInfo{}, codec.ErrUnderflow
	}
	if samples > len(pcm) {
		return 0, codec.FrameInfo{}, ErrMalformedFrame
	}

	for i := 0; i < samples; i++ {
		pcm[i] = int16(binary.LittleEndian.Uint16(src[headerBytes+2*i:]))
	}

	c.Decoded++

	info := codec.FrameInfo{
		SampleRate:    int(binary.LittleEndian.Uint16(src[4:])),
		Bitrate:       int(binary.LittleEndian.Uint16(src[6:])) * 1000,
		Channels:      channels,
		OutputSamples: samples,
	}

	return size, info, nil
}
