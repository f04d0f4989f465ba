// SPDX-License-Identifier: EPL-2.0

package gomp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/mp3pull/codec"
)

// Output layout of the decode engine: interleaved 16-bit little-endian
// stereo, mono inputs already widened by the engine itself.
const (
	outputChannels = 2
	bytesPerSample = 2
)

// pcmReader is the slice of the go-mp3 decoder the codec relies on, split
// out to allow testing with a scripted engine.
type pcmReader interface {
	Read(p []byte) (int, error)
}

// Codec implements codec.FrameDecoder on top of github.com/hajimehoshi/go-mp3.
//
// The engine wants to own a whole stream rather than be handed one frame at
// a time, so the Codec keeps a private feed buffer: each frame accepted by
// DecodeFrame is appended to the feed in stream order, and the engine reads
// it back from there. The engine sees one contiguous MP3 stream, which keeps
// its bit-reservoir handling intact, while the caller stays in charge of
// framing.
type Codec struct {
	feed bytes.Buffer
	eng  pcmReader
	out  []byte // engine output for one frame

	newEngine func(r io.Reader) (pcmReader, error)
}

var _ codec.FrameDecoder = (*Codec)(nil)

// New returns a Codec ready to decode one MP3 stream. A Codec must not be
// shared between streams; open a new one per input.
func New() *Codec {
	return &Codec{
		newEngine: func(r io.Reader) (pcmReader, error) {
			eng, err := mp3.NewDecoder(r)
			if err != nil {
				return nil, fmt.Errorf("%w", err)
			}

			return eng, nil
		},
	}
}

// FindSync returns the offset of the first byte sequence in buf that parses
// as a complete Layer III frame header, or -1 when there is none. Requiring
// a full header parse, not just the sync word, keeps sync-like bytes inside
// garbage from being mistaken for a frame.
func (c *Codec) FindSync(buf []byte) int {
	for i := 0; i+headerBytes <= len(buf); i++ {
		if buf[i] != 0xFF {
			continue
		}
		if _, ok := parseFrameHeader(buf[i:]); ok {
			return i
		}
	}

	return -1
}

// DecodeFrame decodes the frame at the start of src into pcm. The frame
// length comes from the header, so src bytes past the frame are never
// touched and consumed reports exactly one frame on success.
func (c *Codec) DecodeFrame(src []byte, pcm []int16) (int, codec.FrameInfo, error) {
	h, ok := parseFrameHeader(src)
	if !ok {
		if len(src) < headerBytes {
			return 0, codec.FrameInfo{}, codec.ErrUnderflow
		}

		return 0, codec.FrameInfo{}, ErrInvalidFrameHeader
	}

	frameSize := h.size()
	if frameSize > len(src) {
		return 0, codec.FrameInfo{}, codec.ErrUnderflow
	}

	want := h.samplesPerChannel() * outputChannels * bytesPerSample
	if want/bytesPerSample > len(pcm) {
		return 0, codec.FrameInfo{}, ErrShortPCMBuffer
	}

	c.feed.Write(src[:frameSize])

	if c.eng == nil {
		eng, err := c.newEngine(&c.feed)
		if err != nil {
			return 0, codec.FrameInfo{}, fmt.Errorf("%w", err)
		}
		c.eng = eng
	}

	if cap(c.out) < want {
		c.out = make([]byte, want)
	}
	c.out = c.out[:want]

	// One frame in, at most one frame of samples out: the engine reports
	// io.EOF once it has played out the fed bytes.
	read := 0
	for read < want {
		n, err := c.eng.Read(c.out[read:])
		read += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, codec.FrameInfo{}, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	samples := read / bytesPerSample
	for i := 0; i < samples; i++ {
		pcm[i] = int16(binary.LittleEndian.Uint16(c.out[bytesPerSample*i:]))
	}

	info := codec.FrameInfo{
		SampleRate:    h.sampleRate,
		Bitrate:       h.bitrate,
		Channels:      outputChannels,
		OutputSamples: samples,
	}

	return frameSize, info, nil
}
