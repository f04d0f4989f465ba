// SPDX-License-Identifier: EPL-2.0

package mp3pull

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/mp3pull/codec"
	"github.com/ik5/mp3pull/codec/gomp3"
	"github.com/ik5/mp3pull/id3"
)

// pcmChannels is the output layout: every pulled frame is one left/right
// sample pair, regardless of the channel count encoded in the input.
const pcmChannels = 2

// Decoder is a single-owner decoding session over one MP3 file. It pulls
// compressed bytes through a sliding window, decodes them frame by frame,
// and hands out interleaved 16-bit stereo PCM on demand.
//
// A Decoder is not safe for concurrent use. Methods must not be called
// concurrently with each other or with Close.
type Decoder struct {
	src *os.File
	dec codec.FrameDecoder
	win *window
	pcm *staging

	sampleRate int
	bitrate    int
	frames     int64
	done       bool
	closed     bool

	scratch []int16 // reused by ReadPCMBuffer between calls
}

// Open opens the MP3 file at path and primes a decoding session on it using
// the default frame decoder. The returned Decoder owns the file handle until
// Close.
func Open(path string) (*Decoder, error) {
	return OpenWithDecoder(path, gomp3.New())
}

// OpenWithDecoder is like Open but decodes through dec. Any ID3v2 tag at the
// start of the file is skipped before decoding begins, and the first frame
// is decoded immediately so that SampleRate and Bitrate report real stream
// properties from the moment the session exists.
func OpenWithDecoder(path string, dec codec.FrameDecoder) (*Decoder, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if dec == nil {
		return nil, ErrNilFrameDecoder
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if _, err := id3.Skip(f); err != nil {
		f.Close()

		return nil, fmt.Errorf("%w", err)
	}

	d := &Decoder{
		src: f,
		dec: dec,
		win: newWindow(windowBytes),
		pcm: newStaging(stagingSamples),
	}

	if d.decodeNextFrame() == 0 {
		f.Close()

		return nil, ErrNoMP3Frames
	}

	return d, nil
}

// Close releases the underlying file. It is safe to call more than once and
// on a nil Decoder; only the first call closes the file.
func (d *Decoder) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true

	if err := d.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// SampleRate returns the sample rate, in Hz, of the most recently decoded
// frame, or 0 on a nil Decoder.
func (d *Decoder) SampleRate() int {
	if d == nil {
		return 0
	}

	return d.sampleRate
}

// Bitrate returns the bit rate, in bits per second, of the most recently
// decoded frame, or 0 on a nil Decoder. For variable-bit-rate streams the
// value changes as frames are decoded.
func (d *Decoder) Bitrate() int {
	if d == nil {
		return 0
	}

	return d.bitrate
}

// FramesDecoded returns the running count of stereo frames handed out since
// the session was opened, or 0 on a nil Decoder.
func (d *Decoder) FramesDecoded() int64 {
	if d == nil {
		return 0
	}

	return d.frames
}

// ReadFrames pulls up to frames stereo frames into dst and returns the
// number actually written. Each frame is two int16 samples, left then right,
// so dst must hold at least frames*2 entries; entries past the written
// frames are left untouched.
//
// A short count with a nil error never occurs: once the stream runs out,
// ReadFrames returns the remaining frames together with io.EOF, and every
// later call returns 0, io.EOF.
func (d *Decoder) ReadFrames(dst []int16, frames int) (int, error) {
	if d == nil {
		return 0, ErrNilDecoder
	}
	if frames <= 0 {
		return 0, ErrInvalidFrameCount
	}
	// Divide rather than multiply so a huge frame count cannot overflow.
	if len(dst)/pcmChannels < frames {
		return 0, ErrShortOutputBuffer
	}

	wanted := frames * pcmChannels
	written := 0

	for {
		got := d.pcm.take(wanted - written)
		copy(dst[written:], got)
		written += len(got)

		if d.pcm.remaining() == 0 && d.decodeNextFrame() == 0 {
			break
		}
		if written == wanted {
			break
		}
	}

	n := written / pcmChannels
	d.frames += int64(n)

	if d.done {
		return n, io.EOF
	}

	return n, nil
}
