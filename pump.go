// SPDX-License-Identifier: EPL-2.0

package mp3pull

import (
	"errors"

	"github.com/ik5/mp3pull/codec"
)

// decodeNextFrame stages the next frame's samples and returns how many were
// staged. A return of zero is terminal: the session latches into the drained
// state and every later call returns zero immediately.
func (d *Decoder) decodeNextFrame() int {
	if d.done {
		return 0
	}
	n := d.pumpFrame()
	if n == 0 {
		d.done = true
	}
	return n
}

// pumpFrame runs the decode loop: top up the window, locate the next frame
// boundary, and ask the frame decoder for one frame. An underflow sends the
// loop back for more data; anything else, success included, ends it.
//
// The loop always terminates: every retry either consumes window bytes or
// grows the window by a refill, and a refill that cannot grow it any further
// leaves the window full or the stream exhausted, both of which end the
// loop.
func (d *Decoder) pumpFrame() int {
	needMore := false
	for {
		if needMore || d.win.remaining() < refillThreshold {
			d.win.refill(d.src)
			needMore = false
		}

		off := d.dec.FindSync(d.win.view())
		if off < 0 {
			// No frame boundary in anything left to read.
			return 0
		}
		if !d.win.advance(off) {
			return 0
		}

		consumed, info, err := d.dec.DecodeFrame(d.win.view(), d.pcm.frame())
		switch {
		case err == nil:
			if !d.win.advance(consumed) {
				return 0
			}
			if info.OutputSamples <= 0 || !d.pcm.stage(info.OutputSamples) {
				return 0
			}
			d.sampleRate = info.SampleRate
			d.bitrate = info.Bitrate
			if info.Channels == 1 {
				if !d.pcm.widenToStereo() {
					// A mono frame too large to widen must not be
					// handed out.
					d.pcm.stage(0)
					return 0
				}
			} else if info.Channels != pcmChannels || info.OutputSamples%pcmChannels != 0 {
				// Only mono or whole stereo pairs can be presented.
				d.pcm.stage(0)
				return 0
			}
			return d.pcm.remaining()

		case errors.Is(err, codec.ErrUnderflow):
			// The frame start is valid but its tail is not buffered yet.
			if !d.win.advance(consumed) {
				return 0
			}
			if consumed == 0 {
				if d.win.exhausted() || d.win.full() {
					return 0
				}
				needMore = true
			}

		default:
			return 0
		}
	}
}
