// SPDX-License-Identifier: EPL-2.0

package mp3pull

import "io"

// Sizing for the compressed-data window. mainBufferBytes is the largest
// compressed frame a decoder may need to see at once (worst-case MPEG frame
// plus bit-reservoir slack). Refilling whenever fewer than two of those
// remain guarantees a frame is never clipped against the window edge, and
// the window itself holds several refills' worth of slack for
// resynchronization.
const (
	mainBufferBytes = 1940
	refillThreshold = 2 * mainBufferBytes
	windowBytes     = 16 * 1024
)

// window is the sliding region of not-yet-decoded compressed bytes. Unread
// data lives at buf[pos : pos+rem]. Bytes past that are either unread leftovers
// from an earlier fill or zero padding written on a short read, so a sync
// scan can never match stale content from a previous fill.
type window struct {
	buf []byte
	pos int  // read cursor
	rem int  // unread bytes from pos
	fin bool // underlying stream is exhausted
}

func newWindow(size int) *window {
	return &window{buf: make([]byte, size)}
}

// view returns the unread bytes. The slice aliases the window buffer and is
// valid only until the next refill.
func (w *window) view() []byte { return w.buf[w.pos : w.pos+w.rem] }

func (w *window) remaining() int { return w.rem }

func (w *window) exhausted() bool { return w.fin }

func (w *window) full() bool { return w.rem == len(w.buf) }

// advance moves the read cursor n bytes forward. It reports false, leaving
// the window untouched, when n falls outside the unread region; the frame
// decoder supplying n is not trusted with the buffer arithmetic.
func (w *window) advance(n int) bool {
	if n < 0 || n > w.rem {
		return false
	}
	w.pos += n
	w.rem -= n
	return true
}

// refill compacts the unread bytes to the start of the buffer, then reads
// from r until the buffer is full or the stream runs out. A short read marks
// the stream exhausted and zeroes the unfilled tail; read errors during
// steady-state decode degrade to end of stream the same way. Returns the
// count of newly read bytes. The read cursor is reset to the buffer start.
func (w *window) refill(r io.Reader) int {
	copy(w.buf, w.buf[w.pos:w.pos+w.rem])
	w.pos = 0

	space := w.buf[w.rem:]
	n, _ := io.ReadFull(r, space)
	if n < len(space) {
		w.fin = true
		clear(space[n:])
	}
	w.rem += n
	return n
}
