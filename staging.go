// SPDX-License-Identifier: EPL-2.0

package mp3pull

// Sizing for the PCM staging buffer: the largest per-channel sample count a
// single MPEG frame can decode to (1152 for MPEG-1 Layer III), doubled so a
// mono frame can be widened to stereo in place.
const (
	maxSamplesPerChannel = 1152
	stagingSamples       = 2 * maxSamplesPerChannel
)

// staging holds one decoded frame's interleaved samples between pulls.
// Unconsumed samples live at buf[pos:end] and are handed out in decode
// order.
type staging struct {
	buf []int16
	pos int
	end int
}

func newStaging(size int) *staging {
	return &staging{buf: make([]int16, size)}
}

// frame exposes the whole buffer for a frame decoder to fill.
func (s *staging) frame() []int16 { return s.buf }

// remaining counts the unconsumed samples.
func (s *staging) remaining() int { return s.end - s.pos }

// stage accepts a freshly decoded frame of n samples at the front of the
// buffer, discarding whatever was left unconsumed. It reports false when n
// cannot fit.
func (s *staging) stage(n int) bool {
	if n < 0 || n > len(s.buf) {
		return false
	}
	s.pos = 0
	s.end = n
	return true
}

// take returns up to n unconsumed samples and consumes them. The slice
// aliases the staging buffer and is valid only until the next stage.
func (s *staging) take(n int) []int16 {
	n = min(n, s.remaining())
	out := s.buf[s.pos : s.pos+n]
	s.pos += n
	return out
}

// widenToStereo rewrites the staged mono samples as stereo pairs in place,
// duplicating each sample into both channels. The copy walks backwards so no
// source sample is overwritten before it has been duplicated. Reports false
// when the frame is partially consumed or doubling would not fit.
func (s *staging) widenToStereo() bool {
	n := s.remaining()
	if s.pos != 0 || 2*n > len(s.buf) {
		return false
	}
	for i := n - 1; i >= 0; i-- {
		s.buf[2*i] = s.buf[i]
		s.buf[2*i+1] = s.buf[i]
	}
	s.end = 2 * n
	return true
}
